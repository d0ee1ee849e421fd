package cart

import (
	"github.com/shopspring/decimal"
)

// Product is the slice of catalog data the cart needs to create a line item.
// A nil AvailableStock means the stock is unknown and the quantity is
// unconstrained.
type Product struct {
	ID             string
	Name           string
	UnitPrice      decimal.Decimal
	AvailableStock *int
}

type LineItem struct {
	ProductID      string
	Name           string
	UnitPrice      decimal.Decimal
	Quantity       int
	AvailableStock *int
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an ordered line-item collection keyed by product id. Totals are
// always recomputed from the items so they cannot drift.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from a persisted snapshot. Entries with an empty id
// or a non-positive quantity are dropped rather than rejected.
func Restore(items []LineItem) *Cart {
	c := &Cart{}
	for _, li := range items {
		if li.ProductID == "" || li.Quantity <= 0 {
			continue
		}
		c.items = append(c.items, li)
	}
	return c
}

// Add applies delta to the product's quantity, clamped to
// [0, availableStock]. A quantity of 0 after clamping removes the line item.
// Unseen products are only created for a positive delta, and never when the
// known stock is already exhausted.
func (c *Cart) Add(p Product, delta int) {
	idx := c.find(p.ID)
	if idx < 0 {
		if delta <= 0 {
			return
		}
		if p.AvailableStock != nil && *p.AvailableStock <= 0 {
			return
		}
		qty := delta
		if p.AvailableStock != nil && qty > *p.AvailableStock {
			qty = *p.AvailableStock
		}
		c.items = append(c.items, LineItem{
			ProductID:      p.ID,
			Name:           p.Name,
			UnitPrice:      p.UnitPrice,
			Quantity:       qty,
			AvailableStock: p.AvailableStock,
		})
		return
	}

	item := &c.items[idx]
	if p.AvailableStock != nil {
		item.AvailableStock = p.AvailableStock
	}
	next := item.Quantity + delta
	if item.AvailableStock != nil && next > *item.AvailableStock {
		next = *item.AvailableStock
	}
	if next <= 0 {
		c.removeAt(idx)
		return
	}
	item.Quantity = next
}

// Decrease lowers the quantity and removes the line item when it reaches 0.
// It never resurrects a removed item and needs no stock information.
func (c *Cart) Decrease(productID string, qty int) {
	if qty <= 0 {
		return
	}
	idx := c.find(productID)
	if idx < 0 {
		return
	}
	next := c.items[idx].Quantity - qty
	if next <= 0 {
		c.removeAt(idx)
		return
	}
	c.items[idx].Quantity = next
}

func (c *Cart) Remove(productID string) {
	idx := c.find(productID)
	if idx < 0 {
		return
	}
	c.removeAt(idx)
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a snapshot in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, li := range c.items {
		total += li.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

func (c *Cart) find(productID string) int {
	for i, li := range c.items {
		if li.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}
