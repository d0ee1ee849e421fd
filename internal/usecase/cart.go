package usecase

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/cart"
	"storefront/internal/infra/kvstore"
)

// cartSnapshotItem is the persisted line-item shape. Field names follow the
// product wire payload so a snapshot round-trips the same blob the web client
// kept in browser storage.
type cartSnapshotItem struct {
	ID   string          `json:"_id"`
	Name string          `json:"Name"`
	Sell decimal.Decimal `json:"Sell"`
	QTY  *int            `json:"QTY,omitempty"`
	Qty  int             `json:"qty"`
}

// CartService owns the session cart: every mutation is applied in memory
// first and then persisted best-effort. A failed write is swallowed; the
// cart stays correct for the session and simply will not survive a restart.
type CartService struct {
	mu     sync.Mutex
	cart   *cart.Cart
	store  kvstore.Store
	logger *slog.Logger
}

// NewCartService hydrates the cart from the persistent store. A missing or
// malformed snapshot yields an empty cart, never an error.
func NewCartService(store kvstore.Store, logger *slog.Logger) *CartService {
	s := &CartService{
		cart:   cart.New(),
		store:  store,
		logger: logger,
	}

	raw, ok := store.Get(kvstore.KeyCart)
	if !ok {
		return s
	}
	var items []cartSnapshotItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Debug("discarding malformed cart snapshot", "error", err)
		return s
	}
	restored := make([]cart.LineItem, 0, len(items))
	for _, it := range items {
		restored = append(restored, cart.LineItem{
			ProductID:      it.ID,
			Name:           it.Name,
			UnitPrice:      it.Sell,
			Quantity:       it.Qty,
			AvailableStock: it.QTY,
		})
	}
	s.cart = cart.Restore(restored)
	return s
}

func (s *CartService) Add(p cart.Product, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p, delta)
	s.persistLocked()
}

func (s *CartService) Decrease(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Decrease(productID, qty)
	s.persistLocked()
}

func (s *CartService) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	s.persistLocked()
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.persistLocked()
}

func (s *CartService) Items() []cart.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

func (s *CartService) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

func (s *CartService) persistLocked() {
	items := s.cart.Items()
	snapshot := make([]cartSnapshotItem, 0, len(items))
	for _, li := range items {
		snapshot = append(snapshot, cartSnapshotItem{
			ID:   li.ProductID,
			Name: li.Name,
			Sell: li.UnitPrice,
			QTY:  li.AvailableStock,
			Qty:  li.Quantity,
		})
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Debug("cart snapshot marshal failed", "error", err)
		return
	}
	s.store.Set(kvstore.KeyCart, string(data))
}
