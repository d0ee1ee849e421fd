//go:build unit

// Package fakeapi is a gin-backed stand-in for the storefront backend, just
// enough surface for gateway tests: cookie-based sessions with a refresh
// endpoint, a CSRF double-submit cookie, and canned catalog/order/promotion
// handlers that record what they were asked.
package fakeapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "access_token"
	CSRFCookie    = "csrf_token"
	CSRFToken     = "test-csrf-token"
	ValidSession  = "session-ok"
)

type Server struct {
	*httptest.Server

	mu sync.Mutex

	// SessionValid controls whether the current session cookie is accepted.
	// Refresh always reissues a valid one.
	sessionValid bool

	refreshCalls  int
	orderRequests []OrderCapture
	lastQuery     map[string][]string

	StoreConfigBody map[string]any
	Coupons         map[string]map[string]any
	Announcements   []map[string]any
}

type OrderCapture struct {
	IdempotencyKey string
	CSRFHeader     string
	Body           map[string]any
}

func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		sessionValid: true,
		Coupons:      map[string]map[string]any{},
	}

	engine := gin.New()
	engine.Use(s.issueCSRFCookie)

	engine.GET("/api/products", s.listProducts)
	engine.GET("/api/store/discount", s.storeConfig)
	engine.GET("/api/promotions/validate", s.validateCoupon)
	engine.GET("/api/announcements", s.announcements)
	engine.GET("/api/auth/me", s.requireSession, s.me)
	engine.POST("/api/auth/refresh", s.refresh)
	engine.POST("/api/orders", s.createOrder)

	s.Server = httptest.NewServer(engine)
	return s
}

// ExpireSession makes the current session cookie invalid until the next
// refresh, so the next authenticated request returns 401.
func (s *Server) ExpireSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionValid = false
}

func (s *Server) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

func (s *Server) OrderRequests() []OrderCapture {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OrderCapture, len(s.orderRequests))
	copy(out, s.orderRequests)
	return out
}

// LastQuery returns the query params of the most recent product listing.
func (s *Server) LastQuery() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

func (s *Server) issueCSRFCookie(c *gin.Context) {
	if _, err := c.Cookie(CSRFCookie); err != nil {
		c.SetCookie(CSRFCookie, CSRFToken, 3600, "/", "", false, false)
	}
	c.Next()
}

func (s *Server) requireSession(c *gin.Context) {
	s.mu.Lock()
	valid := s.sessionValid
	s.mu.Unlock()

	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie != ValidSession || !valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
}

func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"_id": "u1", "username": "tester", "phoneNumber": "01234567890"}})
}

func (s *Server) refresh(c *gin.Context) {
	s.mu.Lock()
	s.refreshCalls++
	s.sessionValid = true
	s.mu.Unlock()
	c.SetCookie(SessionCookie, ValidSession, 3600, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	s.lastQuery = c.Request.URL.Query()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"products": []gin.H{
			{"_id": "p1", "Name": "Linen Shirt", "Sell": 450, "QTY": 3},
			{"_id": "p2", "Name": "Wool Scarf", "Sell": 200},
		},
		"total": 2,
		"pages": 1,
		"page":  1,
	})
}

func (s *Server) storeConfig(c *gin.Context) {
	s.mu.Lock()
	body := s.StoreConfigBody
	s.mu.Unlock()
	if body == nil {
		body = map[string]any{
			"active": true, "type": "general", "value": 10, "minTotal": 0,
			"shipping": map[string]any{"enabled": true, "amount": 50},
		}
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) validateCoupon(c *gin.Context) {
	s.mu.Lock()
	resp, ok := s.Coupons[c.Query("code")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon code"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) announcements(c *gin.Context) {
	s.mu.Lock()
	anns := s.Announcements
	s.mu.Unlock()
	c.JSON(http.StatusOK, anns)
}

func (s *Server) createOrder(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	s.mu.Lock()
	s.orderRequests = append(s.orderRequests, OrderCapture{
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
		CSRFHeader:     c.GetHeader("X-CSRF-Token"),
		Body:           body,
	})
	n := len(s.orderRequests)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"orderNumber": fmt.Sprintf("ORD-%04d", n),
		"status":      "pending",
		"totalPrice":  999,
		"shippingFee": 50,
		"userDetails": gin.H{"username": body["name"], "phoneNumber": body["phone"], "Address": body["address"]},
	})
}
