//go:build unit || e2e

// Package backendtest runs an in-process stand-in for the Bytesme backend
// so gateway and end-to-end tests can exercise real HTTP round trips.
package backendtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const Secret = "backendtest-secret"

// Voucher is a catalog fixture in the backend's wire shape. VoucherValue is
// `any` so tests can serve it as a JSON number, a numeric string, or garbage.
type Voucher struct {
	VoucherID          string    `json:"voucher_id"`
	Code               string    `json:"code"`
	VoucherType        string    `json:"voucher_type"`
	VoucherValue       any       `json:"voucher_value"`
	VoucherDescription string    `json:"voucher_description"`
	MinOrderValue      *int64    `json:"min_order_value,omitempty"`
	MaxDiscount        *int64    `json:"max_discount,omitempty"`
	IsFirstOrderOnly   bool      `json:"is_first_order_only"`
	ExpiryDate         time.Time `json:"expiry_date"`
}

type GiftProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url"`
}

type Applicability struct {
	IsApplicable bool
	ReasonCode   string
}

// PlacedOrder records one submission exactly as it arrived on the wire.
type PlacedOrder struct {
	Raw            map[string]any
	IdempotencyKey string
}

type Server struct {
	*httptest.Server

	mu            sync.Mutex
	vouchers      []Voucher
	giftProducts  map[string][]GiftProduct
	applicability map[string]Applicability
	appliedCodes  []string
	removeCalls   int
	orders        []PlacedOrder
	orderReject   *rejection
	nextOrderID   int
}

type rejection struct {
	status  int
	code    string
	message string
}

type testingT interface {
	Cleanup(func())
}

func New(t testingT) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		giftProducts:  make(map[string][]GiftProduct),
		applicability: make(map[string]Applicability),
	}

	router := gin.New()
	router.Use(s.requireBearer)
	router.GET("/voucher", s.listVouchers)
	router.GET("/voucher/is-applicable", s.isApplicable)
	router.GET("/voucher/gift-products", s.listGiftProducts)
	router.POST("/user/vouchers/apply", s.applyVoucher)
	router.POST("/user/vouchers/remove", s.removeVoucher)
	router.POST("/order/place", s.placeOrder)

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)
	return s
}

// MintToken issues a signed session token the way the real auth provider
// would.
func MintToken(ttl time.Duration) string {
	claims := jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret))
	if err != nil {
		panic(err)
	}
	return token
}

// -----------------------------------------------------------------------------
// Fixtures and inspection
// -----------------------------------------------------------------------------

func (s *Server) SeedVouchers(vouchers ...Voucher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vouchers = append(s.vouchers, vouchers...)
}

func (s *Server) SeedGiftProducts(code string, products ...GiftProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.giftProducts[strings.ToUpper(code)] = products
}

// SetApplicability overrides the verdict for a code; unset codes are
// reported applicable.
func (s *Server) SetApplicability(code string, verdict Applicability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicability[strings.ToUpper(code)] = verdict
}

// RejectOrders makes every subsequent placement fail with the given error
// code until cleared with AcceptOrders.
func (s *Server) RejectOrders(status int, code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderReject = &rejection{status: status, code: code, message: message}
}

func (s *Server) AcceptOrders() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderReject = nil
}

func (s *Server) AppliedCodes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	codes := make([]string, len(s.appliedCodes))
	copy(codes, s.appliedCodes)
	return codes
}

func (s *Server) RemoveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeCalls
}

func (s *Server) Orders() []PlacedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]PlacedOrder, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// -----------------------------------------------------------------------------
// Handlers
// -----------------------------------------------------------------------------

func (s *Server) requireBearer(c *gin.Context) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "unauthorized", "Missing bearer token")
		return
	}

	_, err := jwt.Parse(raw, func(_ *jwt.Token) (any, error) {
		return []byte(Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "unauthorized", "Invalid bearer token")
		return
	}
	c.Next()
}

func (s *Server) listVouchers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.ToUpper(c.Query("voucher_code"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	matched := make([]Voucher, 0, len(s.vouchers))
	for _, v := range s.vouchers {
		if code != "" && !strings.EqualFold(v.Code, code) {
			continue
		}
		matched = append(matched, v)
	}

	if offset >= len(matched) {
		matched = nil
	} else {
		matched = matched[offset:]
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	c.JSON(http.StatusOK, matched)
}

func (s *Server) isApplicable(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.ToUpper(c.Query("voucher_code"))
	verdict, ok := s.applicability[code]
	if !ok {
		verdict = Applicability{IsApplicable: true}
	}

	c.JSON(http.StatusOK, gin.H{
		"is_applicable": verdict.IsApplicable,
		"reason_code":   verdict.ReasonCode,
	})
}

func (s *Server) listGiftProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.ToUpper(c.Query("voucher_code"))
	products := s.giftProducts[code]
	if products == nil {
		products = []GiftProduct{}
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) applyVoucher(c *gin.Context) {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "bad_request", "Invalid request format")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.vouchers {
		if strings.EqualFold(v.Code, body.Code) {
			s.appliedCodes = append(s.appliedCodes, strings.ToUpper(body.Code))
			c.JSON(http.StatusOK, gin.H{"applied": true})
			return
		}
	}
	abortWithError(c, http.StatusNotFound, "voucher_not_found", "Voucher not found")
}

func (s *Server) removeVoucher(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeCalls++
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func (s *Server) placeOrder(c *gin.Context) {
	var raw map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
		abortWithError(c, http.StatusBadRequest, "bad_request", "Invalid request format")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orderReject != nil {
		abortWithError(c, s.orderReject.status, s.orderReject.code, s.orderReject.message)
		return
	}

	s.nextOrderID++
	s.orders = append(s.orders, PlacedOrder{
		Raw:            raw,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})

	c.JSON(http.StatusCreated, gin.H{
		"order_id":    "order-" + strconv.Itoa(s.nextOrderID),
		"total_price": 0,
		"status":      "pending",
		"created_at":  time.Now().UTC().Format(time.RFC3339),
	})
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
