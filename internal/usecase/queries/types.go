package queries

import "time"

// Read models (DTO for read side)
type VoucherView struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Type           string    `json:"type"`
	Value          float64   `json:"value"`
	Description    string    `json:"description"`
	MinOrderValue  *int64    `json:"min_order_value,omitempty"`
	MaxDiscount    *int64    `json:"max_discount,omitempty"`
	FirstOrderOnly bool      `json:"first_order_only"`
	ExpiresAt      time.Time `json:"expires_at"`
	DisplayValue   string    `json:"display_value"`
}

type GiftProductView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url,omitempty"`
}

// CheckoutQuote is the local preview of the order total: subtotal over the
// selected lines, the voucher discount if one applies, and the payable
// total floored at zero. The backend recomputes all of it at placement.
type CheckoutQuote struct {
	Subtotal       int64   `json:"subtotal"`
	Discount       int64   `json:"discount"`
	Total          int64   `json:"total"`
	VoucherCode    *string `json:"voucher_code,omitempty"`
	VoucherDisplay *string `json:"voucher_display,omitempty"`
	Applicable     bool    `json:"applicable"`
	Reason         string  `json:"reason,omitempty"`
}
