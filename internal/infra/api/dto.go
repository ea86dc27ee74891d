package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Number decodes a JSON numeric field that older backend versions emit as a
// quoted string. Anything non-numeric is a data-integrity error, never
// silently coerced to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not numeric", ErrMalformedResponse, s)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %s is not numeric", ErrMalformedResponse, string(data))
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// VoucherRow mirrors one record of the voucher list endpoint.
type VoucherRow struct {
	VoucherID          string    `json:"voucher_id"`
	Code               string    `json:"code"`
	VoucherType        string    `json:"voucher_type"`
	VoucherValue       Number    `json:"voucher_value"`
	VoucherDescription string    `json:"voucher_description"`
	MinOrderValue      *int64    `json:"min_order_value"`
	MaxDiscount        *int64    `json:"max_discount"`
	IsFirstOrderOnly   bool      `json:"is_first_order_only"`
	ExpiryDate         time.Time `json:"expiry_date"`
}

type ApplicabilityRow struct {
	IsApplicable bool   `json:"is_applicable"`
	ReasonCode   string `json:"reason_code"`
}

type GiftProductRow struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url"`
}

type OrderRow struct {
	OrderID    string    `json:"order_id"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
