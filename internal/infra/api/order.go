package api

import (
	"context"
	"net/http"

	"bytesme-checkout/internal/domain/order"

	"github.com/google/uuid"
)

// PlaceOrderBody is the wire form of an order submission. The voucher_code
// key must be absent altogether when no voucher is applied; the backend
// treats a present-but-empty code differently from no code at all.
type PlaceOrderBody struct {
	UserAddressID   int64   `json:"user_address_id"`
	PaymentMethodID string  `json:"payment_method_id"`
	VoucherCode     *string `json:"voucher_code,omitempty"`
	SelectedItemIDs string  `json:"selected_item_ids"`
}

func NewPlaceOrderBody(p *order.Placement) PlaceOrderBody {
	body := PlaceOrderBody{
		UserAddressID:   p.AddressID(),
		PaymentMethodID: p.PaymentMethodID(),
		SelectedItemIDs: p.SelectedItemIDsCSV(),
	}
	if code := p.VoucherCode(); code != nil {
		s := code.String()
		body.VoucherCode = &s
	}
	return body
}

// PlaceOrder submits the assembled placement. The idempotency key guards
// against double submission when the caller retries after an ambiguous
// network failure.
func (c *Client) PlaceOrder(ctx context.Context, p *order.Placement, idempotencyKey uuid.UUID) (OrderRow, error) {
	header := http.Header{}
	header.Set("Idempotency-Key", idempotencyKey.String())

	var row OrderRow
	if err := c.post(ctx, "/order/place", header, NewPlaceOrderBody(p), &row); err != nil {
		return OrderRow{}, err
	}
	return row, nil
}
