package order

import (
	"errors"
	"strconv"
	"strings"

	"bytesme-checkout/internal/domain/voucher"
)

var (
	ErrNoItemsSelected = errors.New("no cart items selected for checkout")
	ErrMissingAddress  = errors.New("delivery address is required")
	ErrMissingPayment  = errors.New("payment method is required")
)

// Placement is a fully assembled order submission. It is a pure value:
// the network call belongs to the gateway that serializes it.
type Placement struct {
	addressID       int64
	paymentMethodID string
	voucherCode     *voucher.Code
	selectedItemIDs []int64
}

// NewPlacement reconciles the checkout selection into a single submission.
// An empty selection is a caller bug and is rejected before any request is
// made. The voucher is optional; absence means the order carries no code
// at all on the wire, which the backend distinguishes from an empty one.
func NewPlacement(addressID int64, paymentMethodID string, applied *voucher.Voucher, selectedItemIDs []int64) (*Placement, error) {
	if addressID <= 0 {
		return nil, ErrMissingAddress
	}
	if strings.TrimSpace(paymentMethodID) == "" {
		return nil, ErrMissingPayment
	}
	if len(selectedItemIDs) == 0 {
		return nil, ErrNoItemsSelected
	}

	var code *voucher.Code
	if applied != nil {
		c := applied.Code()
		code = &c
	}

	ids := make([]int64, len(selectedItemIDs))
	copy(ids, selectedItemIDs)

	return &Placement{
		addressID:       addressID,
		paymentMethodID: paymentMethodID,
		voucherCode:     code,
		selectedItemIDs: ids,
	}, nil
}

func (p *Placement) AddressID() int64        { return p.addressID }
func (p *Placement) PaymentMethodID() string { return p.paymentMethodID }

// VoucherCode is nil when no voucher is applied.
func (p *Placement) VoucherCode() *voucher.Code { return p.voucherCode }

func (p *Placement) SelectedItemIDs() []int64 {
	ids := make([]int64, len(p.selectedItemIDs))
	copy(ids, p.selectedItemIDs)
	return ids
}

// SelectedItemIDsCSV joins the selected ids into the comma-separated form
// the order endpoint expects, e.g. [1,2,3] -> "1,2,3" and [42] -> "42".
func (p *Placement) SelectedItemIDsCSV() string {
	parts := make([]string, len(p.selectedItemIDs))
	for i, id := range p.selectedItemIDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
