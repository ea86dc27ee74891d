package shared

import (
	"time"

	"bytesme-checkout/internal/domain/voucher"
)

// VoucherSnapshot is the read-side projection of a voucher as the backend
// reports it, before domain validation.
type VoucherSnapshot struct {
	ID             string
	Code           string
	Type           string
	Value          float64
	Description    string
	MinOrderValue  *int64
	MaxDiscount    *int64
	FirstOrderOnly bool
	ExpiresAt      time.Time
}

// ToEntity rehydrates the snapshot into a validated domain voucher.
func (s *VoucherSnapshot) ToEntity() (*voucher.Voucher, error) {
	return voucher.NewVoucher(
		s.ID,
		s.Code,
		voucher.Type(s.Type),
		s.Value,
		s.Description,
		s.MinOrderValue,
		s.MaxDiscount,
		s.FirstOrderOnly,
		s.ExpiresAt,
	)
}

// FromEntity projects a domain voucher back into snapshot form, used when
// the applied-voucher slot is read back.
func FromEntity(v *voucher.Voucher) *VoucherSnapshot {
	return &VoucherSnapshot{
		ID:             v.ID(),
		Code:           v.Code().String(),
		Type:           v.Type().String(),
		Value:          v.Value(),
		Description:    v.Description(),
		MinOrderValue:  v.MinOrderValue(),
		MaxDiscount:    v.MaxDiscount(),
		FirstOrderOnly: v.FirstOrderOnly(),
		ExpiresAt:      v.ExpiresAt(),
	}
}

type GiftProductSnapshot struct {
	ProductID string
	Name      string
	Quantity  int
	ImageURL  string
}

// OrderConfirmation is the backend's acknowledgment of a placed order.
type OrderConfirmation struct {
	OrderID    string
	TotalPrice int64
	Status     string
	PlacedAt   time.Time
}
