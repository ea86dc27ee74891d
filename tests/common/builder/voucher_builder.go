//go:build unit || e2e

package builder

import (
	"time"

	domvoucher "bytesme-checkout/internal/domain/voucher"
	"bytesme-checkout/internal/infra/api"
	"bytesme-checkout/internal/usecase/shared"
)

type VoucherBuilder struct {
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

func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		ID:          "voucher-1",
		Code:        "BYTESME10",
		Type:        domvoucher.TypePercentage.String(),
		Value:       10,
		Description: "10% off your order",
		ExpiresAt:   time.Now().Add(30 * 24 * time.Hour),
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VoucherBuilder) BuildSnapshot() *shared.VoucherSnapshot {
	return &shared.VoucherSnapshot{
		ID:             b.ID,
		Code:           b.Code,
		Type:           b.Type,
		Value:          b.Value,
		Description:    b.Description,
		MinOrderValue:  b.MinOrderValue,
		MaxDiscount:    b.MaxDiscount,
		FirstOrderOnly: b.FirstOrderOnly,
		ExpiresAt:      b.ExpiresAt,
	}
}

func (b *VoucherBuilder) BuildDomain() (*domvoucher.Voucher, error) {
	return b.BuildSnapshot().ToEntity()
}

func (b *VoucherBuilder) BuildWireRow() api.VoucherRow {
	return api.VoucherRow{
		VoucherID:          b.ID,
		Code:               b.Code,
		VoucherType:        b.Type,
		VoucherValue:       api.Number(b.Value),
		VoucherDescription: b.Description,
		MinOrderValue:      b.MinOrderValue,
		MaxDiscount:        b.MaxDiscount,
		IsFirstOrderOnly:   b.FirstOrderOnly,
		ExpiryDate:         b.ExpiresAt,
	}
}
