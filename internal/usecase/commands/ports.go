package commands

import (
	"context"

	"bytesme-checkout/internal/domain/order"
	"bytesme-checkout/internal/domain/voucher"
	"bytesme-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// VoucherFinder resolves voucher codes against the backend catalog.
type VoucherFinder interface {
	FindByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error)
	CheckApplicable(ctx context.Context, code string, selectedItemIDs []int64) (bool, string, error)
}

// VoucherAccountGateway mirrors voucher selection onto the user account.
type VoucherAccountGateway interface {
	Apply(ctx context.Context, code string) error
	Remove(ctx context.Context) error
}

// AppliedVoucherRepository is the single-slot local store for the voucher
// currently selected for checkout. At most one voucher is applied at a
// time; Save overwrites any previous entry.
type AppliedVoucherRepository interface {
	Save(ctx context.Context, v *voucher.Voucher) error
	Clear(ctx context.Context) error
	Find(ctx context.Context) (*voucher.Voucher, error)
}

// OrderGateway submits assembled placements to the backend.
type OrderGateway interface {
	Place(ctx context.Context, p *order.Placement, idempotencyKey uuid.UUID) (*shared.OrderConfirmation, error)
}
