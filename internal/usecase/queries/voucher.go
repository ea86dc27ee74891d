package queries

import (
	"context"

	"bytesme-checkout/internal/domain/cart"
	"bytesme-checkout/internal/domain/voucher"
	"bytesme-checkout/internal/pkg/clock"
	"bytesme-checkout/internal/pkg/errs"
	"bytesme-checkout/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var (
	ErrVoucherLookupFailed = errs.New("voucher lookup failed")
	ErrInvalidVoucherData  = errs.New("invalid voucher data")
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/queries/voucher_mock.go -package=queriesmock

type VoucherReader interface {
	List(ctx context.Context, selectedItemIDs []int64, code *string, offset, limit int32) ([]*shared.VoucherSnapshot, error)
	GiftProducts(ctx context.Context, code string) ([]*shared.GiftProductSnapshot, error)
}

type VoucherQueries interface {
	List(ctx context.Context, selectedItemIDs []int64, offset, limit int32) ([]*VoucherView, error)
	GiftProducts(ctx context.Context, code string) ([]*GiftProductView, error)
	Quote(checkoutCart *cart.Cart, applied *voucher.Voucher, firstOrder bool) *CheckoutQuote
}

type voucherQueriesImpl struct {
	reader VoucherReader
	clock  clock.Clock
}

func NewVoucherQueries(reader VoucherReader, clk clock.Clock) VoucherQueries {
	return &voucherQueriesImpl{
		reader: reader,
		clock:  clk,
	}
}

func (q *voucherQueriesImpl) List(ctx context.Context, selectedItemIDs []int64, offset, limit int32) ([]*VoucherView, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	snapshots, err := q.reader.List(ctx, selectedItemIDs, nil, offset, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrVoucherLookupFailed)
	}

	views := make([]*VoucherView, 0, len(snapshots))
	for _, snap := range snapshots {
		view, err := toVoucherView(snap)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidVoucherData)
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *voucherQueriesImpl) GiftProducts(ctx context.Context, code string) ([]*GiftProductView, error) {
	normalized, err := voucher.NewCode(code)
	if err != nil {
		return nil, err
	}

	snapshots, err := q.reader.GiftProducts(ctx, normalized.String())
	if err != nil {
		return nil, errs.Mark(err, ErrVoucherLookupFailed)
	}

	views := make([]*GiftProductView, 0, len(snapshots))
	for _, snap := range snapshots {
		var view GiftProductView
		if err := copier.Copy(&view, snap); err != nil {
			return nil, errs.Mark(err, ErrInvalidVoucherData)
		}
		views = append(views, &view)
	}
	return views, nil
}

func (q *voucherQueriesImpl) Quote(checkoutCart *cart.Cart, applied *voucher.Voucher, firstOrder bool) *CheckoutQuote {
	subtotal := checkoutCart.Subtotal()
	eval := voucher.Evaluate(applied, subtotal, firstOrder, q.clock.Now())

	quote := &CheckoutQuote{
		Subtotal:   subtotal,
		Discount:   eval.Discount,
		Total:      voucher.PayableTotal(subtotal, eval.Discount),
		Applicable: eval.Applicable,
		Reason:     eval.Reason.String(),
	}

	if applied != nil {
		code := applied.Code().String()
		display := applied.DisplayValue()
		quote.VoucherCode = &code
		quote.VoucherDisplay = &display
	}
	return quote
}

func toVoucherView(snap *shared.VoucherSnapshot) (*VoucherView, error) {
	entity, err := snap.ToEntity()
	if err != nil {
		return nil, err
	}

	var view VoucherView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, err
	}
	view.DisplayValue = entity.DisplayValue()
	return &view, nil
}
