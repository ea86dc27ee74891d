package commands

import (
	"context"
	"log/slog"

	"bytesme-checkout/internal/domain/cart"
	"bytesme-checkout/internal/domain/order"
	"bytesme-checkout/internal/domain/voucher"
	"bytesme-checkout/internal/infra"
	"bytesme-checkout/internal/pkg/clock"
	"bytesme-checkout/internal/pkg/errs"
	"bytesme-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVoucherNotFound      = errs.New("voucher not found")
	ErrVoucherLookupFailed  = errs.New("voucher lookup failed")
	ErrInvalidVoucherData   = errs.New("invalid voucher data")
	ErrVoucherApplyFailed   = errs.New("voucher apply failed")
	ErrVoucherRemoveFailed  = errs.New("voucher remove failed")
	ErrVoucherRejected      = errs.New("voucher rejected at order placement")
	ErrOrderPlacementFailed = errs.New("order placement failed")
)

// ApplyVoucherResult is the outcome of an apply attempt. Inapplicability is
// a normal result carrying the failed rule's reason code, not an error.
type ApplyVoucherResult struct {
	Applied  bool
	Reason   voucher.Reason
	Voucher  *shared.VoucherSnapshot
	Discount int64
}

type PlaceOrderParams struct {
	AddressID       int64
	PaymentMethodID string
	Cart            *cart.Cart
}

type PlaceOrderResult struct {
	Confirmation *shared.OrderConfirmation
	// VoucherCode is the code submitted with the order, if any.
	VoucherCode *string
}

type CheckoutCommands interface {
	ApplyVoucher(ctx context.Context, code string, checkoutCart *cart.Cart, firstOrder bool) (*ApplyVoucherResult, error)
	RemoveVoucher(ctx context.Context) error
	AppliedVoucher(ctx context.Context) (*voucher.Voucher, error)
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*PlaceOrderResult, error)
}

type checkoutCommandsImpl struct {
	vouchers VoucherFinder
	account  VoucherAccountGateway
	applied  AppliedVoucherRepository
	orders   OrderGateway
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckoutCommands(
	vouchers VoucherFinder,
	account VoucherAccountGateway,
	applied AppliedVoucherRepository,
	orders OrderGateway,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		vouchers: vouchers,
		account:  account,
		applied:  applied,
		orders:   orders,
		clock:    clk,
		logger:   logger,
	}
}

func (c *checkoutCommandsImpl) ApplyVoucher(
	ctx context.Context,
	code string,
	checkoutCart *cart.Cart,
	firstOrder bool,
) (*ApplyVoucherResult, error) {
	normalized, err := voucher.NewCode(code)
	if err != nil {
		return nil, err
	}

	snap, err := c.vouchers.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, errs.Mark(err, ErrVoucherLookupFailed)
	}

	entity, err := snap.ToEntity()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVoucherData)
	}

	eval := voucher.Evaluate(entity, checkoutCart.Subtotal(), firstOrder, c.clock.Now())
	if !eval.Applicable {
		return &ApplyVoucherResult{Reason: eval.Reason, Voucher: snap}, nil
	}

	// The local verdict only saves a round trip; the server remains
	// authoritative and may know about rules this client does not.
	serverOK, serverReason, err := c.vouchers.CheckApplicable(ctx, normalized.String(), checkoutCart.SelectedItemIDs())
	if err != nil {
		return nil, errs.Mark(err, ErrVoucherLookupFailed)
	}
	if !serverOK {
		return &ApplyVoucherResult{Reason: voucher.Reason(serverReason), Voucher: snap}, nil
	}

	if err := c.account.Apply(ctx, normalized.String()); err != nil {
		return nil, errs.Mark(err, ErrVoucherApplyFailed)
	}

	if err := c.applied.Save(ctx, entity); err != nil {
		// Losing the locally remembered selection is non-fatal; checkout
		// can proceed and the account-side state is already in place.
		c.logger.Warn("failed to persist applied voucher", "code", normalized.String(), "error", err)
	}

	return &ApplyVoucherResult{
		Applied:  true,
		Voucher:  snap,
		Discount: eval.Discount,
	}, nil
}

func (c *checkoutCommandsImpl) RemoveVoucher(ctx context.Context) error {
	if err := c.account.Remove(ctx); err != nil {
		return errs.Mark(err, ErrVoucherRemoveFailed)
	}

	if err := c.applied.Clear(ctx); err != nil {
		c.logger.Warn("failed to clear applied voucher slot", "error", err)
	}
	return nil
}

func (c *checkoutCommandsImpl) AppliedVoucher(ctx context.Context) (*voucher.Voucher, error) {
	applied, err := c.applied.Find(ctx)
	if err != nil {
		// Lenient read: a broken local store must not block checkout.
		c.logger.Warn("failed to read applied voucher slot", "error", err)
		return nil, nil
	}
	return applied, nil
}

func (c *checkoutCommandsImpl) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*PlaceOrderResult, error) {
	applied, err := c.applied.Find(ctx)
	if err != nil {
		c.logger.Warn("failed to read applied voucher slot, placing order without voucher", "error", err)
		applied = nil
	}

	placement, err := order.NewPlacement(
		params.AddressID,
		params.PaymentMethodID,
		applied,
		params.Cart.SelectedItemIDs(),
	)
	if err != nil {
		return nil, err
	}

	confirmation, err := c.orders.Place(ctx, placement, uuid.New())
	if err != nil {
		if infra.IsKind(err, infra.KindVoucherRejected) {
			// The server is the final authority: the voucher went stale
			// between selection and submission, so the local slot must be
			// reconciled before the user re-selects.
			if clearErr := c.applied.Clear(ctx); clearErr != nil {
				c.logger.Warn("failed to clear rejected voucher slot", "error", clearErr)
			}
			return nil, errs.Mark(err, ErrVoucherRejected)
		}
		return nil, errs.Mark(err, ErrOrderPlacementFailed)
	}

	result := &PlaceOrderResult{Confirmation: confirmation}
	if code := placement.VoucherCode(); code != nil {
		s := code.String()
		result.VoucherCode = &s
	}
	return result, nil
}
