package repository

import (
	"context"
	"errors"
	"log/slog"

	"bytesme-checkout/internal/infra"
	"bytesme-checkout/internal/infra/api"
)

// AccountVoucherRepository mirrors voucher selection onto the user account
// through the backend's apply/remove endpoints.
type AccountVoucherRepository struct {
	client *api.Client
	logger *slog.Logger
}

func NewAccountVoucherRepository(client *api.Client, logger *slog.Logger) *AccountVoucherRepository {
	return &AccountVoucherRepository{
		client: client,
		logger: logger,
	}
}

func (r *AccountVoucherRepository) Apply(ctx context.Context, code string) error {
	if err := r.client.ApplyAccountVoucher(ctx, code); err != nil {
		return r.wrapAPIErr("failed to apply voucher on account", err)
	}
	return nil
}

func (r *AccountVoucherRepository) Remove(ctx context.Context) error {
	if err := r.client.RemoveAccountVoucher(ctx); err != nil {
		return r.wrapAPIErr("failed to remove voucher from account", err)
	}
	return nil
}

func (r *AccountVoucherRepository) wrapAPIErr(msg string, err error) error {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.IsNotFound():
		return infra.WrapGatewayErr(r.logger, infra.KindNotFound, msg, err)
	case errors.As(err, &apiErr) && apiErr.IsUnauthorized():
		return infra.WrapGatewayErr(r.logger, infra.KindUnauthorized, msg, err)
	default:
		return infra.WrapGatewayErr(r.logger, infra.KindUpstreamFailure, msg, err)
	}
}
