package repository

import (
	"context"
	"errors"
	"log/slog"

	"bytesme-checkout/internal/domain/order"
	"bytesme-checkout/internal/infra"
	"bytesme-checkout/internal/infra/api"
	"bytesme-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// OrderRepository submits placements to the backend order endpoint.
type OrderRepository struct {
	client *api.Client
	logger *slog.Logger
}

func NewOrderRepository(client *api.Client, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{
		client: client,
		logger: logger,
	}
}

func (r *OrderRepository) Place(ctx context.Context, p *order.Placement, idempotencyKey uuid.UUID) (*shared.OrderConfirmation, error) {
	row, err := r.client.PlaceOrder(ctx, p, idempotencyKey)
	if err != nil {
		return nil, r.wrapAPIErr(err)
	}

	return &shared.OrderConfirmation{
		OrderID:    row.OrderID,
		TotalPrice: row.TotalPrice,
		Status:     row.Status,
		PlacedAt:   row.CreatedAt,
	}, nil
}

func (r *OrderRepository) wrapAPIErr(err error) error {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.IsVoucherFailure():
		// Validation rejection naming the voucher: the client's applied
		// state went stale and the caller must reconcile it.
		return infra.WrapGatewayErr(r.logger, infra.KindVoucherRejected, "backend rejected the order voucher", err)
	case errors.As(err, &apiErr) && apiErr.IsUnauthorized():
		return infra.WrapGatewayErr(r.logger, infra.KindUnauthorized, "order placement unauthorized", err)
	case errors.Is(err, api.ErrMalformedResponse):
		return infra.WrapGatewayErr(r.logger, infra.KindDecodeFailure, "failed to decode order confirmation", err)
	default:
		return infra.WrapGatewayErr(r.logger, infra.KindUpstreamFailure, "failed to place order", err)
	}
}
