package readstore

import (
	"context"
	"errors"
	"log/slog"

	"bytesme-checkout/internal/infra"
	"bytesme-checkout/internal/infra/api"
	"bytesme-checkout/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// VoucherReadStore serves voucher lookups from the backend catalog
// endpoints and projects the wire rows into snapshots.
type VoucherReadStore struct {
	client *api.Client
	logger *slog.Logger
}

func NewVoucherReadStore(client *api.Client, logger *slog.Logger) *VoucherReadStore {
	return &VoucherReadStore{
		client: client,
		logger: logger,
	}
}

func (r *VoucherReadStore) List(ctx context.Context, selectedItemIDs []int64, code *string, offset, limit int32) ([]*shared.VoucherSnapshot, error) {
	rows, err := r.client.ListVouchers(ctx, api.ListVouchersParams{
		SelectedItemIDs: selectedItemIDs,
		Code:            code,
		Offset:          offset,
		Limit:           limit,
	})
	if err != nil {
		return nil, r.wrapAPIErr("failed to list vouchers", err)
	}

	snapshots := make([]*shared.VoucherSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, toVoucherSnapshotFromRow(row))
	}
	return snapshots, nil
}

func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error) {
	rows, err := r.client.ListVouchers(ctx, api.ListVouchersParams{
		Code:  &code,
		Limit: 1,
	})
	if err != nil {
		return nil, r.wrapAPIErr("failed to find voucher by code", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(r.logger, infra.KindNotFound, "voucher not found", nil)
	}

	return toVoucherSnapshotFromRow(rows[0]), nil
}

func (r *VoucherReadStore) CheckApplicable(ctx context.Context, code string, selectedItemIDs []int64) (bool, string, error) {
	row, err := r.client.CheckVoucherApplicable(ctx, code, selectedItemIDs)
	if err != nil {
		return false, "", r.wrapAPIErr("failed to check voucher applicability", err)
	}
	return row.IsApplicable, row.ReasonCode, nil
}

func (r *VoucherReadStore) GiftProducts(ctx context.Context, code string) ([]*shared.GiftProductSnapshot, error) {
	rows, err := r.client.ListGiftProducts(ctx, code)
	if err != nil {
		return nil, r.wrapAPIErr("failed to list gift products", err)
	}

	snapshots := make([]*shared.GiftProductSnapshot, 0, len(rows))
	for _, row := range rows {
		var snap shared.GiftProductSnapshot
		if err := copier.Copy(&snap, &row); err != nil {
			return nil, infra.WrapGatewayErr(r.logger, infra.KindDecodeFailure, "failed to convert gift product row", err)
		}
		snapshots = append(snapshots, &snap)
	}
	return snapshots, nil
}

func (r *VoucherReadStore) wrapAPIErr(msg string, err error) error {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.IsNotFound():
		return infra.WrapGatewayErr(r.logger, infra.KindNotFound, msg, err)
	case errors.As(err, &apiErr) && apiErr.IsUnauthorized():
		return infra.WrapGatewayErr(r.logger, infra.KindUnauthorized, msg, err)
	case errors.Is(err, api.ErrMalformedResponse):
		return infra.WrapGatewayErr(r.logger, infra.KindDecodeFailure, msg, err)
	default:
		return infra.WrapGatewayErr(r.logger, infra.KindUpstreamFailure, msg, err)
	}
}

func toVoucherSnapshotFromRow(row api.VoucherRow) *shared.VoucherSnapshot {
	return &shared.VoucherSnapshot{
		ID:             row.VoucherID,
		Code:           row.Code,
		Type:           row.VoucherType,
		Value:          row.VoucherValue.Float64(),
		Description:    row.VoucherDescription,
		MinOrderValue:  row.MinOrderValue,
		MaxDiscount:    row.MaxDiscount,
		FirstOrderOnly: row.IsFirstOrderOnly,
		ExpiresAt:      row.ExpiryDate,
	}
}
