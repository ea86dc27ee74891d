package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"bytesme-checkout/internal/domain/voucher"
	"bytesme-checkout/internal/infra"
	"bytesme-checkout/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// AppliedVoucherRepository persists the single applied-voucher slot in the
// device-local key-value store. The full voucher is serialized, not just
// the code, so checkout can render and evaluate it without a network call.
type AppliedVoucherRepository struct {
	rdb    *redis.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

func NewAppliedVoucherRepository(rdb *redis.Client, cfg config.StoreConfig, logger *slog.Logger) *AppliedVoucherRepository {
	return &AppliedVoucherRepository{
		rdb:    rdb,
		key:    cfg.AppliedVoucherKey,
		ttl:    cfg.AppliedVoucherTTL,
		logger: logger,
	}
}

// storedVoucher is the serialized slot format, kept in the backend's wire
// vocabulary so entries survive client upgrades.
type storedVoucher struct {
	VoucherID          string    `json:"voucher_id"`
	Code               string    `json:"code"`
	VoucherType        string    `json:"voucher_type"`
	VoucherValue       float64   `json:"voucher_value"`
	VoucherDescription string    `json:"voucher_description"`
	MinOrderValue      *int64    `json:"min_order_value,omitempty"`
	MaxDiscount        *int64    `json:"max_discount,omitempty"`
	IsFirstOrderOnly   bool      `json:"is_first_order_only"`
	ExpiryDate         time.Time `json:"expiry_date"`
}

// Save overwrites the slot with v. At most one voucher is applied at any
// time; there is no stacking.
func (r *AppliedVoucherRepository) Save(ctx context.Context, v *voucher.Voucher) error {
	entry := storedVoucher{
		VoucherID:          v.ID(),
		Code:               v.Code().String(),
		VoucherType:        v.Type().String(),
		VoucherValue:       v.Value(),
		VoucherDescription: v.Description(),
		MinOrderValue:      v.MinOrderValue(),
		MaxDiscount:        v.MaxDiscount(),
		IsFirstOrderOnly:   v.FirstOrderOnly(),
		ExpiryDate:         v.ExpiresAt(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return infra.WrapGatewayErr(r.logger, infra.KindStoreFailure, "failed to serialize applied voucher", err)
	}

	if err := r.rdb.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return infra.WrapGatewayErr(r.logger, infra.KindStoreFailure, "failed to write applied voucher slot", err)
	}
	return nil
}

// Clear empties the slot. Clearing an already empty slot succeeds.
func (r *AppliedVoucherRepository) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return infra.WrapGatewayErr(r.logger, infra.KindStoreFailure, "failed to clear applied voucher slot", err)
	}
	return nil
}

// Find returns the applied voucher, or nil when the slot is empty. A
// corrupt entry is logged and reported as absent rather than failing the
// read; the decode error stays internal to preserve the lenient contract.
func (r *AppliedVoucherRepository) Find(ctx context.Context) (*voucher.Voucher, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapGatewayErr(r.logger, infra.KindStoreFailure, "failed to read applied voucher slot", err)
	}

	entity, err := decodeStoredVoucher(data)
	if err != nil {
		r.logger.Warn("corrupt applied voucher entry, treating as absent", "key", r.key, "error", err)
		return nil, nil
	}
	return entity, nil
}

func decodeStoredVoucher(data []byte) (*voucher.Voucher, error) {
	var entry storedVoucher
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}

	return voucher.NewVoucher(
		entry.VoucherID,
		entry.Code,
		voucher.Type(entry.VoucherType),
		entry.VoucherValue,
		entry.VoucherDescription,
		entry.MinOrderValue,
		entry.MaxDiscount,
		entry.IsFirstOrderOnly,
		entry.ExpiryDate,
	)
}
