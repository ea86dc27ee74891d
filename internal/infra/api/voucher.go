package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

type ListVouchersParams struct {
	SelectedItemIDs []int64
	Code            *string
	Offset          int32
	Limit           int32
}

// ListVouchers fetches the vouchers offered for the current selection.
// Passing a code narrows the list to that voucher.
func (c *Client) ListVouchers(ctx context.Context, p ListVouchersParams) ([]VoucherRow, error) {
	query := url.Values{}
	query.Set("selected_item_ids", joinIDs(p.SelectedItemIDs))
	query.Set("offset", strconv.FormatInt(int64(p.Offset), 10))
	query.Set("limit", strconv.FormatInt(int64(p.Limit), 10))
	if p.Code != nil {
		query.Set("voucher_code", *p.Code)
	}

	var rows []VoucherRow
	if err := c.get(ctx, "/voucher", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CheckVoucherApplicable asks the backend for the authoritative
// applicability verdict. The local evaluation mirrors it only for display.
func (c *Client) CheckVoucherApplicable(ctx context.Context, code string, selectedItemIDs []int64) (ApplicabilityRow, error) {
	query := url.Values{}
	query.Set("voucher_code", code)
	query.Set("selected_item_ids", joinIDs(selectedItemIDs))

	var row ApplicabilityRow
	if err := c.get(ctx, "/voucher/is-applicable", query, &row); err != nil {
		return ApplicabilityRow{}, err
	}
	return row, nil
}

// ListGiftProducts fetches the free items a gift voucher grants.
func (c *Client) ListGiftProducts(ctx context.Context, code string) ([]GiftProductRow, error) {
	query := url.Values{}
	query.Set("voucher_code", code)

	var rows []GiftProductRow
	if err := c.get(ctx, "/voucher/gift-products", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ApplyAccountVoucher(ctx context.Context, code string) error {
	body := map[string]string{"code": code}
	return c.post(ctx, "/user/vouchers/apply", nil, body, nil)
}

func (c *Client) RemoveAccountVoucher(ctx context.Context) error {
	return c.post(ctx, "/user/vouchers/remove", nil, nil, nil)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
