//go:build unit

package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytesme-checkout/internal/domain/order"
	"bytesme-checkout/internal/domain/voucher"
	"bytesme-checkout/internal/infra/api"
)

func TestNewPlaceOrderBody(t *testing.T) {
	t.Run("voucher_code key is absent without a voucher", func(t *testing.T) {
		p, err := order.NewPlacement(7, "cod", nil, []int64{42})
		require.NoError(t, err)

		data, err := json.Marshal(api.NewPlaceOrderBody(p))
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))

		_, present := raw["voucher_code"]
		assert.False(t, present)
		assert.Equal(t, "42", raw["selected_item_ids"])
		assert.Equal(t, float64(7), raw["user_address_id"])
		assert.Equal(t, "cod", raw["payment_method_id"])
	})

	t.Run("carries the applied voucher's code", func(t *testing.T) {
		expiry := fixedExpiry()
		v, err := voucher.NewVoucher("voucher-1", "BYTESME10", voucher.TypePercentage, 10, "10% off", nil, nil, false, expiry)
		require.NoError(t, err)

		p, err := order.NewPlacement(7, "momo", v, []int64{1, 2, 3})
		require.NoError(t, err)

		data, err := json.Marshal(api.NewPlaceOrderBody(p))
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))

		assert.Equal(t, "BYTESME10", raw["voucher_code"])
		assert.Equal(t, "1,2,3", raw["selected_item_ids"])
	})
}
