//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"bytesme-checkout/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayValue(t *testing.T) {
	expiry := time.Now().Add(time.Hour)

	testCases := []struct {
		name        string
		voucherType voucher.Type
		value       float64
		description string
		expected    string
	}{
		{name: "whole percentage", voucherType: voucher.TypePercentage, value: 10, expected: "10% off"},
		{name: "fractional percentage", voucherType: voucher.TypePercentage, value: 12.5, expected: "12.5% off"},
		{name: "cash amount", voucherType: voucher.TypeCash, value: 20000, expected: "20.000₫"},
		{name: "gift product uses description verbatim", voucherType: voucher.TypeGiftProduct, description: "Free croissant with any drink", expected: "Free croissant with any drink"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := voucher.NewVoucher(
				"v-1", "TESTCODE", tc.voucherType, tc.value, tc.description,
				nil, nil, false, expiry,
			)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.DisplayValue())
		})
	}
}

func TestFormatVND(t *testing.T) {
	testCases := []struct {
		amount   int64
		expected string
	}{
		{0, "0₫"},
		{999, "999₫"},
		{1000, "1.000₫"},
		{20000, "20.000₫"},
		{600000, "600.000₫"},
		{1234567, "1.234.567₫"},
		{-50000, "-50.000₫"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, voucher.FormatVND(tc.amount))
	}
}
