package voucher

import (
	"strconv"
	"strings"
)

// DisplayValue renders the voucher's benefit for checkout screens.
// Percentage vouchers become "N% off", cash vouchers a formatted currency
// amount, and gift vouchers show their description verbatim.
func (v *Voucher) DisplayValue() string {
	switch v.voucherType {
	case TypePercentage:
		return strconv.FormatFloat(v.value, 'f', -1, 64) + "% off"
	case TypeCash:
		return FormatVND(int64(v.value))
	case TypeGiftProduct:
		return v.description
	default:
		return ""
	}
}

// FormatVND renders an amount in Vietnamese đồng with dot-grouped
// thousands, e.g. 20000 -> "20.000₫".
func FormatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	formatted := b.String() + "₫"
	if negative {
		return "-" + formatted
	}
	return formatted
}
