package voucher

import "time"

// Reason identifies the first applicability rule a voucher failed.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonExpired           Reason = "expired"
	ReasonFirstOrderOnly    Reason = "firstOrderOnly"
	ReasonMinimumOrderValue Reason = "minimumOrderValue"
)

func (r Reason) String() string {
	return string(r)
}

type Evaluation struct {
	Applicable bool
	Reason     Reason
	Discount   int64
}

// Evaluate decides applicability and the discount amount for a voucher
// against a checkout subtotal. A nil voucher is the "no voucher selected"
// state: always applicable with zero discount, not an error.
//
// Rules run in a fixed order and the first failing rule wins:
// expiry, then the first-order restriction, then the minimum order value.
func Evaluate(v *Voucher, subtotal int64, firstOrder bool, now time.Time) Evaluation {
	if v == nil {
		return Evaluation{Applicable: true}
	}

	if v.HasExpired(now) {
		return Evaluation{Reason: ReasonExpired}
	}
	if v.firstOrderOnly && !firstOrder {
		return Evaluation{Reason: ReasonFirstOrderOnly}
	}
	if v.minOrderValue != nil && subtotal < *v.minOrderValue {
		return Evaluation{Reason: ReasonMinimumOrderValue}
	}

	return Evaluation{Applicable: true, Discount: v.discountFor(subtotal)}
}

func (v *Voucher) discountFor(subtotal int64) int64 {
	switch v.voucherType {
	case TypePercentage:
		discount := int64(float64(subtotal) * v.value / 100)
		if v.maxDiscount != nil && discount > *v.maxDiscount {
			discount = *v.maxDiscount
		}
		return discount
	case TypeCash:
		// Not clamped to the subtotal; PayableTotal floors the total at zero.
		return int64(v.value)
	case TypeGiftProduct:
		// The reward is a free item fulfilled server-side, so the monetary
		// discount is zero.
		return 0
	default:
		return 0
	}
}

// PayableTotal is the amount left to charge after a discount. A cash
// discount can exceed the subtotal, so the total is floored at zero.
func PayableTotal(subtotal, discount int64) int64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
