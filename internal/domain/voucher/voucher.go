package voucher

import (
	"errors"
	"time"
)

var (
	ErrUnknownType       = errors.New("unknown voucher type")
	ErrInvalidPercentage = errors.New("percentage value must be between 0 and 100")
	ErrNegativeValue     = errors.New("voucher value cannot be negative")
	ErrNegativeThreshold = errors.New("minimum order value cannot be negative")
	ErrNegativeCap       = errors.New("maximum discount cannot be negative")
)

// Type tags the discount variant a voucher carries. Exactly one variant is
// active per voucher; fields irrelevant to the active variant are ignored.
type Type string

const (
	TypePercentage  Type = "percentage"
	TypeCash        Type = "cash"
	TypeGiftProduct Type = "gift_product"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePercentage, TypeCash, TypeGiftProduct:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

type Voucher struct {
	id             string
	code           Code
	voucherType    Type
	value          float64
	description    string
	minOrderValue  *int64
	maxDiscount    *int64
	firstOrderOnly bool
	expiresAt      time.Time
}

func NewVoucher(
	id string,
	code string,
	voucherType Type,
	value float64,
	description string,
	minOrderValue *int64,
	maxDiscount *int64,
	firstOrderOnly bool,
	expiresAt time.Time,
) (*Voucher, error) {
	voucherCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	if !voucherType.IsValid() {
		return nil, ErrUnknownType
	}

	switch voucherType {
	case TypePercentage:
		if value < 0 || value > 100 {
			return nil, ErrInvalidPercentage
		}
	case TypeCash:
		if value < 0 {
			return nil, ErrNegativeValue
		}
	case TypeGiftProduct:
		// The reward is a free item described by the description text;
		// the numeric value carries no meaning and is not validated.
	}

	if minOrderValue != nil && *minOrderValue < 0 {
		return nil, ErrNegativeThreshold
	}
	if maxDiscount != nil && *maxDiscount < 0 {
		return nil, ErrNegativeCap
	}

	return &Voucher{
		id:             id,
		code:           voucherCode,
		voucherType:    voucherType,
		value:          value,
		description:    description,
		minOrderValue:  minOrderValue,
		maxDiscount:    maxDiscount,
		firstOrderOnly: firstOrderOnly,
		expiresAt:      expiresAt,
	}, nil
}

// HasExpired reports whether the voucher is unusable at t. A voucher is
// inapplicable on and after its expiry instant.
func (v *Voucher) HasExpired(t time.Time) bool {
	return !t.Before(v.expiresAt)
}

func (v *Voucher) ID() string            { return v.id }
func (v *Voucher) Code() Code            { return v.code }
func (v *Voucher) Type() Type            { return v.voucherType }
func (v *Voucher) Value() float64        { return v.value }
func (v *Voucher) Description() string   { return v.description }
func (v *Voucher) MinOrderValue() *int64 { return v.minOrderValue }
func (v *Voucher) MaxDiscount() *int64   { return v.maxDiscount }
func (v *Voucher) FirstOrderOnly() bool  { return v.firstOrderOnly }
func (v *Voucher) ExpiresAt() time.Time  { return v.expiresAt }
