package promo

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPromoCode    = errors.New("invalid promo code format")
	ErrInvalidDiscountType = errors.New("discount type must be percentage or fixed")
	ErrNegativeDiscount    = errors.New("discount value cannot be negative")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is an uppercase promo code. Validation happens against the normalized
// form, so "save10" and "SAVE10" reference the same row.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !promoCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidPromoCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Discount struct {
	discountType string
	value        float64
}

func NewDiscount(discountType string, value float64) (Discount, error) {
	if discountType != DiscountTypePercentage && discountType != DiscountTypeFixed {
		return Discount{}, ErrInvalidDiscountType
	}
	if value < 0 {
		return Discount{}, ErrNegativeDiscount
	}
	return Discount{discountType: discountType, value: value}, nil
}

func (d Discount) IsPercentage() bool {
	return d.discountType == DiscountTypePercentage
}

func (d Discount) Type() string {
	return d.discountType
}

func (d Discount) Value() float64 {
	return d.value
}

// Amount computes the discount taken off the given price.
// A fixed discount is applied as-is even when it exceeds the price.
func (d Discount) Amount(price float64) float64 {
	if d.IsPercentage() {
		return price * d.value / 100
	}
	return d.value
}

// Total is the price after discount. An oversized fixed discount yields a
// negative total; clamping is intentionally not done here, the storefront
// displays whatever the checkout computed.
func (d Discount) Total(price float64) float64 {
	return price - d.Amount(price)
}
