//go:build unit || e2e

package builder

import (
	"time"

	"experience-booking/internal/domain/promo"
	reqdto "experience-booking/internal/handler/dto/request"
	"experience-booking/internal/usecase/queries"
)

type PromoBuilder struct {
	Code          string
	DiscountType  string
	DiscountValue float64
	Active        bool
	CreatedAt     time.Time
}

func NewPromoBuilder() *PromoBuilder {
	return &PromoBuilder{
		Code:          "SAVE10",
		DiscountType:  promo.DiscountTypePercentage,
		DiscountValue: 10,
		Active:        true,
		CreatedAt:     time.Now(),
	}
}

func (b *PromoBuilder) WithCode(code string) *PromoBuilder {
	b.Code = code
	return b
}

func (b *PromoBuilder) AsFixed(value float64) *PromoBuilder {
	b.DiscountType = promo.DiscountTypeFixed
	b.DiscountValue = value
	return b
}

func (b *PromoBuilder) AsInactive() *PromoBuilder {
	b.Active = false
	return b
}

func (b *PromoBuilder) BuildView() *queries.PromoView {
	return &queries.PromoView{
		Code:          b.Code,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		Active:        b.Active,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *PromoBuilder) BuildValidateRequestDTO() reqdto.ValidatePromoCodeRequest {
	return reqdto.ValidatePromoCodeRequest{Code: b.Code}
}
