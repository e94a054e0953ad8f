package response

import (
	"time"

	"experience-booking/internal/usecase/queries"
)

type PromoCodeResponse struct {
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPromoView(view *queries.PromoView) *PromoCodeResponse {
	return &PromoCodeResponse{
		Code:          view.Code,
		DiscountType:  view.DiscountType,
		DiscountValue: view.DiscountValue,
		Active:        view.Active,
		CreatedAt:     view.CreatedAt,
	}
}
