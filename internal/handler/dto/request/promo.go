package request

type ValidatePromoCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
