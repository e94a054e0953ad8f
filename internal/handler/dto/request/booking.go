package request

import (
	"strings"

	"experience-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest mirrors the checkout payload. Discount and total are
// client-computed and stored as sent; see the booking command for what is
// (and is not) validated server-side.
type CreateBookingRequest struct {
	ExperienceID   uuid.UUID `json:"experience_id" binding:"required"`
	SlotID         uuid.UUID `json:"slot_id" binding:"required"`
	UserName       string    `json:"user_name" binding:"required"`
	UserEmail      string    `json:"user_email" binding:"required"`
	UserPhone      string    `json:"user_phone"`
	NumPeople      int32     `json:"num_people"`
	PromoCode      *string   `json:"promo_code"`
	DiscountAmount float64   `json:"discount_amount"`
	TotalPrice     float64   `json:"total_price"`
}

func (r CreateBookingRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ExperienceID:   r.ExperienceID,
		SlotID:         r.SlotID,
		UserName:       r.UserName,
		UserEmail:      r.UserEmail,
		UserPhone:      r.UserPhone,
		NumPeople:      r.NumPeople,
		PromoCode:      r.GetPromoCode(),
		DiscountAmount: r.DiscountAmount,
		TotalPrice:     r.TotalPrice,
	}
}
