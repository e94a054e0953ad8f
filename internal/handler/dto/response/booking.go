package response

import (
	"time"

	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	ExperienceID   uuid.UUID `json:"experience_id"`
	SlotID         uuid.UUID `json:"slot_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email"`
	UserPhone      string    `json:"user_phone"`
	NumPeople      int32     `json:"num_people"`
	PromoCode      *string   `json:"promo_code"`
	DiscountAmount float64   `json:"discount_amount"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             view.ID,
		ExperienceID:   view.ExperienceID,
		SlotID:         view.SlotID,
		UserName:       view.UserName,
		UserEmail:      view.UserEmail,
		UserPhone:      view.UserPhone,
		NumPeople:      view.NumPeople,
		PromoCode:      view.PromoCode,
		DiscountAmount: view.DiscountAmount,
		TotalPrice:     view.TotalPrice,
		Status:         view.Status,
		CreatedAt:      view.CreatedAt,
	}
}
