package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Field names and JSON tags follow the
// storage rows one to one, the API returns rows as-is.

type ExperienceView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Duration        string    `json:"duration"`
	ImageURL        string    `json:"image_url"`
	Price           float64   `json:"price"`
	Rating          float64   `json:"rating"`
	TotalReviews    int32     `json:"total_reviews"`
	MaxSlotsPerDate int32     `json:"max_slots_per_date"`
	Highlights      []string  `json:"highlights,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type SlotView struct {
	ID             uuid.UUID `json:"id"`
	ExperienceID   uuid.UUID `json:"experience_id"`
	Date           string    `json:"date"` // YYYY-MM-DD
	Time           string    `json:"time"`
	TotalSlots     int32     `json:"total_slots"`
	AvailableSlots int32     `json:"available_slots"`
	CreatedAt      time.Time `json:"created_at"`
}

type PromoView struct {
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingView struct {
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
