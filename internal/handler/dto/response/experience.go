package response

import (
	"time"

	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Responses keep the storage row shape (snake_case), the storefront consumes
// rows as-is.

type ExperienceResponse struct {
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

type SlotResponse struct {
	ID             uuid.UUID `json:"id"`
	ExperienceID   uuid.UUID `json:"experience_id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	TotalSlots     int32     `json:"total_slots"`
	AvailableSlots int32     `json:"available_slots"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromExperienceView(view *queries.ExperienceView) *ExperienceResponse {
	return &ExperienceResponse{
		ID:              view.ID,
		Title:           view.Title,
		Description:     view.Description,
		Location:        view.Location,
		Duration:        view.Duration,
		ImageURL:        view.ImageURL,
		Price:           view.Price,
		Rating:          view.Rating,
		TotalReviews:    view.TotalReviews,
		MaxSlotsPerDate: view.MaxSlotsPerDate,
		Highlights:      view.Highlights,
		CreatedAt:       view.CreatedAt,
	}
}

func FromSlotView(view *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:             view.ID,
		ExperienceID:   view.ExperienceID,
		Date:           view.Date,
		Time:           view.Time,
		TotalSlots:     view.TotalSlots,
		AvailableSlots: view.AvailableSlots,
		CreatedAt:      view.CreatedAt,
	}
}
