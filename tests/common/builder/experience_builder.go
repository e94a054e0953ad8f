//go:build unit || e2e

package builder

import (
	"time"

	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExperienceBuilder struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Location        string
	Duration        string
	ImageURL        string
	Price           float64
	Rating          float64
	TotalReviews    int32
	MaxSlotsPerDate int32
	Highlights      []string
	CreatedAt       time.Time
}

func NewExperienceBuilder() *ExperienceBuilder {
	return &ExperienceBuilder{
		ID:              uuid.New(),
		Title:           "Old Town Food Walk",
		Description:     "Graze through the oldest quarter of the city with a local guide.",
		Location:        "Lisbon",
		Duration:        "3 hours",
		ImageURL:        "https://images.example.com/experiences/food-walk.jpg",
		Price:           45.0,
		Rating:          4.8,
		TotalReviews:    132,
		MaxSlotsPerDate: 12,
		Highlights:      []string{"Six tasting stops", "Local guide"},
		CreatedAt:       time.Now(),
	}
}

func (b *ExperienceBuilder) WithID(id uuid.UUID) *ExperienceBuilder {
	b.ID = id
	return b
}

func (b *ExperienceBuilder) WithTitle(title string) *ExperienceBuilder {
	b.Title = title
	return b
}

func (b *ExperienceBuilder) WithPrice(price float64) *ExperienceBuilder {
	b.Price = price
	return b
}

func (b *ExperienceBuilder) WithRating(rating float64) *ExperienceBuilder {
	b.Rating = rating
	return b
}

func (b *ExperienceBuilder) BuildView() *queries.ExperienceView {
	return &queries.ExperienceView{
		ID:              b.ID,
		Title:           b.Title,
		Description:     b.Description,
		Location:        b.Location,
		Duration:        b.Duration,
		ImageURL:        b.ImageURL,
		Price:           b.Price,
		Rating:          b.Rating,
		TotalReviews:    b.TotalReviews,
		MaxSlotsPerDate: b.MaxSlotsPerDate,
		Highlights:      b.Highlights,
		CreatedAt:       b.CreatedAt,
	}
}

type SlotBuilder struct {
	ID             uuid.UUID
	ExperienceID   uuid.UUID
	Date           string
	Time           string
	TotalSlots     int32
	AvailableSlots int32
	CreatedAt      time.Time
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:             uuid.New(),
		ExperienceID:   uuid.New(),
		Date:           time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:           "10:00",
		TotalSlots:     12,
		AvailableSlots: 12,
		CreatedAt:      time.Now(),
	}
}

func (b *SlotBuilder) WithExperienceID(id uuid.UUID) *SlotBuilder {
	b.ExperienceID = id
	return b
}

func (b *SlotBuilder) WithDate(date string) *SlotBuilder {
	b.Date = date
	return b
}

func (b *SlotBuilder) WithAvailableSlots(n int32) *SlotBuilder {
	b.AvailableSlots = n
	return b
}

func (b *SlotBuilder) AsSoldOut() *SlotBuilder {
	b.AvailableSlots = 0
	return b
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:             b.ID,
		ExperienceID:   b.ExperienceID,
		Date:           b.Date,
		Time:           b.Time,
		TotalSlots:     b.TotalSlots,
		AvailableSlots: b.AvailableSlots,
		CreatedAt:      b.CreatedAt,
	}
}
