package commands

import (
	"context"
	"strings"

	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrBookingCreationFailed = errs.New("booking creation failed")

// CreateBookingParams carries the checkout payload as-is. Price and discount
// are trusted from the client, the server performs no revalidation of promo,
// price arithmetic or slot capacity before the insert.
type CreateBookingParams struct {
	ExperienceID   uuid.UUID
	SlotID         uuid.UUID
	UserName       string
	UserEmail      string
	UserPhone      string
	NumPeople      int32
	PromoCode      *string
	DiscountAmount float64
	TotalPrice     float64
}

type BookingRepository interface {
	// Create inserts one booking row and returns it with the store-assigned
	// id and timestamp.
	Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings BookingRepository
}

func NewBookingCommands(bookings BookingRepository) BookingCommands {
	return &bookingCommandsImpl{bookings: bookings}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	if params.NumPeople <= 0 {
		params.NumPeople = 1
	}
	params.PromoCode = normalizePromoCode(params.PromoCode)

	view, err := c.bookings.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingCreationFailed)
	}

	return view, nil
}

func normalizePromoCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(strings.ToUpper(*code))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
