//go:build unit || e2e

package builder

import (
	"time"

	reqdto "experience-booking/internal/handler/dto/request"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
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

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ExperienceID:   uuid.New(),
		SlotID:         uuid.New(),
		UserName:       "Ana Martins",
		UserEmail:      "ana@example.com",
		UserPhone:      "+351 912 345 678",
		NumPeople:      2,
		DiscountAmount: 0,
		TotalPrice:     90,
	}
}

func (b *BookingBuilder) WithSlotID(id uuid.UUID) *BookingBuilder {
	b.SlotID = id
	return b
}

func (b *BookingBuilder) WithExperienceID(id uuid.UUID) *BookingBuilder {
	b.ExperienceID = id
	return b
}

func (b *BookingBuilder) WithPromo(code string, discount, total float64) *BookingBuilder {
	b.PromoCode = &code
	b.DiscountAmount = discount
	b.TotalPrice = total
	return b
}

func (b *BookingBuilder) WithNumPeople(n int32) *BookingBuilder {
	b.NumPeople = n
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID:   b.ExperienceID,
		SlotID:         b.SlotID,
		UserName:       b.UserName,
		UserEmail:      b.UserEmail,
		UserPhone:      b.UserPhone,
		NumPeople:      b.NumPeople,
		PromoCode:      b.PromoCode,
		DiscountAmount: b.DiscountAmount,
		TotalPrice:     b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	var params commands.CreateBookingParams
	_ = copier.Copy(&params, b)
	return params
}

// BuildView produces the row the store would hand back for these params.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := &queries.BookingView{
		ID:        uuid.New(),
		Status:    "confirmed",
		CreatedAt: time.Now(),
	}
	_ = copier.Copy(view, b)
	return view
}
