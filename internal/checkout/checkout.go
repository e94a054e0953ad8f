// Package checkout carries the client-orchestrated booking flow: load an
// experience and its chosen slot, optionally validate a promo code, compute
// the discounted total locally, then submit the booking. The server trusts
// the computed price; this package is the single place the arithmetic lives
// on the client side.
package checkout

import (
	"context"
	"strings"

	"experience-booking/internal/domain/promo"
	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type State string

const (
	StateLoading      State = "loading"
	StateReady        State = "ready"
	StatePromoPending State = "promo_pending"
	StatePromoApplied State = "promo_applied"
	StateSubmitting   State = "submitting"
	StateConfirmed    State = "confirmed"
	StateFailed       State = "failed"
)

var (
	ErrSlotNotFound        = errs.New("slot not found for experience")
	ErrNotReady            = errs.New("checkout is not ready")
	ErrPromoCodeRequired   = errs.New("please enter a promo code")
	ErrPromoAlreadyApplied = errs.New("promo code already applied")
	ErrMissingFields       = errs.New("name, email and agreement are required")
)

type Form struct {
	Name      string
	Email     string
	PromoCode string
	Agreed    bool
}

// Quote is the order summary: base price, discount taken off and the final
// total. Total is not clamped, an oversized fixed discount goes negative.
type Quote struct {
	BasePrice float64
	Discount  float64
	Total     float64
}

type Checkout struct {
	api *APIClient

	state       State
	experience  *resdto.ExperienceResponse
	slot        *resdto.SlotResponse
	discount    *promo.Discount
	appliedCode string
	bookingID   uuid.UUID

	Form Form
}

func NewCheckout(api *APIClient) *Checkout {
	return &Checkout{
		api:   api,
		state: StateLoading,
	}
}

func (co *Checkout) State() State                           { return co.state }
func (co *Checkout) Experience() *resdto.ExperienceResponse { return co.experience }
func (co *Checkout) Slot() *resdto.SlotResponse             { return co.slot }
func (co *Checkout) BookingID() uuid.UUID                   { return co.bookingID }
func (co *Checkout) AppliedCode() string                    { return co.appliedCode }

// Load resolves the experience and the chosen slot. The slot comes out of the
// experience's slot list, there is no single-slot endpoint.
func (co *Checkout) Load(ctx context.Context, experienceID, slotID uuid.UUID) error {
	co.state = StateLoading

	experience, err := co.api.Experience(ctx, experienceID)
	if err != nil {
		co.state = StateFailed
		return err
	}

	slots, err := co.api.Slots(ctx, experienceID)
	if err != nil {
		co.state = StateFailed
		return err
	}

	slot, found := lo.Find(slots, func(s *resdto.SlotResponse) bool {
		return s.ID == slotID
	})
	if !found {
		co.state = StateFailed
		return ErrSlotNotFound
	}

	co.experience = experience
	co.slot = slot
	co.state = StateReady
	return nil
}

// ApplyPromo validates Form.PromoCode against the API. On success the code is
// locked in; on failure the checkout returns to Ready and the input stays
// editable.
func (co *Checkout) ApplyPromo(ctx context.Context) error {
	switch co.state {
	case StateReady:
	case StatePromoApplied:
		return ErrPromoAlreadyApplied
	default:
		return ErrNotReady
	}

	if strings.TrimSpace(co.Form.PromoCode) == "" {
		return ErrPromoCodeRequired
	}

	co.state = StatePromoPending
	view, err := co.api.ValidatePromo(ctx, co.Form.PromoCode)
	if err != nil {
		co.state = StateReady
		return err
	}

	discount, err := promo.NewDiscount(view.DiscountType, view.DiscountValue)
	if err != nil {
		co.state = StateReady
		return err
	}

	co.discount = &discount
	co.appliedCode = view.Code
	co.state = StatePromoApplied
	return nil
}

// GetQuote recomputes the order summary from the loaded experience and the
// applied discount, mirroring what the confirmation pane displays.
func (co *Checkout) GetQuote() Quote {
	if co.experience == nil {
		return Quote{}
	}

	base := co.experience.Price
	if co.discount == nil {
		return Quote{BasePrice: base, Total: base}
	}

	return Quote{
		BasePrice: base,
		Discount:  co.discount.Amount(base),
		Total:     co.discount.Total(base),
	}
}

// Submit sends the booking. Name, email and the agreement checkbox are the
// only client-enforced rules; nothing else is validated before the network
// call.
func (co *Checkout) Submit(ctx context.Context) (uuid.UUID, error) {
	switch co.state {
	case StateReady, StatePromoApplied:
	default:
		return uuid.Nil, ErrNotReady
	}

	if co.Form.Name == "" || co.Form.Email == "" || !co.Form.Agreed {
		return uuid.Nil, ErrMissingFields
	}

	quote := co.GetQuote()

	var promoCode *string
	if co.state == StatePromoApplied {
		code := strings.ToUpper(co.appliedCode)
		promoCode = &code
	}

	prevState := co.state
	co.state = StateSubmitting

	booking, err := co.api.CreateBooking(ctx, reqdto.CreateBookingRequest{
		ExperienceID:   co.experience.ID,
		SlotID:         co.slot.ID,
		UserName:       co.Form.Name,
		UserEmail:      co.Form.Email,
		UserPhone:      "",
		NumPeople:      1,
		PromoCode:      promoCode,
		DiscountAmount: quote.Discount,
		TotalPrice:     quote.Total,
	})
	if err != nil {
		// Back to an editable form so the user can retry manually.
		co.state = prevState
		return uuid.Nil, err
	}

	co.bookingID = booking.ID
	co.state = StateConfirmed
	return booking.ID, nil
}

// FilterExperiences narrows the catalog with a case-insensitive substring
// match on title or location, the same rule the storefront search box applies.
func FilterExperiences(experiences []*resdto.ExperienceResponse, query string) []*resdto.ExperienceResponse {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return experiences
	}
	return lo.Filter(experiences, func(e *resdto.ExperienceResponse, _ int) bool {
		return strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Location), q)
	})
}

// SlotsByDate groups an experience's slots for the detail view calendar.
func SlotsByDate(slots []*resdto.SlotResponse) map[string][]*resdto.SlotResponse {
	return lo.GroupBy(slots, func(s *resdto.SlotResponse) string {
		return s.Date
	})
}
