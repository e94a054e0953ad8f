//go:build unit

package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"experience-booking/internal/checkout"
	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAPI is a minimal in-process stand-in for the booking API.
type stubAPI struct {
	experience resdto.ExperienceResponse
	slots      []resdto.SlotResponse
	promos     map[string]resdto.PromoCodeResponse

	lastBooking *reqdto.CreateBookingRequest
	failCreate  bool
}

func newStubAPI() *stubAPI {
	experienceID := uuid.New()
	return &stubAPI{
		experience: resdto.ExperienceResponse{
			ID:       experienceID,
			Title:    "Pottery Workshop",
			Location: "Lisbon",
			Price:    100,
		},
		slots: []resdto.SlotResponse{
			{ID: uuid.New(), ExperienceID: experienceID, Date: "2026-09-05", Time: "14:00", TotalSlots: 6, AvailableSlots: 6},
			{ID: uuid.New(), ExperienceID: experienceID, Date: "2026-09-05", Time: "17:00", TotalSlots: 6, AvailableSlots: 1},
			{ID: uuid.New(), ExperienceID: experienceID, Date: "2026-09-06", Time: "14:00", TotalSlots: 6, AvailableSlots: 0},
		},
		promos: map[string]resdto.PromoCodeResponse{
			"SAVE10": {Code: "SAVE10", DiscountType: "percentage", DiscountValue: 10, Active: true},
			"FLAT20": {Code: "FLAT20", DiscountType: "fixed", DiscountValue: 20, Active: true},
			"BIG150": {Code: "BIG150", DiscountType: "fixed", DiscountValue: 150, Active: true},
		},
	}
}

func (s *stubAPI) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/experiences", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]resdto.ExperienceResponse{s.experience})
	})
	mux.HandleFunc("GET /api/experiences/"+s.experience.ID.String(), func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(s.experience)
	})
	mux.HandleFunc("GET /api/experiences/"+s.experience.ID.String()+"/slots", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(s.slots)
	})
	mux.HandleFunc("POST /api/promo/validate", func(w http.ResponseWriter, r *http.Request) {
		var req reqdto.ValidatePromoCodeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		promo, ok := s.promos[req.Code]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "promo code not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(promo)
	})
	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		if s.failCreate {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "booking creation failed"})
			return
		}
		var req reqdto.CreateBookingRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.lastBooking = &req
		_ = json.NewEncoder(w).Encode(resdto.BookingResponse{
			ID:             uuid.New(),
			ExperienceID:   req.ExperienceID,
			SlotID:         req.SlotID,
			UserName:       req.UserName,
			UserEmail:      req.UserEmail,
			NumPeople:      req.NumPeople,
			PromoCode:      req.PromoCode,
			DiscountAmount: req.DiscountAmount,
			TotalPrice:     req.TotalPrice,
			Status:         "confirmed",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func loadedCheckout(t *testing.T, stub *stubAPI) *checkout.Checkout {
	t.Helper()
	srv := stub.server(t)
	co := checkout.NewCheckout(checkout.NewAPIClient(srv.URL))
	err := co.Load(context.Background(), stub.experience.ID, stub.slots[0].ID)
	require.NoError(t, err)
	require.Equal(t, checkout.StateReady, co.State())
	return co
}

func TestAPIClient_Experiences(t *testing.T) {
	stub := newStubAPI()
	srv := stub.server(t)
	client := checkout.NewAPIClient(srv.URL)

	got, err := client.Experiences(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stub.experience.ID, got[0].ID)
	assert.Equal(t, "Pottery Workshop", got[0].Title)
}

func TestFilterExperiences(t *testing.T) {
	catalog := []*resdto.ExperienceResponse{
		{ID: uuid.New(), Title: "Pottery Workshop", Location: "Lisbon"},
		{ID: uuid.New(), Title: "Sunrise Kayak Tour", Location: "Cascais"},
		{ID: uuid.New(), Title: "Old Town Food Walk", Location: "Lisbon"},
	}

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got := checkout.FilterExperiences(catalog, "KAYAK")
		require.Len(t, got, 1)
		assert.Equal(t, "Sunrise Kayak Tour", got[0].Title)
	})

	t.Run("matches location substrings", func(t *testing.T) {
		got := checkout.FilterExperiences(catalog, "lisb")
		require.Len(t, got, 2)
	})

	t.Run("blank query returns the whole catalog", func(t *testing.T) {
		assert.Len(t, checkout.FilterExperiences(catalog, "   "), 3)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, checkout.FilterExperiences(catalog, "surf"))
	})
}

func TestCheckout_Load(t *testing.T) {
	t.Run("resolves the experience and slot", func(t *testing.T) {
		stub := newStubAPI()
		co := loadedCheckout(t, stub)

		assert.Equal(t, stub.experience.ID, co.Experience().ID)
		assert.Equal(t, stub.slots[0].ID, co.Slot().ID)
	})

	t.Run("fails when the slot does not belong to the experience", func(t *testing.T) {
		stub := newStubAPI()
		srv := stub.server(t)
		co := checkout.NewCheckout(checkout.NewAPIClient(srv.URL))

		err := co.Load(context.Background(), stub.experience.ID, uuid.New())
		assert.ErrorIs(t, err, checkout.ErrSlotNotFound)
		assert.Equal(t, checkout.StateFailed, co.State())
	})
}

func TestCheckout_ApplyPromo(t *testing.T) {
	t.Run("percentage code discounts the quote", func(t *testing.T) {
		co := loadedCheckout(t, newStubAPI())
		co.Form.PromoCode = "save10"

		require.NoError(t, co.ApplyPromo(context.Background()))
		assert.Equal(t, checkout.StatePromoApplied, co.State())
		assert.Equal(t, "SAVE10", co.AppliedCode())

		quote := co.GetQuote()
		assert.Equal(t, float64(100), quote.BasePrice)
		assert.Equal(t, float64(10), quote.Discount)
		assert.Equal(t, float64(90), quote.Total)
	})

	t.Run("oversized fixed code drives the total negative", func(t *testing.T) {
		co := loadedCheckout(t, newStubAPI())
		co.Form.PromoCode = "BIG150"

		require.NoError(t, co.ApplyPromo(context.Background()))

		quote := co.GetQuote()
		assert.Equal(t, float64(150), quote.Discount)
		assert.Equal(t, float64(-50), quote.Total)
	})

	t.Run("rejected code returns the checkout to ready", func(t *testing.T) {
		co := loadedCheckout(t, newStubAPI())
		co.Form.PromoCode = "NOPE99"

		err := co.ApplyPromo(context.Background())
		require.Error(t, err)
		var apiErr *checkout.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "promo code not found", apiErr.Message)
		assert.Equal(t, checkout.StateReady, co.State())

		quote := co.GetQuote()
		assert.Equal(t, float64(100), quote.Total)
	})

	t.Run("empty input is rejected before the network call", func(t *testing.T) {
		co := loadedCheckout(t, newStubAPI())
		co.Form.PromoCode = "   "

		assert.ErrorIs(t, co.ApplyPromo(context.Background()), checkout.ErrPromoCodeRequired)
	})

	t.Run("a second application is refused", func(t *testing.T) {
		co := loadedCheckout(t, newStubAPI())
		co.Form.PromoCode = "SAVE10"
		require.NoError(t, co.ApplyPromo(context.Background()))

		co.Form.PromoCode = "FLAT20"
		assert.ErrorIs(t, co.ApplyPromo(context.Background()), checkout.ErrPromoAlreadyApplied)
		assert.Equal(t, "SAVE10", co.AppliedCode())
	})
}

func TestCheckout_Submit(t *testing.T) {
	t.Run("blocks until name, email and agreement are present", func(t *testing.T) {
		stub := newStubAPI()
		co := loadedCheckout(t, stub)

		_, err := co.Submit(context.Background())
		assert.ErrorIs(t, err, checkout.ErrMissingFields)

		co.Form.Name = "Ana Martins"
		co.Form.Email = "ana@example.com"
		_, err = co.Submit(context.Background())
		assert.ErrorIs(t, err, checkout.ErrMissingFields)
		assert.Nil(t, stub.lastBooking, "nothing should reach the API")
	})

	t.Run("confirmed submission carries the quote", func(t *testing.T) {
		stub := newStubAPI()
		co := loadedCheckout(t, stub)
		co.Form.PromoCode = "FLAT20"
		require.NoError(t, co.ApplyPromo(context.Background()))

		co.Form.Name = "Ana Martins"
		co.Form.Email = "ana@example.com"
		co.Form.Agreed = true

		bookingID, err := co.Submit(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, bookingID)
		assert.Equal(t, checkout.StateConfirmed, co.State())
		assert.Equal(t, bookingID, co.BookingID())

		require.NotNil(t, stub.lastBooking)
		require.NotNil(t, stub.lastBooking.PromoCode)
		assert.Equal(t, "FLAT20", *stub.lastBooking.PromoCode)
		assert.Equal(t, float64(20), stub.lastBooking.DiscountAmount)
		assert.Equal(t, float64(80), stub.lastBooking.TotalPrice)
	})

	t.Run("failed submission returns to an editable state", func(t *testing.T) {
		stub := newStubAPI()
		stub.failCreate = true
		co := loadedCheckout(t, stub)
		co.Form.Name = "Ana Martins"
		co.Form.Email = "ana@example.com"
		co.Form.Agreed = true

		_, err := co.Submit(context.Background())
		require.Error(t, err)
		assert.Equal(t, checkout.StateReady, co.State())
	})
}

func TestSlotsByDate(t *testing.T) {
	stub := newStubAPI()
	slots := make([]*resdto.SlotResponse, len(stub.slots))
	for i := range stub.slots {
		slots[i] = &stub.slots[i]
	}

	grouped := checkout.SlotsByDate(slots)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped["2026-09-05"], 2)
	assert.Len(t, grouped["2026-09-06"], 1)
}
