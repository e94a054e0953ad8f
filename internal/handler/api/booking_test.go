//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"experience-booking/internal/handler/api"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/cookie"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	"experience-booking/tests/common/httptest"
	"experience-booking/tests/common/testutil"
	commandsmock "experience-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)

	cfg := config.Config{
		Cookie: config.CookieConfig{
			SameSite:      "Lax",
			BookingMaxAge: 24 * time.Hour,
		},
	}
	s.handler = api.NewBookingHandler(s.mockCommands, cfg)

	s.router.POST("/api/bookings", s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"

	s.Run("success: returns 200 with the persisted booking", func() {
		b := builder.NewBookingBuilder()
		view := b.BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO())

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("confirmed", body.Status)
		s.Equal(b.TotalPrice, body.TotalPrice)
	})

	s.Run("success: sets the booking_id cookie with the new booking id", func() {
		b := builder.NewBookingBuilder()
		view := b.BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO())

		c := httptest.ExtractCookie(rec, cookie.BookingIDCookieName)
		s.Require().NotNil(c, "booking_id cookie missing")
		s.Equal(view.ID.String(), c.Value)
		s.True(c.HttpOnly)
		s.False(c.Secure)
		s.Equal(http.SameSiteLaxMode, c.SameSite)
		s.Equal("/", c.Path)
		s.Equal(int((24 * time.Hour).Seconds()), c.MaxAge)
	})

	s.Run("success: promo fields are stored as sent, including negative totals", func() {
		b := builder.NewBookingBuilder().WithPromo("FLAT20", 150, -50)
		view := b.BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Require().NotNil(params.PromoCode)
				s.Equal("FLAT20", *params.PromoCode)
				s.Equal(float64(150), params.DiscountAmount)
				s.Equal(float64(-50), params.TotalPrice)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO())

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(-50), body.TotalPrice)
	})

	s.Run("success: user_email is stored as sent, format is not checked", func() {
		b := builder.NewBookingBuilder()
		b.UserEmail = "front-desk"
		view := b.BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Equal("front-desk", params.UserEmail)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO())

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("front-desk", body.UserEmail)
	})

	s.Run("failure: command error becomes 500 and no cookie is set", func() {
		b := builder.NewBookingBuilder()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("insert failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
		s.Nil(httptest.ExtractCookie(rec, cookie.BookingIDCookieName))
	})

	s.Run("failure: validation errors become 500 without touching the command layer", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing experience_id", mutate: testutil.Field("experience_id", nil)},
			{name: "missing slot_id", mutate: testutil.Field("slot_id", nil)},
			{name: "missing user_name", mutate: testutil.Field("user_name", nil)},
			{name: "missing user_email", mutate: testutil.Field("user_email", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				reqBody := testutil.DtoMap(s.T(), builder.NewBookingBuilder().BuildCreateRequestDTO(), tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

				httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
			})
		}
	})

	s.Run("failure: malformed JSON body becomes 500", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"experience_id": "xyz`)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
