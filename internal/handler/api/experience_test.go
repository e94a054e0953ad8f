//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"experience-booking/internal/handler/api"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	"experience-booking/tests/common/httptest"
	queriesmock "experience-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExperienceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockExperienceQueries
	handler     *api.ExperienceHandler
}

func (s *ExperienceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockExperienceQueries(s.mockCtrl)
	s.handler = api.NewExperienceHandler(s.mockQueries)

	s.router.GET("/api/experiences", s.handler.List)
	s.router.GET("/api/experiences/:id", s.handler.Get)
	s.router.GET("/api/experiences/:id/slots", s.handler.ListSlots)
}

func (s *ExperienceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExperienceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExperienceHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *ExperienceHandlerTestSuite) TestList() {
	url := "/api/experiences"

	s.Run("success: returns 200 with catalog ordered as handed back by the query", func() {
		first := builder.NewExperienceBuilder().WithTitle("Sunrise Kayak Tour").WithRating(4.9).BuildView()
		second := builder.NewExperienceBuilder().WithRating(4.8).BuildView()
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.ExperienceView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.ExperienceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		})
		s.Require().Len(body, 2)
		s.Equal("Sunrise Kayak Tour", body[0].Title)
		s.Equal(first.ID, body[0].ID)
		s.Equal(second.ID, body[1].ID)
	})

	s.Run("success: empty catalog returns 200 with empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.ExperienceView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.ExperienceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("failure: query error becomes 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ExperienceHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 with the experience", func() {
		view := builder.NewExperienceBuilder().BuildView()
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/experiences/"+view.ID.String(), nil)

		var body resdto.ExperienceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Title, body.Title)
		s.Equal(view.Price, body.Price)
	})

	s.Run("failure: malformed id becomes 500 without touching the query layer", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/experiences/not-a-uuid", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})

	s.Run("failure: unknown id becomes 500", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).
			Return(nil, queries.ErrExperienceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/experiences/"+id.String(), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "experience not found")
	})
}

// ================================================================================
// TestListSlots
// ================================================================================

func (s *ExperienceHandlerTestSuite) TestListSlots() {
	s.Run("success: returns 200 with slots including sold out ones", func() {
		experienceID := uuid.New()
		open := builder.NewSlotBuilder().WithExperienceID(experienceID).BuildView()
		soldOut := builder.NewSlotBuilder().WithExperienceID(experienceID).AsSoldOut().BuildView()
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), experienceID).
			Return([]*queries.SlotView{open, soldOut}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/experiences/"+experienceID.String()+"/slots", nil)

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(int32(0), body[1].AvailableSlots)
	})

	s.Run("failure: malformed id becomes 500", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/experiences/42/slots", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})

	s.Run("failure: query error becomes 500", func() {
		experienceID := uuid.New()
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), experienceID).
			Return(nil, errors.New("query timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/experiences/"+experienceID.String()+"/slots", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
