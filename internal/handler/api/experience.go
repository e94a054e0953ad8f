package api

import (
	"net/http"

	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ExperienceHandler struct {
	experienceQueries queries.ExperienceQueries
}

func NewExperienceHandler(experienceQueries queries.ExperienceQueries) *ExperienceHandler {
	return &ExperienceHandler{
		experienceQueries: experienceQueries,
	}
}

// @Summary List experiences
// @Description List all experiences ordered by rating descending
// @Tags experiences
// @Produce json
// @Success 200 {array} resdto.ExperienceResponse
// @Failure 500 {object} httperr.Response
// @Router /api/experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	views, err := h.experienceQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(views, func(v *queries.ExperienceView, _ int) *resdto.ExperienceResponse {
		return resdto.FromExperienceView(v)
	}))
}

// @Summary Get experience
// @Description Get a single experience by ID
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} resdto.ExperienceResponse
// @Failure 500 {object} httperr.Response
// @Router /api/experiences/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	view, err := h.experienceQueries.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExperienceView(view))
}

// @Summary List slots
// @Description List slots for an experience ordered by date, then time
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 500 {object} httperr.Response
// @Router /api/experiences/{id}/slots [get]
func (h *ExperienceHandler) ListSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	views, err := h.experienceQueries.ListSlots(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(views, func(v *queries.SlotView, _ int) *resdto.SlotResponse {
		return resdto.FromSlotView(v)
	}))
}
