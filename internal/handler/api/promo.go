package api

import (
	"net/http"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	promoQueries queries.PromoQueries
}

func NewPromoHandler(promoQueries queries.PromoQueries) *PromoHandler {
	return &PromoHandler{
		promoQueries: promoQueries,
	}
}

// @Summary Validate promo code
// @Description Validate an active promo code; inactive and unknown codes fail identically
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoCodeRequest true "Promo code"
// @Success 200 {object} resdto.PromoCodeResponse
// @Failure 500 {object} httperr.Response
// @Router /api/promo/validate [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	view, err := h.promoQueries.Validate(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoView(view))
}
