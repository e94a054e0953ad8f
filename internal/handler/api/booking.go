package api

import (
	"log/slog"
	"net/http"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/cookie"
	"experience-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	cookieCfg       config.CookieConfig
}

func NewBookingHandler(bookingCommands commands.BookingCommands, cfg config.Config) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		cookieCfg:       cfg.Cookie,
	}
}

// @Summary Create booking
// @Description Persist a checkout submission and set the booking_id cookie
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking payload"
// @Success 200 {object} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	// Cookie trouble must not lose a booking that already hit the store.
	func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Warn("failed to set booking cookie", "error", r)
			}
		}()
		cookie.SetBookingCookie(c, h.cookieCfg, view.ID)
	}()

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
