package cookie

import (
	"net/http"

	"experience-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingIDCookieName carries the created booking id back to the browser as a
// lightweight server-side confirmation. It holds only an identifier, never
// customer data.
const BookingIDCookieName = "booking_id"

func SetBookingCookie(c *gin.Context, cfg config.CookieConfig, bookingID uuid.UUID) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		BookingIDCookieName,
		bookingID.String(),
		int(cfg.BookingMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
