package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire error shape: a flat {"error": string} body. Every
// failure, store-level or otherwise, is translated to HTTP 500 with this body.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// preserves original error for the error middleware / logging
func AbortWithError(c *gin.Context, status int, err error) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: err.Error()}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
