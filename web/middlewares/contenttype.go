package middlewares

import (
	"net/http"

	"github.com/axleworks/customers/web/common"
	"github.com/gin-gonic/gin"
)

// RequireJSON rejects body-carrying requests whose Content-Type is not JSON.
// Media type parameters such as charset are tolerated.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != "application/json" {
			c.AbortWithStatusJSON(
				http.StatusUnsupportedMediaType,
				common.NewErrorResponse("Content-Type must be application/json"),
			)
			return
		}
		c.Next()
	}
}
