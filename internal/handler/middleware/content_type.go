package middleware

import (
	"net/http"

	"entry-registry/internal/handler/httperr"
	"entry-registry/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errNotJSON = errs.New("request content type is not application/json")

// RequireJSONBody rejects requests whose body is not declared as JSON.
func RequireJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEJSON {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrapf(errNotJSON, "got %q", c.ContentType()), "invalid request body", nil)
			return
		}
		c.Next()
	}
}
