package middleware

import (
	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the context after the
// handler ran, unless a response was already written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		if len(c.Errors) > 0 {
			utils.HandleError(c, c.Errors.Last().Err)
		}
	}
}
