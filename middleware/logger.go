package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
)

// Logger records each request and its response status/latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		headers := make(map[string]string)
		for k, v := range c.Request.Header {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			// restore the body for the handler
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		utils.LogApiRequest(
			method,
			path,
			c.Request.URL.Query(),
			string(requestBody),
			headers,
		)

		c.Next()

		utils.LogApiResponse(method, path, c.Writer.Status(), time.Since(start))
	}
}

// Recovery converts panics into a generic 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.Logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("handler panicked")

		c.AbortWithStatusJSON(500, gin.H{
			"error": "internal server error",
		})
	})
}
