package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError is a client-facing error with a fixed HTTP status.
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error implements the error interface.
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError builds an ApiError.
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateNotFoundError reports an absent resource id.
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+" not found", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateValidationError reports a malformed or incomplete payload.
func CreateValidationError(message string) *ApiError {
	return NewApiError(message, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
}

// CreateAuthenticationError reports bad credentials. The message is the
// same whether the username or the password was wrong.
func CreateAuthenticationError() *ApiError {
	return NewApiError("invalid username or password", http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

// CreateUnauthorizedError reports a missing or invalid token.
func CreateUnauthorizedError() *ApiError {
	return NewApiError("unauthorized", http.StatusUnauthorized, "UNAUTHORIZED")
}

// CreateConflictError reports a unique-constraint violation.
func CreateConflictError(message string) *ApiError {
	return NewApiError(message, http.StatusConflict, "CONFLICT")
}

// HandleError writes the response for err. ApiErrors keep their status
// and message; anything else becomes a generic 500 so storage detail
// never leaks to the caller.
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}

	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, "request failed")

	if apiErr, ok := err.(*ApiError); ok {
		response := gin.H{"error": apiErr.Message}
		if apiErr.ErrorCode != "" {
			response["code"] = apiErr.ErrorCode
		}
		c.JSON(apiErr.StatusCode, response)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "internal server error",
	})
}
