package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody error JSON body. Status mirrors the HTTP status code.
type ErrorBody struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// Created returns a 201 JSON response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OK returns a 200 JSON response
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	c.JSON(status, NewErrorBody(status, message, err))
}

// NewErrorBody builds the error body; a *ValidationError contributes its field
func NewErrorBody(status int, message string, err error) ErrorBody {
	info := &ErrorInfo{Code: getErrorCode(status)}
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			info.Field = verr.Field
		}
		if status >= http.StatusInternalServerError {
			info.Details = err.Error()
		}
	}
	return ErrorBody{
		Status:  status,
		Message: message,
		Error:   info,
	}
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 429:
		return "RATE_LIMITED"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	case 502:
		return "BAD_GATEWAY"
	case 503:
		return "SERVICE_UNAVAILABLE"
	default:
		return "ERROR"
	}
}
