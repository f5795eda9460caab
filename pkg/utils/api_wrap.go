package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// StatusFor maps planning errors to HTTP status codes.
func StatusFor(err error) int {
	var appErr *AppError
	switch {
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrInvalidDays), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrRequestInFlight):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrNoDestinations):
		return http.StatusNotFound
	case IsTransport(err):
		return http.StatusBadGateway
	case errors.As(err, &appErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("trace=%s service error: %v", c.GetString("trace_id"), err)
		RespondError(c, code, "Internal server error")
		return
	}
	RespondError(c, code, err.Error())
}
