package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zapponejosh/lunar-api/internal/lunar"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes returned in ErrorInfo.Code.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeDuplicate        = "DUPLICATE"
	CodeRateLimited      = "RATE_LIMITED"
	CodeValidation       = "VALIDATION_FAILED"
	CodeOutOfRange       = "OUT_OF_RANGE"
	CodeInvalidLeapMonth = "INVALID_LEAP_MONTH"
	CodeInternal         = "INTERNAL_ERROR"
	CodeCancelled        = "REQUEST_CANCELLED"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteCreated writes a 201 Created response.
func WriteCreated(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternal)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

// WriteConversionError maps a calendar conversion failure to a response.
// Errors that are not lunar sentinels are reported as internal errors.
func WriteConversionError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, lunar.ErrInvalidLeapMonth):
		return WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidLeapMonth)
	case errors.Is(err, lunar.ErrOutOfRange):
		return WriteError(w, http.StatusBadRequest, err.Error(), CodeOutOfRange)
	default:
		return WriteInternalError(w, "Conversion failed")
	}
}
