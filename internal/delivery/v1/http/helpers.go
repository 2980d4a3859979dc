package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrCustomerNotFound):
		return http.StatusNotFound, e.ErrCustomerNotFound.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductIDRequired):
		return http.StatusBadRequest, e.ErrProductIDRequired.Error()
	case errors.Is(err, e.ErrDescriptionRequired):
		return http.StatusBadRequest, e.ErrDescriptionRequired.Error()
	case errors.Is(err, e.ErrInvalidRate):
		return http.StatusBadRequest, e.ErrInvalidRate.Error()
	case errors.Is(err, e.ErrRatePrecision):
		return http.StatusBadRequest, e.ErrRatePrecision.Error()
	case errors.Is(err, e.ErrNoValidCustomers):
		return http.StatusBadRequest, e.ErrNoValidCustomers.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseRateToBasisPoints converts a string like "4.25" (percent per annum)
// to int64 basis points. Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds 100%
func parseRateToBasisPoints(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidRate
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidRate
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidRate
	}

	maxRate := decimal.NewFromInt(100)
	if d.GreaterThan(maxRate) {
		return 0, e.ErrInvalidRate
	}

	if d.Exponent() < -2 {
		return 0, e.ErrRatePrecision
	}

	// Convert to basis points: multiply by 100 and round
	bps := d.Mul(decimal.NewFromInt(100)).Round(0)

	return bps.IntPart(), nil
}
