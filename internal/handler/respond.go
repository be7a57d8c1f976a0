// Package handler exposes the HTTP API: the storefront surface (catalog,
// quotes, orders, payment confirmation) and the admin surface (pricing,
// fulfillment).
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/print24/print24/internal/domain"
	"github.com/print24/print24/internal/middleware"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// statusByCode maps domain error codes to HTTP statuses.
var statusByCode = map[string]int{
	domain.EINVALID:  http.StatusBadRequest,
	domain.EPAYMENT:  http.StatusPaymentRequired,
	domain.ENOTFOUND: http.StatusNotFound,
	domain.ECONFLICT: http.StatusConflict,
	domain.EINTERNAL: http.StatusInternalServerError,
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps a domain error to an HTTP response. Internal errors are
// logged with their full chain and answered with a generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status >= 500 {
		middleware.GetLogger(r.Context()).Error("request failed",
			slog.String("error", err.Error()),
		)
	}

	respondJSON(w, status, errorBody{Error: errorDetail{
		Code:    code,
		Message: domain.ErrorMessage(err),
	}})
}

// decodeJSON decodes and validates a request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.WrapError(err, domain.EINVALID, "handler.decode",
			fmt.Sprintf("invalid request body: %v", err))
	}
	if err := validate.Struct(dst); err != nil {
		return domain.WrapError(err, domain.EINVALID, "handler.decode",
			fmt.Sprintf("invalid request: %v", err))
	}
	return nil
}
