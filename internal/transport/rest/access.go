package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/internal/service/access"
)

type passcodeService interface {
	Validate(ctx context.Context, pin string) (*access.Result, error)
}

// AccessHandler exchanges a passcode for an access tier.
type AccessHandler struct {
	svc passcodeService
	log *slog.Logger
}

func NewAccessHandler(svc passcodeService, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{svc: svc, log: logger.With("handler", "access")}
}

type validatePinRequest struct {
	Pin string `json:"pin"`
}

type validatePinResponse struct {
	Success     bool                `json:"success"`
	AccessLevel domain.AccessLevel  `json:"accessLevel,omitempty"`
	Message     string              `json:"message"`
	Errors      []domain.FieldError `json:"errors,omitempty"`
}

// ValidatePin handles POST /api/validate-pin.
func (h *AccessHandler) ValidatePin(w http.ResponseWriter, r *http.Request) {
	var req validatePinRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	res, err := h.svc.Validate(r.Context(), req.Pin)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, validatePinResponse{
		Success:     true,
		AccessLevel: res.Level,
		Message:     res.Message,
	})
}

func (h *AccessHandler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, validatePinResponse{Message: "Invalid request format", Errors: ve.Errors})
	case errors.Is(err, domain.ErrPasscodeExpired):
		writeJSON(w, http.StatusForbidden, validatePinResponse{Message: "Passcode has expired"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, validatePinResponse{Message: "Invalid passcode"})
	default:
		h.log.ErrorContext(r.Context(), "validate passcode", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, validatePinResponse{Message: "Failed to validate passcode"})
	}
}
