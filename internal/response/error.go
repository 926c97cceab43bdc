package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

// HandleError maps typed errors to HTTP responses. Internal failures never
// leak the raw backend error to the client; the detail goes to the log only.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.AlreadyExistsError:
		log.Warn("resource already exists", "error", e.Message)
		h.WriteError(w, r, http.StatusConflict, "already_exists", e.Message)

	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.AuthError:
		log.Warn("auth failure", "kind", int(e.Kind), "error", e.Err)
		h.WriteError(w, r, authStatus(e.Kind), authCode(e.Kind), e.Message)

	case *errs.DatabaseError:
		log.Error("database error",
			"operation", e.Operation,
			"error", e.Err)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	case *errs.StorageError:
		log.Error("storage error",
			"operation", e.Operation,
			"error", e.Err)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}

func authStatus(kind errs.AuthKind) int {
	switch kind {
	case errs.AuthKindInvalidEmail, errs.AuthKindWeakPassword:
		return http.StatusBadRequest
	case errs.AuthKindEmailInUse:
		return http.StatusConflict
	case errs.AuthKindTooManyRequests:
		return http.StatusTooManyRequests
	case errs.AuthKindNetwork, errs.AuthKindUnspecified:
		return http.StatusBadGateway
	default:
		// user not found, wrong password, disabled user
		return http.StatusUnauthorized
	}
}

func authCode(kind errs.AuthKind) string {
	switch kind {
	case errs.AuthKindInvalidEmail:
		return "invalid_email"
	case errs.AuthKindUserNotFound:
		return "user_not_found"
	case errs.AuthKindWrongPassword:
		return "wrong_password"
	case errs.AuthKindUserDisabled:
		return "user_disabled"
	case errs.AuthKindTooManyRequests:
		return "too_many_requests"
	case errs.AuthKindNetwork:
		return "network_error"
	case errs.AuthKindEmailInUse:
		return "email_in_use"
	case errs.AuthKindWeakPassword:
		return "weak_password"
	default:
		return "auth_failed"
	}
}
