// Package respond writes JSON responses and maps engine faults onto HTTP
// status codes, so every handler reports precondition failures the same way.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tillworks/tillkeeper/internal/fault"
)

// errorBody is the canonical error envelope for 4xx/5xx responses.
type errorBody struct {
	Kind     string `json:"kind"`
	Detail   string `json:"detail"`
	Entity   string `json:"entity,omitempty"`
	ID       string `json:"id,omitempty"`
	Current  string `json:"current_status,omitempty"`
	Required string `json:"required_status,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps err's fault kind to an HTTP status and writes the envelope. The
// body names the current and required status on state violations so clients
// can tell the user which step is missing.
func Error(w http.ResponseWriter, err error) {
	var fe *fault.Error

	status := http.StatusInternalServerError
	body := errorBody{Kind: fault.KindUnknown.String(), Detail: "internal error"}

	if errors.As(err, &fe) {
		body = errorBody{
			Kind:     fe.Kind.String(),
			Detail:   fe.Error(),
			Entity:   fe.Entity,
			ID:       fe.ID,
			Current:  fe.Current,
			Required: fe.Required,
		}

		switch fe.Kind {
		case fault.KindValidation:
			status = http.StatusBadRequest
		case fault.KindNotFound:
			status = http.StatusNotFound
		case fault.KindInvalidState, fault.KindConflict:
			status = http.StatusConflict
		case fault.KindPreconditionFailed:
			status = http.StatusPreconditionFailed
		case fault.KindTransientStore:
			status = http.StatusServiceUnavailable
			body.Detail = "temporary storage failure, retry"
		default:
			status = http.StatusInternalServerError
		}
	}

	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		slog.Error("request failed", "error", err)
	}

	JSON(w, status, body)
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(w http.ResponseWriter, detail string) {
	JSON(w, http.StatusBadRequest, errorBody{
		Kind:   fault.KindValidation.String(),
		Detail: detail,
	})
}
