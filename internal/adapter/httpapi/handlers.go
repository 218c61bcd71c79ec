package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/svscodes/LeetLink/internal/adapter/leetcode"
	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
)

const maxRecordBytes = 1 << 20

// Handler holds API route handlers.
type Handler struct {
	pusher Pusher
	logger ports.Logger
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type pushData struct {
	URL     string `json:"url"`
	Message string `json:"message"`
	Path    string `json:"path"`
	Indexed bool   `json:"indexUpdated"`
}

// Push handles POST /api/push.
func (h *Handler) Push(w http.ResponseWriter, r *http.Request) {
	record, err := decodeRecord(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()})
		return
	}

	result, err := h.pusher.Push(r.Context(), record)
	if err != nil {
		h.logger.Error(r.Context(), "push request failed", "title", record.Title, "error", err)
		writeJSON(w, statusFor(err), envelope{Error: apperr.UserMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: pushData{
		URL:     result.URL,
		Message: result.Message,
		Path:    result.Path,
		Indexed: result.IndexUpdated,
	}})
}

// Preview handles POST /api/preview.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	record, err := decodeRecord(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()})
		return
	}

	preview, err := h.pusher.Preview(r.Context(), record)
	if err != nil {
		writeJSON(w, statusFor(err), envelope{Error: apperr.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: preview})
}

func decodeRecord(r *http.Request) (model.ProblemRecord, error) {
	var record model.ProblemRecord
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRecordBytes))
	if err != nil {
		return record, fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, &record); err != nil {
		return record, fmt.Errorf("invalid JSON: %w", err)
	}

	record.Difficulty = model.ParseDifficulty(string(record.Difficulty))
	record.URL = leetcode.CanonicalURL(record.URL)
	if err := validateRecord(record); err != nil {
		return record, err
	}
	return record, nil
}

func validateRecord(r model.ProblemRecord) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.URL, validation.Required),
		validation.Field(&r.ProblemSlug, validation.Required),
		validation.Field(&r.Language, validation.Required),
		validation.Field(&r.Code, validation.Required.Error("no code found")),
	)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrPreconditionMissing):
		return http.StatusPreconditionFailed
	case errors.Is(err, apperr.ErrExtractionFailed):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrRemoteAuth),
		errors.Is(err, apperr.ErrRemoteNotFound),
		errors.Is(err, apperr.ErrRemotePermission),
		errors.Is(err, apperr.ErrRemoteValidation),
		errors.Is(err, apperr.ErrRemote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
