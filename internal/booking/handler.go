package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/heartsafe-training/booking-api/pkg/logging"
)

// Handler wires HTTP requests to the booking service and sweeper.
type Handler struct {
	service *Service
	sweeper *Sweeper
	logger  *logging.Logger
}

// NewHandler creates a booking handler.
func NewHandler(service *Service, sweeper *Sweeper, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, sweeper: sweeper, logger: logger}
}

// CreateResponse is the intake success body.
type CreateResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Create handles POST /api/bookings.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode booking request", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if IsValidation(err) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create booking", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to process booking")
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateResponse{Success: true, ID: b.ID})
}

// CancelRequest identifies the booking to cancel: its id and the YYYY-MM-DD
// partition the caller stored it under.
type CancelRequest struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

// Cancel handles POST /api/bookings/cancel.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode cancel request", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Date) == "" {
		h.writeError(w, http.StatusBadRequest, "id and date are required")
		return
	}

	if err := h.service.Cancel(r.Context(), req.ID, req.Date); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		h.logger.Error("failed to cancel booking", "error", err, "id", req.ID, "date", req.Date)
		h.writeError(w, http.StatusInternalServerError, "failed to cancel booking")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SweepResponse is the aggregate result body for a sweep run.
type SweepResponse struct {
	Success bool           `json:"success"`
	Date    string         `json:"date"`
	Results []SweepOutcome `json:"results"`
}

// RunSweep handles POST /api/reminders/sweep. Trigger authentication is
// enforced by router middleware before this handler runs.
func (h *Handler) RunSweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.sweeper.Run(r.Context())
	if err != nil {
		h.logger.Error("reminder sweep failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "reminder sweep failed")
		return
	}

	if result.Empty {
		h.writeJSON(w, http.StatusOK, map[string]string{"message": "No bookings found for tomorrow."})
		return
	}

	h.writeJSON(w, http.StatusOK, SweepResponse{
		Success: true,
		Date:    result.Date,
		Results: result.Outcomes,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
