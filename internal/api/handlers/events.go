package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/urbangis/server/internal/api/middleware"
	"github.com/urbangis/server/internal/api/respond"
	"github.com/urbangis/server/internal/domain/events"
)

type EventsHandler struct {
	Service *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Service: service}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		respond.Error(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}

	filters, err := events.ParseFilters(r.URL.Query())
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid bbox format. Use minLon,minLat,maxLon,maxLat", err)
		return
	}

	items, err := h.Service.List(r.Context(), filters)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}
	if items == nil {
		items = []events.Event{}
	}

	respond.JSON(w, http.StatusOK, items)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		respond.Error(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}

	actor, ok := middleware.Identity(r)
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "Missing Bearer token", nil)
		return
	}

	var input events.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing fields", err)
		return
	}

	id, err := h.Service.Create(r.Context(), actor, input)
	if err != nil {
		if events.IsValidation(err) {
			respond.Error(w, r, http.StatusBadRequest, "Missing fields", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		respond.Error(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}

	actor, ok := middleware.Identity(r)
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "Missing Bearer token", nil)
		return
	}

	id, err := eventID(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Event not found", err)
		return
	}

	var patch events.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "No fields to update", err)
		return
	}

	if err := h.Service.Update(r.Context(), actor, id, patch); err != nil {
		writeEventError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Updated"})
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		respond.Error(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}

	actor, ok := middleware.Identity(r)
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "Missing Bearer token", nil)
		return
	}

	id, err := eventID(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Event not found", err)
		return
	}

	if err := h.Service.Delete(r.Context(), actor, id); err != nil {
		writeEventError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

// eventID validates the path id before it reaches the database; a malformed
// uuid behaves like a row that does not exist.
func eventID(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	if _, err := uuid.Parse(raw); err != nil {
		return "", err
	}
	return raw, nil
}

func writeEventError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, events.ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "Event not found", err)
	case errors.Is(err, events.ErrForbidden):
		respond.Error(w, r, http.StatusForbidden, "Not allowed", err)
	case errors.Is(err, events.ErrNoFields):
		respond.Error(w, r, http.StatusBadRequest, "No fields to update", err)
	default:
		respond.Error(w, r, http.StatusInternalServerError, "Server error", err)
	}
}
