package handlers

import (
	"net/http"

	"github.com/urbangis/server/internal/api/respond"
	"github.com/urbangis/server/internal/domain/requestlog"
)

type LogsHandler struct {
	Service *requestlog.Service
}

func NewLogsHandler(service *requestlog.Service) *LogsHandler {
	return &LogsHandler{Service: service}
}

// List serves the admin audit view. When the audit store was never
// configured the service is nil and the endpoint reports a server error,
// matching every other store failure on this path.
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		respond.Error(w, r, http.StatusInternalServerError, "Failed to fetch logs", nil)
		return
	}

	query := r.URL.Query()
	result, err := h.Service.List(r.Context(), requestlog.ListParams{
		Limit:  query.Get("limit"),
		Method: query.Get("method"),
		Status: query.Get("status"),
		Path:   query.Get("path"),
	})
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Failed to fetch logs", err)
		return
	}

	respond.JSON(w, http.StatusOK, result)
}
