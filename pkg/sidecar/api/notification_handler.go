package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/meemoo/sidecar-creator/pkg/sidecar"
	"github.com/meemoo/sidecar-creator/pkg/sidecar/event"
)

// NotificationHandler handles storage-event notification webhooks.
type NotificationHandler struct {
	service sidecar.Service
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service sidecar.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Routes returns the routes for notifications
func (h *NotificationHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleNotification)

	return r
}

// NotificationResponse is the response body for an accepted notification
type NotificationResponse struct {
	Status string `json:"status"`
}

// HandleNotification runs the sidecar pipeline for one posted notification.
func (h *NotificationHandler) HandleNotification(w http.ResponseWriter, r *http.Request) {
	var n event.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Process(r.Context(), &n); err != nil {
		slog.Error("sidecar pipeline failed", "error", err)
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, NotificationResponse{Status: "accepted"})
}
