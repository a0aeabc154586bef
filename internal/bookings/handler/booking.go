package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/bookings/service"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	roomlyhttp "roomly/pkg/http"
	"roomly/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	cfg     *config.Config
}

func NewBookingHandler(svc service.BookingService, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		service: svc,
		cfg:     cfg,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/bookings", h.Create)
	router.HandlerFunc(http.MethodGet, "/bookings", h.ListOnDate)
	router.Handle(http.MethodGet, "/bookings/user/:userId", h.ListByUser)
	router.Handle(http.MethodGet, "/bookings/room/:roomId", h.ListByRoom)
	router.Handle(http.MethodDelete, "/bookings/:id", h.Cancel)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reservation model.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		h.writeError(w, r, apperrors.InvalidInput("Invalid JSON in request body"))
		return
	}

	warning, err := h.service.Create(r.Context(), &reservation)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := roomlyhttp.WriteCreated(w, reservation, warning); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *BookingHandler) ListOnDate(w http.ResponseWriter, r *http.Request) {
	date, err := roomlyhttp.ExtractDate(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	reservations, err := h.service.GetAllOnDate(r.Context(), date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeList(w, reservations)
}

func (h *BookingHandler) ListByUser(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	reservations, err := h.service.GetByUser(r.Context(), params.ByName("userId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeList(w, reservations)
}

func (h *BookingHandler) ListByRoom(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	date, err := roomlyhttp.ExtractDate(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	reservations, err := h.service.GetByRoomOnDate(r.Context(), params.ByName("roomId"), date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeList(w, reservations)
}

type cancelRequest struct {
	UserID string `json:"user_id"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.InvalidInput("Invalid JSON in request body"))
		return
	}

	cancelled, warning, err := h.service.Cancel(r.Context(), params.ByName("id"), req.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var writeErr error
	if warning != "" {
		writeErr = roomlyhttp.WriteSuccessWithWarning(w, cancelled, warning)
	} else {
		writeErr = roomlyhttp.WriteSuccess(w, cancelled)
	}
	if writeErr != nil {
		h.cfg.Log.Error("Failed to write response", "error", writeErr)
	}
}

func (h *BookingHandler) writeList(w http.ResponseWriter, reservations []*model.Reservation) {
	if reservations == nil {
		reservations = []*model.Reservation{}
	}
	if err := roomlyhttp.WriteList(w, reservations, len(reservations)); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if !apperrors.IsAppError(err) {
		h.cfg.Log.Error("Unexpected error handling request",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	if writeErr := roomlyhttp.WriteError(w, err); writeErr != nil {
		h.cfg.Log.Error("Failed to write error response", "error", writeErr)
	}
}
