package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/rooms/service"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	roomlyhttp "roomly/pkg/http"
	"roomly/pkg/model"
)

type RoomHandler struct {
	service service.RoomService
	cfg     *config.Config
}

func NewRoomHandler(svc service.RoomService, cfg *config.Config) *RoomHandler {
	return &RoomHandler{
		service: svc,
		cfg:     cfg,
	}
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/rooms", h.Create)
	router.HandlerFunc(http.MethodGet, "/rooms", h.List)
	router.Handle(http.MethodGet, "/rooms/:id", h.GetByID)
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var room model.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		h.writeError(w, r, apperrors.InvalidInput("Invalid JSON in request body"))
		return
	}

	if err := h.service.Create(r.Context(), &room); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := roomlyhttp.WriteCreated(w, room, ""); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if rooms == nil {
		rooms = []*model.Room{}
	}
	if err := roomlyhttp.WriteList(w, rooms, len(rooms)); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	room, err := h.service.GetByID(r.Context(), params.ByName("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := roomlyhttp.WriteSuccess(w, room); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *RoomHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
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
