package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/users/service"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	roomlyhttp "roomly/pkg/http"
	"roomly/pkg/model"
)

type UserHandler struct {
	service service.UserService
	cfg     *config.Config
}

func NewUserHandler(svc service.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		service: svc,
		cfg:     cfg,
	}
}

func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/users", h.Create)
	router.HandlerFunc(http.MethodGet, "/users", h.List)
	router.Handle(http.MethodGet, "/users/:id", h.GetByID)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, r, apperrors.InvalidInput("Invalid JSON in request body"))
		return
	}

	if err := h.service.Create(r.Context(), &user); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := roomlyhttp.WriteCreated(w, user, ""); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if users == nil {
		users = []*model.User{}
	}
	if err := roomlyhttp.WriteList(w, users, len(users)); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	user, err := h.service.GetByID(r.Context(), params.ByName("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := roomlyhttp.WriteSuccess(w, user); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *UserHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
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
