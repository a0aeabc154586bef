package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type stubBookingService struct {
	createWarning string
	createErr     error
	cancelErr     error
	listResult    []*model.Reservation
	listErr       error
	cancelledID   string
	requesterID   string
}

func (s *stubBookingService) Create(ctx context.Context, r *model.Reservation) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	r.ID = "64a0b1c2d3e4f5a6b7c8d9e9"
	r.Status = model.StatusActive
	return s.createWarning, nil
}

func (s *stubBookingService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	return nil, apperrors.NotFoundWithID("Reservation", id)
}

func (s *stubBookingService) GetByUser(ctx context.Context, userID string) ([]*model.Reservation, error) {
	return s.listResult, s.listErr
}

func (s *stubBookingService) GetByRoomOnDate(ctx context.Context, roomID string, date time.Time) ([]*model.Reservation, error) {
	return s.listResult, s.listErr
}

func (s *stubBookingService) GetAllOnDate(ctx context.Context, date time.Time) ([]*model.Reservation, error) {
	return s.listResult, s.listErr
}

func (s *stubBookingService) Cancel(ctx context.Context, id string, requesterID string) (*model.Reservation, string, error) {
	if s.cancelErr != nil {
		return nil, "", s.cancelErr
	}
	s.cancelledID = id
	s.requesterID = requesterID
	return &model.Reservation{ID: id, Status: model.StatusCancelled}, "", nil
}

func newTestRouter(svc *stubBookingService) *httprouter.Router {
	cfg := &config.Config{Log: logger.New(logger.Config{Level: "error", Output: io.Discard})}
	router := httprouter.New()
	NewBookingHandler(svc, cfg).RegisterRoutes(router)
	return router
}

func createBody() string {
	return `{
		"room_id": "64a0b1c2d3e4f5a6b7c8d9e0",
		"user_id": "64a0b1c2d3e4f5a6b7c8d9e1",
		"title": "Standup",
		"start_time": "2026-03-10T10:00:00Z",
		"end_time": "2026-03-10T11:00:00Z",
		"attendee_count": 3
	}`
}

func TestCreateBookingEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{})

		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody()))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp struct {
			Data    model.Reservation `json:"data"`
			Warning string            `json:"warning"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data.ID == "" {
			t.Fatal("expected reservation ID in response")
		}
		if resp.Warning != "" {
			t.Fatalf("expected no warning, got %q", resp.Warning)
		}
	})

	t.Run("created with warning", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{createWarning: "notification could not be sent"})

		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody()))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "notification could not be sent") {
			t.Fatalf("expected warning in response, got %s", rec.Body.String())
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{})

		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("slot conflict maps to 409", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{createErr: apperrors.SlotConflict("room is already booked")})

		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody()))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), apperrors.CodeSlotConflict) {
			t.Fatalf("expected %s in body, got %s", apperrors.CodeSlotConflict, rec.Body.String())
		}
	})

	t.Run("policy violation maps to 422", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{createErr: apperrors.PolicyViolation("min_duration", "booking must be at least 30 minutes")})

		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody()))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})
}

func TestCancelBookingEndpoint(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		svc := &stubBookingService{}
		router := newTestRouter(svc)

		body := `{"user_id": "64a0b1c2d3e4f5a6b7c8d9e1"}`
		req := httptest.NewRequest(http.MethodDelete, "/bookings/64a0b1c2d3e4f5a6b7c8d9e9", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.cancelledID != "64a0b1c2d3e4f5a6b7c8d9e9" {
			t.Fatalf("expected service called with path ID, got %q", svc.cancelledID)
		}
		if svc.requesterID != "64a0b1c2d3e4f5a6b7c8d9e1" {
			t.Fatalf("expected requester from body, got %q", svc.requesterID)
		}
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{cancelErr: apperrors.Forbidden("you can only cancel your own bookings")})

		body := `{"user_id": "64a0b1c2d3e4f5a6b7c8d9e2"}`
		req := httptest.NewRequest(http.MethodDelete, "/bookings/64a0b1c2d3e4f5a6b7c8d9e9", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestListBookingEndpoints(t *testing.T) {
	reservations := []*model.Reservation{
		{ID: "64a0b1c2d3e4f5a6b7c8d901", Title: "Standup"},
		{ID: "64a0b1c2d3e4f5a6b7c8d902", Title: "Retro"},
	}

	t.Run("by user", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{listResult: reservations})

		req := httptest.NewRequest(http.MethodGet, "/bookings/user/64a0b1c2d3e4f5a6b7c8d9e1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp struct {
			Count int `json:"count"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Count != 2 {
			t.Fatalf("expected count 2, got %d", resp.Count)
		}
	})

	t.Run("empty list is not null", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{})

		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"data":[]`) {
			t.Fatalf("expected empty array, got %s", rec.Body.String())
		}
	})

	t.Run("invalid date parameter", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{})

		req := httptest.NewRequest(http.MethodGet, "/bookings?date=2026-13-40", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("by room with date", func(t *testing.T) {
		router := newTestRouter(&stubBookingService{listResult: reservations})

		req := httptest.NewRequest(http.MethodGet, "/bookings/room/64a0b1c2d3e4f5a6b7c8d9e0?date=2026-03-10", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
