package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/validator"
	"roomly/internal/notify"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"
)

// RoomDirectory resolves rooms for capacity checks. Implemented by the rooms
// service; errors it returns are passed through unchanged.
type RoomDirectory interface {
	GetByID(ctx context.Context, id string) (*model.Room, error)
}

// UserDirectory resolves requesters. Implemented by the users service.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type BookingService interface {
	// Create validates and commits a reservation. The returned warning is
	// non-empty when the reservation was stored but its notification could
	// not be delivered.
	Create(ctx context.Context, reservation *model.Reservation) (warning string, err error)
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	GetByUser(ctx context.Context, userID string) ([]*model.Reservation, error)
	GetByRoomOnDate(ctx context.Context, roomID string, date time.Time) ([]*model.Reservation, error)
	GetAllOnDate(ctx context.Context, date time.Time) ([]*model.Reservation, error)
	Cancel(ctx context.Context, id string, requesterID string) (*model.Reservation, string, error)
}

type bookingService struct {
	repo      repository.ReservationRepository
	lockRepo  repository.RoomLockRepository
	rooms     RoomDirectory
	users     UserDirectory
	validator *validator.ReservationValidator
	notifier  notify.Notifier
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.ReservationRepository,
	lockRepo repository.RoomLockRepository,
	rooms RoomDirectory,
	users UserDirectory,
	resValidator *validator.ReservationValidator,
	notifier notify.Notifier,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		rooms:     rooms,
		users:     users,
		validator: resValidator,
		notifier:  notifier,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *bookingService) Create(ctx context.Context, reservation *model.Reservation) (string, error) {
	s.sanitize(reservation)
	// IDs are assigned by the ledger; one taken from the request would also
	// be excluded from the overlap check below.
	reservation.ID = ""
	reservation.Status = model.StatusActive

	user, err := s.users.GetByID(ctx, reservation.UserID)
	if err != nil {
		return "", err
	}

	room, err := s.rooms.GetByID(ctx, reservation.RoomID)
	if err != nil {
		return "", err
	}

	if err := s.validator.Validate(reservation); err != nil {
		s.cfg.Log.Warn("Reservation validation failed", "error", err)
		return "", apperrors.Validation("Reservation validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.validator.ValidateTimePolicy(reservation.StartTime, reservation.EndTime, s.now()); err != nil {
		s.cfg.Log.Warn("Booking time policy violated",
			"room_id", reservation.RoomID,
			"start_time", reservation.StartTime,
			"end_time", reservation.EndTime,
			"error", err,
		)
		return "", err
	}

	if reservation.AttendeeCount > room.Capacity {
		return "", apperrors.CapacityExceeded(room.Capacity, reservation.AttendeeCount)
	}

	s.applyDerivedFields(reservation, user, room)

	if err := s.commitReservation(ctx, reservation); err != nil {
		return "", err
	}

	s.cfg.Log.Info("Reservation created successfully",
		"id", reservation.ID,
		"room_id", reservation.RoomID,
		"user_id", reservation.UserID,
		"start_time", reservation.StartTime,
		"end_time", reservation.EndTime,
	)

	// Best-effort: the reservation stands even if the event cannot be
	// published. The caller gets a warning instead of a failure.
	if err := s.notifier.NotifyCreated(ctx, reservation); err != nil {
		s.cfg.Log.Warn("Failed to publish booking created event",
			"id", reservation.ID,
			"error", err,
		)
		return "booking confirmed, but the confirmation notification could not be sent", nil
	}

	return "", nil
}

// commitReservation runs the conflict check and insert under a per-room
// advisory lock so two overlapping requests cannot both pass the check. The
// lock is released before notification dispatch.
func (s *bookingService) commitReservation(ctx context.Context, reservation *model.Reservation) error {
	lockID, err := s.acquireRoomLock(ctx, reservation.RoomID)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseRoomLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release room lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyNoOverlap(sessCtx, reservation); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, reservation); err != nil {
			return apperrors.Unavailable("reservation storage", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation",
			"room_id", reservation.RoomID,
			"error", err,
		)
		return err
	}

	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLedgerError(err, id)
	}

	return reservation, nil
}

func (s *bookingService) GetByUser(ctx context.Context, userID string) ([]*model.Reservation, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	reservations, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.cfg.Log.Error("Failed to list user reservations", "user_id", userID, "error", err)
		return nil, apperrors.Unavailable("reservation storage", err)
	}

	return reservations, nil
}

func (s *bookingService) GetByRoomOnDate(ctx context.Context, roomID string, date time.Time) ([]*model.Reservation, error) {
	if roomID == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	reservations, err := s.repo.FindByRoomOnDate(ctx, roomID, s.defaultDate(date))
	if err != nil {
		s.cfg.Log.Error("Failed to list room reservations", "room_id", roomID, "error", err)
		return nil, apperrors.Unavailable("reservation storage", err)
	}

	return reservations, nil
}

func (s *bookingService) GetAllOnDate(ctx context.Context, date time.Time) ([]*model.Reservation, error) {
	reservations, err := s.repo.FindAllOnDate(ctx, s.defaultDate(date))
	if err != nil {
		s.cfg.Log.Error("Failed to list daily reservations", "error", err)
		return nil, apperrors.Unavailable("reservation storage", err)
	}

	return reservations, nil
}

func (s *bookingService) Cancel(ctx context.Context, id string, requesterID string) (*model.Reservation, string, error) {
	if id == "" {
		return nil, "", apperrors.InvalidInput("Reservation ID cannot be empty")
	}
	if requesterID == "" {
		return nil, "", apperrors.InvalidInput("User ID is required")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", s.mapLedgerError(err, id)
	}

	// Only the original requester may cancel; ownership is fixed at
	// creation time.
	if existing.UserID != requesterID {
		return nil, "", apperrors.Forbidden("you can only cancel your own bookings")
	}

	cancelled, err := s.repo.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrAlreadyCancelled) {
			return nil, "", apperrors.Conflict("reservation is already cancelled")
		}
		return nil, "", s.mapLedgerError(err, id)
	}

	s.cfg.Log.Info("Reservation cancelled successfully",
		"id", cancelled.ID,
		"room_id", cancelled.RoomID,
		"user_id", cancelled.UserID,
	)

	if err := s.notifier.NotifyCancelled(ctx, cancelled); err != nil {
		s.cfg.Log.Warn("Failed to publish booking cancelled event",
			"id", cancelled.ID,
			"error", err,
		)
		return cancelled, "booking cancelled, but the cancellation notification could not be sent", nil
	}

	return cancelled, "", nil
}

// --- Helpers ---

func (s *bookingService) sanitize(r *model.Reservation) {
	r.Title = sanitizer.NormalizeTitle(r.Title)
	r.RequiredEquipment = sanitizer.NormalizeEquipmentTags(r.RequiredEquipment)
}

func (s *bookingService) applyDerivedFields(r *model.Reservation, user *model.User, room *model.Room) {
	r.UserName = user.Name
	r.UserEmail = user.Email
	r.RoomName = room.Name
	r.Date = model.DateOf(r.StartTime.In(s.now().Location()))
	r.DurationMinutes = int(r.EndTime.Sub(r.StartTime).Minutes())
}

func (s *bookingService) defaultDate(date time.Time) time.Time {
	if date.IsZero() {
		return model.DateOf(s.now())
	}
	return date
}

func (s *bookingService) verifyNoOverlap(ctx context.Context, reservation *model.Reservation) error {
	// No exclusion on the create path; excludeID exists for re-validating an
	// existing reservation.
	existing, err := s.repo.FindOverlapping(ctx, reservation.RoomID, reservation.StartTime, reservation.EndTime, "")
	if err != nil {
		return apperrors.Unavailable("reservation storage", err)
	}

	for _, r := range existing {
		if r.Overlaps(reservation.StartTime, reservation.EndTime) {
			return apperrors.SlotConflict("room is already booked for this time slot").WithDetails(map[string]any{
				"conflicting_start": r.StartTime.Format(time.RFC3339),
				"conflicting_end":   r.EndTime.Format(time.RFC3339),
			})
		}
	}
	return nil
}

func (s *bookingService) mapLedgerError(err error, id string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Reservation", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid reservation ID format")
	}
	return apperrors.Unavailable("reservation storage", err)
}

// acquireRoomLock creates the advisory lock serializing creates for one room.
// A duplicate key means another request is inside the critical section.
func (s *bookingService) acquireRoomLock(ctx context.Context, roomID string) (string, error) {
	lockID := fmt.Sprintf("room_lock_%s", roomID)

	lock := &model.RoomLock{
		ID:        lockID,
		ExpiresAt: s.now().Add(s.cfg.BookingLockTTL),
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.SlotConflict("this room is currently being booked by another request, please try again")
		}
		return "", apperrors.Unavailable("reservation storage", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseRoomLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}
