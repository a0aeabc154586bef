package service

import (
	"context"
	"io"
	"testing"

	userserrors "roomly/internal/users/errors"
	"roomly/internal/users/validator"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type stubUserRepo struct {
	users     map[string]*model.User
	createErr error
	findErr   error
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = "64a0b1c2d3e4f5a6b7c8d9e1"
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	user, ok := s.users[id]
	if !ok {
		return nil, userserrors.ErrNotFound
	}
	return user, nil
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	var result []*model.User
	for _, user := range s.users {
		result = append(result, user)
	}
	return result, nil
}

func (s *stubUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newService(repo *stubUserRepo) UserService {
	cfg := &config.Config{Log: logger.New(logger.Config{Level: "error", Output: io.Discard})}
	return NewUserService(repo, validator.NewUserValidator(), cfg)
}

func TestCreateUser(t *testing.T) {
	t.Run("success normalizes email", func(t *testing.T) {
		svc := newService(&stubUserRepo{})
		user := &model.User{Name: " Dana  Reyes ", Email: " Dana@Example.COM "}

		if err := svc.Create(context.Background(), user); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if user.Name != "Dana Reyes" {
			t.Fatalf("expected normalized name, got %q", user.Name)
		}
		if user.Email != "dana@example.com" {
			t.Fatalf("expected normalized email, got %q", user.Email)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := newService(&stubUserRepo{})

		err := svc.Create(context.Background(), &model.User{Name: "Dana", Email: "not-an-email"})
		if !apperrors.IsCode(err, apperrors.CodeValidation) {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := newService(&stubUserRepo{createErr: userserrors.ErrDuplicate})

		err := svc.Create(context.Background(), &model.User{Name: "Dana", Email: "dana@example.com"})
		if !apperrors.IsCode(err, apperrors.CodeConflict) {
			t.Fatalf("expected CONFLICT, got %v", err)
		}
	})
}

func TestGetUserByID(t *testing.T) {
	known := &model.User{ID: "64a0b1c2d3e4f5a6b7c8d9e1", Name: "Dana", Email: "dana@example.com"}
	svc := newService(&stubUserRepo{users: map[string]*model.User{known.ID: known}})

	t.Run("found", func(t *testing.T) {
		user, err := svc.GetByID(context.Background(), known.ID)
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if user.Email != "dana@example.com" {
			t.Fatalf("unexpected user %+v", user)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "64a0b1c2d3e4f5a6b7c8dead")
		if !apperrors.IsCode(err, apperrors.CodeNotFound) {
			t.Fatalf("expected NOT_FOUND, got %v", err)
		}
	})
}
