package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"newsroom/internal/domain/entity"
	userUC "newsroom/internal/usecase/user"
)

// minimal in-memory UserRepository
type stubRepo struct {
	data   map[int64]*entity.User
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.User{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	u.ID = s.nextID
	s.nextID++
	s.data[u.ID] = u
	return nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.data {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	u, err := s.GetByUsername(context.Background(), username)
	return u != nil, err
}

func newService() *userUC.Service {
	return &userUC.Service{
		Repo:              newStub(),
		MinPasswordLength: 8,
		WeakPasswords:     []string{"password", "12345678"},
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newService()

	u, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "Читатель",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected generated ID to be set")
	}
	if u.PasswordHash == "correct horse battery" {
		t.Error("expected password to be hashed, not stored verbatim")
	}

	got, err := svc.Authenticate(context.Background(), "Читатель", "correct horse battery")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("expected user %d, got %d", u.ID, got.ID)
	}
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	svc := newService()

	if _, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "Автор",
		Password: "correct horse battery",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "Автор", "wrong password"},
		{"unknown username", "Никто", "correct horse battery"},
		{"empty password", "Автор", ""},
		{"empty username", "", "correct horse battery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			if !errors.Is(err, userUC.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newService()

	tests := []struct {
		name  string
		in    userUC.RegisterInput
		field string
	}{
		{"missing username", userUC.RegisterInput{Password: "long enough pass"}, "username"},
		{"too long username", userUC.RegisterInput{Username: strings.Repeat("ф", 151), Password: "long enough pass"}, "username"},
		{"short password", userUC.RegisterInput{Username: "Автор", Password: "short"}, "password"},
		{"weak password", userUC.RegisterInput{Username: "Автор", Password: "12345678"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			var ve *entity.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, ve.Field)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newService()

	if _, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "Автор",
		Password: "long enough pass",
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "Автор",
		Password: "another long pass",
	})

	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "username" {
		t.Errorf("expected field username, got %q", ve.Field)
	}
}

func TestGet(t *testing.T) {
	svc := newService()

	u, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "Автор",
		Password: "long enough pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Get(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Username != "Автор" {
		t.Errorf("expected username to round-trip, got %q", got.Username)
	}

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, userUC.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, userUC.ErrInvalidUserID) {
		t.Errorf("expected ErrInvalidUserID, got %v", err)
	}
}
