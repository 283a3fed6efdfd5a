package user

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"newsroom/internal/domain/entity"
	"newsroom/internal/repository"
)

// maxUsernameLength bounds usernames at signup.
const maxUsernameLength = 150

// RegisterInput represents the input parameters for creating an account.
type RegisterInput struct {
	Username string
	Password string
}

// Service provides account use cases. The password policy fields come
// from the security configuration.
type Service struct {
	Repo repository.UserRepository

	// MinPasswordLength is the minimum accepted password length in runes.
	MinPasswordLength int

	// WeakPasswords lists passwords rejected at signup regardless of length.
	WeakPasswords []string
}

// Register creates a new account with a bcrypt-hashed password.
// Returns a ValidationError when the username is taken or the password
// fails the policy.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Username == "" {
		return nil, &entity.ValidationError{Field: "username", Message: "is required"}
	}
	if utf8.RuneCountInString(in.Username) > maxUsernameLength {
		return nil, &entity.ValidationError{Field: "username", Message: fmt.Sprintf("must be at most %d characters", maxUsernameLength)}
	}
	if err := s.checkPassword(in.Password); err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("register: check username: %w", err)
	}
	if taken {
		return nil, &entity.ValidationError{Field: "username", Message: "is already taken"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	u := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return u, nil
}

// Authenticate verifies a username/password pair.
// Returns ErrInvalidCredentials for both unknown usernames and wrong
// passwords so callers cannot probe for registered accounts.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: compare password: %w", err)
	}
	return u, nil
}

// Get retrieves a user by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// checkPassword applies the password policy.
func (s *Service) checkPassword(password string) error {
	minLen := s.MinPasswordLength
	if minLen <= 0 {
		minLen = 8
	}

	if utf8.RuneCountInString(password) < minLen {
		return &entity.ValidationError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minLen)}
	}
	for _, weak := range s.WeakPasswords {
		if password == weak {
			return &entity.ValidationError{Field: "password", Message: "is too common"}
		}
	}
	return nil
}
