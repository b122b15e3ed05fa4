package service

import (
	"context"
	"errors"
	"strings"

	"github.com/quicknote/quicknote-go/internal/crypto"
	"github.com/quicknote/quicknote-go/internal/model"
	"github.com/quicknote/quicknote-go/internal/repository"
)

// MinPasswordLen is the registration password policy.
const MinPasswordLen = 6

var (
	ErrFieldsRequired      = errors.New("all fields are required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrEmailTaken          = errors.New("an account with that email already exists")
	ErrCredentialsRequired = errors.New("both email and password are required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// UserStore is the persistence surface AuthService depends on.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// AuthService handles registration, login, and profile changes.
type AuthService struct {
	users         UserStore
	sessionSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, sessionSecret string) *AuthService {
	return &AuthService{
		users:         users,
		sessionSecret: sessionSecret,
	}
}

// Register creates a new account. The caller is never logged in as a
// side effect; they are sent back to the login form.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return ErrFieldsRequired
	}
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	// Pre-check for a friendlier duplicate message; the unique index
	// on email is the real guarantee and is mapped to the same error.
	_, err := s.users.GetByEmail(ctx, model.NormalizeEmail(email))
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	user, err := model.NewUser(name, email, hash)
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login authenticates a user and returns the user together with a
// signed session token. A missing account and a wrong password both
// return ErrInvalidCredentials so the response never reveals which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", ErrCredentialsRequired
	}

	user, err := s.users.GetByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := crypto.SignSession(user.ID, s.sessionSecret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// UpdateProfile changes the display name and deliberately cannot touch
// the password; that path is ChangePassword.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &model.ValidationError{Field: "name", Reason: "name is required"}
	}

	return s.users.UpdateName(ctx, userID, name)
}

// ChangePassword hashes and stores a new password. It always hashes;
// there is no "unchanged field" shortcut.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, password string) error {
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, hash)
}
