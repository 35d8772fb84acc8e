// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/pkg/session"
)

var (
	ErrEmailExists       = errors.New("Email already exists!, try with a new one.")
	ErrNoUserRegistered  = errors.New("No user registered!, Start by creating an account.")
	ErrEmailNotFound     = errors.New("Email not found!")
	ErrIncorrectPassword = errors.New("Password is incorrect!")
	ErrNoUserToUpdate    = errors.New("No user found to update.")
)

// Service handles the mock account kept in each browser session
type Service struct {
	store  session.Store
	ttl    time.Duration
	locks  *session.Locker
	logger *logrus.Logger
}

// NewService creates a new user service
func NewService(store session.Store, ttl time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		ttl:    ttl,
		locks:  session.NewLocker(),
		logger: logger,
	}
}

// Register stores a new logged-in user, replacing any previous account with a different email
func (s *Service) Register(ctx context.Context, sessionID string, req *RegisterRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	existing, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Email == req.Email {
		return nil, ErrEmailExists
	}

	user := &User{
		Username:   req.Username,
		Email:      req.Email,
		Token:      req.Password,
		IsLoggedIn: true,
	}
	if err := s.save(ctx, sessionID, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"email":      user.Email,
	}).Info("User registered")

	return user, nil
}

// Login checks the credentials against the stored account and marks it logged in
func (s *Service) Login(ctx context.Context, sessionID string, req *LoginRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	user, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoUserRegistered
	}
	if user.Email != req.Email {
		return nil, ErrEmailNotFound
	}
	if user.Token != req.Password {
		return nil, ErrIncorrectPassword
	}

	user.IsLoggedIn = true
	if err := s.save(ctx, sessionID, user); err != nil {
		return nil, err
	}

	s.logger.WithField("session_id", sessionID).Info("User logged in")
	return user, nil
}

// Edit replaces username, email and password; the login flag is kept
func (s *Service) Edit(ctx context.Context, sessionID string, req *UpdateProfileRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	user, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoUserToUpdate
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Token = req.Password
	if err := s.save(ctx, sessionID, user); err != nil {
		return nil, err
	}

	s.logger.WithField("session_id", sessionID).Info("User profile updated")
	return user, nil
}

// Logout marks the stored account logged out. A session without an account is left alone.
func (s *Service) Logout(ctx context.Context, sessionID string) (*User, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	user, err := s.load(ctx, sessionID)
	if err != nil || user == nil {
		return nil, err
	}

	user.IsLoggedIn = false
	if err := s.save(ctx, sessionID, user); err != nil {
		return nil, err
	}

	s.logger.WithField("session_id", sessionID).Info("User logged out")
	return user, nil
}

// Current returns the session's account, or nil when none was registered
func (s *Service) Current(ctx context.Context, sessionID string) (*User, error) {
	return s.load(ctx, sessionID)
}

// IsLoggedIn reports whether the session's account is logged in
func (s *Service) IsLoggedIn(ctx context.Context, sessionID string) (bool, error) {
	user, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsLoggedIn, nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*User, error) {
	var user User
	err := s.store.GetJSON(ctx, session.Key("user", sessionID), &user)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *Service) save(ctx context.Context, sessionID string, user *User) error {
	if err := s.store.SetJSON(ctx, session.Key("user", sessionID), user, s.ttl); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
