// Package user holds storefront accounts and their bearer sessions.
package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

const (
	minPasswordLen = 8
	// AnonymousName is shown for reviews whose author has no display name.
	AnonymousName = "Anonymous User"
)

type Service struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time
}

func NewService(repo Repository, sessionTTL time.Duration) *Service {
	return &Service{repo: repo, ttl: sessionTTL, now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	log.WithField("user_id", u.ID).Info("[user] registered")
	return s.startSession(ctx, u)
}

func (s *Service) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.startSession(ctx, u)
}

func (s *Service) startSession(ctx context.Context, u *User) (*AuthResponse, error) {
	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	expires := s.now().Add(s.ttl).UTC()
	if err := s.repo.CreateSession(ctx, hashToken(token), u.ID, expires); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &AuthResponse{Token: token, ExpiresAt: expires, User: *u}, nil
}

// Authenticate resolves a bearer token to its user id.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	userID, err := s.repo.SessionUser(ctx, hashToken(token), s.now())
	if errors.Is(err, ErrNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return userID, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteSession(ctx, hashToken(token))
}

// DisplayName never fails; lookups that go wrong fall back to AnonymousName.
func (s *Service) DisplayName(ctx context.Context, userID string) string {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).WithField("user_id", userID).Warn("[user] display name lookup failed")
		}
		return AnonymousName
	}
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return AnonymousName
}
