package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session struct {
	userID  string
	expires time.Time
}

type memRepo struct {
	users    map[string]*User
	sessions map[string]session
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]*User{}, sessions: map[string]session{}}
}

func (m *memRepo) Create(ctx context.Context, u *User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrAlreadyExist
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *memRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) CreateSession(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error {
	m.sessions[tokenHash] = session{userID: userID, expires: expiresAt}
	return nil
}

func (m *memRepo) SessionUser(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	s, ok := m.sessions[tokenHash]
	if !ok || !s.expires.After(now) {
		return "", ErrNotFound
	}
	return s.userID, nil
}

func (m *memRepo) DeleteSession(ctx context.Context, tokenHash string) error {
	delete(m.sessions, tokenHash)
	return nil
}

func TestRegisterLoginAuthenticateLogout(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, time.Hour)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: " Asha@Example.com ", Password: "medjool-123"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", reg.User.Email)
	assert.NotEmpty(t, reg.Token)
	assert.NotContains(t, repo.sessions, reg.Token, "raw tokens are never stored")

	uid, err := svc.Authenticate(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, uid)

	login, err := svc.Login(ctx, LoginRequest{Email: "ASHA@example.com", Password: "medjool-123"})
	require.NoError(t, err)
	assert.NotEqual(t, reg.Token, login.Token)

	require.NoError(t, svc.Logout(ctx, login.Token))
	_, err = svc.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(ctx, reg.Token)
	assert.NoError(t, err, "other sessions survive logout")
}

func TestRegister_Rejects(t *testing.T) {
	svc := NewService(newMemRepo(), time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "", Email: "a@b.co", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Register(ctx, RegisterRequest{Name: "A", Email: "nope", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@b.co", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@b.co", Password: "long-enough"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterRequest{Name: "B", Email: "A@B.CO", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrAlreadyExist)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewService(newMemRepo(), time.Hour)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@b.co", Password: "long-enough"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "a@b.co", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, LoginRequest{Email: "x@b.co", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	svc := NewService(newMemRepo(), time.Minute)
	ctx := context.Background()
	reg, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@b.co", Password: "long-enough"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = svc.Authenticate(ctx, reg.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDisplayName(t *testing.T) {
	repo := newMemRepo()
	repo.users["u-1"] = &User{ID: "u-1", Name: "Asha"}
	repo.users["u-2"] = &User{ID: "u-2", Name: "  "}
	svc := NewService(repo, time.Hour)

	assert.Equal(t, "Asha", svc.DisplayName(context.Background(), "u-1"))
	assert.Equal(t, AnonymousName, svc.DisplayName(context.Background(), "u-2"))
	assert.Equal(t, AnonymousName, svc.DisplayName(context.Background(), "missing"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("medjool-123")
	require.NoError(t, err)
	assert.NotEqual(t, "medjool-123", hash)
	assert.True(t, CheckPassword(hash, "medjool-123"))
	assert.False(t, CheckPassword(hash, "medjool-124"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}
