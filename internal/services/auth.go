// Package services contains the application services of the admin core: the
// session service and one CRUD service per entity type. These are the only
// seams the UI layer is allowed to depend on.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/visitdesk/visitdesk/internal/access"
	"github.com/visitdesk/visitdesk/internal/api"
	"github.com/visitdesk/visitdesk/internal/audit"
	"github.com/visitdesk/visitdesk/internal/common"
	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/logging"
	"github.com/visitdesk/visitdesk/internal/models"
	"github.com/visitdesk/visitdesk/internal/token"
)

// Storage keys owned by the session service.
const (
	authTokenKey    = "authToken"
	rememberUserKey = "rememberUser"
)

// Authorizer exposes the current session identity to the domain services so
// permission checks happen again at the mutation boundary, not only when the
// UI decides what to render.
type Authorizer interface {
	CurrentUser() (models.User, bool)
}

// AuthService runs the session state machine: Anonymous → Authenticating →
// Authenticated → Anonymous. The session slot is single-valued and replaced
// wholesale on login/logout.
//
// Contract:
//   - Login: authenticate against the backend, issue a session token, persist
//     it under authToken. common.ErrInvalidCredentials on mismatch.
//   - Restore: revalidate a persisted token on startup; any failure degrades
//     the session to anonymous instead of propagating.
//   - ValidateToken: decrypt, check expiry, then re-resolve the user against
//     the directory; role and permissions are refreshed, never trusted from
//     the token beyond identity and expiry.
//   - Logout: always succeeds locally; the audit write is best-effort.
//   - UpdateProfile/ResetPassword: out-of-band operations that do not touch
//     the session state machine; a successful profile update replaces the
//     in-memory user snapshot.
type AuthService interface {
	Authorizer
	Login(ctx context.Context, email, password string, rememberMe bool) (models.User, error)
	Restore(ctx context.Context) (models.User, error)
	ValidateToken(ctx context.Context, tok string) (models.User, error)
	Logout(ctx context.Context)
	HasPermission(permission string) bool
	RememberedEmail(ctx context.Context) string
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.User, error)
	ResetPassword(ctx context.Context, email string) error
}

type authService struct {
	api   api.Client
	store *kvstore.Store
	audit *audit.Logger
	codec *token.Codec
	ttl   time.Duration
	log   logging.Logger
	now   func() time.Time

	mu      sync.Mutex
	current *models.User
}

func NewAuthService(apiClient api.Client, store *kvstore.Store, auditLog *audit.Logger, codec *token.Codec, ttl time.Duration, log logging.Logger) AuthService {
	return &authService{
		api:   apiClient,
		store: store,
		audit: auditLog,
		codec: codec,
		ttl:   ttl,
		log:   log,
		now:   time.Now,
	}
}

func (s *authService) Login(ctx context.Context, email, password string, rememberMe bool) (models.User, error) {
	user, err := s.api.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	claims := token.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		Exp:    s.now().Add(s.ttl).UnixMilli(),
	}
	tok, err := s.codec.Seal(claims)
	if err != nil {
		return models.User{}, fmt.Errorf("issue token: %w", err)
	}

	// the session lives in memory even if persisting the token fails
	s.store.Set(ctx, authTokenKey, tok)

	if rememberMe {
		s.store.Set(ctx, rememberUserKey, user.Email)
	} else {
		s.store.Remove(ctx, rememberUserKey)
	}

	s.setCurrent(user)
	s.audit.Log(ctx, models.AuditLogin, "user logged in", map[string]string{"email": user.Email})
	return user, nil
}

func (s *authService) ValidateToken(ctx context.Context, tok string) (models.User, error) {
	var claims token.Claims
	if err := s.codec.Open(tok, &claims); err != nil {
		return models.User{}, err
	}
	if !claims.ExpiresAt().After(s.now()) {
		return models.User{}, common.ErrTokenExpired
	}

	user, err := s.api.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.User{}, common.ErrInvalidToken
		}
		return models.User{}, fmt.Errorf("resolve user: %w", err)
	}
	return user, nil
}

func (s *authService) Restore(ctx context.Context) (models.User, error) {
	var tok string
	if !s.store.Get(ctx, authTokenKey, &tok) {
		return models.User{}, common.ErrUnauthorized
	}

	user, err := s.ValidateToken(ctx, tok)
	if err != nil {
		// a stale token is removed so the next start skips straight to anonymous
		s.log.Info(ctx, "stored session rejected", "err", err)
		s.store.Remove(ctx, authTokenKey)
		s.clearCurrent()
		return models.User{}, err
	}

	s.setCurrent(user)
	return user, nil
}

func (s *authService) Logout(ctx context.Context) {
	user, loggedIn := s.CurrentUser()

	s.clearCurrent()
	s.store.Remove(ctx, authTokenKey)

	if loggedIn {
		s.audit.Log(ctx, models.AuditLogout, "user logged out", map[string]string{"email": user.Email})
	}
}

func (s *authService) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

func (s *authService) HasPermission(permission string) bool {
	user, ok := s.CurrentUser()
	if !ok {
		return false
	}
	return access.HasPermission(user, permission)
}

func (s *authService) RememberedEmail(ctx context.Context) string {
	var email string
	s.store.Get(ctx, rememberUserKey, &email)
	return email
}

func (s *authService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.User, error) {
	current, ok := s.CurrentUser()
	if !ok {
		return models.User{}, common.ErrUnauthorized
	}

	updated, err := s.api.UpdateProfile(ctx, current.ID, patch)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	s.setCurrent(updated)
	s.audit.Log(ctx, models.AuditProfileUpdate, "profile updated", map[string]string{"email": updated.Email})
	return updated, nil
}

func (s *authService) ResetPassword(ctx context.Context, email string) error {
	if err := s.api.ResetPassword(ctx, email); err != nil {
		return err
	}
	s.audit.Log(ctx, models.AuditPasswordChange, "password reset requested", map[string]string{"email": email})
	return nil
}

func (s *authService) setCurrent(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
}

func (s *authService) clearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
