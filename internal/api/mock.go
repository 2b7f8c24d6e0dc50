package api

import (
	"context"
	"sync"
	"time"

	"github.com/visitdesk/visitdesk/internal/access"
	"github.com/visitdesk/visitdesk/internal/common"
	"github.com/visitdesk/visitdesk/internal/models"
)

type account struct {
	user     models.User
	salt     []byte
	verifier []byte
}

// MockClient is the in-process stand-in for the real backend: a seeded user
// directory with salted argon2id credentials and a configurable simulated
// round-trip delay. Safe for concurrent use.
type MockClient struct {
	latency time.Duration

	mu       sync.RWMutex
	accounts map[string]*account
}

// NewMockClient returns a client pre-seeded with the demo directory.
func NewMockClient(latency time.Duration) *MockClient {
	c := &MockClient{latency: latency, accounts: make(map[string]*account)}
	c.seed()
	return c
}

func (c *MockClient) seed() {
	c.AddAccount(models.User{
		ID:          "1",
		Email:       "admin@sistema.com",
		Name:        "Administrador",
		Role:        models.RoleAdmin,
		Permissions: []string{access.PermissionAll},
	}, "admin123")
	c.AddAccount(models.User{
		ID:    "2",
		Email: "gestor@sistema.com",
		Name:  "Carlos Gestor",
		Role:  models.RoleManager,
		Permissions: []string{
			access.PermSectors, access.PermDepartments,
			access.PermVisitors, access.PermVisits, access.PermReports,
		},
	}, "gestor123")
	c.AddAccount(models.User{
		ID:          "3",
		Email:       "recepcao@sistema.com",
		Name:        "Maria Recepção",
		Role:        models.RoleReceptionist,
		Permissions: []string{access.PermVisitors, access.PermVisits},
	}, "recepcao123")
}

// AddAccount registers a user with the given clear password. Used by the
// seed and by tests needing extra identities.
func (c *MockClient) AddAccount(user models.User, password string) {
	salt := newSalt()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts[user.ID] = &account{
		user:     user,
		salt:     salt,
		verifier: deriveKey([]byte(password), salt),
	}
}

// delay simulates the network round trip, resuming early on context
// cancellation.
func (c *MockClient) delay(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *MockClient) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	if err := c.delay(ctx); err != nil {
		return models.User{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, acc := range c.accounts {
		if !acc.user.EmailEquals(email) {
			continue
		}
		if !verifyPassword([]byte(password), acc.salt, acc.verifier) {
			return models.User{}, common.ErrInvalidCredentials
		}
		return acc.user, nil
	}
	return models.User{}, common.ErrInvalidCredentials
}

func (c *MockClient) UserByID(ctx context.Context, id string) (models.User, error) {
	if err := c.delay(ctx); err != nil {
		return models.User{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if acc, ok := c.accounts[id]; ok {
		return acc.user, nil
	}
	return models.User{}, common.ErrNotFound
}

func (c *MockClient) UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (models.User, error) {
	if err := c.delay(ctx); err != nil {
		return models.User{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	acc, ok := c.accounts[id]
	if !ok {
		return models.User{}, common.ErrNotFound
	}
	patch.Apply(&acc.user)
	return acc.user, nil
}

func (c *MockClient) ResetPassword(ctx context.Context, email string) error {
	if err := c.delay(ctx); err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, acc := range c.accounts {
		if acc.user.EmailEquals(email) {
			// the real backend sends a reset email here
			return nil
		}
	}
	return common.ErrNotFound
}
