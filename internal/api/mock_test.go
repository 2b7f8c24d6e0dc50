package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitdesk/visitdesk/internal/common"
	"github.com/visitdesk/visitdesk/internal/models"
)

func TestAuthenticate_SeededAdmin(t *testing.T) {
	c := NewMockClient(0)

	u, err := c.Authenticate(context.Background(), "admin@sistema.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.Equal(t, "1", u.ID)
}

func TestAuthenticate_EmailCaseInsensitive(t *testing.T) {
	c := NewMockClient(0)

	u, err := c.Authenticate(context.Background(), "ADMIN@Sistema.COM", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@sistema.com", u.Email)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	c := NewMockClient(0)

	_, err := c.Authenticate(context.Background(), "admin@sistema.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	c := NewMockClient(0)

	_, err := c.Authenticate(context.Background(), "nobody@sistema.com", "admin123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestUserByID(t *testing.T) {
	c := NewMockClient(0)
	ctx := context.Background()

	u, err := c.UserByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, u.Role)

	_, err = c.UserByID(ctx, "999")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateProfile_MergesAndPersists(t *testing.T) {
	c := NewMockClient(0)
	ctx := context.Background()

	phone := "+55 11 99999-0000"
	updated, err := c.UpdateProfile(ctx, "1", models.ProfilePatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Administrador", updated.Name)

	again, err := c.UserByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, phone, again.Phone)
}

func TestResetPassword(t *testing.T) {
	c := NewMockClient(0)
	ctx := context.Background()

	require.NoError(t, c.ResetPassword(ctx, "recepcao@sistema.com"))
	assert.ErrorIs(t, c.ResetPassword(ctx, "ghost@sistema.com"), common.ErrNotFound)
}

func TestDelay_HonorsContextCancellation(t *testing.T) {
	c := NewMockClient(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Authenticate(ctx, "admin@sistema.com", "admin123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestAddAccount_NewIdentityAuthenticates(t *testing.T) {
	c := NewMockClient(0)
	c.AddAccount(models.User{ID: "42", Email: "x@y.com", Role: models.RoleReceptionist}, "pw")

	u, err := c.Authenticate(context.Background(), "x@y.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "42", u.ID)
}
