package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/logging"
	"github.com/visitdesk/visitdesk/internal/models"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newLogger(t *testing.T) (*Logger, *kvstore.Store) {
	t.Helper()
	store := kvstore.NewStore(kvstore.NewMemoryRepository(), logging.NewTextLogger(io.Discard, slog.LevelDebug))

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	clock := func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}

	l := New(store, logging.NewTextLogger(io.Discard, slog.LevelDebug), ClientInfo{
		UserAgent: chromeUA,
		IP:        "127.0.0.1",
	}).WithClock(clock)
	return l, store
}

func TestLog_AppendsWithClientMetadata(t *testing.T) {
	l, _ := newLogger(t)
	ctx := context.Background()

	l.Log(ctx, models.AuditLogin, "user logged in", map[string]string{"email": "admin@sistema.com"})

	got := l.Query(ctx, Filter{})
	require.Len(t, got, 1)
	e := got[0]
	assert.Equal(t, models.AuditLogin, e.Action)
	assert.Equal(t, "user logged in", e.Description)
	assert.Equal(t, "admin@sistema.com", e.Metadata["email"])
	assert.Equal(t, chromeUA, e.UserAgent)
	assert.Contains(t, e.Browser, "Chrome")
	assert.Equal(t, "Windows 10", e.OS)
	assert.Equal(t, "127.0.0.1", e.IP)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
}

func TestLog_CapDropsOldestSilently(t *testing.T) {
	l, _ := newLogger(t)
	ctx := context.Background()

	for i := 0; i < MaxEntries+5; i++ {
		l.Log(ctx, models.AuditLogin, "entry", nil)
	}

	got := l.Query(ctx, Filter{})
	require.Len(t, got, MaxEntries)

	// newest first: the very last append is got[0]; the 5 oldest are gone
	assert.True(t, got[0].Timestamp.After(got[len(got)-1].Timestamp))
	first := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC).Add(1 * time.Minute)
	for _, e := range got {
		assert.True(t, e.Timestamp.After(first.Add(4*time.Minute)), "the 5 oldest entries must be dropped")
	}
}

func TestQuery_NewestFirst(t *testing.T) {
	l, _ := newLogger(t)
	ctx := context.Background()

	l.Log(ctx, models.AuditLogin, "first", nil)
	l.Log(ctx, models.AuditLogout, "second", nil)
	l.Log(ctx, models.AuditLogin, "third", nil)

	got := l.Query(ctx, Filter{})
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Description)
	assert.Equal(t, "first", got[2].Description)
}

func TestQuery_ActionSubstringCaseInsensitive(t *testing.T) {
	l, _ := newLogger(t)
	ctx := context.Background()

	l.Log(ctx, models.AuditLogin, "a", nil)
	l.Log(ctx, models.AuditLogout, "b", nil)
	l.Log(ctx, models.AuditPasswordChange, "c", nil)

	// "log" matches both LOGIN and LOGOUT
	assert.Len(t, l.Query(ctx, Filter{Action: "log"}), 2)
	assert.Len(t, l.Query(ctx, Filter{Action: "PASSWORD"}), 1)
	assert.Empty(t, l.Query(ctx, Filter{Action: "profile"}))
}

func TestQuery_DateBoundsInclusive(t *testing.T) {
	l, _ := newLogger(t)
	ctx := context.Background()

	// clock steps one minute per entry starting 08:01
	for i := 0; i < 5; i++ {
		l.Log(ctx, models.AuditLogin, "e", nil)
	}

	start := time.Date(2026, 8, 1, 8, 2, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 8, 4, 0, 0, time.UTC)
	got := l.Query(ctx, Filter{Start: start, End: end})
	require.Len(t, got, 3)
	assert.True(t, got[0].Timestamp.Equal(end), "end bound is inclusive")
	assert.True(t, got[2].Timestamp.Equal(start), "start bound is inclusive")
}

func TestLogAndQuery_FailSoftOnBrokenStorage(t *testing.T) {
	broken := kvstore.NewStore(failingRepo{}, logging.NewTextLogger(io.Discard, slog.LevelDebug))
	l := New(broken, logging.NewTextLogger(io.Discard, slog.LevelDebug), ClientInfo{})
	ctx := context.Background()

	// neither call may panic or error
	l.Log(ctx, models.AuditLogin, "lost", nil)
	assert.Empty(t, l.Query(ctx, Filter{}))
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) ([]byte, error) {
	return nil, assert.AnError
}
func (failingRepo) Set(context.Context, string, []byte) error { return assert.AnError }
func (failingRepo) Delete(context.Context, string) error      { return assert.AnError }
func (failingRepo) Clear(context.Context) error               { return assert.AnError }
