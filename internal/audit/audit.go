// Package audit keeps the append-only, size-capped log of security-relevant
// actions. Entries are never mutated after append; only the retention cap
// removes them, oldest first. Both directions are fail-soft: a storage
// failure degrades a write to a no-op and a read to an empty result, visible
// only through the log and the diagnostic counters.
package audit

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/logging"
	"github.com/visitdesk/visitdesk/internal/models"
	"github.com/visitdesk/visitdesk/internal/obs"
)

// StorageKey is the key-value entry holding the log, newest appended last.
const StorageKey = "auditLogs"

// MaxEntries is the retention cap.
const MaxEntries = 1000

// ClientInfo is the coarse client metadata stamped onto every entry. The
// address is a placeholder until a real transport supplies one.
type ClientInfo struct {
	UserAgent string
	IP        string
}

// Filter narrows a Query. Zero Start/End mean unbounded; both bounds are
// inclusive. Action matches as a case-insensitive substring.
type Filter struct {
	Start  time.Time
	End    time.Time
	Action string
}

type Logger struct {
	store  *kvstore.Store
	log    logging.Logger
	client ClientInfo

	// browser/os parsed from the user agent once, reused per entry
	browser string
	os      string

	mu  sync.Mutex
	now func() time.Time
}

func New(store *kvstore.Store, log logging.Logger, client ClientInfo) *Logger {
	l := &Logger{store: store, log: log, client: client, now: time.Now}
	if client.UserAgent != "" {
		ua := useragent.New(client.UserAgent)
		name, version := ua.Browser()
		l.browser = strings.TrimSpace(name + " " + version)
		l.os = ua.OS()
	}
	return l
}

// WithClock substitutes the time source for tests.
func (l *Logger) WithClock(now func() time.Time) *Logger {
	l.now = now
	return l
}

// Log appends one entry and trims the log to the newest MaxEntries. Failure
// to persist is logged and swallowed; audit logging must never block the
// action it describes.
func (l *Logger) Log(ctx context.Context, action models.AuditAction, description string, metadata map[string]string) {
	entry := models.AuditEntry{
		ID:          uuid.NewString(),
		Action:      action,
		Description: description,
		Metadata:    metadata,
		Timestamp:   l.now().UTC(),
		UserAgent:   l.client.UserAgent,
		Browser:     l.browser,
		OS:          l.os,
		IP:          l.client.IP,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []models.AuditEntry
	l.store.Get(ctx, StorageKey, &entries)
	entries = append(entries, entry)

	if over := len(entries) - MaxEntries; over > 0 {
		entries = entries[over:]
		obs.AuditDropped(over)
	}

	if !l.store.Set(ctx, StorageKey, entries) {
		l.log.Warn(ctx, "audit entry not persisted", "action", action)
	}
}

// Query returns matching entries, most recent first. A storage failure
// yields an empty result.
func (l *Logger) Query(ctx context.Context, f Filter) []models.AuditEntry {
	var entries []models.AuditEntry
	l.store.Get(ctx, StorageKey, &entries)

	action := strings.ToLower(f.Action)

	out := []models.AuditEntry{}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !f.Start.IsZero() && e.Timestamp.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && e.Timestamp.After(f.End) {
			continue
		}
		if action != "" && !strings.Contains(strings.ToLower(string(e.Action)), action) {
			continue
		}
		out = append(out, e)
	}
	return out
}
