// Package ids generates record identifiers. ULIDs are lexicographically
// sortable and carry a millisecond timestamp prefix, so collections stay
// roughly in creation order even after export.
package ids

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// New returns a ULID string for use as a domain-record id.
func New() string {
	return At(time.Now())
}

// At returns a ULID string whose timestamp component is taken from t.
func At(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
