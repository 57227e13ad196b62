package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// GenerateID returns a prefixed, lexicographically sortable identifier,
// e.g. GenerateID("SHR") -> "SHR01J9ZK...".
func GenerateID(prefix string) string {
	mu.Lock()
	defer mu.Unlock()
	return prefix + ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
