// Package storagekey mints opaque, sortable keys for attachment blobs.
package storagekey

import (
	mathrand "math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// New returns prefix followed by a lower-cased ULID. Keys minted by one
// process sort by creation time.
func New(prefix string) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return prefix + strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}

// Parse strips prefix and decodes the ULID part of key.
func Parse(prefix, key string) (ulid.ULID, error) {
	return ulid.ParseStrict(strings.ToUpper(strings.TrimPrefix(key, prefix)))
}
