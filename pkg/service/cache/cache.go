package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL is the cache lifetime applied when callers do not override it
const DefaultTTL = 5 * time.Minute

// Cache is a time-bounded memoization store. Values are opaque byte
// slices so that the backing store can be swapped (in-process map, Redis)
// without changing callers. A Get after expiry behaves as a miss.
type Cache interface {
	// Get returns the cached value for key, or false on miss or expiry
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for the given TTL. A non-positive TTL
	// falls back to DefaultTTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// GenerateKey builds a deterministic cache key from an operation prefix and
// a payload. Structurally identical payloads always produce identical keys;
// distinct payloads produce distinct keys with overwhelming probability
// (SHA-256 over the canonical JSON serialization).
func GenerateKey(prefix string, payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		// Payloads are plain structs and maps, so this should not happen.
		// Fall back to the fmt representation, which is still deterministic.
		data = []byte(fmt.Sprintf("%+v", payload))
	}

	h := sha256.New()
	h.Write([]byte(prefix))
	h.Write([]byte{':'})
	h.Write(data)

	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}
