package cache

import (
	"encoding/json"
	"time"
)

// Entry wraps one cached payload with the time it was stored. Entries are
// immutable once written and replaced wholesale on refresh.
type Entry struct {
	Data     json.RawMessage `json:"data"`
	StoredAt time.Time       `json:"stored_at"`
}

// FreshAt reports whether the entry is still within its TTL at the given time.
func (e Entry) FreshAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.StoredAt) <= ttl
}
