package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/agamlatiff/upskills-sub001/internal/observability"
)

// Namespace is a logically distinct cache bucket for one resource kind.
type Namespace string

// Cache namespaces. CourseDetail holds one entry per slug; all others hold a
// single entry under the empty key.
const (
	NamespaceCourseList   Namespace = "course_list"
	NamespaceCourseDetail Namespace = "course_detail"
	NamespacePricing      Namespace = "pricing_plans"
	NamespaceTestimonials Namespace = "testimonials"
)

// DefaultTTL is the freshness window shared by all namespaces.
const DefaultTTL = 5 * time.Minute

// Config holds cache store configuration.
type Config struct {
	// TTL is the freshness window. Zero means DefaultTTL.
	TTL time.Duration

	// Persister stores the serialized cache across restarts. Nil disables
	// persistence (memory only).
	Persister Persister

	// Logger receives persistence failures. Nil means slog.Default().
	Logger *slog.Logger

	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

// Store is the single source of truth for whether a previously fetched value
// is still fresh enough to reuse. Reads of expired entries report absence;
// the entry stays in place until overwritten or invalidated.
type Store struct {
	mu         sync.RWMutex
	ttl        time.Duration
	now        func() time.Time
	persister  Persister
	logger     *slog.Logger
	namespaces map[Namespace]map[string]Entry
}

// NewStore creates a cache store and rehydrates it from the configured
// persister. Missing or malformed persisted state loads as empty; entries
// older than the TTL survive rehydration physically but read as absent.
func NewStore(cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Store{
		ttl:        cfg.TTL,
		now:        cfg.Now,
		persister:  cfg.Persister,
		logger:     cfg.Logger,
		namespaces: make(map[Namespace]map[string]Entry),
	}
	s.rehydrate()
	return s
}

// Set stores value under (namespace, key) with StoredAt set to now. Single
// entry namespaces use key "". Set never fails; a value that cannot be
// serialized is dropped with a log line.
func (s *Store) Set(ns Namespace, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("cache set: marshal value",
			slog.String("namespace", string(ns)),
			slog.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	bucket, ok := s.namespaces[ns]
	if !ok {
		bucket = make(map[string]Entry)
		s.namespaces[ns] = bucket
	}
	bucket[key] = Entry{Data: data, StoredAt: s.now()}
	s.mu.Unlock()

	s.persist()
}

// GetRaw returns the raw payload stored under (namespace, key) if a fresh
// entry exists.
func (s *Store) GetRaw(ns Namespace, key string) (json.RawMessage, bool) {
	s.mu.RLock()
	entry, ok := s.namespaces[ns][key]
	s.mu.RUnlock()

	if !ok || !entry.FreshAt(s.now(), s.ttl) {
		observability.CacheMisses.WithLabelValues(string(ns)).Inc()
		return nil, false
	}

	observability.CacheHits.WithLabelValues(string(ns)).Inc()
	return entry.Data, true
}

// Get decodes the fresh entry under (namespace, key) into a T. A stored
// payload that no longer decodes is treated as absent.
func Get[T any](s *Store, ns Namespace, key string) (T, bool) {
	var value T

	data, ok := s.GetRaw(ns, key)
	if !ok {
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("cache get: unmarshal entry",
			slog.String("namespace", string(ns)),
			slog.String("error", err.Error()),
		)
		return value, false
	}
	return value, true
}

// Invalidate removes every entry in the namespace. For the course detail
// namespace this clears the whole per-slug mapping; individual slugs are
// never evicted on their own.
func (s *Store) Invalidate(ns Namespace) {
	s.mu.Lock()
	delete(s.namespaces, ns)
	s.mu.Unlock()

	s.persist()
}

// ClearAll removes every namespace's entries.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.namespaces = make(map[Namespace]map[string]Entry)
	s.mu.Unlock()

	s.persist()
}

// Len returns the number of entries in a namespace, fresh or not.
func (s *Store) Len(ns Namespace) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.namespaces[ns])
}

// persist writes the whole cache state through the persister. Failures are
// logged and swallowed: cache operations never fail.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}

	s.mu.RLock()
	data, err := json.Marshal(s.namespaces)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("cache persist: marshal state", slog.String("error", err.Error()))
		return
	}

	if err := s.persister.Save(context.Background(), data); err != nil {
		s.logger.Error("cache persist: save state", slog.String("error", err.Error()))
	}
}

// rehydrate loads persisted state. Anything unreadable resets to empty.
func (s *Store) rehydrate() {
	if s.persister == nil {
		return
	}

	data, err := s.persister.Load(context.Background())
	if err != nil {
		s.logger.Warn("cache rehydrate: load state", slog.String("error", err.Error()))
		return
	}
	if len(data) == 0 {
		return
	}

	var namespaces map[Namespace]map[string]Entry
	if err := json.Unmarshal(data, &namespaces); err != nil {
		s.logger.Warn("cache rehydrate: corrupt state, starting empty",
			slog.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	s.namespaces = namespaces
	s.mu.Unlock()
}
