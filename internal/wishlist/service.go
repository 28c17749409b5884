package wishlist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/agamlatiff/upskills-sub001/internal/auth"
	"github.com/agamlatiff/upskills-sub001/internal/domain"
	apperrors "github.com/agamlatiff/upskills-sub001/pkg/errors"
)

// API is the subset of the catalog API client the service depends on.
type API interface {
	Wishlist(ctx context.Context) ([]domain.WishlistItem, error)
	AddWishlist(ctx context.Context, courseID int) (*domain.WishlistItem, error)
	RemoveWishlist(ctx context.Context, courseID int) error
}

// Service owns the user's wishlist membership state. Toggles wait for the
// network call to resolve before mutating local state, so the local set never
// disagrees with the server after a failed request. Wishlist state is
// per-session and never cached across restarts.
type Service struct {
	api    API
	tokens auth.TokenProvider
	logger *slog.Logger

	mu    sync.RWMutex
	items map[int]domain.WishlistItem // keyed by course id
}

// NewService creates a wishlist service.
func NewService(api API, tokens auth.TokenProvider, logger *slog.Logger) *Service {
	if tokens == nil {
		tokens = auth.NoCredential{}
	}
	return &Service{
		api:    api,
		tokens: tokens,
		logger: logger,
		items:  make(map[int]domain.WishlistItem),
	}
}

// Load fetches the wishlist from the server and replaces local state. Without
// a credential it resets to empty without a network call.
func (s *Service) Load(ctx context.Context) error {
	if _, ok := s.tokens.Token(); !ok {
		s.mu.Lock()
		s.items = make(map[int]domain.WishlistItem)
		s.mu.Unlock()
		return nil
	}

	items, err := s.api.Wishlist(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load wishlist failed", slog.String("error", err.Error()))
		return fmt.Errorf("load wishlist: %w", err)
	}

	byCourse := make(map[int]domain.WishlistItem, len(items))
	for _, item := range items {
		byCourse[item.Course.ID] = item
	}

	s.mu.Lock()
	s.items = byCourse
	s.mu.Unlock()
	return nil
}

// Toggle flips membership for a course: add when absent, remove when present.
// The local set is only mutated after the server confirms; on failure the
// error is returned and state stays as it was. Without a credential Toggle is
// a no-op returning ErrUnauthorized.
func (s *Service) Toggle(ctx context.Context, courseID int) error {
	if _, ok := s.tokens.Token(); !ok {
		return apperrors.ErrUnauthorized
	}

	if s.IsWishlisted(courseID) {
		return s.remove(ctx, courseID)
	}
	return s.add(ctx, courseID)
}

func (s *Service) add(ctx context.Context, courseID int) error {
	item, err := s.api.AddWishlist(ctx, courseID)
	if err != nil {
		s.logger.WarnContext(ctx, "add wishlist failed",
			slog.Int("course_id", courseID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("add wishlist: %w", err)
	}

	s.mu.Lock()
	s.items[courseID] = *item
	s.mu.Unlock()
	return nil
}

func (s *Service) remove(ctx context.Context, courseID int) error {
	if err := s.api.RemoveWishlist(ctx, courseID); err != nil {
		s.logger.WarnContext(ctx, "remove wishlist failed",
			slog.Int("course_id", courseID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("remove wishlist: %w", err)
	}

	s.mu.Lock()
	delete(s.items, courseID)
	s.mu.Unlock()
	return nil
}

// IsWishlisted reports whether the course is in the local wishlist.
func (s *Service) IsWishlisted(courseID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[courseID]
	return ok
}

// Items returns the wishlist items in no particular order.
func (s *Service) Items() []domain.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.WishlistItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out
}

// Clear drops local wishlist state without touching the server. Used on
// sign-out.
func (s *Service) Clear() {
	s.mu.Lock()
	s.items = make(map[int]domain.WishlistItem)
	s.mu.Unlock()
}
