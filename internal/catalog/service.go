package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agamlatiff/upskills-sub001/internal/cache"
	"github.com/agamlatiff/upskills-sub001/internal/domain"
)

// API is the subset of the catalog API client the service depends on.
type API interface {
	Courses(ctx context.Context) ([]domain.CategoryGroup, error)
	Course(ctx context.Context, slug string) (*domain.Course, error)
	SearchCourses(ctx context.Context, keyword string) ([]domain.Course, error)
	PricingPlans(ctx context.Context) ([]domain.PricingPlan, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
}

// Service coordinates catalog reads between the cache store and the remote
// API: cache first, network on miss or forced refresh, write-back on success.
// A fetch failure never touches the cache, so previously loaded data stays
// available to other consumers.
type Service struct {
	api    API
	cache  *cache.Store
	logger *slog.Logger
}

// NewService creates a catalog service.
func NewService(api API, store *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		api:    api,
		cache:  store,
		logger: logger,
	}
}

// Courses returns the category-grouped catalog. When force is false a fresh
// cached copy is served without a network call.
func (s *Service) Courses(ctx context.Context, force bool) ([]domain.CategoryGroup, error) {
	if !force {
		if groups, ok := cache.Get[[]domain.CategoryGroup](s.cache, cache.NamespaceCourseList, ""); ok {
			return groups, nil
		}
	}

	groups, err := s.api.Courses(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch course list failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch courses: %w", err)
	}

	s.cache.Set(cache.NamespaceCourseList, "", groups)
	return groups, nil
}

// Course returns one course by slug, cached per slug.
func (s *Service) Course(ctx context.Context, slug string, force bool) (*domain.Course, error) {
	if !force {
		if course, ok := cache.Get[domain.Course](s.cache, cache.NamespaceCourseDetail, slug); ok {
			return &course, nil
		}
	}

	course, err := s.api.Course(ctx, slug)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch course detail failed",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fetch course %q: %w", slug, err)
	}

	s.cache.Set(cache.NamespaceCourseDetail, slug, course)
	return course, nil
}

// Pricing returns the subscription tiers.
func (s *Service) Pricing(ctx context.Context, force bool) ([]domain.PricingPlan, error) {
	if !force {
		if plans, ok := cache.Get[[]domain.PricingPlan](s.cache, cache.NamespacePricing, ""); ok {
			return plans, nil
		}
	}

	plans, err := s.api.PricingPlans(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch pricing failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch pricing: %w", err)
	}

	s.cache.Set(cache.NamespacePricing, "", plans)
	return plans, nil
}

// Testimonials returns student testimonials.
func (s *Service) Testimonials(ctx context.Context, force bool) ([]domain.Testimonial, error) {
	if !force {
		if items, ok := cache.Get[[]domain.Testimonial](s.cache, cache.NamespaceTestimonials, ""); ok {
			return items, nil
		}
	}

	items, err := s.api.Testimonials(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch testimonials failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch testimonials: %w", err)
	}

	s.cache.Set(cache.NamespaceTestimonials, "", items)
	return items, nil
}

// Search runs a server-side search. Results are never cached; a blank keyword
// short-circuits to an empty result set without a network call.
func (s *Service) Search(ctx context.Context, keyword string) ([]domain.Course, error) {
	if strings.TrimSpace(keyword) == "" {
		return []domain.Course{}, nil
	}

	courses, err := s.api.SearchCourses(ctx, keyword)
	if err != nil {
		s.logger.WarnContext(ctx, "search failed",
			slog.String("keyword", keyword),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("search courses: %w", err)
	}
	return courses, nil
}

// InvalidateCourses drops cached course data (list and details), forcing the
// next read to hit the network.
func (s *Service) InvalidateCourses() {
	s.cache.Invalidate(cache.NamespaceCourseList)
	s.cache.Invalidate(cache.NamespaceCourseDetail)
}
