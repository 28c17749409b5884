package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/agamlatiff/upskills-sub001/internal/auth"
	"github.com/agamlatiff/upskills-sub001/internal/domain"
	"github.com/agamlatiff/upskills-sub001/internal/observability"
	"github.com/agamlatiff/upskills-sub001/pkg/httpclient"
)

const serviceName = "catalog api"

// Doer executes HTTP requests. Satisfied by both httpclient.Client and
// httpclient.CircuitBreakerClient.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client talks to the remote catalog API.
type Client struct {
	baseURL string
	http    Doer
	tokens  auth.TokenProvider
	logger  *slog.Logger
}

// New creates an API client for the given base URL.
func New(baseURL string, doer Doer, tokens auth.TokenProvider, logger *slog.Logger) *Client {
	if tokens == nil {
		tokens = auth.NoCredential{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		tokens:  tokens,
		logger:  logger,
	}
}

// Courses fetches the full catalog, grouped by category.
func (c *Client) Courses(ctx context.Context) ([]domain.CategoryGroup, error) {
	var groups []domain.CategoryGroup
	if err := c.get(ctx, "/courses", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Course fetches a single course by slug.
func (c *Client) Course(ctx context.Context, slug string) (*domain.Course, error) {
	var course domain.Course
	if err := c.get(ctx, "/courses/"+url.PathEscape(slug), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

type searchResponse struct {
	Keyword string          `json:"keyword"`
	Courses []domain.Course `json:"courses"`
}

// SearchCourses runs a server-side full-text search over the catalog.
func (c *Client) SearchCourses(ctx context.Context, keyword string) ([]domain.Course, error) {
	var res searchResponse
	if err := c.get(ctx, "/courses/search?search="+url.QueryEscape(keyword), &res); err != nil {
		return nil, err
	}
	return res.Courses, nil
}

// PricingPlans fetches the subscription tiers.
func (c *Client) PricingPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	var plans []domain.PricingPlan
	if err := c.get(ctx, "/pricing", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Testimonials fetches student testimonials.
func (c *Client) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var items []domain.Testimonial
	if err := c.get(ctx, "/testimonials", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Wishlist fetches the current user's saved courses.
func (c *Client) Wishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if err := c.get(ctx, "/wishlist", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddWishlist saves a course and returns the created item.
func (c *Client) AddWishlist(ctx context.Context, courseID int) (*domain.WishlistItem, error) {
	payload, err := json.Marshal(map[string]int{"course_id": courseID})
	if err != nil {
		return nil, fmt.Errorf("marshal wishlist payload: %w", err)
	}

	var item domain.WishlistItem
	if err := c.do(ctx, http.MethodPost, "/wishlist", payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveWishlist deletes a saved course by its course id.
func (c *Client) RemoveWishlist(ctx context.Context, courseID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/wishlist/%d", courseID), nil, nil)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// do issues one API request, decoding the (possibly enveloped) payload into
// out when it is non-nil.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	endpoint := endpointLabel(method, path)
	observability.APIRequests.WithLabelValues(endpoint).Inc()

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		observability.APIErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("create %s request: %w", method, err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		observability.APIErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		observability.APIErrors.WithLabelValues(endpoint).Inc()
		return httpclient.ParseResponseError(resp, serviceName)
	}

	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.APIErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("read %s response: %w", path, err)
	}

	if err := unmarshalPayload(raw, out); err != nil {
		observability.APIErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// endpointLabel produces a low-cardinality metric label for a request.
func endpointLabel(method, path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 1 {
		// Collapse ids and slugs: /courses/go-basics -> /courses/{id}.
		switch parts[0] {
		case "courses":
			if parts[1] != "search" {
				parts[1] = "{slug}"
			}
		case "wishlist":
			parts[1] = "{id}"
		}
	}
	return method + " /" + strings.Join(parts, "/")
}
