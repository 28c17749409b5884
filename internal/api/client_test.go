package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agamlatiff/upskills-sub001/internal/auth"
	"github.com/agamlatiff/upskills-sub001/internal/domain"
	apperrors "github.com/agamlatiff/upskills-sub001/pkg/errors"
	"github.com/agamlatiff/upskills-sub001/pkg/httpclient"
	"github.com/agamlatiff/upskills-sub001/pkg/logger"
)

// newFakeAPI spins up a chi-routed stand-in for the remote catalog API.
func newFakeAPI(t *testing.T, register func(r chi.Router)) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	register(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(baseURL string, tokens auth.TokenProvider) *Client {
	doer := httpclient.New(httpclient.Config{
		Timeout:         5 * time.Second,
		MaxRetries:      0,
		MaxConnsPerHost: 10,
	})
	return New(baseURL, doer, tokens, logger.NewWithWriter("test", "error", io.Discard))
}

func TestCourses_BarePayload(t *testing.T) {
	server := newFakeAPI(t, func(r chi.Router) {
		r.Get("/courses", func(w http.ResponseWriter, req *http.Request) {
			_ = json.NewEncoder(w).Encode([]domain.CategoryGroup{
				{Category: "Programming", Courses: []domain.Course{{ID: 1, Title: "Go Basics"}}},
			})
		})
	})

	client := newTestClient(server.URL, nil)
	groups, err := client.Courses(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Programming", groups[0].Category)
}

func TestCourses_EnvelopedPayload(t *testing.T) {
	server := newFakeAPI(t, func(r chi.Router) {
		r.Get("/courses", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(`{"data":[{"category":"Design","courses":[{"id":2,"title":"Figma 101"}]}]}`))
		})
	})

	client := newTestClient(server.URL, nil)
	groups, err := client.Courses(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Design", groups[0].Category)
	assert.Equal(t, "Figma 101", groups[0].Courses[0].Title)
}

func TestCourse_BySlug(t *testing.T) {
	server := newFakeAPI(t, func(r chi.Router) {
		r.Get("/courses/{slug}", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "go-basics", chi.URLParam(req, "slug"))
			_, _ = w.Write([]byte(`{"data":{"id":1,"slug":"go-basics","title":"Go Basics"}}`))
		})
	})

	client := newTestClient(server.URL, nil)
	course, err := client.Course(context.Background(), "go-basics")

	require.NoError(t, err)
	assert.Equal(t, "Go Basics", course.Title)
}

func TestCourse_NotFound(t *testing.T) {
	server := newFakeAPI(t, func(r chi.Router) {
		r.Get("/courses/{slug}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"course not found"}`))
		})
	})

	client := newTestClient(server.URL, nil)
	_, err := client.Course(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestSearchCourses_KeywordForwarded(t *testing.T) {
	server := newFakeAPI(t, func(r chi.Router) {
		r.Get("/courses/search", func(w http.ResponseWriter, req *http.Request) {
			keyword := req.URL.Query().Get("search")
			assert.Equal(t, "go routines", keyword)
			_ = json.NewEncoder(w).Encode(searchResponse{
				Keyword: keyword,
				Courses: []domain.Course{{ID: 1, Title: "Mastering Go Concurrency"}},
			})
		})
	})

	client := newTestClient(server.URL, nil)
	courses, err := client.SearchCourses(context.Background(), "go routines")

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Mastering Go Concurrency", courses[0].Title)
}

func TestRequestHeaders(t *testing.T) {
	server := newFakeAPI(t, func(r chi.Router) {
		r.Get("/pricing", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
			assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			_, _ = w.Write([]byte(`[]`))
		})
	})

	client := newTestClient(server.URL, auth.NewStaticProvider("secret-token"))
	_, err := client.PricingPlans(context.Background())
	require.NoError(t, err)
}

func TestNoAuthorizationHeaderWithoutCredential(t *testing.T) {
	server := newFakeAPI(t, func(r chi.Router) {
		r.Get("/pricing", func(w http.ResponseWriter, req *http.Request) {
			assert.Empty(t, req.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[]`))
		})
	})

	client := newTestClient(server.URL, nil)
	_, err := client.PricingPlans(context.Background())
	require.NoError(t, err)
}

func TestAddWishlist(t *testing.T) {
	server := newFakeAPI(t, func(r chi.Router) {
		r.Post("/wishlist", func(w http.ResponseWriter, req *http.Request) {
			var body map[string]int
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, 7, body["course_id"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(domain.WishlistItem{
				ID:     41,
				Course: domain.Course{ID: 7, Title: "Go Basics"},
			})
		})
	})

	client := newTestClient(server.URL, auth.NewStaticProvider("tok"))
	item, err := client.AddWishlist(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 41, item.ID)
	assert.Equal(t, 7, item.Course.ID)
}

func TestRemoveWishlist(t *testing.T) {
	var called bool
	server := newFakeAPI(t, func(r chi.Router) {
		r.Delete("/wishlist/{courseID}", func(w http.ResponseWriter, req *http.Request) {
			called = true
			assert.Equal(t, "7", chi.URLParam(req, "courseID"))
			w.WriteHeader(http.StatusNoContent)
		})
	})

	client := newTestClient(server.URL, auth.NewStaticProvider("tok"))
	require.NoError(t, client.RemoveWishlist(context.Background(), 7))
	assert.True(t, called)
}

func TestUnmarshalPayload(t *testing.T) {
	var out []int

	require.NoError(t, unmarshalPayload([]byte(`[1,2,3]`), &out))
	assert.Equal(t, []int{1, 2, 3}, out)

	out = nil
	require.NoError(t, unmarshalPayload([]byte(`{"data":[4,5]}`), &out))
	assert.Equal(t, []int{4, 5}, out)
}

func TestUnmarshalPayload_NullData(t *testing.T) {
	var out map[string]any
	require.NoError(t, unmarshalPayload([]byte(`{"data":null}`), &out))
	assert.Equal(t, map[string]any{"data": nil}, out)
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "GET /courses", endpointLabel(http.MethodGet, "/courses"))
	assert.Equal(t, "GET /courses/{slug}", endpointLabel(http.MethodGet, "/courses/go-basics"))
	assert.Equal(t, "GET /courses/search", endpointLabel(http.MethodGet, "/courses/search?search=go"))
	assert.Equal(t, "DELETE /wishlist/{id}", endpointLabel(http.MethodDelete, "/wishlist/7"))
}
