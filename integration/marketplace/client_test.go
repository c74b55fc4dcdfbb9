package marketplace_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mbii55/servio-admin-sub000/core/apiclient"
	"github.com/Mbii55/servio-admin-sub000/integration/marketplace"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Bearer string
}

type recorder struct {
	mu       sync.Mutex
	requests []capturedRequest
}

func (r *recorder) add(req capturedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
}

func (r *recorder) all() []capturedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]capturedRequest(nil), r.requests...)
}

func (r *recorder) last(t *testing.T) capturedRequest {
	t.Helper()

	reqs := r.all()
	require.NotEmpty(t, reqs, "expected at least one request to reach the backend")
	return reqs[len(reqs)-1]
}

type staticCreds struct {
	token string
}

func (s staticCreds) Read(ctx context.Context) (string, bool) {
	return s.token, s.token != ""
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// setup wires a marketplace client through the real pipeline against a
// scripted backend, recording every request that arrives.
func setup(t *testing.T, respond http.HandlerFunc) (*marketplace.Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.add(capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   body,
			Bearer: r.Header.Get("Authorization"),
		})
		respond(w, r)
	}))
	t.Cleanup(srv.Close)

	api, err := apiclient.New(srv.URL, staticCreds{token: "tok_admin"})
	require.NoError(t, err)

	mkt, err := marketplace.New(api)
	require.NoError(t, err)
	return mkt, rec
}

func boolPtr(b bool) *bool { return &b }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil api", func(t *testing.T) {
		t.Parallel()

		_, err := marketplace.New(nil)
		require.ErrorIs(t, err, marketplace.ErrAPINil)
	})

	t.Run("wires every resource service", func(t *testing.T) {
		t.Parallel()

		api, err := apiclient.New("https://api.servio.test", staticCreds{})
		require.NoError(t, err)

		mkt, err := marketplace.New(api)
		require.NoError(t, err)
		assert.NotNil(t, mkt.Categories)
		assert.NotNil(t, mkt.Bookings)
		assert.NotNil(t, mkt.Providers)
		assert.NotNil(t, mkt.Services)
		assert.NotNil(t, mkt.Reviews)
		assert.NotNil(t, mkt.Documents)
	})
}

func TestCategoriesService(t *testing.T) {
	t.Parallel()

	t.Run("list encodes pagination and filters", func(t *testing.T) {
		t.Parallel()

		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"items": []map[string]any{
					{"id": uuid.NewString(), "name": "Cleaning", "slug": "cleaning", "active": true},
					{"id": uuid.NewString(), "name": "Plumbing", "slug": "plumbing", "active": true},
				},
				"total": 17, "page": 2, "per_page": 2,
			})
		})

		page, err := mkt.Categories.List(context.Background(), marketplace.ListParams{
			Page:    2,
			PerPage: 2,
			Filters: map[string]string{"active": "true"},
		})
		require.NoError(t, err)

		assert.Len(t, page.Items, 2)
		assert.Equal(t, 17, page.Total)
		assert.Equal(t, "Cleaning", page.Items[0].Name)

		req := rec.last(t)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/admin/categories", req.Path)
		assert.Equal(t, "2", req.Query.Get("page"))
		assert.Equal(t, "2", req.Query.Get("per_page"))
		assert.Equal(t, "true", req.Query.Get("active"))
		assert.Equal(t, "Bearer tok_admin", req.Bearer)
	})

	t.Run("create posts the input payload", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusCreated, map[string]any{
				"id": id.String(), "name": "Cleaning", "slug": "cleaning", "active": true,
			})
		})

		created, err := mkt.Categories.Create(context.Background(), marketplace.CategoryInput{Name: "Cleaning"})
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, "cleaning", created.Slug)

		req := rec.last(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/admin/categories", req.Path)
		assert.JSONEq(t, `{"name":"Cleaning"}`, string(req.Body))
	})

	t.Run("create requires a name", func(t *testing.T) {
		t.Parallel()

		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := mkt.Categories.Create(context.Background(), marketplace.CategoryInput{})
		require.Error(t, err)
		assert.Empty(t, rec.all(), "validation failures must not reach the backend")
	})

	t.Run("update patches only the given fields", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"id": id.String(), "name": "Cleaning", "slug": "cleaning", "active": false,
			})
		})

		updated, err := mkt.Categories.Update(context.Background(), id, marketplace.CategoryInput{Active: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, updated.Active)

		req := rec.last(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/admin/categories/"+id.String(), req.Path)
		assert.JSONEq(t, `{"active":false}`, string(req.Body))
	})

	t.Run("delete targets the resource path", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, mkt.Categories.Delete(context.Background(), id))

		req := rec.last(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/admin/categories/"+id.String(), req.Path)
	})

	t.Run("nil id is rejected locally", func(t *testing.T) {
		t.Parallel()

		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := mkt.Categories.Get(context.Background(), uuid.Nil)
		require.ErrorIs(t, err, marketplace.ErrInvalidID)
		require.ErrorIs(t, mkt.Categories.Delete(context.Background(), uuid.Nil), marketplace.ErrInvalidID)
		assert.Empty(t, rec.all())
	})
}

func TestBookingsService(t *testing.T) {
	t.Parallel()

	t.Run("update status patches the transition", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"id": id.String(), "reference": "BK-1042", "status": "confirmed",
			})
		})

		booking, err := mkt.Bookings.UpdateStatus(context.Background(), id, marketplace.BookingConfirmed)
		require.NoError(t, err)
		assert.Equal(t, marketplace.BookingConfirmed, booking.Status)
		assert.Equal(t, "BK-1042", booking.Reference)

		req := rec.last(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/admin/bookings/"+id.String()+"/status", req.Path)
		assert.JSONEq(t, `{"status":"confirmed"}`, string(req.Body))
	})

	t.Run("unknown status is rejected locally", func(t *testing.T) {
		t.Parallel()

		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := mkt.Bookings.UpdateStatus(context.Background(), uuid.New(), marketplace.BookingStatus("teleported"))
		require.ErrorIs(t, err, marketplace.ErrInvalidStatus)
		assert.Empty(t, rec.all())
	})

	t.Run("list filters by status", func(t *testing.T) {
		t.Parallel()

		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{"items": []any{}, "total": 0, "page": 1, "per_page": 20})
		})

		_, err := mkt.Bookings.List(context.Background(), marketplace.ListParams{
			Filters: map[string]string{"status": "pending"},
		})
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, "/admin/bookings", req.Path)
		assert.Equal(t, "pending", req.Query.Get("status"))
	})
}

func TestProvidersService(t *testing.T) {
	t.Parallel()

	t.Run("set verification", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"id": id.String(), "business_name": "Bright Homes", "verified": true,
			})
		})

		provider, err := mkt.Providers.SetVerification(context.Background(), id, true)
		require.NoError(t, err)
		assert.True(t, provider.Verified)

		req := rec.last(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/admin/providers/"+id.String()+"/verification", req.Path)
		assert.JSONEq(t, `{"verified":true}`, string(req.Body))
	})

	t.Run("revoke verification sends explicit false", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{"id": id.String(), "verified": false})
		})

		_, err := mkt.Providers.SetVerification(context.Background(), id, false)
		require.NoError(t, err)
		assert.JSONEq(t, `{"verified":false}`, string(rec.last(t).Body))
	})
}

func TestServicesService(t *testing.T) {
	t.Parallel()

	t.Run("get decodes the listing", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"id": id.String(), "title": "Deep cleaning", "price_cents": 12900,
				"currency": "EUR", "duration_minutes": 180, "active": true,
			})
		})

		svc, err := mkt.Services.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Deep cleaning", svc.Title)
		assert.Equal(t, int64(12900), svc.PriceCents)
		assert.Equal(t, 180, svc.DurationMin)
	})

	t.Run("delete targets the listing", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, mkt.Services.Delete(context.Background(), id))
		req := rec.last(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/admin/services/"+id.String(), req.Path)
	})
}

func TestReviewsService(t *testing.T) {
	t.Parallel()

	mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			respondJSON(w, http.StatusOK, map[string]any{
				"items": []map[string]any{
					{"id": uuid.NewString(), "rating": 1, "comment": "never showed up"},
				},
				"total": 1, "page": 1, "per_page": 20,
			})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	page, err := mkt.Reviews.List(context.Background(), marketplace.ListParams{
		Filters: map[string]string{"rating": "1"},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].Rating)
	assert.Equal(t, "1", rec.last(t).Query.Get("rating"))

	id := uuid.New()
	require.NoError(t, mkt.Reviews.Delete(context.Background(), id))
	req := rec.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/admin/reviews/"+id.String(), req.Path)
}

func TestDocumentsService(t *testing.T) {
	t.Parallel()

	t.Run("approve posts the decision", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"id": id.String(), "status": "approved", "reviewed_at": "2025-06-02T09:30:00Z",
			})
		})

		doc, err := mkt.Documents.Approve(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, marketplace.DocumentApproved, doc.Status)
		require.NotNil(t, doc.ReviewedAt)

		req := rec.last(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/admin/documents/"+id.String()+"/review", req.Path)
		assert.JSONEq(t, `{"status":"approved"}`, string(req.Body))
	})

	t.Run("reject carries the reason", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"id": id.String(), "status": "rejected", "reject_reason": "photo is unreadable",
			})
		})

		doc, err := mkt.Documents.Reject(context.Background(), id, "photo is unreadable")
		require.NoError(t, err)
		assert.Equal(t, marketplace.DocumentRejected, doc.Status)
		assert.JSONEq(t, `{"status":"rejected","reason":"photo is unreadable"}`, string(rec.last(t).Body))
	})

	t.Run("reject without reason is refused locally", func(t *testing.T) {
		t.Parallel()

		mkt, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := mkt.Documents.Reject(context.Background(), uuid.New(), "")
		require.ErrorIs(t, err, marketplace.ErrReasonRequired)
		assert.Empty(t, rec.all())
	})

	t.Run("pending document has no review timestamp", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		mkt, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"id": id.String(), "status": "pending", "file_name": "passport.jpg",
			})
		})

		doc, err := mkt.Documents.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, marketplace.DocumentPending, doc.Status)
		assert.Nil(t, doc.ReviewedAt)
	})
}

func TestBackendErrorsPassThrough(t *testing.T) {
	t.Parallel()

	mkt, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"code": "not_found", "message": "category does not exist",
		})
	})

	_, err := mkt.Categories.Get(context.Background(), uuid.New())
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr, "the backend's structured error must survive wrapping")
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "category does not exist", apiErr.Message)
	assert.False(t, errors.Is(err, marketplace.ErrInvalidID))
}
