package marketplace

import (
	"context"
)

// API is the authenticated JSON pipeline the resource clients issue their
// calls through. Satisfied by apiclient.Client.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Client bundles the admin console's typed resource clients. Each service
// is a thin translation layer: paths and payloads in, decoded domain types
// out. Credential handling, renewal, and retries happen below in the
// pipeline; authorization decisions happen above in the backend.
type Client struct {
	Categories *CategoriesService
	Bookings   *BookingsService
	Providers  *ProvidersService
	Services   *ServicesService
	Reviews    *ReviewsService
	Documents  *DocumentsService
}

// New creates the resource client bundle over the given pipeline.
func New(api API) (*Client, error) {
	if api == nil {
		return nil, ErrAPINil
	}

	return &Client{
		Categories: &CategoriesService{api: api},
		Bookings:   &BookingsService{api: api},
		Providers:  &ProvidersService{api: api},
		Services:   &ServicesService{api: api},
		Reviews:    &ReviewsService{api: api},
		Documents:  &DocumentsService{api: api},
	}, nil
}
