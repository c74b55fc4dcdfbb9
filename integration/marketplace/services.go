package marketplace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ServicesService manages the service listings offered by providers.
type ServicesService struct {
	api API
}

// List returns one page of service listings. Common filters: "category_id",
// "provider_id", "active".
func (s *ServicesService) List(ctx context.Context, params ListParams) (Page[Service], error) {
	var page Page[Service]
	if err := s.api.Get(ctx, "/admin/services"+params.encode(), &page); err != nil {
		return Page[Service]{}, fmt.Errorf("failed to list services: %w", err)
	}
	return page, nil
}

// Get returns a single service listing.
func (s *ServicesService) Get(ctx context.Context, id uuid.UUID) (Service, error) {
	if id == uuid.Nil {
		return Service{}, ErrInvalidID
	}

	var out Service
	if err := s.api.Get(ctx, "/admin/services/"+id.String(), &out); err != nil {
		return Service{}, fmt.Errorf("failed to get service: %w", err)
	}
	return out, nil
}

// Delete removes a listing from the marketplace. Existing bookings are
// untouched; the backend only stops new ones.
func (s *ServicesService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}

	if err := s.api.Delete(ctx, "/admin/services/"+id.String(), nil); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
