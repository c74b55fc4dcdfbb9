package marketplace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ProvidersService manages the marketplace's provider accounts.
type ProvidersService struct {
	api API
}

// List returns one page of providers. Common filters: "verified", "q".
func (s *ProvidersService) List(ctx context.Context, params ListParams) (Page[Provider], error) {
	var page Page[Provider]
	if err := s.api.Get(ctx, "/admin/providers"+params.encode(), &page); err != nil {
		return Page[Provider]{}, fmt.Errorf("failed to list providers: %w", err)
	}
	return page, nil
}

// Get returns a single provider.
func (s *ProvidersService) Get(ctx context.Context, id uuid.UUID) (Provider, error) {
	if id == uuid.Nil {
		return Provider{}, ErrInvalidID
	}

	var out Provider
	if err := s.api.Get(ctx, "/admin/providers/"+id.String(), &out); err != nil {
		return Provider{}, fmt.Errorf("failed to get provider: %w", err)
	}
	return out, nil
}

type providerVerification struct {
	Verified bool `json:"verified"`
}

// SetVerification marks a provider as verified or revokes the mark.
// Verification gates whether the provider's services are bookable.
func (s *ProvidersService) SetVerification(ctx context.Context, id uuid.UUID, verified bool) (Provider, error) {
	if id == uuid.Nil {
		return Provider{}, ErrInvalidID
	}

	var out Provider
	if err := s.api.Patch(ctx, "/admin/providers/"+id.String()+"/verification", providerVerification{Verified: verified}, &out); err != nil {
		return Provider{}, fmt.Errorf("failed to set provider verification: %w", err)
	}
	return out, nil
}
