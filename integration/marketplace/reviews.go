package marketplace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ReviewsService moderates customer reviews.
type ReviewsService struct {
	api API
}

// List returns one page of reviews. Common filters: "provider_id", "rating".
func (s *ReviewsService) List(ctx context.Context, params ListParams) (Page[Review], error) {
	var page Page[Review]
	if err := s.api.Get(ctx, "/admin/reviews"+params.encode(), &page); err != nil {
		return Page[Review]{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	return page, nil
}

// Delete removes a review. Moderation is destructive on purpose; there is
// no hidden-but-kept state to audit.
func (s *ReviewsService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}

	if err := s.api.Delete(ctx, "/admin/reviews/"+id.String(), nil); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
