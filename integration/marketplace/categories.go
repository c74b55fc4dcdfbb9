package marketplace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CategoriesService manages the marketplace's service categories.
type CategoriesService struct {
	api API
}

// List returns one page of categories.
func (s *CategoriesService) List(ctx context.Context, params ListParams) (Page[Category], error) {
	var page Page[Category]
	if err := s.api.Get(ctx, "/admin/categories"+params.encode(), &page); err != nil {
		return Page[Category]{}, fmt.Errorf("failed to list categories: %w", err)
	}
	return page, nil
}

// Get returns a single category.
func (s *CategoriesService) Get(ctx context.Context, id uuid.UUID) (Category, error) {
	if id == uuid.Nil {
		return Category{}, ErrInvalidID
	}

	var out Category
	if err := s.api.Get(ctx, "/admin/categories/"+id.String(), &out); err != nil {
		return Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return out, nil
}

// Create adds a new category. Name is required; the backend derives a slug
// when none is given.
func (s *CategoriesService) Create(ctx context.Context, input CategoryInput) (Category, error) {
	if input.Name == "" {
		return Category{}, fmt.Errorf("category name is required")
	}

	var out Category
	if err := s.api.Post(ctx, "/admin/categories", input, &out); err != nil {
		return Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return out, nil
}

// Update applies a partial update to a category. Zero-valued input fields
// are left untouched by the backend.
func (s *CategoriesService) Update(ctx context.Context, id uuid.UUID, input CategoryInput) (Category, error) {
	if id == uuid.Nil {
		return Category{}, ErrInvalidID
	}

	var out Category
	if err := s.api.Patch(ctx, "/admin/categories/"+id.String(), input, &out); err != nil {
		return Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return out, nil
}

// Delete removes a category.
func (s *CategoriesService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}

	if err := s.api.Delete(ctx, "/admin/categories/"+id.String(), nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
