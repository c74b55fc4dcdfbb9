package marketplace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DocumentsService reviews provider verification documents.
type DocumentsService struct {
	api API
}

// List returns one page of verification documents. Common filters:
// "status", "provider_id", "type".
func (s *DocumentsService) List(ctx context.Context, params ListParams) (Page[Document], error) {
	var page Page[Document]
	if err := s.api.Get(ctx, "/admin/documents"+params.encode(), &page); err != nil {
		return Page[Document]{}, fmt.Errorf("failed to list documents: %w", err)
	}
	return page, nil
}

// Get returns a single verification document's metadata. The document file
// itself is served by a separate download pipeline.
func (s *DocumentsService) Get(ctx context.Context, id uuid.UUID) (Document, error) {
	if id == uuid.Nil {
		return Document{}, ErrInvalidID
	}

	var out Document
	if err := s.api.Get(ctx, "/admin/documents/"+id.String(), &out); err != nil {
		return Document{}, fmt.Errorf("failed to get document: %w", err)
	}
	return out, nil
}

type documentReview struct {
	Status DocumentStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
}

// Approve marks a document as verified.
func (s *DocumentsService) Approve(ctx context.Context, id uuid.UUID) (Document, error) {
	return s.review(ctx, id, DocumentApproved, "")
}

// Reject declines a document. A reason is mandatory; it is shown to the
// provider so they can resubmit.
func (s *DocumentsService) Reject(ctx context.Context, id uuid.UUID, reason string) (Document, error) {
	if reason == "" {
		return Document{}, ErrReasonRequired
	}
	return s.review(ctx, id, DocumentRejected, reason)
}

func (s *DocumentsService) review(ctx context.Context, id uuid.UUID, status DocumentStatus, reason string) (Document, error) {
	if id == uuid.Nil {
		return Document{}, ErrInvalidID
	}

	var out Document
	if err := s.api.Post(ctx, "/admin/documents/"+id.String()+"/review", documentReview{Status: status, Reason: reason}, &out); err != nil {
		return Document{}, fmt.Errorf("failed to review document: %w", err)
	}
	return out, nil
}
