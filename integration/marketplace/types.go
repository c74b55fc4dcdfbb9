package marketplace

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// IsValid reports whether the status is one the backend accepts.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// DocumentStatus is the review state of a verification document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// Category is a service category as managed from the console.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon,omitempty"`
	Active    bool      `json:"active"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryInput is the create/update payload for a category. Pointer fields
// are omitted when nil so partial updates leave the rest untouched.
type CategoryInput struct {
	Name     string `json:"name,omitempty"`
	Slug     string `json:"slug,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Active   *bool  `json:"active,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// Booking is a customer's reservation of a provider's service.
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	Reference   string        `json:"reference"`
	CustomerID  uuid.UUID     `json:"customer_id"`
	ProviderID  uuid.UUID     `json:"provider_id"`
	ServiceID   uuid.UUID     `json:"service_id"`
	Status      BookingStatus `json:"status"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	PriceCents  int64         `json:"price_cents"`
	Currency    string        `json:"currency"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Provider is a business account offering services on the marketplace.
type Provider struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Verified     bool      `json:"verified"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

// Service is a bookable offering listed by a provider.
type Service struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	DurationMin int       `json:"duration_minutes"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Review is a customer's rating of a completed booking.
type Review struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Document is an identity or business verification document submitted by a
// provider and reviewed from the console.
type Document struct {
	ID           uuid.UUID      `json:"id"`
	ProviderID   uuid.UUID      `json:"provider_id"`
	Type         string         `json:"type"`
	Status       DocumentStatus `json:"status"`
	FileName     string         `json:"file_name"`
	RejectReason string         `json:"reject_reason,omitempty"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	ReviewedAt   *time.Time     `json:"reviewed_at,omitempty"`
}

// Page is one page of a listed collection.
type Page[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}
