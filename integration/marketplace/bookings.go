package marketplace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// BookingsService gives the console oversight of customer bookings.
type BookingsService struct {
	api API
}

// List returns one page of bookings. Common filters: "status", "provider_id",
// "customer_id", "from", "to".
func (s *BookingsService) List(ctx context.Context, params ListParams) (Page[Booking], error) {
	var page Page[Booking]
	if err := s.api.Get(ctx, "/admin/bookings"+params.encode(), &page); err != nil {
		return Page[Booking]{}, fmt.Errorf("failed to list bookings: %w", err)
	}
	return page, nil
}

// Get returns a single booking.
func (s *BookingsService) Get(ctx context.Context, id uuid.UUID) (Booking, error) {
	if id == uuid.Nil {
		return Booking{}, ErrInvalidID
	}

	var out Booking
	if err := s.api.Get(ctx, "/admin/bookings/"+id.String(), &out); err != nil {
		return Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}
	return out, nil
}

type bookingStatusUpdate struct {
	Status BookingStatus `json:"status"`
}

// UpdateStatus moves a booking to a new lifecycle state. The backend
// enforces which transitions are legal; this client only rejects states it
// does not know at all.
func (s *BookingsService) UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) (Booking, error) {
	if id == uuid.Nil {
		return Booking{}, ErrInvalidID
	}
	if !status.IsValid() {
		return Booking{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var out Booking
	if err := s.api.Patch(ctx, "/admin/bookings/"+id.String()+"/status", bookingStatusUpdate{Status: status}, &out); err != nil {
		return Booking{}, fmt.Errorf("failed to update booking status: %w", err)
	}
	return out, nil
}
