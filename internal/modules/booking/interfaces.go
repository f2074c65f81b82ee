package booking

import (
	"context"

	"aeronaa/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Booking, error)
	CancelWithReason(ctx context.Context, id int64, reason string) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Booking, error)
}

type VendorReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Vendor, error)
}

// EventSink receives booking lifecycle events for live dashboards.
type EventSink interface {
	BookingCreated(b *domain.Booking)
	BookingCancelled(b *domain.Booking, reason string)
}
