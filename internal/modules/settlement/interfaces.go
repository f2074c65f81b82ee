package settlement

import (
	"context"

	"aeronaa/internal/domain"
	"aeronaa/internal/modules/currency"
)

type BookingReader interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Booking, error)
}

type VendorReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Vendor, error)
}

type RateSource interface {
	Rates(ctx context.Context) currency.RateTable
}
