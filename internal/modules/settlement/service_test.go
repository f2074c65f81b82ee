package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aeronaa/internal/domain"
	"aeronaa/internal/modules/currency"
)

type fakeBookingReader struct {
	bookings []domain.Booking
	err      error
}

func (f *fakeBookingReader) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return f.bookings, f.err
}

func (f *fakeBookingReader) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Booking, 0)
	for _, b := range f.bookings {
		if b.VendorID != nil && *b.VendorID == vendorID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeVendorReader struct {
	vendors map[int64]*domain.Vendor
}

func (f *fakeVendorReader) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	if v, ok := f.vendors[id]; ok {
		return v, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeVendorReader) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Vendor, error) {
	for _, v := range f.vendors {
		if v.OwnerID == ownerID {
			return v, nil
		}
	}
	return nil, errors.New("not found")
}

type fakeRateSource struct {
	table currency.RateTable
}

func (f *fakeRateSource) Rates(ctx context.Context) currency.RateTable {
	if f.table == nil {
		return currency.Fallback()
	}
	return f.table
}

func newTestService(bookings []domain.Booking, rates currency.RateTable) *Service {
	return NewService(
		&fakeBookingReader{bookings: bookings},
		&fakeVendorReader{vendors: map[int64]*domain.Vendor{
			1: {ID: 1, OwnerID: 10, Name: "Makkah Towers"},
		}},
		&fakeRateSource{table: rates},
	)
}

func TestVendorMonth_ComputesBreakdown(t *testing.T) {
	aug := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]domain.Booking{
		mkBooking(vendorRef(1), 1000, domain.PaymentOnline, true, aug),
	}, nil)

	resp, err := svc.VendorMonth(context.Background(), 1, "2025-08", "")
	require.NoError(t, err)

	assert.Equal(t, "Makkah Towers", resp.VendorName)
	assert.InDelta(t, 30, resp.Breakdown.Commission, 1e-9)
	assert.InDelta(t, 970, resp.Breakdown.PlatformSettlement, 1e-9)
	assert.False(t, resp.VendorOwesPlatform)
	assert.Nil(t, resp.Converted)
}

func TestVendorMonth_EmptyMonthIsZero(t *testing.T) {
	svc := newTestService(nil, nil)

	resp, err := svc.VendorMonth(context.Background(), 1, "2024-01", "")
	require.NoError(t, err)

	assert.Zero(t, resp.Breakdown.TotalEarnings)
	assert.Zero(t, resp.Breakdown.Commission)
	assert.False(t, resp.VendorOwesPlatform)
}

func TestVendorMonth_ShortfallFlagged(t *testing.T) {
	aug := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]domain.Booking{
		mkBooking(vendorRef(1), 10, domain.PaymentOnline, true, aug),
		mkBooking(vendorRef(1), 990, domain.PaymentPayAtHotel, true, aug),
	}, nil)

	resp, err := svc.VendorMonth(context.Background(), 1, "2025-08", "")
	require.NoError(t, err)

	assert.True(t, resp.VendorOwesPlatform)
	assert.InDelta(t, -20, resp.Breakdown.PlatformSettlement, 1e-9)
	assert.InDelta(t, 990, resp.Breakdown.VendorTotalReceived, 1e-9)
}

func TestVendorMonth_InvalidMonth(t *testing.T) {
	svc := newTestService(nil, nil)

	for _, month := range []string{"", "2025", "2025-13", "08-2025", "2025-8"} {
		_, err := svc.VendorMonth(context.Background(), 1, month, "")
		assert.ErrorIs(t, err, ErrValidation, "month %q should be rejected", month)
	}
}

func TestVendorMonth_UnknownVendor(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.VendorMonth(context.Background(), 99, "2025-08", "")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestVendorMonth_CurrencyConversion(t *testing.T) {
	aug := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]domain.Booking{
		mkBooking(vendorRef(1), 1000, domain.PaymentOnline, true, aug),
	}, currency.RateTable{"USD": 1, "EUR": 0.9})

	resp, err := svc.VendorMonth(context.Background(), 1, "2025-08", "eur")
	require.NoError(t, err)
	require.NotNil(t, resp.Converted)

	assert.Equal(t, "EUR", resp.Converted.Currency)
	assert.InDelta(t, 0.9, resp.Converted.Multiplier, 1e-9)
	assert.InDelta(t, 900, resp.Converted.TotalEarnings, 1e-9)
	assert.InDelta(t, 873, resp.Converted.PlatformSettlement, 1e-9)
}

func TestVendorMonth_USDNeverConverted(t *testing.T) {
	aug := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]domain.Booking{
		mkBooking(vendorRef(1), 100, domain.PaymentOnline, true, aug),
	}, currency.RateTable{"USD": 1, "EUR": 0.9})

	resp, err := svc.VendorMonth(context.Background(), 1, "2025-08", "USD")
	require.NoError(t, err)
	assert.Nil(t, resp.Converted)
}

func TestVendorMonths_NewestFirst(t *testing.T) {
	svc := newTestService([]domain.Booking{
		mkBooking(vendorRef(1), 100, domain.PaymentOnline, true, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
		mkBooking(vendorRef(1), 200, domain.PaymentOnline, true, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)),
	}, nil)

	resp, err := svc.VendorMonths(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, resp.Months, 2)

	assert.Equal(t, "2025-08", resp.Months[0].Month)
	assert.Equal(t, "2025-07", resp.Months[1].Month)
}

func TestOverview_PropagatesRepoError(t *testing.T) {
	svc := NewService(
		&fakeBookingReader{err: errors.New("db gone")},
		&fakeVendorReader{},
		&fakeRateSource{},
	)

	_, err := svc.Overview(context.Background())
	assert.Error(t, err)
}
