package settlement

import (
	"context"
	"regexp"
	"strings"

	"aeronaa/internal/domain"
	"aeronaa/internal/modules/currency"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type Service struct {
	bookings BookingReader
	vendors  VendorReader
	rates    RateSource
}

func NewService(bookings BookingReader, vendors VendorReader, rates RateSource) *Service {
	return &Service{
		bookings: bookings,
		vendors:  vendors,
		rates:    rates,
	}
}

// Overview aggregates every booking on the platform into vendor, month, and
// grand totals.
func (s *Service) Overview(ctx context.Context) (*Report, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	report := Aggregate(bookings)
	return &report, nil
}

// MonthlyTotals returns platform-wide per-month totals, newest first.
func (s *Service) MonthlyTotals(ctx context.Context) ([]MonthlyTotal, error) {
	report, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return report.MonthlyTotals, nil
}

// VendorMonth computes the settlement breakdown for one vendor and month.
// An empty month is valid and settles to all-zero. When displayCurrency is
// a non-USD code the breakdown is additionally converted for display.
func (s *Service) VendorMonth(ctx context.Context, vendorID int64, month, displayCurrency string) (*VendorSettlementResponse, error) {
	if !monthKeyPattern.MatchString(month) {
		return nil, ErrValidation
	}

	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	bookings, err := s.bookings.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	var totals Totals
	for _, mvt := range Aggregate(bookings).MonthlyVendorTotals {
		if mvt.VendorID == vendorID && mvt.Month == month {
			totals = mvt.Totals
			break
		}
	}

	resp := &VendorSettlementResponse{
		VendorID:   vendorID,
		VendorName: vendor.Name,
		Month:      month,
		Breakdown:  Calculate(totals.OnlineTotal, totals.PayAtHotelTotal),
	}
	resp.VendorOwesPlatform = resp.Breakdown.VendorOwesPlatform()
	resp.Converted = s.convert(ctx, resp.Breakdown, displayCurrency)

	return resp, nil
}

// VendorMonths returns the settlement breakdown for every month a vendor
// has bookings in, newest first.
func (s *Service) VendorMonths(ctx context.Context, vendorID int64, displayCurrency string) (*VendorMonthsResponse, error) {
	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	bookings, err := s.bookings.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	resp := &VendorMonthsResponse{VendorID: vendorID, VendorName: vendor.Name}
	for _, mvt := range Aggregate(bookings).MonthlyVendorTotals {
		if mvt.VendorID != vendorID {
			continue
		}
		entry := VendorSettlementResponse{
			VendorID:   vendorID,
			VendorName: vendor.Name,
			Month:      mvt.Month,
			Breakdown:  Calculate(mvt.OnlineTotal, mvt.PayAtHotelTotal),
		}
		entry.VendorOwesPlatform = entry.Breakdown.VendorOwesPlatform()
		entry.Converted = s.convert(ctx, entry.Breakdown, displayCurrency)
		resp.Months = append(resp.Months, entry)
	}

	return resp, nil
}

// OwnerVendor resolves the vendor owned by a user, for the vendor-facing
// settlement endpoints.
func (s *Service) OwnerVendor(ctx context.Context, ownerID int64) (*domain.Vendor, error) {
	vendor, err := s.vendors.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

func (s *Service) convert(ctx context.Context, b Breakdown, target string) *ConvertedBreakdown {
	target = strings.ToUpper(strings.TrimSpace(target))
	if target == "" || target == currency.BaseCurrency {
		return nil
	}

	rates := s.rates.Rates(ctx)
	return &ConvertedBreakdown{
		Currency:            target,
		Multiplier:          rates.Multiplier(target),
		TotalEarnings:       currency.Convert(b.TotalEarnings, rates, target),
		Commission:          currency.Convert(b.Commission, rates, target),
		PlatformSettlement:  currency.Convert(b.PlatformSettlement, rates, target),
		GuestPaidDirectly:   currency.Convert(b.GuestPaidDirectly, rates, target),
		VendorTotalReceived: currency.Convert(b.VendorTotalReceived, rates, target),
	}
}
