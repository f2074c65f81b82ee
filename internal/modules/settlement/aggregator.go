package settlement

import (
	"sort"
	"time"

	"aeronaa/internal/domain"
)

// PlatformVendorID is the bucket for API-sourced bookings that have no
// registered vendor behind them.
const PlatformVendorID int64 = 0

// Totals is a payment-channel split for one group of bookings.
type Totals struct {
	OnlineTotal     float64 `json:"online_total"`
	PayAtHotelTotal float64 `json:"pay_at_hotel_total"`
	Total           float64 `json:"total"`
	BookingCount    int     `json:"booking_count"`
}

func (t *Totals) add(amount float64, pt domain.PaymentType) {
	switch pt {
	case domain.PaymentPayAtHotel:
		t.PayAtHotelTotal += amount
	default:
		t.OnlineTotal += amount
	}
	t.Total += amount
	t.BookingCount++
}

type VendorTotal struct {
	VendorID int64 `json:"vendor_id"`
	Totals
}

type MonthlyVendorTotal struct {
	VendorID int64  `json:"vendor_id"`
	Month    string `json:"month"`
	Totals
}

type MonthlyTotal struct {
	Month string `json:"month"`
	Totals
}

// Report is the full aggregation of a booking list. It is rebuilt from the
// source records on every call and never mutated in place.
type Report struct {
	VendorTotals        []VendorTotal        `json:"vendor_totals"`
	MonthlyVendorTotals []MonthlyVendorTotal `json:"monthly_vendor_totals"`
	MonthlyTotals       []MonthlyTotal       `json:"monthly_totals"`
	TotalPayments       Totals               `json:"total_payments"`
}

// MonthKey truncates a date to its YYYY-MM revenue bucket (UTC).
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

type vendorMonthKey struct {
	vendorID int64
	month    string
}

// Aggregate groups bookings by vendor and calendar month, splitting each
// group by payment channel. Cancelled bookings contribute nothing to any
// total. The input list may arrive in arbitrary order; output slices are
// sorted newest month first, then by vendor ID, so repeated runs over the
// same input produce identical reports.
func Aggregate(bookings []domain.Booking) Report {
	byVendor := make(map[int64]*Totals)
	byVendorMonth := make(map[vendorMonthKey]*Totals)
	byMonth := make(map[string]*Totals)
	var grand Totals

	for i := range bookings {
		b := &bookings[i]
		if !b.IsActive {
			continue
		}
		amount := sanitizeAmount(b.Amount)
		month := MonthKey(b.CheckInDate)
		vendorID := PlatformVendorID
		if b.VendorID != nil {
			vendorID = *b.VendorID
		}

		vt, ok := byVendor[vendorID]
		if !ok {
			vt = &Totals{}
			byVendor[vendorID] = vt
		}
		vt.add(amount, b.PaymentType)

		vmKey := vendorMonthKey{vendorID: vendorID, month: month}
		vmt, ok := byVendorMonth[vmKey]
		if !ok {
			vmt = &Totals{}
			byVendorMonth[vmKey] = vmt
		}
		vmt.add(amount, b.PaymentType)

		mt, ok := byMonth[month]
		if !ok {
			mt = &Totals{}
			byMonth[month] = mt
		}
		mt.add(amount, b.PaymentType)

		grand.add(amount, b.PaymentType)
	}

	report := Report{
		VendorTotals:        make([]VendorTotal, 0, len(byVendor)),
		MonthlyVendorTotals: make([]MonthlyVendorTotal, 0, len(byVendorMonth)),
		MonthlyTotals:       make([]MonthlyTotal, 0, len(byMonth)),
		TotalPayments:       grand,
	}
	for id, t := range byVendor {
		report.VendorTotals = append(report.VendorTotals, VendorTotal{VendorID: id, Totals: *t})
	}
	for key, t := range byVendorMonth {
		report.MonthlyVendorTotals = append(report.MonthlyVendorTotals, MonthlyVendorTotal{
			VendorID: key.vendorID,
			Month:    key.month,
			Totals:   *t,
		})
	}
	for month, t := range byMonth {
		report.MonthlyTotals = append(report.MonthlyTotals, MonthlyTotal{Month: month, Totals: *t})
	}

	sort.Slice(report.VendorTotals, func(i, j int) bool {
		return report.VendorTotals[i].VendorID < report.VendorTotals[j].VendorID
	})
	sort.Slice(report.MonthlyVendorTotals, func(i, j int) bool {
		a, b := report.MonthlyVendorTotals[i], report.MonthlyVendorTotals[j]
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.VendorID < b.VendorID
	})
	sort.Slice(report.MonthlyTotals, func(i, j int) bool {
		return report.MonthlyTotals[i].Month > report.MonthlyTotals[j].Month
	})

	return report
}
