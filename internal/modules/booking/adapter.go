package booking

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"aeronaa/internal/domain"
)

// Upstream booking payloads are messy: amounts arrive as numbers or quoted
// strings, dates as RFC3339 or bare YYYY-MM-DD, and several providers still
// use the legacy "checkIndate" field name. Normalization happens here, at
// the edge, before anything reaches storage or settlement.

// FlexAmount decodes a monetary value that may be a JSON number, a quoted
// numeric string, or null. Anything unparseable decodes to 0.
type FlexAmount float64

func (f *FlexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	s := string(data)
	if s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*f = 0
		return nil
	}
	*f = FlexAmount(v)
	return nil
}

// FlexDate decodes RFC3339 timestamps and bare dates. Unparseable input
// decodes to the zero time.
type FlexDate time.Time

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = FlexDate(time.Time{})
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = FlexDate(time.Time{})
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = FlexDate(t.UTC())
			return nil
		}
	}
	*d = FlexDate(time.Time{})
	return nil
}

func (d FlexDate) Time() time.Time { return time.Time(d) }

// UpstreamBooking mirrors the provider response shape, including the
// "checkIndate" spelling the legacy API uses.
type UpstreamBooking struct {
	ID           string     `json:"id"`
	VendorID     *int64     `json:"vendorId"`
	Amount       FlexAmount `json:"amount"`
	PaymentType  string     `json:"paymentType"`
	IsActive     *bool      `json:"isActive"`
	CheckInDate  FlexDate   `json:"checkIndate"`
	CheckOutDate FlexDate   `json:"checkOutDate"`
	CreatedAt    FlexDate   `json:"createdAt"`
}

// NormalizeBooking translates one upstream record into the canonical
// Booking. It is total: any well-formed JSON input maps to a well-typed
// Booking with a non-negative amount and a known payment type.
func NormalizeBooking(raw UpstreamBooking) domain.Booking {
	amount := float64(raw.Amount)
	if amount < 0 {
		amount = 0
	}

	active := true
	if raw.IsActive != nil {
		active = *raw.IsActive
	}

	return domain.Booking{
		ReferenceCode: strings.TrimSpace(raw.ID),
		VendorID:      raw.VendorID,
		Amount:        amount,
		PaymentType:   normalizePaymentType(raw.PaymentType),
		PaymentStatus: domain.PaymentUnpaid,
		CheckInDate:   raw.CheckInDate.Time(),
		CheckOutDate:  raw.CheckOutDate.Time(),
		IsActive:      active,
		CreatedAt:     raw.CreatedAt.Time(),
	}
}

// NormalizeBookings maps a provider batch into canonical bookings,
// preserving order.
func NormalizeBookings(raw []UpstreamBooking) []domain.Booking {
	out := make([]domain.Booking, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeBooking(r))
	}
	return out
}

func normalizePaymentType(s string) domain.PaymentType {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "")) {
	case "payathotel", "payatproperty":
		return domain.PaymentPayAtHotel
	default:
		return domain.PaymentOnline
	}
}
