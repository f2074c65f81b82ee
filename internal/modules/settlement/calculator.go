package settlement

import "math"

// DefaultCommissionRate is the platform-wide commission charged to vendors,
// applied to the combined online + pay-at-hotel earnings of a period.
const DefaultCommissionRate = 0.03

// Breakdown is the settlement of a single vendor period. Commission is
// computed against the combined total but can only be deducted from the
// online-collected portion; the pay-at-hotel portion is already held by the
// vendor and is never auto-debited. A negative PlatformSettlement therefore
// means the vendor owes the platform the shortfall.
type Breakdown struct {
	OnlineTotal         float64 `json:"online_total"`
	PayAtHotelTotal     float64 `json:"pay_at_hotel_total"`
	TotalEarnings       float64 `json:"total_earnings"`
	CommissionRate      float64 `json:"commission_rate"`
	Commission          float64 `json:"commission"`
	PlatformSettlement  float64 `json:"platform_settlement"`
	GuestPaidDirectly   float64 `json:"guest_paid_directly"`
	VendorTotalReceived float64 `json:"vendor_total_received"`
}

// VendorOwesPlatform reports whether online collections did not cover the
// commission for the period.
func (b Breakdown) VendorOwesPlatform() bool {
	return b.PlatformSettlement < 0
}

// Calculate computes the settlement breakdown for one vendor period using
// the default commission rate.
func Calculate(onlineTotal, payAtHotelTotal float64) Breakdown {
	return CalculateWithRate(onlineTotal, payAtHotelTotal, DefaultCommissionRate)
}

// CalculateWithRate is Calculate with an explicit commission rate. It is a
// total function: garbage inputs are treated as zero and the result never
// contains NaN or Inf.
func CalculateWithRate(onlineTotal, payAtHotelTotal, rate float64) Breakdown {
	online := sanitizeAmount(onlineTotal)
	payAtHotel := sanitizeAmount(payAtHotelTotal)
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		rate = DefaultCommissionRate
	}

	totalEarnings := online + payAtHotel
	commission := totalEarnings * rate
	platformSettlement := online - commission

	return Breakdown{
		OnlineTotal:         online,
		PayAtHotelTotal:     payAtHotel,
		TotalEarnings:       totalEarnings,
		CommissionRate:      rate,
		Commission:          commission,
		PlatformSettlement:  platformSettlement,
		GuestPaidDirectly:   payAtHotel,
		VendorTotalReceived: math.Max(0, platformSettlement) + payAtHotel,
	}
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
