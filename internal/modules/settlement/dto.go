package settlement

// ConvertedBreakdown mirrors Breakdown in a display currency. Values are
// unrounded; the UI rounds once at render time.
type ConvertedBreakdown struct {
	Currency            string  `json:"currency"`
	Multiplier          float64 `json:"multiplier"`
	TotalEarnings       float64 `json:"total_earnings"`
	Commission          float64 `json:"commission"`
	PlatformSettlement  float64 `json:"platform_settlement"`
	GuestPaidDirectly   float64 `json:"guest_paid_directly"`
	VendorTotalReceived float64 `json:"vendor_total_received"`
}

// VendorSettlementResponse is the admin view of one vendor-month.
// VendorOwesPlatform surfaces the shortfall case explicitly so the UI never
// has to infer it from the sign; the amount itself stays negative.
type VendorSettlementResponse struct {
	VendorID           int64               `json:"vendor_id"`
	VendorName         string              `json:"vendor_name,omitempty"`
	Month              string              `json:"month"`
	Breakdown          Breakdown           `json:"breakdown"`
	VendorOwesPlatform bool                `json:"vendor_owes_platform"`
	Converted          *ConvertedBreakdown `json:"converted,omitempty"`
}

// VendorMonthsResponse lists every month a vendor has revenue in, newest
// first, each with its settlement breakdown.
type VendorMonthsResponse struct {
	VendorID   int64                      `json:"vendor_id"`
	VendorName string                     `json:"vendor_name,omitempty"`
	Months     []VendorSettlementResponse `json:"months"`
}
