package settlement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_OnlineOnly(t *testing.T) {
	b := Calculate(1000, 0)

	assert.InDelta(t, 1000, b.TotalEarnings, 1e-9)
	assert.InDelta(t, 30, b.Commission, 1e-9)
	assert.InDelta(t, 970, b.PlatformSettlement, 1e-9)
	assert.InDelta(t, 0, b.GuestPaidDirectly, 1e-9)
	assert.InDelta(t, 970, b.VendorTotalReceived, 1e-9)
	assert.False(t, b.VendorOwesPlatform())
}

func TestCalculate_Shortfall(t *testing.T) {
	// Commission is charged on the combined total but can only be taken
	// from online collections: 3% of 1000 = 30 > 10 collected online.
	b := Calculate(10, 990)

	assert.InDelta(t, 1000, b.TotalEarnings, 1e-9)
	assert.InDelta(t, 30, b.Commission, 1e-9)
	assert.InDelta(t, -20, b.PlatformSettlement, 1e-9)
	assert.InDelta(t, 990, b.GuestPaidDirectly, 1e-9)
	assert.InDelta(t, 990, b.VendorTotalReceived, 1e-9)
	assert.True(t, b.VendorOwesPlatform())
}

func TestCalculate_ZeroTotals(t *testing.T) {
	b := Calculate(0, 0)

	assert.Zero(t, b.TotalEarnings)
	assert.Zero(t, b.Commission)
	assert.Zero(t, b.PlatformSettlement)
	assert.Zero(t, b.GuestPaidDirectly)
	assert.Zero(t, b.VendorTotalReceived)
	assert.False(t, b.VendorOwesPlatform())
}

func TestCalculate_MixedChannels(t *testing.T) {
	b := Calculate(100, 40)

	assert.InDelta(t, 140, b.TotalEarnings, 1e-9)
	assert.InDelta(t, 4.2, b.Commission, 1e-9)
	assert.InDelta(t, 95.8, b.PlatformSettlement, 1e-9)
	assert.InDelta(t, 135.8, b.VendorTotalReceived, 1e-9)
}

func TestCalculateWithRate_CustomRate(t *testing.T) {
	b := CalculateWithRate(1000, 0, 0.10)

	assert.InDelta(t, 100, b.Commission, 1e-9)
	assert.InDelta(t, 900, b.PlatformSettlement, 1e-9)
	assert.InDelta(t, 0.10, b.CommissionRate, 1e-9)
}

func TestCalculateWithRate_GarbageInputs(t *testing.T) {
	cases := []struct {
		name               string
		online, payAtHotel float64
		rate               float64
		wantRate           float64
		wantTotal          float64
	}{
		{"nan amounts", math.NaN(), math.NaN(), 0.03, 0.03, 0},
		{"negative amounts", -50, -10, 0.03, 0.03, 0},
		{"inf amount", math.Inf(1), 0, 0.03, 0.03, 0},
		{"nan rate falls back", 100, 0, math.NaN(), DefaultCommissionRate, 100},
		{"negative rate falls back", 100, 0, -1, DefaultCommissionRate, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := CalculateWithRate(tc.online, tc.payAtHotel, tc.rate)

			assert.False(t, math.IsNaN(b.Commission), "commission must never be NaN")
			assert.False(t, math.IsNaN(b.VendorTotalReceived), "received must never be NaN")
			assert.InDelta(t, tc.wantRate, b.CommissionRate, 1e-9)
			assert.InDelta(t, tc.wantTotal, b.TotalEarnings, 1e-9)
		})
	}
}
