package valueobject

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pct(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: expected %s, got %s", field, want, got.String())
}

func TestComputeChargeBreakdown_DirectChannel(t *testing.T) {
	for _, name := range []string{"Direct", "Propio", " propio ", "DIRECT"} {
		t.Run(name, func(t *testing.T) {
			got := ComputeChargeBreakdown(ReservationCharge{
				BaseAmount:                  dec("100"),
				CleaningFee:                 dec("20"),
				Taxes:                       dec("10"),
				ChannelName:                 name,
				ChannelCommissionPercent:    pct("15"),
				CollectionCommissionPercent: pct("3"),
				VATPercent:                  dec("21"),
			})

			assert.True(t, got.DirectChannel)
			assertMoney(t, "130", got.TotalAmount, "total")
			assertMoney(t, "130", got.RequiredAmount, "required")
			assertMoney(t, "0", got.ChannelCommission, "channel commission")
			assertMoney(t, "0", got.CollectionCommission, "collection commission")
			assertMoney(t, "0", got.VATAmount, "vat")
		})
	}
}

func TestComputeChargeBreakdown_ChannelCommissions(t *testing.T) {
	tests := []struct {
		name       string
		charge     ReservationCharge
		channel    string
		collection string
		vat        string
		total      string
		required   string
	}{
		{
			name: "booking with both legs and vat",
			charge: ReservationCharge{
				BaseAmount:                  dec("200"),
				ChannelName:                 "Booking",
				ChannelCommissionPercent:    pct("10"),
				CollectionCommissionPercent: pct("5"),
				VATPercent:                  dec("21"),
			},
			channel: "20.00", collection: "10.00", vat: "6.30", total: "200", required: "163.70",
		},
		{
			name: "fees are not commissioned",
			charge: ReservationCharge{
				BaseAmount:               dec("100"),
				CleaningFee:              dec("30"),
				Taxes:                    dec("5"),
				ChannelName:              "Airbnb",
				ChannelCommissionPercent: pct("15"),
				VATPercent:               dec("21"),
			},
			channel: "15", collection: "0", vat: "3.15", total: "135", required: "116.85",
		},
		{
			name: "absent overrides mean no commission",
			charge: ReservationCharge{
				BaseAmount:  dec("80"),
				ChannelName: "Vrbo",
				VATPercent:  dec("21"),
			},
			channel: "0", collection: "0", vat: "0", total: "80", required: "80",
		},
		{
			name: "commissions are rounded before the required amount",
			charge: ReservationCharge{
				BaseAmount:                  dec("33.33"),
				ChannelName:                 "Expedia",
				ChannelCommissionPercent:    pct("12.5"),
				CollectionCommissionPercent: pct("1.4"),
				VATPercent:                  dec("21"),
			},
			// 4.16625 -> 4.17, 0.46662 -> 0.47, (4.64 * 0.21 = 0.9744) -> 0.97
			channel: "4.17", collection: "0.47", vat: "0.97", total: "33.33", required: "27.72",
		},
		{
			name: "negative amounts are treated as zero",
			charge: ReservationCharge{
				BaseAmount:               dec("-50"),
				CleaningFee:              dec("10"),
				ChannelName:              "Booking",
				ChannelCommissionPercent: pct("10"),
			},
			channel: "0", collection: "0", vat: "0", total: "10", required: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeChargeBreakdown(tt.charge)

			assert.False(t, got.DirectChannel)
			assertMoney(t, tt.channel, got.ChannelCommission, "channel commission")
			assertMoney(t, tt.collection, got.CollectionCommission, "collection commission")
			assertMoney(t, tt.vat, got.VATAmount, "vat")
			assertMoney(t, tt.total, got.TotalAmount, "total")
			assertMoney(t, tt.required, got.RequiredAmount, "required")
			assertMoney(t, tt.required,
				got.TotalAmount.Sub(got.ChannelCommission).Sub(got.CollectionCommission).Sub(got.VATAmount),
				"sum of parts")
		})
	}
}

func TestComputeChargeBreakdown_OverCommissionIsSurfaced(t *testing.T) {
	got := ComputeChargeBreakdown(ReservationCharge{
		BaseAmount:                  dec("100"),
		ChannelName:                 "Booking",
		ChannelCommissionPercent:    pct("90"),
		CollectionCommissionPercent: pct("20"),
		VATPercent:                  dec("21"),
	})

	// 100 - 90 - 20 - 23.10
	assertMoney(t, "-33.10", got.RequiredAmount, "required")
	assert.True(t, got.IsAnomalous())
}

func TestComputeChargeBreakdown_IsDeterministic(t *testing.T) {
	charge := ReservationCharge{
		BaseAmount:                  dec("187.45"),
		CleaningFee:                 dec("35"),
		Taxes:                       dec("4.2"),
		ChannelName:                 "Booking",
		ChannelCommissionPercent:    pct("15.5"),
		CollectionCommissionPercent: pct("1.2"),
		VATPercent:                  dec("21"),
	}

	first := ComputeChargeBreakdown(charge)
	second := ComputeChargeBreakdown(charge)

	assert.Equal(t, first, second)
}

func TestMoneyFromFloat(t *testing.T) {
	assert.True(t, MoneyFromFloat(math.NaN()).IsZero())
	assert.True(t, MoneyFromFloat(math.Inf(1)).IsZero())
	assert.True(t, MoneyFromFloat(-12.5).IsZero())
	assertMoney(t, "12.5", MoneyFromFloat(12.5), "amount")
}

func TestPercentFromFloat(t *testing.T) {
	assert.Nil(t, PercentFromFloat(nil))

	nan := math.NaN()
	assert.True(t, PercentFromFloat(&nan).IsZero())

	over := 120.0
	assertMoney(t, "120", *PercentFromFloat(&over), "percent")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "163.70", FormatMoney(dec("163.7")))
	assert.Equal(t, "-33.10", FormatMoney(dec("-33.1")))
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
}
