package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Names that denote the operator's own, commission-free channel.
const (
	DirectChannelName = "Direct"
	OwnChannelName    = "Propio"
)

// ReservationCharge holds the billable facts of one reservation at the moment
// of calculation.
type ReservationCharge struct {
	BaseAmount  decimal.Decimal // lodging price net of fees, taxes and commissions
	CleaningFee decimal.Decimal
	Taxes       decimal.Decimal
	ChannelName string

	// Per-property overrides. Nil means no commission for that leg.
	ChannelCommissionPercent    *decimal.Decimal
	CollectionCommissionPercent *decimal.Decimal

	// VAT applied to the sum of commissions on non-direct channels.
	VATPercent decimal.Decimal
}

// ChargeBreakdown is the derived money picture of a reservation.
type ChargeBreakdown struct {
	TotalAmount          decimal.Decimal
	ChannelCommission    decimal.Decimal
	CollectionCommission decimal.Decimal
	VATAmount            decimal.Decimal
	RequiredAmount       decimal.Decimal
	DirectChannel        bool
}

// IsAnomalous reports whether commissions exceed the gross total, which
// usually means a misconfigured override.
func (b ChargeBreakdown) IsAnomalous() bool {
	return b.RequiredAmount.IsNegative()
}

// IsDirectChannel reports whether name denotes the operator's own channel.
// "Direct" and "Propio" are synonyms; matching ignores case and surrounding space.
func IsDirectChannel(name string) bool {
	n := strings.TrimSpace(name)
	return strings.EqualFold(n, DirectChannelName) || strings.EqualFold(n, OwnChannelName)
}

// ComputeChargeBreakdown derives the commissions, VAT and the amount the
// operator must collect for a reservation.
//
// Commissions are rounded to cents when assigned and the required amount is
// derived from the rounded figures, so the displayed parts always add up.
// Percentages are not clamped: a required amount below zero is returned as is.
func ComputeChargeBreakdown(charge ReservationCharge) ChargeBreakdown {
	base := nonNegative(charge.BaseAmount)
	total := base.Add(nonNegative(charge.CleaningFee)).Add(nonNegative(charge.Taxes))

	if IsDirectChannel(charge.ChannelName) {
		return ChargeBreakdown{
			TotalAmount:          total,
			ChannelCommission:    decimal.Zero,
			CollectionCommission: decimal.Zero,
			VATAmount:            decimal.Zero,
			RequiredAmount:       total,
			DirectChannel:        true,
		}
	}

	channelCommission := commission(base, charge.ChannelCommissionPercent)
	collectionCommission := commission(base, charge.CollectionCommissionPercent)
	vat := RoundMoney(percentOf(channelCommission.Add(collectionCommission), charge.VATPercent))

	return ChargeBreakdown{
		TotalAmount:          total,
		ChannelCommission:    channelCommission,
		CollectionCommission: collectionCommission,
		VATAmount:            vat,
		RequiredAmount:       total.Sub(channelCommission).Sub(collectionCommission).Sub(vat),
	}
}

func commission(base decimal.Decimal, pct *decimal.Decimal) decimal.Decimal {
	if pct == nil {
		return decimal.Zero
	}
	return RoundMoney(percentOf(base, *pct))
}
