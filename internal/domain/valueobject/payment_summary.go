package valueobject

import "github.com/shopspring/decimal"

// PaymentStatus is the lifecycle status of a single payment record.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// SettlementStatus is how far a reservation has been paid.
type SettlementStatus string

const (
	SettlementPending SettlementStatus = "pending"
	SettlementPartial SettlementStatus = "partial"
	SettlementPaid    SettlementStatus = "paid"
)

// IsValid reports whether s is a known settlement status.
func (s SettlementStatus) IsValid() bool {
	return s == SettlementPending || s == SettlementPartial || s == SettlementPaid
}

// SettlementEpsilon is the tolerance under which paid and required amounts are
// considered equal.
var SettlementEpsilon = decimal.New(1, -currencyPlaces)

// ReconciledPayment is the slice of a payment row the reconciler needs.
type ReconciledPayment struct {
	ReservationID string
	Amount        decimal.Decimal
	Status        PaymentStatus
}

// PaymentSummary is the settlement state of one reservation.
type PaymentSummary struct {
	RequiredAmount decimal.Decimal
	TotalPaid      decimal.Decimal
	PendingAmount  decimal.Decimal
	Status         SettlementStatus
	CompletedCount int
}

// ComputePaymentSummary sums the completed payments of a reservation and
// classifies it against the required amount.
//
// Payments in any status other than completed are ignored entirely: a refund
// neither adds to nor subtracts from the paid total.
func ComputePaymentSummary(requiredAmount decimal.Decimal, payments []ReconciledPayment) PaymentSummary {
	totalPaid := decimal.Zero
	completed := 0
	for _, p := range payments {
		if p.Status != PaymentStatusCompleted {
			continue
		}
		totalPaid = totalPaid.Add(nonNegative(p.Amount))
		completed++
	}

	status := classifySettlement(requiredAmount, totalPaid)

	pending := decimal.Zero
	if status != SettlementPaid {
		pending = RoundMoney(nonNegative(requiredAmount.Sub(totalPaid)))
	}

	return PaymentSummary{
		RequiredAmount: RoundMoney(requiredAmount),
		TotalPaid:      RoundMoney(totalPaid),
		PendingAmount:  pending,
		Status:         status,
		CompletedCount: completed,
	}
}

func classifySettlement(required, paid decimal.Decimal) SettlementStatus {
	// paid >= required, tolerating sub-cent float noise on either side
	if paid.Sub(required).GreaterThan(SettlementEpsilon.Neg()) {
		return SettlementPaid
	}
	if paid.IsPositive() {
		return SettlementPartial
	}
	return SettlementPending
}
