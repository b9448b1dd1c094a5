package domain

import "github.com/shopspring/decimal"

// MetricKind selects which burst total a proration applies to.
type MetricKind int

const (
	KindSpend MetricKind = iota
	KindDeliverable
)

func (k MetricKind) String() string {
	if k == KindDeliverable {
		return "deliverable"
	}
	return "spend"
}

// Burst is a contiguous, date-bounded slice of a line item's flight with its
// own budget and deliverable goal. StartDate <= EndDate and both totals are
// non-negative for every burst produced by the normalizer.
//
// Estimated marks a burst synthesised from a line item's window and booked
// totals because the item had no schedule of its own.
type Burst struct {
	StartDate        Date            `json:"startDate"`
	EndDate          Date            `json:"endDate"`
	TotalSpend       decimal.Decimal `json:"totalSpend"`
	TotalDeliverable decimal.Decimal `json:"totalDeliverable"`
	Estimated        bool            `json:"estimated,omitempty"`
}

// Total returns the burst total for kind.
func (b Burst) Total(kind MetricKind) decimal.Decimal {
	if kind == KindDeliverable {
		return b.TotalDeliverable
	}
	return b.TotalSpend
}
