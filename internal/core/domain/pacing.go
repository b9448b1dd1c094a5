package domain

import "github.com/shopspring/decimal"

// PacingStatus tells a consumer whether pacing could be computed at all.
type PacingStatus string

const (
	PacingOK PacingStatus = "ok"
	// PacingNoWindow means no flight dates could be resolved. All metrics
	// are zero and the series is empty.
	PacingNoWindow PacingStatus = "no_window"
)

// Metric is an actual vs expected-to-date comparison for one quantity.
type Metric struct {
	ActualToDate   decimal.Decimal `json:"actualToDate"`
	ExpectedToDate decimal.Decimal `json:"expectedToDate"`
	Delta          decimal.Decimal `json:"delta"`
	PacingPct      decimal.Decimal `json:"pacingPct"`
	GoalTotal      decimal.Decimal `json:"goalTotal"`
}

// DailyPoint is one day of the dense actuals series.
type DailyPoint struct {
	Date              Date            `json:"date"`
	ActualSpend       decimal.Decimal `json:"actualSpend"`
	ActualDeliverable decimal.Decimal `json:"actualDeliverable"`
}

// PacingResult is the pacing outcome of one line item or one container.
// Deliverable is nil when no deliverable key applies.
type PacingResult struct {
	Status         PacingStatus   `json:"status"`
	AsOfDate       *Date          `json:"asOfDate"`
	Window         Window         `json:"window"`
	Spend          Metric         `json:"spend"`
	Deliverable    *Metric        `json:"deliverable,omitempty"`
	DeliverableKey DeliverableKey `json:"deliverableKey,omitempty"`
	Series         []DailyPoint   `json:"series"`
	Estimated      bool           `json:"estimated,omitempty"`
}

// LineItemMetrics carries a per-item result together with the inputs the
// container aggregation needs.
type LineItemMetrics struct {
	LineItemID        string                  `json:"lineItemId"`
	Channel           Channel                 `json:"channel,omitempty"`
	Bursts            []Burst                 `json:"bursts"`
	Actuals           map[Date]DeliveryTotals `json:"-"` // matched days inside the item window
	MatchedRows       int                     `json:"matchedRows"`
	BookedSpend       decimal.Decimal         `json:"bookedSpend"`
	BookedDeliverable decimal.Decimal         `json:"bookedDeliverable"`
	DeliverableKey    DeliverableKey          `json:"deliverableKey,omitempty"`
	Result            PacingResult            `json:"result"`
}
