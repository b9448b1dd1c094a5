package domain

import "github.com/shopspring/decimal"

// BillingMonth is the amount invoiced for one calendar month. MonthKey is
// "YYYY-MM" inside the engine and may be re-rendered at the edge.
type BillingMonth struct {
	MonthKey string          `json:"monthKey"`
	Amount   decimal.Decimal `json:"amount"`
}

// BillingMode tells whether a schedule was derived from bursts or entered
// by hand.
type BillingMode string

const (
	BillingAuto   BillingMode = "auto"
	BillingManual BillingMode = "manual"
)

// BillingSchedule is a media plan's month-bucketed invoice plan.
type BillingSchedule struct {
	Mode      BillingMode     `json:"mode"`
	Months    []BillingMonth  `json:"months"`
	Total     decimal.Decimal `json:"total"`
	Estimated bool            `json:"estimated,omitempty"`
}
