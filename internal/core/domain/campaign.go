package domain

import "github.com/shopspring/decimal"

// Campaign is the media plan line items belong to. Its dates are the
// fallback flight window for items without bursts and Budget is the total
// a manual billing schedule must reconcile to.
type Campaign struct {
	ID        string
	Name      string
	StartDate *Date
	EndDate   *Date
	Budget    decimal.Decimal
	Status    string // active, paused, ended
}
