package domain

// Window is the resolved active flight period of a line item or container.
// Either bound may be nil when it cannot be determined.
type Window struct {
	StartDate *Date `json:"startDate"`
	EndDate   *Date `json:"endDate"`
}

// Resolved reports whether both bounds are known and ordered.
func (w Window) Resolved() bool {
	return w.StartDate != nil && w.EndDate != nil && !w.EndDate.Before(*w.StartDate)
}

// Contains reports whether d falls inside a resolved window.
func (w Window) Contains(d Date) bool {
	return w.Resolved() && !d.Before(*w.StartDate) && !d.After(*w.EndDate)
}
