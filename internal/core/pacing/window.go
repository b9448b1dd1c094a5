package pacing

import "mesa-pacing/internal/core/domain"

// ResolveWindow derives the active flight period from bursts: the earliest
// start and the latest end. Each bound falls back to the matching fallback
// bound when there are no bursts. Bounds that cannot be resolved stay nil;
// they are never defaulted to today.
func ResolveWindow(bursts []domain.Burst, fallback domain.Window) domain.Window {
	var w domain.Window
	for _, b := range bursts {
		if w.StartDate == nil || b.StartDate.Before(*w.StartDate) {
			start := b.StartDate
			w.StartDate = &start
		}
		if w.EndDate == nil || b.EndDate.After(*w.EndDate) {
			end := b.EndDate
			w.EndDate = &end
		}
	}
	if w.StartDate == nil && fallback.StartDate != nil {
		start := *fallback.StartDate
		w.StartDate = &start
	}
	if w.EndDate == nil && fallback.EndDate != nil {
		end := *fallback.EndDate
		w.EndDate = &end
	}
	return w
}

// UnionWindow spans every resolved window in ws. The result is unresolved
// when none of them is.
func UnionWindow(ws ...domain.Window) domain.Window {
	var u domain.Window
	for _, w := range ws {
		if !w.Resolved() {
			continue
		}
		if u.StartDate == nil || w.StartDate.Before(*u.StartDate) {
			start := *w.StartDate
			u.StartDate = &start
		}
		if u.EndDate == nil || w.EndDate.After(*u.EndDate) {
			end := *w.EndDate
			u.EndDate = &end
		}
	}
	return u
}
