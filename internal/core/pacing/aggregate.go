package pacing

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
)

// ContainerPacing aggregates many line items into one result. Actuals are
// summed per calendar day across items before the series is built, and the
// expected values are the sum of each item's own proration; per-item
// pacing percentages are never averaged.
//
// The container has a deliverable metric only when every item that has a
// deliverable counts the same one. Each item contributes only the actuals
// inside its own window, so every container day is the sum of the item
// series on that day.
func (e *Engine) ContainerPacing(items []domain.LineItemMetrics, asOf *domain.Date) domain.PacingResult {
	window := UnionWindow(lo.Map(items, func(m domain.LineItemMetrics, _ int) domain.Window {
		return m.Result.Window
	})...)
	key := commonDeliverable(items)
	if !window.Resolved() {
		return unavailableResult(window, key)
	}
	at := e.resolveAsOf(asOf, window)

	spendByDay := make(map[domain.Date]decimal.Decimal)
	deliverableByDay := make(map[domain.Date]decimal.Decimal)
	expectedSpend, expectedDeliverable := decimal.Zero, decimal.Zero
	goalSpend, goalDeliverable := decimal.Zero, decimal.Zero
	estimated := false

	for _, m := range items {
		counted := key != domain.DeliverableNone && m.DeliverableKey == key
		for day, t := range m.Actuals {
			spendByDay[day] = spendByDay[day].Add(t.Spend)
			if counted {
				deliverableByDay[day] = deliverableByDay[day].Add(t.Deliverable(key))
			}
		}
		expectedSpend = expectedSpend.Add(ShouldToDate(m.Bursts, at, domain.KindSpend))
		goalSpend = goalSpend.Add(m.BookedSpend)
		if counted {
			expectedDeliverable = expectedDeliverable.Add(ShouldToDate(m.Bursts, at, domain.KindDeliverable))
			goalDeliverable = goalDeliverable.Add(m.BookedDeliverable)
		}
		estimated = estimated || m.Result.Estimated
	}

	var series []domain.DailyPoint
	for d := *window.StartDate; !d.After(*window.EndDate); d = d.AddDays(1) {
		series = append(series, domain.DailyPoint{
			Date:              d,
			ActualSpend:       spendByDay[d],
			ActualDeliverable: deliverableByDay[d],
		})
	}
	actualSpend, actualDeliverable := sumToDate(series, at)

	result := domain.PacingResult{
		Status:         domain.PacingOK,
		AsOfDate:       &at,
		Window:         window,
		Spend:          buildMetric(actualSpend, expectedSpend, goalSpend),
		DeliverableKey: key,
		Series:         roundSeries(series),
		Estimated:      estimated,
	}
	if key != domain.DeliverableNone {
		d := buildMetric(actualDeliverable, expectedDeliverable, goalDeliverable)
		result.Deliverable = &d
	}
	return result
}

func commonDeliverable(items []domain.LineItemMetrics) domain.DeliverableKey {
	keys := lo.Uniq(lo.FilterMap(items, func(m domain.LineItemMetrics, _ int) (domain.DeliverableKey, bool) {
		return m.DeliverableKey, m.DeliverableKey != domain.DeliverableNone
	}))
	if len(keys) != 1 {
		return domain.DeliverableNone
	}
	return keys[0]
}
