package pacing

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
)

// NormalizeID trims and lower-cases a line-item identifier. The literal
// strings "undefined" and "null" leak out of upstream serializers and are
// treated as absent.
func NormalizeID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "undefined" || id == "null" {
		return ""
	}
	return id
}

// MatchDelivery selects the rows whose normalised identifier equals
// lineItemID and sums them per day. Matching is exact: an item without a
// usable identifier matches nothing. matched counts the raw rows taken.
func MatchDelivery(lineItemID string, rows []domain.DeliveryRow) (daily map[domain.Date]domain.DeliveryTotals, matched int) {
	daily = make(map[domain.Date]domain.DeliveryTotals)
	id := NormalizeID(lineItemID)
	if id == "" {
		return daily, 0
	}
	for _, r := range rows {
		if NormalizeID(r.LineItemID) != id {
			continue
		}
		daily[r.Date] = daily[r.Date].AddRow(r)
		matched++
	}
	return daily, matched
}

// RowsForChannel keeps rows reported for ch. Rows without a channel tag
// are kept, and an empty ch keeps everything.
func RowsForChannel(rows []domain.DeliveryRow, ch domain.Channel) []domain.DeliveryRow {
	if ch == "" {
		return rows
	}
	return lo.Filter(rows, func(r domain.DeliveryRow, _ int) bool {
		return r.Channel == "" || r.Channel == ch
	})
}

// DenseSeries emits one point per day of window, ascending, with zeroes on
// days without delivery. Without a resolved window it falls back to the
// sorted days present in daily.
func DenseSeries(daily map[domain.Date]domain.DeliveryTotals, window domain.Window, key domain.DeliverableKey) []domain.DailyPoint {
	var days []domain.Date
	if window.Resolved() {
		for d := *window.StartDate; !d.After(*window.EndDate); d = d.AddDays(1) {
			days = append(days, d)
		}
	} else {
		days = lo.Keys(daily)
		slices.SortFunc(days, domain.Date.Compare)
	}
	return lo.Map(days, func(d domain.Date, _ int) domain.DailyPoint {
		t := daily[d]
		return domain.DailyPoint{Date: d, ActualSpend: t.Spend, ActualDeliverable: t.Deliverable(key)}
	})
}

// sumToDate totals a series up to and including asOf.
func sumToDate(series []domain.DailyPoint, asOf domain.Date) (spend, deliverable decimal.Decimal) {
	spend, deliverable = decimal.Zero, decimal.Zero
	for _, p := range series {
		if p.Date.After(asOf) {
			break
		}
		spend = spend.Add(p.ActualSpend)
		deliverable = deliverable.Add(p.ActualDeliverable)
	}
	return spend, deliverable
}
