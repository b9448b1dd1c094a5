package pacing

import (
	"log/slog"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// LineItemPacing computes the pacing of one line item against the delivery
// rows of its channel. asOf is optional; see resolveAsOf.
func (e *Engine) LineItemPacing(item domain.LineItem, rows []domain.DeliveryRow, asOf *domain.Date) domain.LineItemMetrics {
	window := ResolveWindow(item.Bursts, domain.Window{StartDate: item.CampaignStart, EndDate: item.CampaignEnd})
	bursts, estimated := EffectiveBursts(item, window)
	key := ResolveDeliverable(item.BuyType)

	channelRows := RowsForChannel(rows, item.Channel)
	daily, matched := MatchDelivery(item.ID, channelRows)
	if matched == 0 && len(channelRows) > 0 {
		e.logger.Debug("line item matched no delivery rows",
			slog.String("line_item_id", item.ID),
			slog.String("channel", string(item.Channel)),
			slog.Int("candidate_rows", len(channelRows)))
	}
	if estimated {
		e.logger.Debug("pacing line item on estimated burst",
			slog.String("line_item_id", item.ID),
			slog.String("booked_spend", item.BookedSpend.String()))
	}

	m := domain.LineItemMetrics{
		LineItemID:        item.ID,
		Channel:           item.Channel,
		Bursts:            bursts,
		Actuals:           clipToWindow(daily, window),
		MatchedRows:       matched,
		BookedSpend:       goalTotal(item, bursts, domain.KindSpend),
		BookedDeliverable: goalTotal(item, bursts, domain.KindDeliverable),
		DeliverableKey:    key,
	}
	if !window.Resolved() {
		m.Result = unavailableResult(window, key)
		return m
	}

	at := e.resolveAsOf(asOf, window)
	series := DenseSeries(daily, window, key)
	actualSpend, actualDeliverable := sumToDate(series, at)

	m.Result = domain.PacingResult{
		Status:         domain.PacingOK,
		AsOfDate:       &at,
		Window:         window,
		Spend:          buildMetric(actualSpend, ShouldToDate(bursts, at, domain.KindSpend), m.BookedSpend),
		DeliverableKey: key,
		Series:         roundSeries(series),
		Estimated:      estimated,
	}
	if key != domain.DeliverableNone {
		d := buildMetric(actualDeliverable, ShouldToDate(bursts, at, domain.KindDeliverable), m.BookedDeliverable)
		m.Result.Deliverable = &d
	}
	return m
}

// clipToWindow keeps the days inside window. Nothing survives an
// unresolved window, matching the empty series such an item reports.
func clipToWindow(daily map[domain.Date]domain.DeliveryTotals, window domain.Window) map[domain.Date]domain.DeliveryTotals {
	if !window.Resolved() {
		return map[domain.Date]domain.DeliveryTotals{}
	}
	return lo.PickBy(daily, func(d domain.Date, _ domain.DeliveryTotals) bool {
		return window.Contains(d)
	})
}

// goalTotal is the booked total when one was supplied, else the sum over
// the bursts.
func goalTotal(item domain.LineItem, bursts []domain.Burst, kind domain.MetricKind) decimal.Decimal {
	if booked := item.Booked(kind); !booked.IsZero() {
		return booked
	}
	return sumBursts(bursts, kind)
}

// PacingPct is actual/expected as a percentage, and zero whenever nothing
// was expected yet.
func PacingPct(actual, expected decimal.Decimal) decimal.Decimal {
	if !expected.IsPositive() {
		return decimal.Zero
	}
	return actual.Div(expected).Mul(hundred)
}

// buildMetric rounds every figure to cents. Inputs must be unrounded.
func buildMetric(actual, expected, goal decimal.Decimal) domain.Metric {
	return domain.Metric{
		ActualToDate:   actual.Round(2),
		ExpectedToDate: expected.Round(2),
		Delta:          actual.Sub(expected).Round(2),
		PacingPct:      PacingPct(actual, expected).Round(2),
		GoalTotal:      goal.Round(2),
	}
}

func zeroMetric() domain.Metric {
	return buildMetric(decimal.Zero, decimal.Zero, decimal.Zero)
}

func unavailableResult(window domain.Window, key domain.DeliverableKey) domain.PacingResult {
	r := domain.PacingResult{
		Status:         domain.PacingNoWindow,
		Window:         window,
		Spend:          zeroMetric(),
		DeliverableKey: key,
		Series:         []domain.DailyPoint{},
	}
	if key != domain.DeliverableNone {
		d := zeroMetric()
		r.Deliverable = &d
	}
	return r
}

func roundSeries(series []domain.DailyPoint) []domain.DailyPoint {
	out := make([]domain.DailyPoint, len(series))
	for i, p := range series {
		out[i] = domain.DailyPoint{
			Date:              p.Date,
			ActualSpend:       p.ActualSpend.Round(2),
			ActualDeliverable: p.ActualDeliverable.Round(2),
		}
	}
	return out
}
