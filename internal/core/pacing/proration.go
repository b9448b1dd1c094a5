package pacing

import (
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
)

// InclusiveDayCount counts the days from a to b with both endpoints
// included, so a single-day range has length 1. It is zero or negative when
// b precedes a.
func InclusiveDayCount(a, b domain.Date) int {
	return a.DaysUntil(b) + 1
}

// ShouldToDate returns the linearly time-prorated value of kind that bursts
// should have delivered by the end of asOf.
func ShouldToDate(bursts []domain.Burst, asOf domain.Date, kind domain.MetricKind) decimal.Decimal {
	return lo.Reduce(bursts, func(acc decimal.Decimal, b domain.Burst, _ int) decimal.Decimal {
		return acc.Add(burstToDate(b, asOf, kind))
	}, decimal.Zero)
}

func burstToDate(b domain.Burst, asOf domain.Date, kind domain.MetricKind) decimal.Decimal {
	duration := InclusiveDayCount(b.StartDate, b.EndDate)
	if duration <= 0 || asOf.Before(b.StartDate) {
		return decimal.Zero
	}
	elapsed := InclusiveDayCount(b.StartDate, domain.MinDate(asOf, b.EndDate))
	return prorate(b.Total(kind), elapsed, duration)
}

// DailyProration is the share of a burst's total attributed to a single
// day: total / duration inside the burst, zero outside it.
func DailyProration(b domain.Burst, day domain.Date, kind domain.MetricKind) decimal.Decimal {
	duration := InclusiveDayCount(b.StartDate, b.EndDate)
	if duration <= 0 || day.Before(b.StartDate) || day.After(b.EndDate) {
		return decimal.Zero
	}
	return prorate(b.Total(kind), 1, duration)
}

// AllocateToMonths splits every burst's spend across the calendar months it
// overlaps, proportionally to the overlapping day count, and sums the
// pieces per month. The result is sorted by month and is not rounded.
func AllocateToMonths(bursts []domain.Burst) []domain.BillingMonth {
	return AllocateKindToMonths(bursts, domain.KindSpend)
}

// AllocateKindToMonths is AllocateToMonths for an arbitrary burst total.
func AllocateKindToMonths(bursts []domain.Burst, kind domain.MetricKind) []domain.BillingMonth {
	byMonth := make(map[string]decimal.Decimal)
	for _, b := range bursts {
		for key, amount := range allocateBurst(b, kind) {
			byMonth[key] = byMonth[key].Add(amount)
		}
	}
	return monthsFromMap(byMonth)
}

func allocateBurst(b domain.Burst, kind domain.MetricKind) map[string]decimal.Decimal {
	duration := InclusiveDayCount(b.StartDate, b.EndDate)
	if duration <= 0 {
		return nil
	}
	out := make(map[string]decimal.Decimal)
	for month := b.StartDate.FirstOfMonth(); !month.After(b.EndDate); month = month.LastOfMonth().AddDays(1) {
		from := domain.MaxDate(b.StartDate, month)
		to := domain.MinDate(b.EndDate, month.LastOfMonth())
		out[month.MonthKey()] = prorate(b.Total(kind), InclusiveDayCount(from, to), duration)
	}
	return out
}

func monthsFromMap(byMonth map[string]decimal.Decimal) []domain.BillingMonth {
	keys := lo.Keys(byMonth)
	slices.Sort(keys)
	return lo.Map(keys, func(k string, _ int) domain.BillingMonth {
		return domain.BillingMonth{MonthKey: k, Amount: byMonth[k]}
	})
}

// prorate multiplies before dividing to keep the quotient exact whenever
// total*days is divisible by duration.
func prorate(total decimal.Decimal, days, duration int) decimal.Decimal {
	return total.Mul(decimal.NewFromInt(int64(days))).Div(decimal.NewFromInt(int64(duration)))
}

// EffectiveBursts returns the bursts pacing and billing run on. An item
// with its own bursts uses them as is. An item without bursts but with a
// resolved window and a non-zero booked total gets one synthetic burst
// spanning the window, flagged Estimated; synthesized reports that case.
func EffectiveBursts(item domain.LineItem, window domain.Window) (bursts []domain.Burst, synthesized bool) {
	if len(item.Bursts) > 0 {
		return item.Bursts, false
	}
	if !window.Resolved() || (item.BookedSpend.IsZero() && item.BookedDeliverable.IsZero()) {
		return nil, false
	}
	return []domain.Burst{{
		StartDate:        *window.StartDate,
		EndDate:          *window.EndDate,
		TotalSpend:       item.BookedSpend,
		TotalDeliverable: item.BookedDeliverable,
		Estimated:        true,
	}}, true
}
