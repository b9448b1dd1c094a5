package pacing

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
)

var (
	// ErrBillingMismatch is matched by every *BillingMismatchError.
	ErrBillingMismatch = errors.New("billing mismatch")
	// ErrInvalidMonthKey is returned for manual months that are neither
	// "YYYY-MM" nor "Month YYYY".
	ErrInvalidMonthKey = errors.New("invalid month key")
	// ErrInvalidAmount is returned for manual amounts finer than a cent.
	ErrInvalidAmount = errors.New("invalid billing amount")
)

// BillingMismatchError rejects a manual billing schedule whose total does
// not equal the booked total to the cent.
type BillingMismatchError struct {
	ManualTotal decimal.Decimal
	BookedTotal decimal.Decimal
}

func (e *BillingMismatchError) Error() string {
	return fmt.Sprintf("billing mismatch: manual schedule totals %s, booked total is %s",
		e.ManualTotal.StringFixed(2), e.BookedTotal.StringFixed(2))
}

// Is makes errors.Is(err, ErrBillingMismatch) hold.
func (e *BillingMismatchError) Is(target error) bool {
	return target == ErrBillingMismatch
}

// MonthKeyFormat is the deployment-wide spelling of billing month keys.
type MonthKeyFormat string

const (
	MonthKeyISO  MonthKeyFormat = "iso"  // 2024-01
	MonthKeyLong MonthKeyFormat = "long" // January 2024
)

const longMonthLayout = "January 2006"

// ParseMonthKeyFormat maps a config value to a format. Anything but "long"
// is ISO.
func ParseMonthKeyFormat(s string) MonthKeyFormat {
	if strings.EqualFold(strings.TrimSpace(s), string(MonthKeyLong)) {
		return MonthKeyLong
	}
	return MonthKeyISO
}

// FormatMonthKey renders a canonical "YYYY-MM" key in format f. Keys that
// are not canonical are returned unchanged.
func FormatMonthKey(key string, f MonthKeyFormat) string {
	if f != MonthKeyLong {
		return key
	}
	t, err := time.Parse(domain.MonthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format(longMonthLayout)
}

// ParseMonthKey accepts "YYYY-MM", "January 2024" and "Jan 2024" and
// returns the canonical "YYYY-MM" key.
func ParseMonthKey(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{domain.MonthKeyLayout, longMonthLayout, "Jan 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(domain.MonthKeyLayout), nil
		}
	}
	return "", errors.Wrapf(ErrInvalidMonthKey, "%q", s)
}

// BillingSchedule allocates every burst of every active line item to
// calendar months and sums the allocations into one schedule. Items
// without bursts are billed on an estimated burst spanning their window.
func (e *Engine) BillingSchedule(items []domain.LineItem) domain.BillingSchedule {
	var (
		bursts    []domain.Burst
		estimated bool
	)
	for _, item := range items {
		if item.Inactive {
			continue
		}
		window := ResolveWindow(item.Bursts, domain.Window{StartDate: item.CampaignStart, EndDate: item.CampaignEnd})
		b, synthesized := EffectiveBursts(item, window)
		if synthesized {
			e.logger.Debug("billing line item on estimated burst", slog.String("line_item_id", item.ID))
		}
		bursts = append(bursts, b...)
		estimated = estimated || synthesized
	}
	return roundSchedule(domain.BillingAuto, AllocateToMonths(bursts), estimated)
}

// ManualBilling validates a hand-entered schedule against the booked total.
// Month keys may use either spelling; repeated months are summed. Amounts
// must be whole cents. A schedule that does not reconcile to the cent is
// rejected with a *BillingMismatchError; an accepted one keeps the entered
// amounts.
func ManualBilling(months []domain.BillingMonth, booked decimal.Decimal) (domain.BillingSchedule, error) {
	byMonth := make(map[string]decimal.Decimal, len(months))
	for _, m := range months {
		key, err := ParseMonthKey(m.MonthKey)
		if err != nil {
			return domain.BillingSchedule{}, err
		}
		if !m.Amount.Equal(m.Amount.Round(2)) {
			return domain.BillingSchedule{}, errors.Wrapf(ErrInvalidAmount, "%s: %s", m.MonthKey, m.Amount)
		}
		byMonth[key] = byMonth[key].Add(m.Amount)
	}
	normalized := monthsFromMap(byMonth)

	manualTotal := lo.Reduce(normalized, func(acc decimal.Decimal, m domain.BillingMonth, _ int) decimal.Decimal {
		return acc.Add(m.Amount)
	}, decimal.Zero)
	if !manualTotal.Round(2).Equal(booked.Round(2)) {
		return domain.BillingSchedule{}, &BillingMismatchError{ManualTotal: manualTotal, BookedTotal: booked}
	}
	return roundSchedule(domain.BillingManual, normalized, false), nil
}

// roundSchedule rounds months to cents and moves the rounding residual onto
// the largest month so the months add up to the rounded total exactly.
func roundSchedule(mode domain.BillingMode, months []domain.BillingMonth, estimated bool) domain.BillingSchedule {
	total := decimal.Zero
	roundedSum := decimal.Zero
	rounded := make([]domain.BillingMonth, len(months))
	for i, m := range months {
		total = total.Add(m.Amount)
		rounded[i] = domain.BillingMonth{MonthKey: m.MonthKey, Amount: m.Amount.Round(2)}
		roundedSum = roundedSum.Add(rounded[i].Amount)
	}
	total = total.Round(2)
	if residual := total.Sub(roundedSum); !residual.IsZero() && len(rounded) > 0 {
		largest := 0
		for i, m := range rounded {
			if m.Amount.GreaterThan(rounded[largest].Amount) {
				largest = i
			}
		}
		rounded[largest].Amount = rounded[largest].Amount.Add(residual)
	}
	return domain.BillingSchedule{Mode: mode, Months: rounded, Total: total, Estimated: estimated}
}

// RenderMonthKeys returns a copy of s with month keys spelled in format f.
func RenderMonthKeys(s domain.BillingSchedule, f MonthKeyFormat) domain.BillingSchedule {
	s.Months = lo.Map(s.Months, func(m domain.BillingMonth, _ int) domain.BillingMonth {
		return domain.BillingMonth{MonthKey: FormatMonthKey(m.MonthKey, f), Amount: m.Amount}
	})
	return s
}

// MonthTotals flattens a schedule into a month-keyed map.
func MonthTotals(s domain.BillingSchedule) map[string]decimal.Decimal {
	return lo.SliceToMap(s.Months, func(m domain.BillingMonth) (string, decimal.Decimal) {
		return m.MonthKey, m.Amount
	})
}
