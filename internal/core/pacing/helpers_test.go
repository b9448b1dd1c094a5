package pacing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mesa-pacing/internal/core/domain"
)

func day(s string) domain.Date { return domain.MustParseDate(s) }

func dayPtr(s string) *domain.Date {
	d := day(s)
	return &d
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func burst(start, end, spend, deliverable string) domain.Burst {
	return domain.Burst{
		StartDate:        day(start),
		EndDate:          day(end),
		TotalSpend:       dec(spend),
		TotalDeliverable: dec(deliverable),
	}
}

// assertCents compares decimals at two decimal places.
func assertCents(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, dec(want).StringFixed(2), got.StringFixed(2), msgAndArgs...)
}

func fixedClock(s string) func() time.Time {
	return func() time.Time { return day(s).Time().Add(15 * time.Hour) }
}
