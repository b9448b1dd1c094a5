package pacing

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
)

func TestBillingSchedule(t *testing.T) {
	e := NewEngine()
	items := []domain.LineItem{
		{ID: "a", Bursts: []domain.Burst{
			burst("2024-01-01", "2024-01-10", "500", "0"),
			burst("2024-01-11", "2024-01-20", "500", "0"),
		}},
		{ID: "b", Bursts: []domain.Burst{burst("2024-01-25", "2024-02-05", "1100", "0")}},
		{ID: "paused", Inactive: true, Bursts: []domain.Burst{burst("2024-03-01", "2024-03-31", "999", "0")}},
	}

	s := e.BillingSchedule(items)
	assert.Equal(t, domain.BillingAuto, s.Mode)
	assert.False(t, s.Estimated)
	require.Len(t, s.Months, 2)
	assert.Equal(t, "2024-01", s.Months[0].MonthKey)
	assertCents(t, "1641.67", s.Months[0].Amount)
	assert.Equal(t, "2024-02", s.Months[1].MonthKey)
	assertCents(t, "458.33", s.Months[1].Amount)
	assertCents(t, "2100", s.Total)

	totals := MonthTotals(s)
	assertCents(t, "458.33", totals["2024-02"])
}

func TestBillingSchedule_RoundedMonthsAddUp(t *testing.T) {
	// 100 over 3 months of 31, 29 and 31 days: none of the shares is a whole
	// number of cents.
	s := NewEngine().BillingSchedule([]domain.LineItem{
		{ID: "a", Bursts: []domain.Burst{burst("2024-01-01", "2024-03-31", "100", "0")}},
	})
	require.Len(t, s.Months, 3)
	sum := dec("0")
	for _, m := range s.Months {
		sum = sum.Add(m.Amount)
		assert.Equal(t, m.Amount.StringFixed(2), m.Amount.Round(2).StringFixed(2))
	}
	assertCents(t, "100", sum)
	assertCents(t, "100", s.Total)
}

func TestBillingSchedule_FallbackIsEstimated(t *testing.T) {
	s := NewEngine().BillingSchedule([]domain.LineItem{{
		ID:            "no-bursts",
		BookedSpend:   dec("600"),
		CampaignStart: dayPtr("2024-01-01"),
		CampaignEnd:   dayPtr("2024-02-29"),
	}})
	assert.True(t, s.Estimated)
	require.Len(t, s.Months, 2)
	assertCents(t, "310", s.Months[0].Amount)
	assertCents(t, "290", s.Months[1].Amount)
}

func TestManualBilling(t *testing.T) {
	t.Run("mismatch is rejected", func(t *testing.T) {
		_, err := ManualBilling([]domain.BillingMonth{
			{MonthKey: "2024-01", Amount: dec("500")},
			{MonthKey: "2024-02", Amount: dec("499")},
		}, dec("1000"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBillingMismatch)
		var mismatch *BillingMismatchError
		require.True(t, errors.As(err, &mismatch))
		assertCents(t, "999", mismatch.ManualTotal)
		assertCents(t, "1000", mismatch.BookedTotal)
		assert.Contains(t, err.Error(), "999.00")
	})

	t.Run("matching schedule is accepted", func(t *testing.T) {
		s, err := ManualBilling([]domain.BillingMonth{
			{MonthKey: "February 2024", Amount: dec("400")},
			{MonthKey: "2024-01", Amount: dec("250")},
			{MonthKey: "Jan 2024", Amount: dec("350")},
		}, dec("1000.00"))
		require.NoError(t, err)
		assert.Equal(t, domain.BillingManual, s.Mode)
		require.Len(t, s.Months, 2)
		assert.Equal(t, "2024-01", s.Months[0].MonthKey)
		assertCents(t, "600", s.Months[0].Amount)
		assertCents(t, "1000", s.Total)
	})

	t.Run("sub-cent amounts are rejected", func(t *testing.T) {
		_, err := ManualBilling([]domain.BillingMonth{
			{MonthKey: "2024-01", Amount: dec("333.333")},
			{MonthKey: "2024-02", Amount: dec("333.333")},
			{MonthKey: "2024-03", Amount: dec("333.334")},
		}, dec("1000"))
		assert.True(t, errors.Is(err, ErrInvalidAmount))
		assert.False(t, errors.Is(err, ErrBillingMismatch))
		assert.Contains(t, err.Error(), "333.333")
	})

	t.Run("entered amounts are returned unchanged", func(t *testing.T) {
		s, err := ManualBilling([]domain.BillingMonth{
			{MonthKey: "2024-01", Amount: dec("333.34")},
			{MonthKey: "2024-02", Amount: dec("333.33")},
			{MonthKey: "2024-03", Amount: dec("333.33")},
		}, dec("1000"))
		require.NoError(t, err)
		require.Len(t, s.Months, 3)
		assert.Equal(t, "333.34", s.Months[0].Amount.StringFixed(2))
		assert.Equal(t, "333.33", s.Months[1].Amount.StringFixed(2))
		assert.Equal(t, "333.33", s.Months[2].Amount.StringFixed(2))
		assertCents(t, "1000", s.Total)
	})

	t.Run("bad month key", func(t *testing.T) {
		_, err := ManualBilling([]domain.BillingMonth{{MonthKey: "Q1", Amount: dec("1000")}}, dec("1000"))
		assert.True(t, errors.Is(err, ErrInvalidMonthKey))
		assert.False(t, errors.Is(err, ErrBillingMismatch))
	})
}

func TestMonthKeyFormat(t *testing.T) {
	assert.Equal(t, MonthKeyLong, ParseMonthKeyFormat(" LONG "))
	assert.Equal(t, MonthKeyISO, ParseMonthKeyFormat("whatever"))
	assert.Equal(t, "January 2024", FormatMonthKey("2024-01", MonthKeyLong))
	assert.Equal(t, "2024-01", FormatMonthKey("2024-01", MonthKeyISO))

	key, err := ParseMonthKey("December 2023")
	require.NoError(t, err)
	assert.Equal(t, "2023-12", key)

	s := RenderMonthKeys(domain.BillingSchedule{Months: []domain.BillingMonth{{MonthKey: "2024-03", Amount: dec("1")}}}, MonthKeyLong)
	assert.Equal(t, "March 2024", s.Months[0].MonthKey)
}
