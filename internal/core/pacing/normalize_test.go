package pacing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
)

func TestNormalizeBurst_AliasPrecedence(t *testing.T) {
	tests := []struct {
		name            string
		rec             Record
		wantSpend       string
		wantDeliverable string
	}{
		{
			name: "budget_number beats budget",
			rec: Record{"start_date": "2024-01-01", "end_date": "2024-01-10",
				"budget_number": 100, "budget": 999, "calculated_value_number": 5, "deliverables": 7},
			wantSpend:       "100",
			wantDeliverable: "5",
		},
		{
			name: "nil alias is skipped",
			rec: Record{"startDate": "2024-01-01", "endDate": "2024-01-10",
				"budget_number": nil, "media_investment": "250.5", "calculatedValue": nil, "conversions": 12},
			wantSpend:       "250.5",
			wantDeliverable: "12",
		},
		{
			name:            "absent totals default to zero",
			rec:             Record{"begin_date": "2024-01-01", "finish_date": "2024-01-10"},
			wantSpend:       "0",
			wantDeliverable: "0",
		},
		{
			name:            "currency strings are stripped",
			rec:             Record{"start": "2024-01-01", "end": "2024-01-10", "buyAmount": "$1,200.50"},
			wantSpend:       "1200.50",
			wantDeliverable: "0",
		},
		{
			name:            "garbage fails soft",
			rec:             Record{"start": "2024-01-01", "end": "2024-01-10", "budget": "n/a", "deliverables": "..."},
			wantSpend:       "0",
			wantDeliverable: "0",
		},
		{
			name:            "negative totals are clamped",
			rec:             Record{"start": "2024-01-01", "end": "2024-01-10", "budget": -50},
			wantSpend:       "0",
			wantDeliverable: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := NormalizeBurst(tt.rec)
			require.True(t, ok)
			assert.Equal(t, day("2024-01-01"), b.StartDate)
			assert.Equal(t, day("2024-01-10"), b.EndDate)
			assertCents(t, tt.wantSpend, b.TotalSpend)
			assertCents(t, tt.wantDeliverable, b.TotalDeliverable)
		})
	}
}

func TestNormalizeBurst_RejectsUnusableDates(t *testing.T) {
	for name, rec := range map[string]Record{
		"missing end":      {"start_date": "2024-01-01", "budget": 10},
		"missing start":    {"end_date": "2024-01-01", "budget": 10},
		"bad start":        {"start_date": "soon", "end_date": "2024-01-01"},
		"end before start": {"start_date": "2024-02-01", "end_date": "2024-01-01"},
		"open ended":       {"start_date": "2024-01-01", "end_date": "9999-12-31", "budget": 1000},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := NormalizeBurst(rec)
			assert.False(t, ok)
		})
	}
}

func TestNormalizeBurst_LengthLimit(t *testing.T) {
	start := day("2024-01-01")
	_, ok := NormalizeBurst(Record{"start": start.String(), "end": start.AddDays(MaxBurstDays - 1).String()})
	assert.True(t, ok)
	_, ok = NormalizeBurst(Record{"start": start.String(), "end": start.AddDays(MaxBurstDays).String()})
	assert.False(t, ok)

	assert.Empty(t, NormalizeBursts([]domain.Burst{burst("2024-01-01", "9999-12-31", "1000", "0")}))
}

func TestNormalizeBursts_Inputs(t *testing.T) {
	t.Run("json string", func(t *testing.T) {
		got := NormalizeBursts(`[{"start_date":"2024-01-01","end_date":"2024-01-31","budget":"3100"},{"start_date":"2024-02-01"}]`)
		require.Len(t, got, 1)
		assertCents(t, "3100", got[0].TotalSpend)
	})
	t.Run("malformed json", func(t *testing.T) {
		assert.Empty(t, NormalizeBursts(`[{"start_date":`))
	})
	t.Run("empty string", func(t *testing.T) {
		assert.Empty(t, NormalizeBursts(""))
	})
	t.Run("single object", func(t *testing.T) {
		got := NormalizeBursts(Record{"start_date": "2024-01-01", "end_date": "2024-01-01", "budget": 10})
		require.Len(t, got, 1)
	})
	t.Run("timestamps and epoch millis", func(t *testing.T) {
		got := NormalizeBursts([]any{
			Record{"startDate": "2024-03-01T22:00:00Z", "endDate": json.Number("1711843200000")},
		})
		require.Len(t, got, 1)
		assert.Equal(t, day("2024-03-01"), got[0].StartDate)
		assert.Equal(t, day("2024-03-31"), got[0].EndDate)
	})
}

func TestNormalizeBurst_Idempotent(t *testing.T) {
	original := burst("2024-01-01", "2024-01-10", "1000.25", "50000")

	again := NormalizeBursts([]domain.Burst{original})
	require.Len(t, again, 1)
	assert.Equal(t, original, again[0])

	raw, err := json.Marshal(original)
	require.NoError(t, err)
	fromJSON := NormalizeBursts(string(raw))
	require.Len(t, fromJSON, 1)
	assert.Equal(t, original.StartDate, fromJSON[0].StartDate)
	assert.Equal(t, original.EndDate, fromJSON[0].EndDate)
	assert.True(t, original.TotalSpend.Equal(fromJSON[0].TotalSpend))
	assert.True(t, original.TotalDeliverable.Equal(fromJSON[0].TotalDeliverable))
}

func TestNormalizeLineItem(t *testing.T) {
	fallback := domain.Window{StartDate: dayPtr("2024-01-01"), EndDate: dayPtr("2024-03-31")}

	t.Run("snake case with bursts_json", func(t *testing.T) {
		item := NormalizeLineItem(Record{
			"line_item_id": " LI-1 ",
			"channel":      "Meta",
			"buy_type":     "cpm",
			"bursts_json":  `[{"start_date":"2024-01-01","end_date":"2024-01-10","budget":600,"deliverables":1000},{"start_date":"2024-02-01","end_date":"2024-02-10","budget":400,"deliverables":500}]`,
		}, fallback)
		assert.Equal(t, "LI-1", item.ID)
		assert.Equal(t, domain.ChannelMeta, item.Channel)
		assert.Equal(t, domain.BuyTypeCPM, item.BuyType)
		require.Len(t, item.Bursts, 2)
		assertCents(t, "1000", item.BookedSpend)
		assertCents(t, "1500", item.BookedDeliverable)
		assert.False(t, item.Inactive)
		assert.Equal(t, fallback.StartDate, item.CampaignStart)
	})

	t.Run("explicit booked totals win", func(t *testing.T) {
		item := NormalizeLineItem(Record{
			"lineItemId":  "LI-2",
			"buyType":     "CPC",
			"bursts":      []any{Record{"startDate": "2024-01-01", "endDate": "2024-01-10", "budget": 100}},
			"totalBudget": "2,000",
			"isActive":    false,
		}, domain.Window{})
		assertCents(t, "2000", item.BookedSpend)
		assert.True(t, item.Inactive)
		assert.Nil(t, item.CampaignStart)
	})

	t.Run("unparseable bursts leave an empty schedule", func(t *testing.T) {
		item := NormalizeLineItem(Record{"id": 42, "bursts_json": "{oops", "total_budget": 900}, fallback)
		assert.Equal(t, "42", item.ID)
		assert.Empty(t, item.Bursts)
		assertCents(t, "900", item.BookedSpend)
	})

	t.Run("round trip", func(t *testing.T) {
		item := NormalizeLineItem(Record{
			"id": "LI-3", "buy_type": "CPV", "channel": "tiktok",
			"bursts": []any{Record{"start_date": "2024-05-01", "end_date": "2024-05-31", "budget": 310, "deliverables": 3100}},
		}, fallback)
		raw, err := json.Marshal(item)
		require.NoError(t, err)
		var rec Record
		require.NoError(t, json.Unmarshal(raw, &rec))
		again := NormalizeLineItem(rec, domain.Window{})
		assert.Equal(t, item.ID, again.ID)
		assert.Equal(t, item.Channel, again.Channel)
		assert.Equal(t, item.BuyType, again.BuyType)
		assert.Equal(t, item.CampaignStart, again.CampaignStart)
		require.Len(t, again.Bursts, 1)
		assert.True(t, item.BookedSpend.Equal(again.BookedSpend))
	})
}

func TestNormalizeDeliveryRow(t *testing.T) {
	t.Run("programmatic", func(t *testing.T) {
		row, ok := NormalizeDeliveryRow(Record{
			"date": "2024-01-03", "lineItemId": "LI-1", "matchedPostfix": "ignored",
			"spend": "12.5", "impressions": json.Number("1000"), "clicks": 3,
		}, domain.ChannelProgrammaticDisplay)
		require.True(t, ok)
		assert.Equal(t, "LI-1", row.LineItemID)
		assert.Equal(t, domain.ChannelProgrammaticDisplay, row.Channel)
		assertCents(t, "12.5", row.Spend)
		assert.EqualValues(t, 1000, row.Impressions)
		assert.EqualValues(t, 3, row.Clicks)
	})
	t.Run("social uses matched postfix", func(t *testing.T) {
		row, ok := NormalizeDeliveryRow(Record{
			"channel": "meta", "date_start": "2024-01-03", "matchedPostfix": "abc123", "lineItemId": "x",
			"amount_spent": 40, "results": 4, "video_views": 900,
		}, "")
		require.True(t, ok)
		assert.Equal(t, domain.ChannelMeta, row.Channel)
		assert.Equal(t, "abc123", row.LineItemID)
		assertCents(t, "40", row.Spend)
		assert.EqualValues(t, 4, row.Conversions)
		assert.EqualValues(t, 900, row.Views)
	})
	t.Run("missing date", func(t *testing.T) {
		_, ok := NormalizeDeliveryRow(Record{"lineItemId": "LI-1", "spend": 1}, domain.ChannelMeta)
		assert.False(t, ok)
	})
	t.Run("batch drops rejects", func(t *testing.T) {
		rows := NormalizeDeliveryRows([]Record{
			{"date": "2024-01-01", "lineItemId": "a"},
			{"lineItemId": "b"},
		}, domain.ChannelProgrammaticVideo)
		assert.Len(t, rows, 1)
	})
}
