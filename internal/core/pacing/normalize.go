// Package pacing is the burst proration and pacing engine. It turns loosely
// typed schedule and delivery records into canonical values, prorates burst
// budgets over time and compares what should have delivered with what did.
//
// Everything in this package is pure: no I/O, no shared mutable state. The
// only injected dependencies are a logger and a clock, see Engine.
package pacing

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
)

// Record is one upstream object with unpredictable field names.
type Record = map[string]any

// MaxBurstDays bounds the length of a usable burst. Longer spans are open
// ended sentinels such as 9999-12-31 rather than flights.
const MaxBurstDays = 3660

// Alias precedence tables. The first alias holding a non-nil value wins.
var (
	burstStartAliases       = []string{"start_date", "startDate", "start", "beginDate", "begin_date"}
	burstEndAliases         = []string{"end_date", "endDate", "end", "finishDate", "finish_date"}
	burstSpendAliases       = []string{"budget_number", "budget", "media_investment", "buy_amount_number", "buyAmount", "totalSpend", "total_spend"}
	burstDeliverableAliases = []string{"calculated_value_number", "calculatedValue", "deliverables", "conversions", "totalDeliverable", "total_deliverable"}

	lineItemIDAliases          = []string{"line_item_id", "lineItemId", "id"}
	lineItemChannelAliases     = []string{"channel", "media_type", "mediaType"}
	lineItemBuyTypeAliases     = []string{"buy_type", "buyType"}
	lineItemBurstAliases       = []string{"bursts", "bursts_json", "burstsJson"}
	lineItemSpendAliases       = []string{"bookedSpend", "booked_spend", "total_budget", "totalBudget"}
	lineItemDeliverableAliases = []string{"bookedDeliverable", "booked_deliverable", "total_deliverables", "totalDeliverables", "goal_deliverables"}
	lineItemCampaignStart      = []string{"campaignStart", "campaign_start_date", "campaignStartDate"}
	lineItemCampaignEnd        = []string{"campaignEnd", "campaign_end_date", "campaignEndDate"}
	lineItemActiveAliases      = []string{"is_active", "isActive", "active"}

	rowDateAliases       = []string{"date", "day", "report_date", "reportDate", "date_start"}
	rowProgrammaticIDs   = []string{"lineItemId", "line_item_id"}
	rowSocialIDs         = []string{"matchedPostfix", "matched_postfix", "lineItemId", "line_item_id"}
	rowSpendAliases      = []string{"spend", "amount_spent", "amountSpent", "cost"}
	rowImpressionAliases = []string{"impressions"}
	rowClickAliases      = []string{"clicks", "link_clicks", "linkClicks"}
	rowConversionAliases = []string{"conversions", "results", "leads"}
	rowViewAliases       = []string{"views", "video_views", "videoViews", "video_plays"}
)

// NormalizeBursts converts raw burst data into canonical bursts. raw may be
// a slice of records, a single record, already normalised bursts, or a JSON
// document (string or bytes) holding any of those. Entries without both a
// usable start and end date are dropped. Unparseable JSON yields no bursts.
func NormalizeBursts(raw any) []domain.Burst {
	switch v := raw.(type) {
	case nil:
		return nil
	case []domain.Burst:
		return lo.FilterMap(v, func(b domain.Burst, _ int) (domain.Burst, bool) { return normalizeBurstValue(b) })
	case domain.Burst:
		return NormalizeBursts([]domain.Burst{v})
	case []Record:
		return lo.FilterMap(v, func(r Record, _ int) (domain.Burst, bool) { return NormalizeBurst(r) })
	case []any:
		return lo.FilterMap(v, func(item any, _ int) (domain.Burst, bool) {
			bursts := NormalizeBursts(item)
			if len(bursts) != 1 {
				return domain.Burst{}, false
			}
			return bursts[0], true
		})
	case Record:
		if b, ok := NormalizeBurst(v); ok {
			return []domain.Burst{b}
		}
		return nil
	case string:
		return NormalizeBursts([]byte(v))
	case json.RawMessage:
		return NormalizeBursts([]byte(v))
	case []byte:
		decoded, ok := decodeJSON(v)
		if !ok {
			return nil
		}
		return NormalizeBursts(decoded)
	}
	return nil
}

// NormalizeBurst resolves one raw burst record. ok is false when no start
// or end date can be determined, the end precedes the start, or the burst
// runs longer than MaxBurstDays.
func NormalizeBurst(rec Record) (domain.Burst, bool) {
	start, ok := dateField(rec, burstStartAliases)
	if !ok {
		return domain.Burst{}, false
	}
	end, ok := dateField(rec, burstEndAliases)
	if !ok {
		return domain.Burst{}, false
	}
	v, _ := lookup(rec, "estimated")
	return normalizeBurstValue(domain.Burst{
		StartDate:        start,
		EndDate:          end,
		TotalSpend:       decimalField(rec, burstSpendAliases),
		TotalDeliverable: decimalField(rec, burstDeliverableAliases),
		Estimated:        toBool(v, false),
	})
}

func normalizeBurstValue(b domain.Burst) (domain.Burst, bool) {
	if b.StartDate.IsZero() || b.EndDate.IsZero() || b.EndDate.Before(b.StartDate) {
		return domain.Burst{}, false
	}
	if InclusiveDayCount(b.StartDate, b.EndDate) > MaxBurstDays {
		return domain.Burst{}, false
	}
	b.TotalSpend = nonNegative(b.TotalSpend)
	b.TotalDeliverable = nonNegative(b.TotalDeliverable)
	return b, true
}

// NormalizeLineItem resolves a raw line-item record. fallback supplies the
// campaign dates used when the record carries none of its own. Booked
// totals default to the sum over the item's bursts.
func NormalizeLineItem(rec Record, fallback domain.Window) domain.LineItem {
	item := domain.LineItem{
		ID:            strings.TrimSpace(stringField(rec, lineItemIDAliases)),
		BuyType:       domain.ParseBuyType(stringField(rec, lineItemBuyTypeAliases)),
		CampaignStart: fallback.StartDate,
		CampaignEnd:   fallback.EndDate,
	}
	if ch, ok := domain.ParseChannel(stringField(rec, lineItemChannelAliases)); ok {
		item.Channel = ch
	}
	if raw, ok := lookup(rec, lineItemBurstAliases...); ok {
		item.Bursts = NormalizeBursts(raw)
	}
	if d, ok := dateField(rec, lineItemCampaignStart); ok {
		item.CampaignStart = &d
	}
	if d, ok := dateField(rec, lineItemCampaignEnd); ok {
		item.CampaignEnd = &d
	}

	item.BookedSpend = sumBursts(item.Bursts, domain.KindSpend)
	if v, ok := lookup(rec, lineItemSpendAliases...); ok {
		item.BookedSpend = nonNegative(toDecimal(v))
	}
	item.BookedDeliverable = sumBursts(item.Bursts, domain.KindDeliverable)
	if v, ok := lookup(rec, lineItemDeliverableAliases...); ok {
		item.BookedDeliverable = nonNegative(toDecimal(v))
	}

	if v, ok := lookup(rec, "inactive"); ok {
		item.Inactive = toBool(v, false)
	} else if v, ok := lookup(rec, lineItemActiveAliases...); ok {
		item.Inactive = !toBool(v, true)
	}
	return item
}

// NormalizeDeliveryRow resolves a raw delivery record. The record's own
// "channel" field wins over the channel argument; the channel decides which
// field identifies the line item. Rows without a usable date are rejected.
func NormalizeDeliveryRow(rec Record, channel domain.Channel) (domain.DeliveryRow, bool) {
	date, ok := dateField(rec, rowDateAliases)
	if !ok {
		return domain.DeliveryRow{}, false
	}
	if v, ok := lookup(rec, "channel"); ok {
		if ch, known := domain.ParseChannel(toString(v)); known {
			channel = ch
		}
	}
	idAliases := rowProgrammaticIDs
	if channel.Social() {
		idAliases = rowSocialIDs
	}
	return domain.DeliveryRow{
		Date:        date,
		Channel:     channel,
		LineItemID:  strings.TrimSpace(stringField(rec, idAliases)),
		Spend:       decimalField(rec, rowSpendAliases),
		Impressions: decimalField(rec, rowImpressionAliases).IntPart(),
		Clicks:      decimalField(rec, rowClickAliases).IntPart(),
		Conversions: decimalField(rec, rowConversionAliases).IntPart(),
		Views:       decimalField(rec, rowViewAliases).IntPart(),
	}, true
}

// NormalizeDeliveryRows applies NormalizeDeliveryRow to every record and
// drops the rejected ones.
func NormalizeDeliveryRows(recs []Record, channel domain.Channel) []domain.DeliveryRow {
	return lo.FilterMap(recs, func(r Record, _ int) (domain.DeliveryRow, bool) {
		return NormalizeDeliveryRow(r, channel)
	})
}

func lookup(rec Record, aliases ...string) (any, bool) {
	for _, a := range aliases {
		if v, ok := rec[a]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func dateField(rec Record, aliases []string) (domain.Date, bool) {
	v, ok := lookup(rec, aliases...)
	if !ok {
		return domain.Date{}, false
	}
	return toDate(v)
}

func decimalField(rec Record, aliases []string) decimal.Decimal {
	v, ok := lookup(rec, aliases...)
	if !ok {
		return decimal.Zero
	}
	return toDecimal(v)
}

func stringField(rec Record, aliases []string) string {
	v, ok := lookup(rec, aliases...)
	if !ok {
		return ""
	}
	return toString(v)
}

func decodeJSON(b []byte) (any, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// toDecimal never fails: anything unparseable is zero. Strings are stripped
// of every character other than digits, '.' and '-' first, so "$1,200.50"
// reads as 1200.50.
func toDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case json.Number:
		return toDecimal(n.String())
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, n)
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}

func toDate(v any) (domain.Date, bool) {
	switch d := v.(type) {
	case domain.Date:
		return d, !d.IsZero()
	case *domain.Date:
		if d == nil {
			return domain.Date{}, false
		}
		return *d, !d.IsZero()
	case time.Time:
		return domain.DateOf(d.UTC()), !d.IsZero()
	case string:
		parsed, err := domain.ParseDate(d)
		return parsed, err == nil
	case json.Number:
		ms, err := d.Int64()
		if err != nil {
			return domain.Date{}, false
		}
		return domain.DateFromEpochMillis(ms), true
	case float64:
		return domain.DateFromEpochMillis(int64(d)), true
	case int64:
		return domain.DateFromEpochMillis(d), true
	}
	return domain.Date{}, false
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case domain.Channel:
		return string(s)
	case domain.BuyType:
		return string(s)
	}
	return ""
}

func toBool(v any, def bool) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return def
		}
		return parsed
	case json.Number, float64, int, int64:
		return !toDecimal(b).IsZero()
	}
	return def
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func sumBursts(bursts []domain.Burst, kind domain.MetricKind) decimal.Decimal {
	return lo.Reduce(bursts, func(acc decimal.Decimal, b domain.Burst, _ int) decimal.Decimal {
		return acc.Add(b.Total(kind))
	}, decimal.Zero)
}
