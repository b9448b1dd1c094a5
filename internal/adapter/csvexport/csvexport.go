// Package csvexport flattens pacing series and delivery rows into CSV
// records. One CSV row corresponds to one DailyPoint or one DeliveryRow.
package csvexport

import (
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"mesa-pacing/internal/core/domain"
)

// ScopeContainer marks series rows that belong to the container roll-up.
const ScopeContainer = "container"

// SeriesRow is one day of a pacing series.
type SeriesRow struct {
	Scope             string `csv:"scope"`
	LineItemID        string `csv:"line_item_id"`
	Date              string `csv:"date"`
	ActualSpend       string `csv:"actual_spend"`
	DeliverableKey    string `csv:"deliverable_key"`
	ActualDeliverable string `csv:"actual_deliverable"`
}

// DeliveryRow is one normalised delivery row.
type DeliveryRow struct {
	Date        string `csv:"date"`
	Channel     string `csv:"channel"`
	LineItemID  string `csv:"line_item_id"`
	Spend       string `csv:"spend"`
	Impressions int64  `csv:"impressions"`
	Clicks      int64  `csv:"clicks"`
	Conversions int64  `csv:"conversions"`
	Views       int64  `csv:"views"`
}

// SeriesRows converts one result's series. An empty lineItemID marks the
// container.
func SeriesRows(lineItemID string, r domain.PacingResult) []SeriesRow {
	scope := "line_item"
	if lineItemID == "" {
		scope = ScopeContainer
	}
	return lo.Map(r.Series, func(p domain.DailyPoint, _ int) SeriesRow {
		row := SeriesRow{
			Scope:          scope,
			LineItemID:     lineItemID,
			Date:           p.Date.String(),
			ActualSpend:    p.ActualSpend.StringFixed(2),
			DeliverableKey: string(r.DeliverableKey),
		}
		if r.DeliverableKey != domain.DeliverableNone {
			row.ActualDeliverable = p.ActualDeliverable.String()
		}
		return row
	})
}

// PacingSeries lists every line item's series followed by the container's.
func PacingSeries(items []domain.LineItemMetrics, container domain.PacingResult) []SeriesRow {
	rows := lo.FlatMap(items, func(m domain.LineItemMetrics, _ int) []SeriesRow {
		return SeriesRows(m.LineItemID, m.Result)
	})
	return append(rows, SeriesRows("", container)...)
}

// DeliveryRows converts normalised delivery rows.
func DeliveryRows(rows []domain.DeliveryRow) []DeliveryRow {
	return lo.Map(rows, func(r domain.DeliveryRow, _ int) DeliveryRow {
		return DeliveryRow{
			Date:        r.Date.String(),
			Channel:     string(r.Channel),
			LineItemID:  r.LineItemID,
			Spend:       r.Spend.StringFixed(2),
			Impressions: r.Impressions,
			Clicks:      r.Clicks,
			Conversions: r.Conversions,
			Views:       r.Views,
		}
	})
}

// BillingRow is one month of a billing schedule.
type BillingRow struct {
	Month  string `csv:"month"`
	Amount string `csv:"amount"`
	Mode   string `csv:"mode"`
}

// BillingRows converts a schedule's months.
func BillingRows(s domain.BillingSchedule) []BillingRow {
	return lo.Map(s.Months, func(m domain.BillingMonth, _ int) BillingRow {
		return BillingRow{Month: m.MonthKey, Amount: m.Amount.StringFixed(2), Mode: string(s.Mode)}
	})
}

// Write encodes rows with a header line.
func Write[T any](w io.Writer, rows []T) error {
	return gocsv.Marshal(rows, w)
}

// Filename builds an attachment name such as "c1-series.csv". Characters
// outside [A-Za-z0-9._-] are replaced with '_'.
func Filename(campaignID, kind string) string {
	name := kind + ".csv"
	if campaignID != "" {
		name = campaignID + "-" + name
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
