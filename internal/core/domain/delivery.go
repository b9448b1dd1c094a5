package domain

import "github.com/shopspring/decimal"

// DeliveryRow is one day of delivery reported by an ad platform for a line
// item.
type DeliveryRow struct {
	Date        Date            `json:"date"`
	Channel     Channel         `json:"channel,omitempty"`
	LineItemID  string          `json:"lineItemId"`
	Spend       decimal.Decimal `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Views       int64           `json:"views"`
}

// DeliveryTotals sums the metrics of one or more delivery rows.
type DeliveryTotals struct {
	Spend       decimal.Decimal `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Views       int64           `json:"views"`
}

// AddRow returns t with r's metrics added.
func (t DeliveryTotals) AddRow(r DeliveryRow) DeliveryTotals {
	return t.Add(DeliveryTotals{
		Spend:       r.Spend,
		Impressions: r.Impressions,
		Clicks:      r.Clicks,
		Conversions: r.Conversions,
		Views:       r.Views,
	})
}

// Add returns the element-wise sum of t and o.
func (t DeliveryTotals) Add(o DeliveryTotals) DeliveryTotals {
	return DeliveryTotals{
		Spend:       t.Spend.Add(o.Spend),
		Impressions: t.Impressions + o.Impressions,
		Clicks:      t.Clicks + o.Clicks,
		Conversions: t.Conversions + o.Conversions,
		Views:       t.Views + o.Views,
	}
}

// Deliverable returns the metric named by key, or zero for DeliverableNone.
func (t DeliveryTotals) Deliverable(key DeliverableKey) decimal.Decimal {
	switch key {
	case DeliverableImpressions:
		return decimal.NewFromInt(t.Impressions)
	case DeliverableClicks:
		return decimal.NewFromInt(t.Clicks)
	case DeliverableConversions:
		return decimal.NewFromInt(t.Conversions)
	case DeliverableViews:
		return decimal.NewFromInt(t.Views)
	}
	return decimal.Zero
}
