package domain

import "github.com/shopspring/decimal"

// LineItem is one bookable unit of a media plan. It is built per request
// from upstream campaign data and read-only for the duration of a pacing
// computation.
type LineItem struct {
	ID                string          `json:"id"`
	Channel           Channel         `json:"channel,omitempty"`
	BuyType           BuyType         `json:"buyType,omitempty"`
	Bursts            []Burst         `json:"bursts"`
	BookedSpend       decimal.Decimal `json:"bookedSpend"`
	BookedDeliverable decimal.Decimal `json:"bookedDeliverable"`
	// CampaignStart and CampaignEnd are the fallback window bounds used
	// when the item has no bursts.
	CampaignStart *Date `json:"campaignStart,omitempty"`
	CampaignEnd   *Date `json:"campaignEnd,omitempty"`
	Inactive      bool  `json:"inactive,omitempty"`
}

// Booked returns the booked total for kind.
func (li LineItem) Booked(kind MetricKind) decimal.Decimal {
	if kind == KindDeliverable {
		return li.BookedDeliverable
	}
	return li.BookedSpend
}
