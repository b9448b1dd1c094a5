package domain

import "strings"

// BuyType is the commercial model a line item is bought on (CPM, CPC, ...).
// Values are stored upper-cased.
type BuyType string

const (
	BuyTypeCPM   BuyType = "CPM"
	BuyTypeCPC   BuyType = "CPC"
	BuyTypeCPA   BuyType = "CPA"
	BuyTypeCPV   BuyType = "CPV"
	BuyTypeLeads BuyType = "LEADS"
	BuyTypeBonus BuyType = "BONUS"
)

// ParseBuyType trims and upper-cases s. Unknown values are kept as given;
// they simply resolve to no deliverable.
func ParseBuyType(s string) BuyType {
	return BuyType(strings.ToUpper(strings.TrimSpace(s)))
}

// DeliverableKey names the delivery metric counted against a deliverable
// goal. The empty key means the line item is paced on spend only.
type DeliverableKey string

const (
	DeliverableNone        DeliverableKey = ""
	DeliverableImpressions DeliverableKey = "impressions"
	DeliverableClicks      DeliverableKey = "clicks"
	DeliverableConversions DeliverableKey = "conversions"
	DeliverableViews       DeliverableKey = "views"
)
