package pacing

import "mesa-pacing/internal/core/domain"

// deliverableByBuyType is the one buy type to deliverable mapping shared by
// every channel. Social and programmatic vocabularies overlap: CPV is only
// sold on social and video, CPM/CPC/CPA everywhere.
var deliverableByBuyType = map[domain.BuyType]domain.DeliverableKey{
	domain.BuyTypeCPM:   domain.DeliverableImpressions,
	domain.BuyTypeCPC:   domain.DeliverableClicks,
	domain.BuyTypeCPA:   domain.DeliverableConversions,
	domain.BuyTypeLeads: domain.DeliverableConversions,
	domain.BuyTypeBonus: domain.DeliverableConversions,
	domain.BuyTypeCPV:   domain.DeliverableViews,
}

// ResolveDeliverable maps a buy type, case-insensitively, to the delivery
// metric counted as its deliverable. Unknown and empty buy types resolve to
// DeliverableNone: the item is paced on spend only.
func ResolveDeliverable(bt domain.BuyType) domain.DeliverableKey {
	return deliverableByBuyType[domain.ParseBuyType(string(bt))]
}
