package port

import (
	"context"

	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
)

// PacingUseCase defines the operations exposed by the pacing service. This
// interface is the primary port into the application domain.
type PacingUseCase interface {
	// CampaignPacing loads a campaign's line items and delivery and returns
	// per-item and container pacing. ErrCampaignNotFound is returned for
	// unknown campaigns.
	CampaignPacing(ctx context.Context, req CampaignPacingReq) (*PacingResp, error)

	// ComputePacing runs the engine over caller-supplied raw records without
	// touching storage.
	ComputePacing(ctx context.Context, req ComputePacingReq) (*PacingResp, error)

	// CampaignDelivery returns the normalised delivery rows of a campaign
	// across every channel, ordered by date.
	CampaignDelivery(ctx context.Context, campaignID string) ([]domain.DeliveryRow, error)

	// BillingSchedule returns the month-bucketed invoice plan derived from
	// the campaign's active line items.
	BillingSchedule(ctx context.Context, campaignID string) (*domain.BillingSchedule, error)

	// ApplyManualBilling validates a hand-entered schedule against the
	// campaign budget. A *pacing.BillingMismatchError is returned when the
	// totals disagree; nothing is adjusted.
	ApplyManualBilling(ctx context.Context, req ManualBillingReq) (*domain.BillingSchedule, error)
}

// CampaignPacingReq selects a campaign and an optional cutoff date.
type CampaignPacingReq struct {
	CampaignID string
	AsOf       *domain.Date
}

// ComputePacingReq carries raw records for an offline computation. The
// campaign dates are the fallback window for items without bursts.
type ComputePacingReq struct {
	AsOf          *domain.Date `json:"asOf,omitempty"`
	CampaignStart *domain.Date `json:"campaignStart,omitempty"`
	CampaignEnd   *domain.Date `json:"campaignEnd,omitempty"`
	LineItems     []RawRecord  `json:"lineItems"`
	Delivery      []RawRecord  `json:"delivery"`
}

// PacingResp is the pacing of every line item plus the container roll-up.
type PacingResp struct {
	CampaignID string                   `json:"campaignId,omitempty"`
	Items      []domain.LineItemMetrics `json:"items"`
	Container  domain.PacingResult      `json:"container"`
}

// ManualBillingReq carries a hand-entered month to amount schedule. Keys
// may be "YYYY-MM" or "Month YYYY".
type ManualBillingReq struct {
	CampaignID string
	Months     map[string]decimal.Decimal
}
