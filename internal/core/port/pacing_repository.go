package port

import (
	"context"

	"github.com/cockroachdb/errors"

	"mesa-pacing/internal/core/domain"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidRequest   = errors.New("invalid request")
)

// RawRecord is an upstream line-item or delivery object exactly as stored,
// with whatever field names the producer used. Normalisation happens in the
// engine, never in the repository.
type RawRecord = map[string]any

// PacingRepository supplies campaign data to the pacing engine. It is an
// outbound port in hexagonal architecture. Implementations are read-only
// and must be safe for concurrent use; the usecase fetches channels in
// parallel.
type PacingRepository interface {
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// GetLineItems returns the raw line items of a campaign.
	GetLineItems(ctx context.Context, campaignID string) ([]RawRecord, error)
	// GetDeliveryRows returns the raw daily delivery rows reported for a
	// campaign on one channel.
	GetDeliveryRows(ctx context.Context, campaignID string, channel domain.Channel) ([]RawRecord, error)
}
