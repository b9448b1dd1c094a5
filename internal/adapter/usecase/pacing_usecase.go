package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/pacing"
	"mesa-pacing/internal/core/port"
)

// PacingUseCase loads campaign data through the repository and runs the
// pacing engine over it. It implements port.PacingUseCase.
type PacingUseCase struct {
	repo   port.PacingRepository
	engine *pacing.Engine
	logger *slog.Logger

	// monthKeys is the deployment-wide spelling of billing month keys.
	monthKeys pacing.MonthKeyFormat
}

// NewPacingUseCase creates a new usecase. A nil logger discards output.
func NewPacingUseCase(repo port.PacingRepository, engine *pacing.Engine, logger *slog.Logger, monthKeys pacing.MonthKeyFormat) *PacingUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PacingUseCase{repo: repo, engine: engine, logger: logger, monthKeys: monthKeys}
}

var _ port.PacingUseCase = (*PacingUseCase)(nil)

// CampaignPacing returns the pacing of every line item of a campaign and the
// container roll-up over its active items.
func (u *PacingUseCase) CampaignPacing(ctx context.Context, req port.CampaignPacingReq) (*port.PacingResp, error) {
	campaign, err := u.campaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	items, rows, err := u.load(ctx, campaign)
	if err != nil {
		return nil, err
	}
	resp := u.compute(items, rows, req.AsOf)
	resp.CampaignID = campaign.ID
	return resp, nil
}

// ComputePacing runs the engine over the raw records in req. Delivery
// records must carry their own channel tag.
func (u *PacingUseCase) ComputePacing(_ context.Context, req port.ComputePacingReq) (*port.PacingResp, error) {
	if len(req.LineItems) == 0 {
		return nil, errors.Wrap(port.ErrInvalidRequest, "no line items")
	}
	fallback := domain.Window{StartDate: req.CampaignStart, EndDate: req.CampaignEnd}
	items := lo.Map(req.LineItems, func(r port.RawRecord, _ int) domain.LineItem {
		return pacing.NormalizeLineItem(r, fallback)
	})
	rows := pacing.NormalizeDeliveryRows(req.Delivery, "")
	if dropped := len(req.Delivery) - len(rows); dropped > 0 {
		u.logger.Warn("dropped delivery records without a usable date", slog.Int("count", dropped))
	}
	return u.compute(items, rows, req.AsOf), nil
}

// CampaignDelivery returns the campaign's normalised delivery rows across
// all channels ordered by date, then channel.
func (u *PacingUseCase) CampaignDelivery(ctx context.Context, campaignID string) ([]domain.DeliveryRow, error) {
	campaign, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	rows, err := u.deliveryRows(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rows, func(a, b domain.DeliveryRow) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return compareChannel(a.Channel, b.Channel)
	})
	return rows, nil
}

// BillingSchedule allocates the bursts of the campaign's active line items
// to calendar months.
func (u *PacingUseCase) BillingSchedule(ctx context.Context, campaignID string) (*domain.BillingSchedule, error) {
	campaign, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	items, err := u.lineItems(ctx, campaign)
	if err != nil {
		return nil, err
	}
	schedule := pacing.RenderMonthKeys(u.engine.BillingSchedule(items), u.monthKeys)
	return &schedule, nil
}

// ApplyManualBilling validates a hand-entered schedule against the campaign
// budget, or against the booked spend of its active line items when the
// campaign has no budget of its own.
func (u *PacingUseCase) ApplyManualBilling(ctx context.Context, req port.ManualBillingReq) (*domain.BillingSchedule, error) {
	if len(req.Months) == 0 {
		return nil, errors.Wrap(port.ErrInvalidRequest, "manual schedule has no months")
	}
	campaign, err := u.campaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	booked := campaign.Budget
	if booked.IsZero() {
		items, err := u.lineItems(ctx, campaign)
		if err != nil {
			return nil, err
		}
		booked = lo.Reduce(items, func(acc decimal.Decimal, item domain.LineItem, _ int) decimal.Decimal {
			if item.Inactive {
				return acc
			}
			return acc.Add(item.BookedSpend)
		}, decimal.Zero)
	}

	months := lo.MapToSlice(req.Months, func(key string, amount decimal.Decimal) domain.BillingMonth {
		return domain.BillingMonth{MonthKey: key, Amount: amount}
	})
	schedule, err := pacing.ManualBilling(months, booked)
	if err != nil {
		if errors.Is(err, pacing.ErrInvalidMonthKey) || errors.Is(err, pacing.ErrInvalidAmount) {
			return nil, errors.Mark(err, port.ErrInvalidRequest)
		}
		return nil, err
	}
	schedule = pacing.RenderMonthKeys(schedule, u.monthKeys)
	return &schedule, nil
}

func (u *PacingUseCase) compute(items []domain.LineItem, rows []domain.DeliveryRow, asOf *domain.Date) *port.PacingResp {
	metrics := lo.Map(items, func(item domain.LineItem, _ int) domain.LineItemMetrics {
		return u.engine.LineItemPacing(item, rows, asOf)
	})
	active := lo.Filter(metrics, func(_ domain.LineItemMetrics, i int) bool {
		return !items[i].Inactive
	})
	return &port.PacingResp{
		Items:     metrics,
		Container: u.engine.ContainerPacing(active, asOf),
	}
}

func (u *PacingUseCase) campaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if id == "" {
		return nil, errors.Wrap(port.ErrInvalidRequest, "empty campaign id")
	}
	campaign, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get campaign %s", id)
	}
	if campaign == nil {
		return nil, errors.Wrapf(port.ErrCampaignNotFound, "campaign %s", id)
	}
	return campaign, nil
}

// load fetches line items and the delivery of every channel concurrently.
// The first failure cancels the remaining fetches.
func (u *PacingUseCase) load(ctx context.Context, campaign *domain.Campaign) ([]domain.LineItem, []domain.DeliveryRow, error) {
	var (
		items []domain.LineItem
		rows  []domain.DeliveryRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.lineItems(gctx, campaign)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = u.deliveryRows(gctx, campaign.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return items, rows, nil
}

func (u *PacingUseCase) lineItems(ctx context.Context, campaign *domain.Campaign) ([]domain.LineItem, error) {
	raw, err := u.repo.GetLineItems(ctx, campaign.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "get line items of campaign %s", campaign.ID)
	}
	fallback := domain.Window{StartDate: campaign.StartDate, EndDate: campaign.EndDate}
	return lo.Map(raw, func(r port.RawRecord, _ int) domain.LineItem {
		return pacing.NormalizeLineItem(r, fallback)
	}), nil
}

func (u *PacingUseCase) deliveryRows(ctx context.Context, campaignID string) ([]domain.DeliveryRow, error) {
	perChannel := make([][]domain.DeliveryRow, len(domain.Channels))
	g, gctx := errgroup.WithContext(ctx)
	for i, ch := range domain.Channels {
		g.Go(func() error {
			raw, err := u.repo.GetDeliveryRows(gctx, campaignID, ch)
			if err != nil {
				return errors.Wrapf(err, "get %s delivery of campaign %s", ch, campaignID)
			}
			perChannel[i] = pacing.NormalizeDeliveryRows(raw, ch)
			if dropped := len(raw) - len(perChannel[i]); dropped > 0 {
				u.logger.Warn("dropped delivery records without a usable date",
					slog.String("campaign_id", campaignID),
					slog.String("channel", string(ch)),
					slog.Int("count", dropped))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lo.Flatten(perChannel), nil
}

func compareChannel(a, b domain.Channel) int {
	return slices.Index(domain.Channels, a) - slices.Index(domain.Channels, b)
}
