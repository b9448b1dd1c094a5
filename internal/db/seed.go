package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
)

type seedLineItem struct {
	channel domain.Channel
	payload func(id string, start, end domain.Date) map[string]any
	// idField is the delivery field that carries the line item reference.
	idField string
}

// seedLineItems mixes the field spellings different producers use.
var seedLineItems = []seedLineItem{
	{
		channel: domain.ChannelProgrammaticDisplay,
		idField: "lineItemId",
		payload: func(id string, start, end domain.Date) map[string]any {
			mid := start.AddDays(start.DaysUntil(end) / 2)
			return map[string]any{
				"line_item_id": id,
				"channel":      string(domain.ChannelProgrammaticDisplay),
				"buy_type":     "CPM",
				"bursts": []map[string]any{
					{"start_date": start.String(), "end_date": mid.String(), "budget": "3000.00", "deliverables": "1200000"},
					{"start_date": mid.AddDays(1).String(), "end_date": end.String(), "budget": "2000.00", "deliverables": "800000"},
				},
			}
		},
	},
	{
		channel: domain.ChannelProgrammaticVideo,
		idField: "line_item_id",
		payload: func(id string, start, end domain.Date) map[string]any {
			bursts, _ := json.Marshal([]map[string]any{
				{"startDate": start.String(), "endDate": end.String(), "buyAmount": 2500, "calculatedValue": 100000},
			})
			return map[string]any{
				"lineItemId":  id,
				"mediaType":   string(domain.ChannelProgrammaticVideo),
				"buyType":     "cpv",
				"bursts_json": string(bursts),
			}
		},
	},
	{
		channel: domain.ChannelMeta,
		idField: "matchedPostfix",
		payload: func(id string, _, _ domain.Date) map[string]any {
			return map[string]any{
				"line_item_id":       id,
				"channel":            string(domain.ChannelMeta),
				"buy_type":           "CPC",
				"total_budget":       "1500",
				"total_deliverables": "6000",
			}
		},
	},
	{
		channel: domain.ChannelTikTok,
		idField: "matched_postfix",
		payload: func(id string, start, end domain.Date) map[string]any {
			return map[string]any{
				"line_item_id": id,
				"channel":      string(domain.ChannelTikTok),
				"buy_type":     "LEADS",
				"is_active":    true,
				"bursts": []map[string]any{
					{"start": start.String(), "end": end.String(), "media_investment": "$1,000", "conversions": 250},
				},
			}
		},
	},
}

// Seed inserts demo campaigns with line items on every channel and daily
// delivery up to yesterday. Identifiers are derived from names so seeding
// twice rewrites the same campaigns.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := domain.DateOf(time.Now().UTC())

	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		campaignID := uuid.NewSHA1(uuid.NameSpaceURL, []byte("mesa-pacing/"+name))
		start := today.AddDays(-10 * i)
		end := today.AddDays(20)

		err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
			return seedCampaign(ctx, tx, r, campaignID, name, start, end, today)
		})
		if err != nil {
			return errors.Wrapf(err, "seed %s", name)
		}
	}
	return nil
}

func seedCampaign(ctx context.Context, tx pgx.Tx, r *rand.Rand, campaignID uuid.UUID, name string, start, end, today domain.Date) error {
	_, err := tx.Exec(ctx, `INSERT INTO campaigns (id, name, start_date, end_date, budget, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,'active',now(),now())
ON CONFLICT (id) DO UPDATE SET start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date, updated_at = now()`,
		campaignID.String(), name, start.Time(), end.Time(), "10000.00")
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM delivery_rows WHERE campaign_id = $1`, campaignID.String()); err != nil {
		return err
	}

	for pos, li := range seedLineItems {
		id := uuid.NewSHA1(campaignID, []byte(li.channel)).String()
		payload, err := json.Marshal(li.payload(id, start, end))
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO line_items (id, campaign_id, position, payload)
VALUES ($1,$2,$3,$4) ON CONFLICT (campaign_id, id) DO UPDATE SET payload = EXCLUDED.payload`,
			id, campaignID.String(), pos, payload)
		if err != nil {
			return err
		}

		// deliver around the even daily rate, sometimes skipping a day
		for d := start; d.Before(today) && !d.After(end); d = d.AddDays(1) {
			if r.Intn(10) == 0 {
				continue
			}
			spend := decimal.NewFromFloat(80 + r.Float64()*80).Round(2)
			impressions := 20000 + r.Intn(20000)
			row := map[string]any{
				"date":        d.String(),
				li.idField:    id,
				"spend":       spend.String(),
				"impressions": impressions,
				"clicks":      impressions / 200,
				"conversions": r.Intn(12),
				"video_views": impressions / 4,
			}
			rowJSON, err := json.Marshal(row)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, `INSERT INTO delivery_rows (campaign_id, channel, report_date, payload) VALUES ($1,$2,$3,$4)`,
				campaignID.String(), string(li.channel), d.Time(), rowJSON)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
