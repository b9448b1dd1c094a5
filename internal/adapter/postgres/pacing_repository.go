package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// PacingRepository implements port.PacingRepository using pgxpool for
// PostgreSQL. It only reads.
type PacingRepository struct {
	pool *pgxpool.Pool
}

// NewPacingRepository returns a new repository instance.
func NewPacingRepository(pool *pgxpool.Pool) *PacingRepository {
	return &PacingRepository{pool: pool}
}

var _ port.PacingRepository = (*PacingRepository)(nil)

// GetCampaign returns a campaign by id.
func (r *PacingRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var (
		c          domain.Campaign
		start, end *time.Time
		budget     string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, name, start_date, end_date, budget::text, status FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &start, &end, &budget, &c.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.StartDate = datePtr(start)
	c.EndDate = datePtr(end)
	if c.Budget, err = decimal.NewFromString(budget); err != nil {
		return nil, errors.Wrapf(err, "campaign %s budget", id)
	}
	return &c, nil
}

// GetLineItems returns the stored line-item payloads of a campaign in plan
// order. The row id is added under "id" when the payload has none.
func (r *PacingRepository) GetLineItems(ctx context.Context, campaignID string) ([]port.RawRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, payload FROM line_items WHERE campaign_id = $1 ORDER BY position, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.RawRecord, error) {
		var (
			id      string
			payload []byte
		)
		if err := row.Scan(&id, &payload); err != nil {
			return nil, err
		}
		rec, err := decodeRecord(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "line item %s", id)
		}
		if _, ok := rec["id"]; !ok {
			rec["id"] = id
		}
		return rec, nil
	})
}

// GetDeliveryRows returns the stored delivery payloads of a campaign for
// one channel, oldest first.
func (r *PacingRepository) GetDeliveryRows(ctx context.Context, campaignID string, channel domain.Channel) ([]port.RawRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT payload FROM delivery_rows WHERE campaign_id = $1 AND channel = $2 ORDER BY report_date NULLS LAST, id`,
		campaignID, string(channel))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.RawRecord, error) {
		var payload []byte
		if err := row.Scan(&payload); err != nil {
			return nil, err
		}
		return decodeRecord(payload)
	})
}

// decodeRecord decodes a JSON object keeping numbers as json.Number so
// money values are not rounded through float64.
func decodeRecord(payload []byte) (port.RawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var rec port.RawRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, errors.Wrap(err, "decode payload")
	}
	if rec == nil {
		rec = port.RawRecord{}
	}
	return rec, nil
}

func datePtr(t *time.Time) *domain.Date {
	if t == nil {
		return nil
	}
	d := domain.DateOf(*t)
	return &d
}
