package cli

import (
	"github.com/spf13/cobra"

	"mesa-pacing/internal/adapter/csvexport"
	"mesa-pacing/internal/core/domain"
)

func newPacingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pacing",
		Short: "Per line item and container pacing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := opts.compute(cmd)
			if err != nil {
				return err
			}
			if opts.format == formatCSV {
				return csvexport.Write(cmd.OutOrStdout(), summaryRows(resp.Items, resp.Container))
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newSeriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "Dense daily actuals of every line item and the container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := opts.compute(cmd)
			if err != nil {
				return err
			}
			rows := csvexport.PacingSeries(resp.Items, resp.Container)
			if opts.format == formatCSV {
				return csvexport.Write(cmd.OutOrStdout(), rows)
			}
			return writeJSON(cmd.OutOrStdout(), rows)
		},
	}
}

// summaryRow is one line of the pacing CSV.
type summaryRow struct {
	LineItemID          string `csv:"line_item_id"`
	Status              string `csv:"status"`
	AsOf                string `csv:"as_of"`
	MatchedRows         int    `csv:"matched_rows"`
	SpendActual         string `csv:"spend_actual"`
	SpendExpected       string `csv:"spend_expected"`
	SpendPacingPct      string `csv:"spend_pacing_pct"`
	SpendGoal           string `csv:"spend_goal"`
	DeliverableKey      string `csv:"deliverable_key"`
	DeliverableActual   string `csv:"deliverable_actual"`
	DeliverableExpected string `csv:"deliverable_expected"`
	DeliverablePct      string `csv:"deliverable_pacing_pct"`
	Estimated           bool   `csv:"estimated"`
}

func summaryRows(items []domain.LineItemMetrics, container domain.PacingResult) []summaryRow {
	rows := make([]summaryRow, 0, len(items)+1)
	for _, m := range items {
		r := summary(m.Result)
		r.LineItemID = m.LineItemID
		r.MatchedRows = m.MatchedRows
		rows = append(rows, r)
	}
	r := summary(container)
	r.LineItemID = csvexport.ScopeContainer
	return append(rows, r)
}

func summary(res domain.PacingResult) summaryRow {
	r := summaryRow{
		Status:         string(res.Status),
		SpendActual:    res.Spend.ActualToDate.StringFixed(2),
		SpendExpected:  res.Spend.ExpectedToDate.StringFixed(2),
		SpendPacingPct: res.Spend.PacingPct.StringFixed(2),
		SpendGoal:      res.Spend.GoalTotal.StringFixed(2),
		DeliverableKey: string(res.DeliverableKey),
		Estimated:      res.Estimated,
	}
	if res.AsOfDate != nil {
		r.AsOf = res.AsOfDate.String()
	}
	if d := res.Deliverable; d != nil {
		r.DeliverableActual = d.ActualToDate.StringFixed(2)
		r.DeliverableExpected = d.ExpectedToDate.StringFixed(2)
		r.DeliverablePct = d.PacingPct.StringFixed(2)
	}
	return r
}
