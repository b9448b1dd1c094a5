package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"mesa-pacing/internal/adapter/csvexport"
	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/pacing"
	"mesa-pacing/internal/core/port"
)

func newBillingCmd(opts *options) *cobra.Command {
	var monthKeys string
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Month-bucketed billing schedule of the active line items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validateFormat(); err != nil {
				return err
			}
			req, err := opts.readRequest(cmd)
			if err != nil {
				return err
			}
			if len(req.LineItems) == 0 {
				return errors.Wrap(port.ErrInvalidRequest, "no line items")
			}
			engine, err := opts.engine(cmd)
			if err != nil {
				return err
			}

			fallback := domain.Window{StartDate: req.CampaignStart, EndDate: req.CampaignEnd}
			items := lo.Map(req.LineItems, func(r port.RawRecord, _ int) domain.LineItem {
				return pacing.NormalizeLineItem(r, fallback)
			})
			schedule := pacing.RenderMonthKeys(engine.BillingSchedule(items), pacing.ParseMonthKeyFormat(monthKeys))

			if opts.format == formatCSV {
				return csvexport.Write(cmd.OutOrStdout(), csvexport.BillingRows(schedule))
			}
			return writeJSON(cmd.OutOrStdout(), schedule)
		},
	}
	cmd.Flags().StringVar(&monthKeys, "month-keys", string(pacing.MonthKeyISO), "Month key spelling: iso (2024-01) or long (January 2024)")
	return cmd
}
