// Package cli implements pacingctl, which runs the pacing engine over JSON
// files without a database.
package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"mesa-pacing/internal/adapter/usecase"
	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/pacing"
	"mesa-pacing/internal/core/port"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type options struct {
	input    string
	asOf     string
	format   string
	timezone string
	verbose  bool

	// now is replaced in tests.
	now func() time.Time
}

// NewRootCmd builds the pacingctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{now: time.Now}

	root := &cobra.Command{
		Use:          "pacingctl",
		Short:        "Offline burst proration and pacing",
		Long:         "Compute line-item pacing, daily series and billing schedules from a JSON export of line items and delivery rows.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.input, "input", "i", "-", "JSON input file, - for stdin")
	root.PersistentFlags().StringVar(&opts.asOf, "as-of", "", "Cutoff date (YYYY-MM-DD); defaults to today clamped to the flight end")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format: json or csv")
	root.PersistentFlags().StringVar(&opts.timezone, "timezone", "UTC", "IANA zone that decides today")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log engine diagnostics to stderr")

	root.AddCommand(newPacingCmd(opts), newSeriesCmd(opts), newBillingCmd(opts))
	return root
}

func (o *options) validateFormat() error {
	if o.format != formatJSON && o.format != formatCSV {
		return errors.Newf("unknown format %q, want json or csv", o.format)
	}
	return nil
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	if !o.verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (o *options) engine(cmd *cobra.Command) (*pacing.Engine, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "timezone %q", o.timezone)
	}
	return pacing.NewEngine(
		pacing.WithLogger(o.logger(cmd)),
		pacing.WithLocation(loc),
		pacing.WithClock(o.now),
	), nil
}

// readRequest decodes the input file. --as-of overrides the file's asOf.
func (o *options) readRequest(cmd *cobra.Command) (port.ComputePacingReq, error) {
	var (
		req port.ComputePacingReq
		in  io.Reader
	)
	if o.input == "-" {
		in = cmd.InOrStdin()
	} else {
		b, err := os.ReadFile(o.input)
		if err != nil {
			return req, errors.Wrap(err, "read input")
		}
		in = bytes.NewReader(b)
	}

	dec := json.NewDecoder(in)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return req, errors.Wrap(err, "decode input")
	}
	if o.asOf != "" {
		asOf, err := domain.ParseDate(o.asOf)
		if err != nil {
			return req, errors.Wrap(err, "--as-of")
		}
		req.AsOf = &asOf
	}
	return req, nil
}

// compute runs the offline usecase over the input.
func (o *options) compute(cmd *cobra.Command) (*port.PacingResp, error) {
	if err := o.validateFormat(); err != nil {
		return nil, err
	}
	req, err := o.readRequest(cmd)
	if err != nil {
		return nil, err
	}
	engine, err := o.engine(cmd)
	if err != nil {
		return nil, err
	}
	svc := usecase.NewPacingUseCase(nil, engine, o.logger(cmd), pacing.MonthKeyISO)
	return svc.ComputePacing(cmd.Context(), req)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
