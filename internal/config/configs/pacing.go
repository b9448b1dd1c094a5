package configs

import (
	"time"
	_ "time/tzdata"

	"github.com/cockroachdb/errors"
)

// Pacing configures the pacing engine. Timezone is the IANA zone in which
// "today" is decided for default as-of dates. MonthKeyFormat selects how
// billing months are spelled: "iso" (2024-01) or "long" (January 2024).
// One convention applies to the whole deployment.
type Pacing struct {
	Timezone       string `env:"TIMEZONE" envDefault:"UTC"`
	MonthKeyFormat string `env:"MONTH_KEY_FORMAT" envDefault:"iso"`
}

// Location loads the configured time zone.
func (c Pacing) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "pacing timezone %q", c.Timezone)
	}
	return loc, nil
}
