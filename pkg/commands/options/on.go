package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutClock    = "15:04"
)

// OnOptions
type OnOptions struct {
	OnString string
	AtString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2/28".`)
}

func AddAtArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Specify a time of day, example: --at="18:30".`)
}

// GetOn resolves the --on and --at flags to a concrete local time. A nil
// result means no date was given and the caller picks the default.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" && o.AtString == "" {
		return nil, nil
	}

	day := time.Now()
	if o.OnString != "" {
		t, err := time.Parse(layoutISO, o.OnString)
		if err != nil {
			// Let the year be the same.
			t, err = time.Parse(layoutISOShort, o.OnString)
			if err != nil {
				return nil, err
			}
			t = t.AddDate(time.Now().Year(), 0, 0)
			// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
			if t.Before(time.Now()) {
				t = t.AddDate(1, 0, 0)
			}
		}
		day = t
	}

	hour, minute := 0, 0
	if o.AtString != "" {
		clock, err := time.Parse(layoutClock, o.AtString)
		if err != nil {
			return nil, err
		}
		hour, minute = clock.Hour(), clock.Minute()
	}

	on := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
	return &on, nil
}
