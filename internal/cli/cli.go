package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/c-semaan/daterange/internal/config"
	"github.com/c-semaan/daterange/internal/period"
)

type Cli struct {
	version string
	cfg     *config.Config
}

func New(version string) *Cli {
	return &Cli{version: version}
}

func (c *Cli) Run(ctx context.Context, args []string) error {
	cmd := &cli.Command{
		Name:                  "daterange",
		Usage:                 "calendar-aligned date ranges and relative time",
		Version:               c.version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			loadedCfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			c.cfg = loadedCfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "range",
				Usage:     "print a preset calendar range",
				Action:    c.rangeAction,
				Arguments: []cli.Argument{&cli.StringArg{Name: "preset"}},
				Flags:     rangeFlags(),
			},
			{
				Name:      "past",
				Usage:     "print a lookback range of N days",
				Action:    c.pastAction,
				Arguments: []cli.Argument{&cli.StringArg{Name: "days"}},
				Flags: append(rangeFlags(),
					&cli.BoolFlag{
						Name:  "exclude-today",
						Usage: "end the range yesterday instead of now",
					}),
			},
			{
				Name:      "offset",
				Usage:     "print the UTC offset of a timezone in minutes",
				Action:    c.offsetAction,
				Arguments: []cli.Argument{&cli.StringArg{Name: "timezone"}},
			},
			{
				Name:      "ago",
				Usage:     "print a relative-time phrase for an instant",
				Action:    c.agoAction,
				Arguments: []cli.Argument{&cli.StringArg{Name: "date"}},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "locale",
						Aliases: []string{"l"},
						Usage:   "BCP 47 locale for the phrase",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "serve ranges over HTTP as JSON",
				Action: c.serveAction,
			},
		},
	}
	return cmd.Run(ctx, args)
}

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "timezone",
			Aliases: []string{"t"},
			Usage:   "IANA timezone, e.g. Europe/Paris",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: rfc3339 or date",
		},
	}
}

// newPeriod builds a Period from command flags, falling back to config.
func (c *Cli) newPeriod(cmd *cli.Command) (*period.Period, error) {
	timezone := cmd.String("timezone")
	if timezone == "" {
		timezone = c.cfg.Timezone
	}

	formatText := cmd.String("format")
	if formatText == "" {
		formatText = c.cfg.Format
	}
	format, err := period.ParseFormat(formatText)
	if err != nil {
		return nil, err
	}

	return period.New(format, timezone)
}
