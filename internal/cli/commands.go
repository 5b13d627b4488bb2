package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/c-semaan/daterange/internal/humanize"
	"github.com/c-semaan/daterange/internal/period"
)

func (c *Cli) rangeAction(ctx context.Context, cmd *cli.Command) error {
	presetText := cmd.StringArg("preset")
	if presetText == "" {
		return fmt.Errorf("no preset provided")
	}

	preset, err := period.ParsePreset(presetText)
	if err != nil {
		return err
	}

	p, err := c.newPeriod(cmd)
	if err != nil {
		return err
	}

	rng, err := p.DefinedRange(preset)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%s\n", rng.Start, rng.End)
	return nil
}

func (c *Cli) pastAction(ctx context.Context, cmd *cli.Command) error {
	daysText := cmd.StringArg("days")
	if daysText == "" {
		return fmt.Errorf("no day count provided")
	}

	days, err := strconv.Atoi(daysText)
	if err != nil {
		return fmt.Errorf("day count must be an integer: %w", err)
	}

	p, err := c.newPeriod(cmd)
	if err != nil {
		return err
	}

	rng := p.PastRange(days, !cmd.Bool("exclude-today"))
	fmt.Printf("%s\t%s\n", rng.Start, rng.End)
	return nil
}

func (c *Cli) offsetAction(ctx context.Context, cmd *cli.Command) error {
	timezone := cmd.StringArg("timezone")
	if timezone == "" {
		timezone = c.cfg.Timezone
	}

	offset, err := period.GetOffset(timezone)
	if err != nil {
		return err
	}

	fmt.Println(offset)
	return nil
}

func (c *Cli) agoAction(ctx context.Context, cmd *cli.Command) error {
	date := cmd.StringArg("date")
	if date == "" {
		return fmt.Errorf("no date provided")
	}

	locale := cmd.String("locale")
	if locale == "" {
		locale = c.cfg.Locale
	}

	fmt.Println(humanize.TimeAgo(humanize.ParseInstant(date), locale))
	return nil
}
