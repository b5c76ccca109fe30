package goals

import (
	"fmt"

	"quinzena/internal/cli"
	"quinzena/internal/models"
	"quinzena/internal/money"
)

type GoalAddCmd struct {
	Name   string `arg:"" help:"Goal name."`
	Target string `help:"Target amount, e.g. 5000 or 5000,00." required:""`
	Icon   string `help:"Icon tag (plane|shield|home|car|graduation|gift|target)." default:"target"`
	Color  string `help:"Color tag (accent|warning|primary)." default:"accent"`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	target, err := money.ParsePositive(c.Target)
	if err != nil {
		return fmt.Errorf("invalid target amount %q", c.Target)
	}

	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	// Unknown icon/color tags fall back to defaults instead of failing.
	g, err := tracker.AddSavingsGoal(c.Name, target, models.GoalIcon(c.Icon), models.GoalColor(c.Color))
	if err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}

	fmt.Printf("✓ Goal added: %s (%s)\n", g.Name, g.TargetAmount.Format())
	return nil
}
