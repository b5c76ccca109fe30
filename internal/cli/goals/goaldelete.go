package goals

import (
	"fmt"

	"quinzena/internal/cli"
)

type GoalDeleteCmd struct {
	ID string `arg:"" help:"ID of the goal to remove."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if err := tracker.RemoveSavingsGoal(c.ID); err != nil {
		return fmt.Errorf("failed to remove goal: %w", err)
	}

	fmt.Println("✓ Goal removed.")
	return nil
}
