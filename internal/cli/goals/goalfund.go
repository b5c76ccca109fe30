package goals

import (
	"errors"
	"fmt"
	"time"

	"quinzena/internal/cli"
	"quinzena/internal/finance"
	"quinzena/internal/money"
)

type GoalFundCmd struct {
	ID     string `arg:"" help:"ID of the goal to fund."`
	Amount string `help:"Contribution amount. Defaults to the suggested amount from your most recent payday."`
}

func (c *GoalFundCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	data := tracker.Data()
	goal, ok := data.GoalByID(c.ID)
	if !ok {
		fmt.Printf("No goal found with id %s\n", c.ID)
		return nil
	}

	var amount money.Money
	if c.Amount != "" {
		amount, err = money.ParsePositive(c.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q", c.Amount)
		}
	} else {
		amount = finance.SuggestedFunding(data.PaymentDays, time.Now())
		if amount <= 0 {
			fmt.Println("No payday has occurred yet this month; pass --amount to fund manually.")
			return nil
		}
		fmt.Printf("Using suggested amount: %s\n", amount.Format())
	}

	if err := tracker.FundGoal(c.ID, amount); err != nil {
		if errors.Is(err, finance.ErrNonPositiveAmount) {
			return fmt.Errorf("contribution must be positive")
		}
		return fmt.Errorf("failed to fund goal: %w", err)
	}

	refreshed := tracker.Data()
	updated, _ := refreshed.GoalByID(c.ID)
	progress := finance.GoalProgress(updated, finance.MonthlySavings(data))
	fmt.Printf("✓ %s: %s of %s (%d%%)\n", goal.Name,
		updated.CurrentAmount.Format(), updated.TargetAmount.Format(), progress.Percent)
	if updated.Reached() {
		fmt.Println("Meta alcançada! 🎉")
	}

	return nil
}
