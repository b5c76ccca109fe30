package goals

import (
	"fmt"
	"strings"

	"quinzena/internal/cli"
	"quinzena/internal/finance"
)

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	data := tracker.Data()
	if len(data.SavingsGoals) == 0 {
		fmt.Println("Nenhuma meta cadastrada ainda.")
		return nil
	}

	monthlySavings := finance.MonthlySavings(data)

	fmt.Printf("%-36s %-20s %-14s %-14s %-6s %s\n", "ID", "Name", "Saved", "Target", "%", "ETA")
	fmt.Println(strings.Repeat("-", 110))

	for _, g := range data.SavingsGoals {
		progress := finance.GoalProgress(g, monthlySavings)

		name := g.Name
		if len(name) > 18 {
			name = name[:15] + "..."
		}

		eta := "configure sua caixinha"
		switch {
		case progress.Percent >= 100:
			eta = "meta alcançada! 🎉"
		case progress.HasETA && progress.MonthsToGoal == 1:
			eta = "1 mês restante"
		case progress.HasETA:
			eta = fmt.Sprintf("%d meses restantes", progress.MonthsToGoal)
		}

		fmt.Printf("%-36s %-20s %-14s %-14s %-6s %s\n",
			g.ID, name,
			cli.FormatMoney(data, g.CurrentAmount),
			cli.FormatMoney(data, g.TargetAmount),
			fmt.Sprintf("%d%%", progress.Percent),
			eta)
	}

	return nil
}
