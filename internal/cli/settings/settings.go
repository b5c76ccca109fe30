package settings

import (
	"fmt"

	"quinzena/internal/cli"
	"quinzena/internal/constants"
	"quinzena/internal/money"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	SavingsPercentage *int    `help:"Percentage of income to save (0-50)."`
	Expenses          *string `help:"Fixed monthly expenses, e.g. 1800 or 1800,00."`
	Name              *string `help:"Display name."`
	ShowNumbers       *bool   `help:"Show or hide monetary values."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if c.List {
		data := tracker.Data()
		fmt.Println("Current Settings:")
		fmt.Printf("  Name:               %s\n", data.UserName)
		fmt.Printf("  Savings Percentage: %d%%\n", data.SavingsPercentage)
		fmt.Printf("  Monthly Expenses:   %s\n", data.MonthlyExpenses.Format())
		fmt.Printf("  Numbers Visible:    %v\n", data.NumbersVisible)
		return nil
	}

	updated := false
	if c.SavingsPercentage != nil {
		if *c.SavingsPercentage < 0 || *c.SavingsPercentage > constants.MaxSavingsPercentage {
			return fmt.Errorf("savings percentage must be between 0 and %d", constants.MaxSavingsPercentage)
		}
		if err := tracker.SetSavingsPercentage(*c.SavingsPercentage); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		updated = true
	}
	if c.Expenses != nil {
		amount, err := money.Parse(*c.Expenses)
		if err != nil {
			return fmt.Errorf("invalid expenses amount %q", *c.Expenses)
		}
		if err := tracker.SetMonthlyExpenses(amount); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		updated = true
	}
	if c.Name != nil {
		if err := tracker.SetUserName(*c.Name); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		updated = true
	}
	if c.ShowNumbers != nil {
		if err := tracker.SetNumbersVisible(*c.ShowNumbers); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		updated = true
	}

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
