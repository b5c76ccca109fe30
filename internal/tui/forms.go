package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"quinzena/internal/constants"
	"quinzena/internal/models"
	"quinzena/internal/money"
)

// NewPaymentForm creates a form for adding or editing a payment day.
func NewPaymentForm(fm *PaymentFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day of month (1-31)").
				Value(&fm.Day).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if i < constants.MinPaymentDay || i > constants.MaxPaymentDay {
						return fmt.Errorf("day must be between %d and %d", constants.MinPaymentDay, constants.MaxPaymentDay)
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Description("e.g. 2500 or 2500,50").
				Value(&fm.Amount).
				Validate(func(s string) error {
					if _, err := money.ParsePositive(s); err != nil {
						return fmt.Errorf("amount must be a positive value")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Description("Optional label").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewGoalForm creates a form for adding a savings goal.
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	iconOptions := make([]huh.Option[models.GoalIcon], 0, len(models.GoalIcons))
	for _, entry := range models.GoalIcons {
		iconOptions = append(iconOptions, huh.NewOption(entry.Label, entry.Value))
	}
	colorOptions := make([]huh.Option[models.GoalColor], 0, len(models.GoalColors))
	for _, entry := range models.GoalColors {
		colorOptions = append(colorOptions, huh.NewOption(entry.Label, entry.Value))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("goal name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Target amount").
				Value(&fm.Target).
				Validate(func(s string) error {
					if _, err := money.ParsePositive(s); err != nil {
						return fmt.Errorf("target must be a positive value")
					}
					return nil
				}),
			huh.NewSelect[models.GoalIcon]().
				Title("Icon").
				Options(iconOptions...).
				Value(&fm.Icon),
			huh.NewSelect[models.GoalColor]().
				Title("Color").
				Options(colorOptions...).
				Value(&fm.Color),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewFundForm creates a form for funding a goal.
func NewFundForm(fm *FundFormModel, suggested money.Money) *huh.Form {
	description := "Contribution amount"
	if suggested > 0 {
		description = fmt.Sprintf("Suggested from your last payday: %s", suggested.Format())
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Description(description).
				Value(&fm.Amount).
				Validate(func(s string) error {
					if _, err := money.ParsePositive(s); err != nil {
						return fmt.Errorf("amount must be a positive value")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewSettingsForm creates a form for editing application settings.
func NewSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Savings percentage (0-50)").
				Value(&fm.Percentage).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if i < 0 || i > constants.MaxSavingsPercentage {
						return fmt.Errorf("percentage must be between 0 and %d", constants.MaxSavingsPercentage)
					}
					return nil
				}),
			huh.NewInput().
				Title("Monthly expenses").
				Value(&fm.Expenses).
				Validate(func(s string) error {
					if _, err := money.Parse(s); err != nil {
						return fmt.Errorf("expenses must be a non-negative value")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Show numbers").
				Value(&fm.ShowNumbers),
		),
	).WithTheme(huh.ThemeDracula())
}
