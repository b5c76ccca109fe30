package models

import (
	"fmt"

	"quinzena/internal/money"
)

type GoalIcon string

const (
	IconPlane      GoalIcon = "plane"
	IconShield     GoalIcon = "shield"
	IconHome       GoalIcon = "home"
	IconCar        GoalIcon = "car"
	IconGraduation GoalIcon = "graduation"
	IconGift       GoalIcon = "gift"
	IconTarget     GoalIcon = "target"
)

type GoalColor string

const (
	ColorAccent  GoalColor = "accent"
	ColorWarning GoalColor = "warning"
	ColorPrimary GoalColor = "primary"
)

// GoalIcons lists every recognized icon tag with its display label.
var GoalIcons = []struct {
	Value GoalIcon
	Label string
}{
	{IconPlane, "Viagem"},
	{IconShield, "Reserva"},
	{IconHome, "Casa"},
	{IconCar, "Carro"},
	{IconGraduation, "Estudos"},
	{IconGift, "Presente"},
	{IconTarget, "Outro"},
}

// GoalColors lists every recognized color tag with its display label.
var GoalColors = []struct {
	Value GoalColor
	Label string
}{
	{ColorAccent, "Verde"},
	{ColorWarning, "Amarelo"},
	{ColorPrimary, "Azul"},
}

// SavingsGoal is a named savings target. CurrentAmount never exceeds
// TargetAmount; the funding operation clamps contributions.
type SavingsGoal struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	TargetAmount  money.Money `json:"targetAmount"`
	CurrentAmount money.Money `json:"currentAmount"`
	Icon          GoalIcon    `json:"icon"`
	Color         GoalColor   `json:"color"`
}

func (g *SavingsGoal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name cannot be empty")
	}
	if g.TargetAmount <= 0 {
		return fmt.Errorf("goal target must be positive")
	}
	if g.CurrentAmount < 0 || g.CurrentAmount > g.TargetAmount {
		return fmt.Errorf("goal current amount out of range")
	}
	return nil
}

// Normalize replaces unrecognized icon or color tags with the defaults.
func (g *SavingsGoal) Normalize() {
	if !validIcon(g.Icon) {
		g.Icon = IconTarget
	}
	if !validColor(g.Color) {
		g.Color = ColorAccent
	}
}

// Reached reports whether the goal has been fully funded.
func (g *SavingsGoal) Reached() bool {
	return g.CurrentAmount >= g.TargetAmount
}

func validIcon(i GoalIcon) bool {
	for _, entry := range GoalIcons {
		if entry.Value == i {
			return true
		}
	}
	return false
}

func validColor(c GoalColor) bool {
	for _, entry := range GoalColors {
		if entry.Value == c {
			return true
		}
	}
	return false
}
