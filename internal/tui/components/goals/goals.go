package goals

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quinzena/internal/finance"
	"quinzena/internal/models"
	"quinzena/internal/money"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var iconGlyphs = map[models.GoalIcon]string{
	models.IconPlane:      "✈️",
	models.IconShield:     "🛡️",
	models.IconHome:       "🏠",
	models.IconCar:        "🚗",
	models.IconGraduation: "🎓",
	models.IconGift:       "🎁",
	models.IconTarget:     "🎯",
}

type Model struct {
	data   models.FinancialData
	cursor int
}

func New(data models.FinancialData) Model {
	return Model{data: data}
}

func (m *Model) SetData(data models.FinancialData) {
	m.data = data
	if m.cursor >= len(data.SavingsGoals) {
		m.cursor = len(data.SavingsGoals) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.data.SavingsGoals)-1 {
		m.cursor++
	}
}

// Selected returns the goal under the cursor, if any.
func (m *Model) Selected() (models.SavingsGoal, bool) {
	if len(m.data.SavingsGoals) == 0 {
		return models.SavingsGoal{}, false
	}
	return m.data.SavingsGoals[m.cursor], true
}

func (m Model) View() string {
	title := titleStyle.Render("Suas Metas")

	if len(m.data.SavingsGoals) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			"🎯 Nenhuma meta cadastrada ainda",
			mutedStyle.Render("Pressione 'a' para adicionar uma meta."),
		)
	}

	monthlySavings := finance.MonthlySavings(m.data)

	lines := []string{title}
	for i, g := range m.data.SavingsGoals {
		progress := finance.GoalProgress(g, monthlySavings)

		current := g.CurrentAmount.Format()
		target := g.TargetAmount.Format()
		if !m.data.NumbersVisible {
			current, target = money.Masked, money.Masked
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

		glyph := iconGlyphs[g.Icon]
		line := fmt.Sprintf("%s %-20s %s de %s  %s %3d%%  %s",
			glyph, g.Name, current, target, renderBar(progress.Percent), progress.Percent, eta)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", mutedStyle.Render("a add • f fund • d delete"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBar(percent int) string {
	const width = 10
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	filled := percent * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
