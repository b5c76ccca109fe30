package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quinzena/internal/finance"
)

var tabNames = []string{"Resumo", "Pagamentos", "Caixinhas", "Configurações"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddPayment, StateEditPayment, StateAddGoal, StateFundGoal, StateEditSettings:
		return docStyle.Render(m.viewForm())
	case StateConfirmDeletePayment, StateConfirmDeleteGoal:
		return docStyle.Render(m.viewConfirmDelete())
	case StateAlert:
		return docStyle.Render(m.viewAlert())
	}

	var content string
	switch m.state {
	case StateSummary:
		content = m.summaryModel.View()
	case StatePayments:
		content = m.paymentsModel.View()
	case StateGoals:
		content = m.goalsModel.View()
	case StateSettings:
		content = m.settingsModel.View()
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		"",
		content,
		"",
		m.help.View(m.keys),
	))
}

func (m Model) viewTabs() string {
	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if SessionState(i) == m.state {
			rendered = append(rendered, activeTabStyle.Render(name))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}

	title := map[SessionState]string{
		StateAddPayment:   "Novo dia de pagamento",
		StateEditPayment:  "Editar pagamento",
		StateAddGoal:      "Nova caixinha",
		StateFundGoal:     "Guardar na caixinha",
		StateEditSettings: "Configurações",
	}[m.state]

	parts := []string{
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		m.form.View(),
	}
	if m.formError != "" {
		parts = append(parts, "", dangerStyle.Render(m.formError))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewConfirmDelete() string {
	var prompt string
	data := m.tracker.Data()
	switch m.state {
	case StateConfirmDeletePayment:
		prompt = "Remover este dia de pagamento?"
		if payment, ok := data.PaymentByID(m.deleteTargetID); ok {
			prompt = fmt.Sprintf("Remover %q?", payment.DisplayName())
		}
	case StateConfirmDeleteGoal:
		prompt = "Remover esta caixinha?"
		if goal, ok := data.GoalByID(m.deleteTargetID); ok {
			prompt = fmt.Sprintf("Remover a caixinha %q?", goal.Name)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		dangerStyle.Render(prompt),
		"",
		"y: sim    n: não",
	)
}

func (m Model) viewAlert() string {
	if m.alertPayment == nil {
		return ""
	}

	data := m.tracker.Data()
	payment := *m.alertPayment
	savings := finance.SavingsPerPayment(payment.Amount, data.SavingsPercentage)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("💰 Hoje é dia de pagamento!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s: %s\n", payment.DisplayName(), payment.Amount.Format()))
	if savings > 0 {
		b.WriteString(fmt.Sprintf("Separe %s para suas caixinhas (%d%%).\n", savings.Format(), data.SavingsPercentage))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("enter para continuar"))

	return alertStyle.Render(b.String())
}
