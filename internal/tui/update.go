package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"quinzena/internal/finance"
	"quinzena/internal/logger"
	"quinzena/internal/models"
	"quinzena/internal/money"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
		m.help.Width = sizeMsg.Width
	}

	switch m.state {
	case StateAlert:
		return m.updateAlert(msg)
	case StateAddPayment, StateEditPayment:
		return m.updatePaymentForm(msg)
	case StateAddGoal:
		return m.updateGoalForm(msg)
	case StateFundGoal:
		return m.updateFundForm(msg)
	case StateEditSettings:
		return m.updateSettingsForm(msg)
	case StateConfirmDeletePayment, StateConfirmDeleteGoal:
		return m.updateConfirmDelete(msg)
	}

	return m.updateBrowsing(msg)
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % 4

	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state + 3) % 4

	case key.Matches(keyMsg, m.keys.Up):
		switch m.state {
		case StatePayments:
			m.paymentsModel.CursorUp()
		case StateGoals:
			m.goalsModel.CursorUp()
		}

	case key.Matches(keyMsg, m.keys.Down):
		switch m.state {
		case StatePayments:
			m.paymentsModel.CursorDown()
		case StateGoals:
			m.goalsModel.CursorDown()
		}

	case key.Matches(keyMsg, m.keys.Add):
		switch m.state {
		case StatePayments:
			m.paymentForm = &PaymentFormModel{}
			m.form = NewPaymentForm(m.paymentForm)
			m.editingPaymentID = ""
			m.previousState = m.state
			m.state = StateAddPayment
			return m, m.form.Init()
		case StateGoals:
			m.goalForm = &GoalFormModel{Icon: models.IconTarget, Color: models.ColorAccent}
			m.form = NewGoalForm(m.goalForm)
			m.previousState = m.state
			m.state = StateAddGoal
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Edit):
		switch m.state {
		case StatePayments:
			payment, ok := m.paymentsModel.Selected()
			if !ok {
				break
			}
			m.paymentForm = &PaymentFormModel{
				Day:         strconv.Itoa(payment.Day),
				Amount:      formatAmountInput(payment.Amount),
				Description: payment.Description,
			}
			m.form = NewPaymentForm(m.paymentForm)
			m.editingPaymentID = payment.ID
			m.previousState = m.state
			m.state = StateEditPayment
			return m, m.form.Init()
		case StateSettings:
			data := m.tracker.Data()
			m.settingsForm = &SettingsFormModel{
				Name:        data.UserName,
				Percentage:  strconv.Itoa(data.SavingsPercentage),
				Expenses:    formatAmountInput(data.MonthlyExpenses),
				ShowNumbers: data.NumbersVisible,
			}
			m.form = NewSettingsForm(m.settingsForm)
			m.previousState = m.state
			m.state = StateEditSettings
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		switch m.state {
		case StatePayments:
			if payment, ok := m.paymentsModel.Selected(); ok {
				m.deleteTargetID = payment.ID
				m.previousState = m.state
				m.state = StateConfirmDeletePayment
			}
		case StateGoals:
			if goal, ok := m.goalsModel.Selected(); ok {
				m.deleteTargetID = goal.ID
				m.previousState = m.state
				m.state = StateConfirmDeleteGoal
			}
		}

	case key.Matches(keyMsg, m.keys.Fund):
		if m.state == StateGoals {
			goal, ok := m.goalsModel.Selected()
			if !ok {
				break
			}
			suggested := finance.SuggestedFunding(m.tracker.Data().PaymentDays, time.Now())
			m.fundForm = &FundFormModel{}
			if suggested > 0 {
				m.fundForm.Amount = formatAmountInput(suggested)
			}
			m.form = NewFundForm(m.fundForm, suggested)
			m.fundingGoalID = goal.ID
			m.previousState = m.state
			m.state = StateFundGoal
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Simulate):
		if payment, ok := m.gate.Simulate(m.tracker.Data()); ok {
			m.alertPayment = &payment
			m.previousState = m.state
			m.state = StateAlert
		}
	}

	return m, nil
}

func (m Model) updateAlert(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "esc", "q":
		// Dismissal writes the seen marker, including for simulated alerts.
		if m.alertPayment != nil {
			if err := m.gate.Dismiss(m.alertPayment.Day, time.Now()); err != nil {
				logger.Warn("Failed to dismiss payday alert", "error", err)
			}
		}
		m.alertPayment = nil
		m.state = m.previousState
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updatePaymentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		day, err := strconv.Atoi(strings.TrimSpace(m.paymentForm.Day))
		if err != nil {
			m.formError = "Invalid day"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		amount, err := money.ParsePositive(m.paymentForm.Amount)
		if err != nil {
			m.formError = "Invalid amount"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		var saveErr error
		if m.editingPaymentID != "" {
			saveErr = m.tracker.UpdatePaymentDay(m.editingPaymentID, finance.PaymentUpdate{
				Day:         &day,
				Amount:      &amount,
				Description: &m.paymentForm.Description,
			})
		} else {
			_, saveErr = m.tracker.AddPaymentDay(day, amount, m.paymentForm.Description)
		}

		if saveErr != nil {
			m.formError = fmt.Sprintf("Failed to save payment: %v", saveErr)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.formError = ""
		m.refresh()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateGoalForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		target, err := money.ParsePositive(m.goalForm.Target)
		if err != nil {
			m.formError = "Invalid target amount"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		if _, err := m.tracker.AddSavingsGoal(m.goalForm.Name, target, m.goalForm.Icon, m.goalForm.Color); err != nil {
			m.formError = fmt.Sprintf("Failed to save goal: %v", err)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.formError = ""
		m.refresh()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateFundForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		amount, err := money.ParsePositive(m.fundForm.Amount)
		if err != nil {
			m.formError = "Invalid amount"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		if err := m.tracker.FundGoal(m.fundingGoalID, amount); err != nil {
			m.formError = fmt.Sprintf("Failed to fund goal: %v", err)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.formError = ""
		m.refresh()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		pct, err := strconv.Atoi(strings.TrimSpace(m.settingsForm.Percentage))
		if err != nil {
			m.formError = "Invalid percentage"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		expenses, err := money.Parse(m.settingsForm.Expenses)
		if err != nil {
			m.formError = "Invalid expenses"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		if err := m.applySettings(m.settingsForm.Name, pct, expenses, m.settingsForm.ShowNumbers); err != nil {
			m.formError = fmt.Sprintf("Failed to save settings: %v", err)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.formError = ""
		m.refresh()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applySettings(name string, pct int, expenses money.Money, showNumbers bool) error {
	if err := m.tracker.SetUserName(name); err != nil {
		return err
	}
	if err := m.tracker.SetSavingsPercentage(pct); err != nil {
		return err
	}
	if err := m.tracker.SetMonthlyExpenses(expenses); err != nil {
		return err
	}
	return m.tracker.SetNumbersVisible(showNumbers)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		var err error
		if m.state == StateConfirmDeletePayment {
			err = m.tracker.RemovePaymentDay(m.deleteTargetID)
		} else {
			err = m.tracker.RemoveSavingsGoal(m.deleteTargetID)
		}
		if err != nil {
			logger.Warn("Failed to delete item", "error", err)
		}
		m.deleteTargetID = ""
		m.refresh()
		m.state = m.previousState
	case "n", "N", "esc":
		m.deleteTargetID = ""
		m.state = m.previousState
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// formatAmountInput renders a money value the way the forms accept it
// (comma separator, no currency symbol or grouping).
func formatAmountInput(v money.Money) string {
	cents := v.Cents()
	return fmt.Sprintf("%d,%02d", cents/100, cents%100)
}
