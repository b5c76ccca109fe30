// Package finance implements the derived financial state engine: the pure
// computations layered over the persisted payment, goal and settings records,
// and the tracker that mutates them.
package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"quinzena/internal/constants"
	"quinzena/internal/models"
	"quinzena/internal/money"
)

var oneHundred = decimal.NewFromInt(100)

// percentOf computes amount * pct / 100 in cents with half-up rounding.
func percentOf(amount money.Money, pct int) money.Money {
	cents := decimal.NewFromInt(amount.Cents()).
		Mul(decimal.NewFromInt(int64(pct))).
		Div(oneHundred).
		Round(0)
	return money.FromCents(cents.IntPart())
}

// TotalMonthlyIncome is the sum of all payment amounts.
func TotalMonthlyIncome(d models.FinancialData) money.Money {
	var total money.Money
	for _, p := range d.PaymentDays {
		total += p.Amount
	}
	return total
}

// MonthlySavings is the configured percentage of the total monthly income.
func MonthlySavings(d models.FinancialData) money.Money {
	return percentOf(TotalMonthlyIncome(d), d.SavingsPercentage)
}

// AvailableAfterSavings is what remains after savings and fixed expenses.
// The result may be negative; the sign drives a trend indicator, not an error.
func AvailableAfterSavings(d models.FinancialData) money.Money {
	return TotalMonthlyIncome(d) - MonthlySavings(d) - d.MonthlyExpenses
}

// SavingsPerPayment is the slice of a single payment earmarked for savings.
func SavingsPerPayment(amount money.Money, savingsPercentage int) money.Money {
	return percentOf(amount, savingsPercentage)
}

// Trend describes the direction of the available balance.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// AvailableTrend maps the available balance to an up/down indicator.
func AvailableTrend(d models.FinancialData) Trend {
	if AvailableAfterSavings(d) > 0 {
		return TrendUp
	}
	return TrendDown
}

// Countdown describes the next payday relative to a reference date.
type Countdown struct {
	Payment   models.PaymentDay
	DaysUntil int
	// IsToday is set when any payment day matches the reference date
	// exactly. It takes precedence over the countdown target.
	IsToday bool
	OK      bool
}

// NextPayday finds the next upcoming payday. Payments later in the current
// month win; otherwise the earliest day wraps to the following month with a
// calendar-correct day count.
func NextPayday(days []models.PaymentDay, today time.Time) Countdown {
	if len(days) == 0 {
		return Countdown{}
	}

	currentDay := today.Day()

	sorted := make([]models.PaymentDay, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	var c Countdown
	c.OK = true

	for _, p := range sorted {
		if p.Day == currentDay {
			c.IsToday = true
			break
		}
	}

	for _, p := range sorted {
		if p.Day > currentDay {
			c.Payment = p
			c.DaysUntil = p.Day - currentDay
			return c
		}
	}

	// Wrap to next month. time.Date normalizes both the month overflow and
	// days that exceed the next month's length, matching calendar arithmetic
	// rather than a naive 30-day modulo. Both endpoints are pinned to UTC
	// midnights so the interval is an exact multiple of 24h even when the
	// caller's zone has a DST transition in between.
	c.Payment = sorted[0]
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	nextDate := time.Date(today.Year(), today.Month()+1, c.Payment.Day, 0, 0, 0, 0, time.UTC)
	c.DaysUntil = int(nextDate.Sub(todayDate).Hours() / 24)
	return c
}

// Progress describes how far along a savings goal is.
type Progress struct {
	Percent   int
	Remaining money.Money
	// MonthsToGoal is ceil(remaining / monthlySavings). It is only
	// meaningful when HasETA is set; a zero monthly savings makes the
	// estimate undefined rather than a division fault.
	MonthsToGoal int
	HasETA       bool
}

// GoalProgress derives the progress figures for one goal.
func GoalProgress(g models.SavingsGoal, monthlySavings money.Money) Progress {
	p := Progress{
		Remaining: g.TargetAmount - g.CurrentAmount,
	}
	if g.TargetAmount > 0 {
		pct := decimal.NewFromInt(g.CurrentAmount.Cents()).
			Div(decimal.NewFromInt(g.TargetAmount.Cents())).
			Mul(oneHundred).
			Round(0)
		p.Percent = int(pct.IntPart())
	}
	if monthlySavings > 0 {
		months := decimal.NewFromInt(p.Remaining.Cents()).
			Div(decimal.NewFromInt(monthlySavings.Cents())).
			Ceil()
		p.MonthsToGoal = int(months.IntPart())
		p.HasETA = true
	}
	return p
}

// SuggestedFunding computes the funding suggestion shown next to goals: the
// fixed suggestion rate applied to the most recent payment that has already
// occurred this month. Zero when no payday has happened yet.
//
// The rate is deliberately the fixed SuggestedSavingsPercentage, not the
// user's configured percentage.
func SuggestedFunding(days []models.PaymentDay, today time.Time) money.Money {
	currentDay := today.Day()

	var last models.PaymentDay
	found := false
	for _, p := range days {
		if p.Day <= currentDay && (!found || p.Day > last.Day) {
			last = p
			found = true
		}
	}
	if !found {
		return 0
	}
	return percentOf(last.Amount, constants.SuggestedSavingsPercentage)
}
