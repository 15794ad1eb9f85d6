package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

func TestBuildMonthlyResult_BreakEvenFallbackNoRevenue(t *testing.T) {
	snap := &domain.Snapshot{
		Settings: domain.Settings{
			FixedCosts: []domain.CostEntry{{Name: "rent", Amount: 1000}},
		},
	}

	r := engine.BuildMonthlyResult(snap, 2026, time.March)
	assert.Zero(t, r.GrossRevenue)
	assert.Equal(t, 1000.0, r.BreakEven)
	assert.Zero(t, r.MarginPercent)
}

func TestBuildMonthlyResult_BreakEvenNormalCase(t *testing.T) {
	// grossRevenue=10000, netRevenue=9000, variableCosts=2000, cmv=10%
	// variableBurden = 2000 + 1000 = 3000
	// contributionMargin = 9000 - 3000 = 6000; index = 0.6
	// breakEven = 3000 / 0.6 = 5000
	snap := &domain.Snapshot{
		Transactions: []domain.CashTransaction{
			tx("2026-03-05", domain.KindRevenue, 10000, 9000, domain.MethodCredit),
		},
		Settings: domain.Settings{
			DefaultCogsPct: 10,
			FixedCosts:     []domain.CostEntry{{Name: "rent", Amount: 3000}},
			VariableCosts:  []domain.CostEntry{{Name: "gas", Amount: 2000}},
		},
	}

	r := engine.BuildMonthlyResult(snap, 2026, time.March)
	assert.InDelta(t, 6000.0, r.ContributionMargin, 1e-9)
	assert.InDelta(t, 0.6, r.ContributionIndex, 1e-9)
	assert.InDelta(t, 5000.0, r.BreakEven, 1e-9)
}

func TestBuildMonthlyResult_BreakEvenFallbackUnderwater(t *testing.T) {
	// Net revenue below variable burden: the conservative fallback applies.
	snap := &domain.Snapshot{
		Transactions: []domain.CashTransaction{
			tx("2026-03-05", domain.KindRevenue, 1000, 900, domain.MethodCredit),
		},
		Settings: domain.Settings{
			DefaultCogsPct: 10, // cogs = 100
			FixedCosts:     []domain.CostEntry{{Name: "rent", Amount: 500}},
			VariableCosts:  []domain.CostEntry{{Name: "gas", Amount: 2000}},
		},
	}

	r := engine.BuildMonthlyResult(snap, 2026, time.March)
	assert.Equal(t, 500.0, r.BreakEven)
	assert.Zero(t, r.ContributionIndex)
}

func TestBuildMonthlyResult_ProfitFormula(t *testing.T) {
	snap := &domain.Snapshot{
		Transactions: []domain.CashTransaction{
			tx("2026-03-05", domain.KindRevenue, 10000, 9500, domain.MethodPix),
		},
		Settings: domain.Settings{
			DefaultCogsPct: 20, // cogs = 2000
			FixedCosts:     []domain.CostEntry{{Name: "rent", Amount: 1500}},
			VariableCosts:  []domain.CostEntry{{Name: "delivery", Amount: 500}},
		},
	}

	r := engine.BuildMonthlyResult(snap, 2026, time.March)
	// profit = net - cogs - fixed - variable (no transaction expenses here)
	assert.InDelta(t, 9500.0-2000-1500-500, r.Profit, 1e-9)
	assert.InDelta(t, r.Profit/10000*100, r.MarginPercent, 1e-9)
}

func TestBuildMonthlyResult_OtherMonthsExcluded(t *testing.T) {
	snap := &domain.Snapshot{
		Transactions: []domain.CashTransaction{
			tx("2026-02-28", domain.KindRevenue, 777, 777, domain.MethodCash),
			tx("2026-04-01", domain.KindRevenue, 888, 888, domain.MethodCash),
		},
	}

	r := engine.BuildMonthlyResult(snap, 2026, time.March)
	assert.Zero(t, r.GrossRevenue)
}

func TestBuildMonthlyResult_PaidBillsCountedByPaymentMonth(t *testing.T) {
	paidMarch := domain.MustDate("2026-03-20")
	paidApril := domain.MustDate("2026-04-02")
	snap := &domain.Snapshot{
		Bills: []domain.Bill{
			{Amount: 300, DueDate: domain.MustDate("2026-03-15"), Paid: true, PaymentDate: &paidMarch},
			{Amount: 400, DueDate: domain.MustDate("2026-03-30"), Paid: true, PaymentDate: &paidApril},
			{Amount: 500, DueDate: domain.MustDate("2026-03-10"), Paid: false},
		},
	}

	// Bills land in monthly expenses via the dashboard view; the P&L itself
	// excludes transaction expenses, but uses the same month aggregation.
	d := engine.BuildDashboard(snap, domain.MustDate("2026-03-01"), domain.MustDate("2026-03-01"))
	assert.Equal(t, 300.0, d.MonthlyExpenses)
}
