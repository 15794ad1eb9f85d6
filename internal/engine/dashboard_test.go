package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

func TestGoalPercent_ClampedAt100(t *testing.T) {
	g := domain.Goal{TargetAmount: 100, Accumulated: 150}
	assert.Equal(t, 100.0, engine.GoalPercent(g))
}

func TestGoalPercent_ZeroTarget(t *testing.T) {
	assert.Zero(t, engine.GoalPercent(domain.Goal{TargetAmount: 0, Accumulated: 50}))
}

func TestGoalPercent_Partial(t *testing.T) {
	g := domain.Goal{TargetAmount: 200, Accumulated: 50}
	assert.Equal(t, 25.0, engine.GoalPercent(g))
}

func TestBuildDashboard_RevenueAndExpenses(t *testing.T) {
	paid := domain.MustDate("2026-03-12")
	snap := &domain.Snapshot{
		Transactions: []domain.CashTransaction{
			tx("2026-03-10", domain.KindRevenue, 100, 96, domain.MethodCredit),
			tx("2026-03-11", domain.KindRevenue, 200, 200, domain.MethodCash),
			tx("2026-03-11", domain.KindExpense, 40, 40, domain.MethodCash),
			tx("2026-02-11", domain.KindRevenue, 9999, 9999, domain.MethodCash), // other month
		},
		Bills: []domain.Bill{
			{Amount: 60, Paid: true, PaymentDate: &paid, DueDate: paid},
		},
		Settings: domain.Settings{
			DefaultCogsPct: 10,
			FixedCosts:     []domain.CostEntry{{Name: "rent", Amount: 50}},
			VariableCosts:  []domain.CostEntry{{Name: "gas", Amount: 20}},
		},
	}

	ref := domain.MustDate("2026-03-01")
	d := engine.BuildDashboard(snap, ref, ref)

	assert.Equal(t, 300.0, d.GrossRevenue)
	assert.Equal(t, 296.0, d.NetRevenue)
	assert.Equal(t, 100.0, d.MonthlyExpenses) // 40 tx + 60 bill
	assert.Equal(t, 50.0, d.FixedCosts)
	assert.Equal(t, 20.0, d.VariableCosts)
	assert.InDelta(t, 30.0, d.CostOfGoods, 1e-9)
	assert.InDelta(t, 296.0-30-50-20-100, d.Profit, 1e-9)
}

func TestBuildDashboard_MarginZeroWhenNoRevenue(t *testing.T) {
	snap := &domain.Snapshot{
		Settings: domain.Settings{FixedCosts: []domain.CostEntry{{Name: "rent", Amount: 10}}},
	}
	ref := domain.MustDate("2026-03-01")
	d := engine.BuildDashboard(snap, ref, ref)
	assert.Zero(t, d.MarginPercent)
}

func TestBuildDashboard_UpcomingBillsWindow(t *testing.T) {
	today := domain.MustDate("2026-03-10")
	snap := &domain.Snapshot{
		Bills: []domain.Bill{
			{ID: "due-today", DueDate: today},                         // excluded: not after today
			{ID: "due-tomorrow", DueDate: domain.MustDate("2026-03-11")}, // included
			{ID: "due-7th-day", DueDate: domain.MustDate("2026-03-17")},  // included (7th day inclusive)
			{ID: "due-8th-day", DueDate: domain.MustDate("2026-03-18")},  // excluded
			{ID: "paid", DueDate: domain.MustDate("2026-03-12"), Paid: true},
		},
	}

	d := engine.BuildDashboard(snap, today, today)
	require.Len(t, d.UpcomingBills, 2)
	assert.Equal(t, "due-tomorrow", d.UpcomingBills[0].ID)
	assert.Equal(t, "due-7th-day", d.UpcomingBills[1].ID)
}

func TestBuildDashboard_LowStockAtOrBelowMinimum(t *testing.T) {
	snap := &domain.Snapshot{
		Ingredients: []domain.Ingredient{
			{ID: "below", CurrentStock: 1, MinimumStock: 5},
			{ID: "exact", CurrentStock: 5, MinimumStock: 5},
			{ID: "above", CurrentStock: 6, MinimumStock: 5},
		},
	}
	ref := domain.MustDate("2026-03-01")
	d := engine.BuildDashboard(snap, ref, ref)
	require.Len(t, d.LowStock, 2)
	assert.Equal(t, "below", d.LowStock[0].ID)
	assert.Equal(t, "exact", d.LowStock[1].ID)
}

func TestBuildDashboard_RevenueByMethod(t *testing.T) {
	snap := &domain.Snapshot{
		Transactions: []domain.CashTransaction{
			tx("2026-03-10", domain.KindRevenue, 100, 99, domain.MethodPix),
			tx("2026-03-11", domain.KindRevenue, 50, 50, domain.MethodPix),
			tx("2026-03-11", domain.KindRevenue, 80, 80, domain.MethodCash),
			tx("2026-03-11", domain.KindExpense, 999, 999, domain.MethodPix), // expenses excluded
		},
	}
	ref := domain.MustDate("2026-03-01")
	d := engine.BuildDashboard(snap, ref, ref)

	assert.Equal(t, 150.0, d.RevenueByMethod[domain.MethodPix])
	assert.Equal(t, 80.0, d.RevenueByMethod[domain.MethodCash])
	assert.NotContains(t, d.RevenueByMethod, domain.MethodDebit)
}

func TestBuildDashboard_Idempotent(t *testing.T) {
	snap := &domain.Snapshot{
		Transactions: []domain.CashTransaction{
			tx("2026-03-10", domain.KindRevenue, 100, 99, domain.MethodPix),
		},
		Goals: []domain.Goal{
			{Active: true, TargetAmount: 100, Accumulated: 40},
		},
	}
	ref := domain.MustDate("2026-03-01")
	first := engine.BuildDashboard(snap, ref, ref)
	second := engine.BuildDashboard(snap, ref, ref)
	assert.Equal(t, first, second)
}
