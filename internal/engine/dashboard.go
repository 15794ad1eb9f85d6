package engine

import "github.com/rividoceria/doceria-api/internal/domain"

// GoalPercent returns a goal's completion percentage, capped at 100.
func GoalPercent(g domain.Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	pct := g.Accumulated / g.TargetAmount * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// BuildDashboard computes the dashboard view for the calendar month
// containing ref. The bills-due window is relative to today: strictly after
// today, up to and including the 7th day out.
func BuildDashboard(snap *domain.Snapshot, ref, today domain.Date) domain.Dashboard {
	totals := sumMonth(snap, ref)
	fixed := sumCostEntries(snap.Settings.FixedCosts)
	variable := sumCostEntries(snap.Settings.VariableCosts)
	cogs := totals.grossRevenue * (snap.Settings.DefaultCogsPct / 100)
	profit := totals.netRevenue - cogs - fixed - variable - totals.expenses

	margin := 0.0
	if totals.grossRevenue > 0 {
		margin = profit / totals.grossRevenue * 100
	}

	d := domain.Dashboard{
		ReferenceDate:   ref,
		GrossRevenue:    totals.grossRevenue,
		NetRevenue:      totals.netRevenue,
		MonthlyExpenses: totals.expenses,
		FixedCosts:      fixed,
		VariableCosts:   variable,
		CostOfGoods:     cogs,
		Profit:          profit,
		MarginPercent:   margin,
		UpcomingBills:   []domain.Bill{},
		LowStock:        []domain.Ingredient{},
		ActiveGoals:     []domain.GoalProgress{},
		RevenueByMethod: map[domain.PaymentMethod]float64{},
	}

	deadline := today.AddDays(7)
	for _, b := range snap.Bills {
		if !b.Paid && b.DueDate.After(today) && !b.DueDate.After(deadline) {
			d.UpcomingBills = append(d.UpcomingBills, b)
		}
	}

	for _, ing := range snap.Ingredients {
		if ing.CurrentStock <= ing.MinimumStock {
			d.LowStock = append(d.LowStock, ing)
		}
	}

	for _, g := range snap.Goals {
		if !g.Active {
			continue
		}
		remaining := g.TargetAmount - g.Accumulated
		if remaining < 0 {
			remaining = 0
		}
		d.ActiveGoals = append(d.ActiveGoals, domain.GoalProgress{
			Goal:      g,
			Percent:   GoalPercent(g),
			Remaining: remaining,
		})
	}

	for _, tx := range snap.Transactions {
		if tx.Kind == domain.KindRevenue && tx.Date.SameMonth(ref) {
			d.RevenueByMethod[tx.Method] += tx.GrossAmount
		}
	}

	return d
}
