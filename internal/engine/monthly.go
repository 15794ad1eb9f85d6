package engine

import (
	"math"
	"time"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// BuildMonthlyResult computes the formal P&L for one calendar month.
//
// The break-even figure answers: how much gross revenue is needed so that
// net-of-fees revenue covers the variable burden (variable costs + COGS)
// plus fixed costs. When the business has no revenue, or the contribution
// index is not positive, or the division misbehaves, it falls back
// conservatively to the fixed costs themselves.
func BuildMonthlyResult(snap *domain.Snapshot, year int, month time.Month) domain.MonthlyResult {
	ref := domain.Date{Year: year, Month: month, Day: 1}
	totals := sumMonth(snap, ref)

	fixed := sumCostEntries(snap.Settings.FixedCosts)
	variable := sumCostEntries(snap.Settings.VariableCosts)
	cogs := totals.grossRevenue * (snap.Settings.DefaultCogsPct / 100)
	profit := totals.netRevenue - cogs - fixed - variable

	margin := 0.0
	if totals.grossRevenue > 0 {
		margin = profit / totals.grossRevenue * 100
	}

	r := domain.MonthlyResult{
		Year:          year,
		Month:         int(month),
		GrossRevenue:  totals.grossRevenue,
		NetRevenue:    totals.netRevenue,
		FixedCosts:    fixed,
		VariableCosts: variable,
		CostOfGoods:   cogs,
		Profit:        profit,
		MarginPercent: margin,
		BreakEven:     fixed,
	}

	variableBurden := variable + cogs
	if totals.grossRevenue > 0 && totals.netRevenue > variableBurden {
		r.ContributionMargin = totals.netRevenue - variableBurden
		r.ContributionIndex = r.ContributionMargin / totals.grossRevenue
		if r.ContributionIndex > 0 {
			breakEven := fixed / r.ContributionIndex
			if !math.IsNaN(breakEven) && !math.IsInf(breakEven, 0) {
				r.BreakEven = breakEven
			}
		}
	}

	return r
}
