package engine

import "github.com/rividoceria/doceria-api/internal/domain"

// FilterByDateRange returns the transactions whose calendar date falls in
// [from, to], inclusive on both ends. Comparison is whole-day; time of day
// never participates.
func FilterByDateRange(txs []domain.CashTransaction, from, to domain.Date) []domain.CashTransaction {
	out := make([]domain.CashTransaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.Between(from, to) {
			out = append(out, tx)
		}
	}
	return out
}

// SummarizeDay aggregates the transactions of a single calendar day.
func SummarizeDay(txs []domain.CashTransaction, day domain.Date) domain.DaySummary {
	sum := domain.DaySummary{
		Date:         day,
		Transactions: []domain.CashTransaction{},
	}
	for _, tx := range txs {
		if tx.Date != day {
			continue
		}
		sum.Transactions = append(sum.Transactions, tx)
		switch tx.Kind {
		case domain.KindRevenue:
			sum.GrossRevenue += tx.GrossAmount
			sum.NetRevenue += tx.NetAmount
		case domain.KindExpense:
			sum.Expenses += tx.GrossAmount
		}
	}
	return sum
}

// monthTotals sums revenue and expense figures for the calendar month
// containing ref. Expenses include bills whose payment date lands in that
// month. Shared by the dashboard and the monthly P&L.
type monthTotals struct {
	grossRevenue float64
	netRevenue   float64
	expenses     float64
}

func sumMonth(snap *domain.Snapshot, ref domain.Date) monthTotals {
	var t monthTotals
	for _, tx := range snap.Transactions {
		if !tx.Date.SameMonth(ref) {
			continue
		}
		switch tx.Kind {
		case domain.KindRevenue:
			t.grossRevenue += tx.GrossAmount
			t.netRevenue += tx.NetAmount
		case domain.KindExpense:
			t.expenses += tx.GrossAmount
		}
	}
	for _, b := range snap.Bills {
		if b.Paid && b.PaymentDate != nil && b.PaymentDate.SameMonth(ref) {
			t.expenses += b.Amount
		}
	}
	return t
}

// sumCostEntries totals a flat monthly cost list. Fixed and variable costs
// are a flat monthly figure regardless of which month or range is queried;
// they are never prorated.
func sumCostEntries(entries []domain.CostEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
