package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

func tx(date string, kind domain.TransactionKind, gross, net float64, method domain.PaymentMethod) domain.CashTransaction {
	return domain.CashTransaction{
		Date:        domain.MustDate(date),
		Kind:        kind,
		GrossAmount: gross,
		NetAmount:   net,
		FeeAmount:   gross - net,
		Method:      method,
	}
}

func TestFilterByDateRange_InclusiveBothEnds(t *testing.T) {
	txs := []domain.CashTransaction{
		tx("2026-03-01", domain.KindRevenue, 10, 10, domain.MethodCash),
		tx("2026-03-15", domain.KindRevenue, 20, 20, domain.MethodCash),
		tx("2026-03-31", domain.KindRevenue, 30, 30, domain.MethodCash),
		tx("2026-04-01", domain.KindRevenue, 40, 40, domain.MethodCash),
	}

	got := engine.FilterByDateRange(txs, domain.MustDate("2026-03-01"), domain.MustDate("2026-03-31"))
	require.Len(t, got, 3)
	assert.Equal(t, 10.0, got[0].GrossAmount)
	assert.Equal(t, 30.0, got[2].GrossAmount)
}

func TestSummarizeDay(t *testing.T) {
	txs := []domain.CashTransaction{
		tx("2026-03-10", domain.KindRevenue, 100, 99, domain.MethodPix),
		tx("2026-03-10", domain.KindRevenue, 50, 50, domain.MethodCash),
		tx("2026-03-10", domain.KindExpense, 30, 30, domain.MethodCash),
		tx("2026-03-11", domain.KindRevenue, 999, 999, domain.MethodCash),
	}

	sum := engine.SummarizeDay(txs, domain.MustDate("2026-03-10"))
	assert.Equal(t, 150.0, sum.GrossRevenue)
	assert.Equal(t, 149.0, sum.NetRevenue)
	assert.Equal(t, 30.0, sum.Expenses)
	assert.Len(t, sum.Transactions, 3)
}

func TestSummarizeDay_EmptyDay(t *testing.T) {
	sum := engine.SummarizeDay(nil, domain.MustDate("2026-03-10"))
	assert.Zero(t, sum.GrossRevenue)
	assert.Empty(t, sum.Transactions)
}

func TestSummarizeDay_Idempotent(t *testing.T) {
	txs := []domain.CashTransaction{
		tx("2026-03-10", domain.KindRevenue, 100, 99, domain.MethodPix),
	}
	first := engine.SummarizeDay(txs, domain.MustDate("2026-03-10"))
	second := engine.SummarizeDay(txs, domain.MustDate("2026-03-10"))
	assert.Equal(t, first, second)
}
