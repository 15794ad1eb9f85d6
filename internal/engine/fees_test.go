package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

func testSettings() domain.Settings {
	return domain.Settings{
		PixFeePercent:    1.0,
		DebitFeePercent:  2.0,
		CreditFeePercent: 4.5,
		DefaultCogsPct:   10.0,
	}
}

func TestFee_CashIsAlwaysFree(t *testing.T) {
	s := testSettings()
	for _, amount := range []float64{0, 1, 99.99, 1500, -40} {
		assert.Zero(t, engine.Fee(s, domain.MethodCash, amount))
	}
}

func TestFee_AppliesConfiguredRate(t *testing.T) {
	s := testSettings()

	assert.InDelta(t, 1.0, engine.Fee(s, domain.MethodPix, 100), 1e-9)
	assert.InDelta(t, 2.0, engine.Fee(s, domain.MethodDebit, 100), 1e-9)
	assert.InDelta(t, 4.5, engine.Fee(s, domain.MethodCredit, 100), 1e-9)
}

func TestFee_UnknownMethodIsZeroPercent(t *testing.T) {
	s := testSettings()
	assert.Zero(t, engine.Fee(s, domain.PaymentMethod("voucher"), 250))
}

func TestNet_PlusFeeEqualsGross(t *testing.T) {
	s := testSettings()
	methods := []domain.PaymentMethod{
		domain.MethodCash, domain.MethodPix, domain.MethodDebit, domain.MethodCredit,
	}
	for _, m := range methods {
		for _, gross := range []float64{0, 0.01, 10, 123.45, 10000} {
			fee := engine.Fee(s, m, gross)
			net := engine.Net(s, m, gross)
			assert.InDelta(t, gross, net+fee, 1e-9,
				"method %s gross %.2f", m, gross)
		}
	}
}

func TestNet_NegativeAmountPassesThrough(t *testing.T) {
	s := testSettings()

	// Corrections: a negative gross produces a negative fee and net.
	fee := engine.Fee(s, domain.MethodCredit, -100)
	assert.InDelta(t, -4.5, fee, 1e-9)
	assert.InDelta(t, -95.5, engine.Net(s, domain.MethodCredit, -100), 1e-9)
}
