// Package engine implements the financial calculation core: pure,
// deterministic derivations over one in-memory Snapshot. Nothing in this
// package performs I/O, holds state, or mutates its inputs — callers load a
// fresh snapshot and invoke these functions on demand. Settings are always
// an explicit parameter, never ambient.
package engine

import "github.com/rividoceria/doceria-api/internal/domain"

// Fee returns the payment-method fee withheld from a gross amount.
// Cash is always fee-free; a method with no configured rate is treated as 0%.
// Zero and negative amounts pass through the same arithmetic (negative
// amounts are valid corrections).
func Fee(s domain.Settings, method domain.PaymentMethod, gross float64) float64 {
	if method == domain.MethodCash {
		return 0
	}
	return gross * (s.FeePercent(method) / 100)
}

// Net returns the amount actually received after the method fee.
func Net(s domain.Settings, method domain.PaymentMethod, gross float64) float64 {
	return gross - Fee(s, method, gross)
}
