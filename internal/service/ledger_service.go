package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

// ============================================================
// Cash transactions
// ============================================================

func (s *BusinessService) ListTransactions(ctx context.Context, userID string) ([]domain.CashTransaction, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.ListTransactions")
	defer span.End()

	return s.store.ListTransactions(ctx, userID)
}

func validateTransaction(tx *domain.CashTransaction) error {
	if tx.Kind != domain.KindRevenue && tx.Kind != domain.KindExpense {
		return &domain.ErrValidation{Field: "kind", Message: "must be 'revenue' or 'expense'"}
	}
	if tx.GrossAmount <= 0 {
		return &domain.ErrValidation{Field: "gross_amount", Message: "must be positive"}
	}
	switch tx.Method {
	case domain.MethodCash, domain.MethodPix, domain.MethodDebit, domain.MethodCredit:
	default:
		return &domain.ErrValidation{Field: "payment_method", Message: "unknown payment method"}
	}
	return nil
}

// applyFees derives the fee and net amounts from the user's current fee
// settings. Fees only apply to revenue; an expense nets its full amount.
func (s *BusinessService) applyFees(ctx context.Context, tx *domain.CashTransaction) error {
	settings, err := s.getOrDefaultSettings(ctx, tx.UserID)
	if err != nil {
		return err
	}
	if tx.Kind == domain.KindRevenue {
		tx.FeeAmount = engine.Fee(*settings, tx.Method, tx.GrossAmount)
		tx.NetAmount = engine.Net(*settings, tx.Method, tx.GrossAmount)
	} else {
		tx.FeeAmount = 0
		tx.NetAmount = tx.GrossAmount
	}
	return nil
}

func (s *BusinessService) CreateTransaction(ctx context.Context, tx *domain.CashTransaction) (*domain.CashTransaction, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.CreateTransaction")
	defer span.End()

	if err := validateTransaction(tx); err != nil {
		return nil, err
	}
	if tx.Date.IsZero() {
		tx.Date = domain.Today()
	}
	if err := s.applyFees(ctx, tx); err != nil {
		return nil, err
	}

	out, err := s.store.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(tx.UserID)
	return out, nil
}

// UpdateTransaction re-derives fee and net from the settings current at the
// time of the edit, not the ones in force when the row was created.
func (s *BusinessService) UpdateTransaction(ctx context.Context, tx *domain.CashTransaction) (*domain.CashTransaction, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UpdateTransaction")
	defer span.End()

	if err := validateTransaction(tx); err != nil {
		return nil, err
	}
	if err := s.applyFees(ctx, tx); err != nil {
		return nil, err
	}

	out, err := s.store.UpdateTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(tx.UserID)
	return out, nil
}

func (s *BusinessService) DeleteTransaction(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "BusinessService.DeleteTransaction")
	defer span.End()

	if err := s.store.DeleteTransaction(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSnapshot(userID)
	return nil
}

// ============================================================
// Bills (contas a pagar)
// ============================================================

func (s *BusinessService) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.ListBills")
	defer span.End()

	return s.store.ListBills(ctx, userID)
}

func validateBill(b *domain.Bill) error {
	if b.Description == "" {
		return &domain.ErrValidation{Field: "description", Message: "required"}
	}
	if b.Amount <= 0 {
		return &domain.ErrValidation{Field: "amount", Message: "must be positive"}
	}
	if b.DueDate.IsZero() {
		return &domain.ErrValidation{Field: "due_date", Message: "required"}
	}
	return nil
}

func (s *BusinessService) CreateBill(ctx context.Context, b *domain.Bill) (*domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.CreateBill")
	defer span.End()

	if err := validateBill(b); err != nil {
		return nil, err
	}
	b.Paid = false
	b.PaymentDate = nil

	out, err := s.store.CreateBill(ctx, b)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(b.UserID)
	return out, nil
}

func (s *BusinessService) UpdateBill(ctx context.Context, b *domain.Bill) (*domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UpdateBill")
	defer span.End()

	if err := validateBill(b); err != nil {
		return nil, err
	}

	out, err := s.store.UpdateBill(ctx, b)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(b.UserID)
	return out, nil
}

// PayBill marks a bill paid as of the given date (today when zero). The
// payment date, not the due date, decides which month the bill hits in
// reports.
func (s *BusinessService) PayBill(ctx context.Context, userID, id string, paymentDate domain.Date) (*domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.PayBill")
	defer span.End()

	bill, err := s.store.GetBill(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if paymentDate.IsZero() {
		paymentDate = domain.Today()
	}
	bill.Paid = true
	bill.PaymentDate = &paymentDate

	out, err := s.store.UpdateBill(ctx, bill)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(userID)
	return out, nil
}

// UnpayBill reverts a payment, clearing the payment date.
func (s *BusinessService) UnpayBill(ctx context.Context, userID, id string) (*domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UnpayBill")
	defer span.End()

	bill, err := s.store.GetBill(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	bill.Paid = false
	bill.PaymentDate = nil

	out, err := s.store.UpdateBill(ctx, bill)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(userID)
	return out, nil
}

func (s *BusinessService) DeleteBill(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "BusinessService.DeleteBill")
	defer span.End()

	if err := s.store.DeleteBill(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSnapshot(userID)
	return nil
}

// RollForwardRecurringBills inserts next month's unpaid copy of every paid
// recurring bill whose due date falls before the current month, skipping
// bills that already have a copy due in the following month. The paid
// original is left untouched so the payment history survives. Run daily by
// the scheduler; returns how many copies were created.
func (s *BusinessService) RollForwardRecurringBills(ctx context.Context, today domain.Date) (int, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.RollForwardRecurringBills")
	defer span.End()

	bills, err := s.store.ListPaidRecurringBills(ctx)
	if err != nil {
		return 0, err
	}

	// One bill list per affected user for the duplicate check.
	userBills := make(map[string][]domain.Bill)
	for _, bill := range bills {
		if _, ok := userBills[bill.UserID]; ok {
			continue
		}
		all, err := s.store.ListBills(ctx, bill.UserID)
		if err != nil {
			return 0, err
		}
		userBills[bill.UserID] = all
	}

	monthStart := today.MonthStart()
	rolled := 0
	for _, bill := range bills {
		if !bill.DueDate.Before(monthStart) {
			continue
		}
		nextDue := bill.DueDate.AddMonths(1)
		if hasBillInMonth(userBills[bill.UserID], bill.Description, nextDue) {
			continue
		}

		next := domain.Bill{
			UserID:      bill.UserID,
			Description: bill.Description,
			CategoryID:  bill.CategoryID,
			Amount:      bill.Amount,
			DueDate:     nextDue,
			Recurring:   true,
		}
		created, err := s.store.CreateBill(ctx, &next)
		if err != nil {
			s.logger.Error("roll forward failed",
				zap.String("bill_id", bill.ID),
				zap.Error(err),
			)
			continue
		}
		userBills[bill.UserID] = append(userBills[bill.UserID], *created)
		s.invalidateSnapshot(bill.UserID)
		rolled++
	}
	return rolled, nil
}

// hasBillInMonth reports whether the user already has a bill with the same
// description due in the month containing next.
func hasBillInMonth(bills []domain.Bill, description string, next domain.Date) bool {
	for _, b := range bills {
		if b.Description == description && b.DueDate.SameMonth(next) {
			return true
		}
	}
	return false
}
