package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// ============================================================
// Cash transactions — table: cash_transactions
// ============================================================

func (c *Client) ListTransactions(ctx context.Context, userID string) ([]domain.CashTransaction, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListTransactions")
	defer span.End()

	rows := []domain.CashTransaction{}
	path := fmt.Sprintf("cash_transactions?user_id=eq.%s&order=date.desc", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CreateTransaction(ctx context.Context, tx *domain.CashTransaction) (*domain.CashTransaction, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateTransaction")
	defer span.End()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	tx.CreatedAt = time.Now()

	var out domain.CashTransaction
	if err := c.insertRow(ctx, "cash_transactions", tx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, tx *domain.CashTransaction) (*domain.CashTransaction, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateTransaction")
	defer span.End()

	var out domain.CashTransaction
	path := fmt.Sprintf("cash_transactions?user_id=eq.%s&id=eq.%s", tx.UserID, tx.ID)
	if err := c.updateRow(ctx, path, tx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteTransaction")
	defer span.End()

	return c.deleteRow(ctx, fmt.Sprintf("cash_transactions?user_id=eq.%s&id=eq.%s", userID, id))
}

// ============================================================
// Bills — table: bills
// ============================================================

func (c *Client) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListBills")
	defer span.End()

	rows := []domain.Bill{}
	path := fmt.Sprintf("bills?user_id=eq.%s&order=due_date.asc", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetBill(ctx context.Context, userID, id string) (*domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "Supabase.GetBill")
	defer span.End()

	var rows []domain.Bill
	path := fmt.Sprintf("bills?user_id=eq.%s&id=eq.%s&limit=1", userID, id)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("bill", id)
	}
	return &rows[0], nil
}

func (c *Client) CreateBill(ctx context.Context, b *domain.Bill) (*domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateBill")
	defer span.End()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now()

	var out domain.Bill
	if err := c.insertRow(ctx, "bills", b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBill(ctx context.Context, b *domain.Bill) (*domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateBill")
	defer span.End()

	var out domain.Bill
	path := fmt.Sprintf("bills?user_id=eq.%s&id=eq.%s", b.UserID, b.ID)
	if err := c.updateRow(ctx, path, b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBill(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteBill")
	defer span.End()

	return c.deleteRow(ctx, fmt.Sprintf("bills?user_id=eq.%s&id=eq.%s", userID, id))
}

// ListPaidRecurringBills returns paid recurring bills across all users.
// Used only by the scheduler (service-role key bypasses row security).
func (c *Client) ListPaidRecurringBills(ctx context.Context) ([]domain.Bill, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListPaidRecurringBills")
	defer span.End()

	rows := []domain.Bill{}
	path := "bills?recurring=eq.true&paid=eq.true&order=due_date.asc"
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
