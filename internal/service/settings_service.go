package service

import (
	"context"
	"errors"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// defaultSettings are applied for users who never saved a configuration.
// All fee rates zero means gross == net until real rates are entered.
func defaultSettings(userID string) *domain.Settings {
	return &domain.Settings{
		UserID:           userID,
		DefaultCogsPct:   30,
		DefaultMarginPct: 100,
		FixedCosts:       []domain.CostEntry{},
		VariableCosts:    []domain.CostEntry{},
	}
}

// getOrDefaultSettings loads the user's settings row, falling back to the
// defaults when none exists yet. Only a true missing row falls back; any
// other store error is surfaced.
func (s *BusinessService) getOrDefaultSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.store.GetSettings(ctx, userID)
	if err != nil {
		var nf *domain.ErrNotFound
		if errors.As(err, &nf) {
			return defaultSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

// GetSettings returns the user's business configuration.
func (s *BusinessService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.GetSettings")
	defer span.End()

	return s.getOrDefaultSettings(ctx, userID)
}

// UpdateSettings validates and upserts the user's business configuration.
// Fee and percentage fields must be sane rates, not absolute amounts.
func (s *BusinessService) UpdateSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UpdateSettings")
	defer span.End()

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"pix_fee_percent", settings.PixFeePercent},
		{"debit_fee_percent", settings.DebitFeePercent},
		{"credit_fee_percent", settings.CreditFeePercent},
	} {
		if f.value < 0 || f.value > 100 {
			return nil, &domain.ErrValidation{Field: f.name, Message: "must be between 0 and 100"}
		}
	}
	if settings.DefaultCogsPct < 0 || settings.DefaultCogsPct > 100 {
		return nil, &domain.ErrValidation{Field: "default_cogs_percent", Message: "must be between 0 and 100"}
	}
	for _, entry := range settings.FixedCosts {
		if entry.Amount < 0 {
			return nil, &domain.ErrValidation{Field: "fixed_costs", Message: "amounts must not be negative"}
		}
	}
	for _, entry := range settings.VariableCosts {
		if entry.Amount < 0 {
			return nil, &domain.ErrValidation{Field: "variable_costs", Message: "amounts must not be negative"}
		}
	}

	out, err := s.store.UpsertSettings(ctx, settings)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(settings.UserID)
	return out, nil
}
