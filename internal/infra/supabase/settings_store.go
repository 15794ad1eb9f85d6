package supabase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// GetSettings loads the single settings row for a user.
func (c *Client) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	ctx, span := tracer.Start(ctx, "Supabase.GetSettings")
	defer span.End()

	var rows []domain.Settings
	path := fmt.Sprintf("settings?user_id=eq.%s&limit=1", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("settings", userID)
	}
	return &rows[0], nil
}

// UpsertSettings writes the settings row for a user, creating it on first
// save. PostgREST merges on the user_id unique constraint.
func (c *Client) UpsertSettings(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpsertSettings")
	defer span.End()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.UpdatedAt = time.Now()

	path := "settings?on_conflict=user_id"
	body, err := c.doRequest(ctx, http.MethodPost, path, s, "resolution=merge-duplicates,return=representation")
	if err != nil {
		return nil, c.storeError(path, err)
	}

	var out domain.Settings
	if err := decodeSingle(body, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
