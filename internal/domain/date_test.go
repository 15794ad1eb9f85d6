package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rividoceria/doceria-api/internal/domain"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())
}

func TestParseDate_KeepsDateFromTimestamp(t *testing.T) {
	// A late-evening timestamp with a negative offset must not shift days.
	d, err := domain.ParseDate("2026-03-15T23:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := domain.ParseDate("15/03/2026")
	assert.Error(t, err)
}

func TestDate_Between(t *testing.T) {
	from := domain.MustDate("2026-03-01")
	to := domain.MustDate("2026-03-31")

	assert.True(t, domain.MustDate("2026-03-01").Between(from, to))
	assert.True(t, domain.MustDate("2026-03-31").Between(from, to))
	assert.False(t, domain.MustDate("2026-02-28").Between(from, to))
	assert.False(t, domain.MustDate("2026-04-01").Between(from, to))
}

func TestDate_AddDaysCrossesMonth(t *testing.T) {
	d := domain.MustDate("2026-03-28").AddDays(7)
	assert.Equal(t, "2026-04-04", d.String())
}

func TestDate_MonthEnd(t *testing.T) {
	assert.Equal(t, "2026-02-28", domain.MustDate("2026-02-10").MonthEnd().String())
	assert.Equal(t, "2024-02-29", domain.MustDate("2024-02-01").MonthEnd().String())
	assert.Equal(t, "2026-12-31", domain.MustDate("2026-12-05").MonthEnd().String())
}

func TestDate_SameMonth(t *testing.T) {
	assert.True(t, domain.MustDate("2026-03-01").SameMonth(domain.MustDate("2026-03-31")))
	assert.False(t, domain.MustDate("2026-03-01").SameMonth(domain.MustDate("2027-03-01")))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Due domain.Date `json:"due"`
	}

	out, err := json.Marshal(payload{Due: domain.MustDate("2026-07-09")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2026-07-09"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2026-07-09"}`), &in))
	assert.Equal(t, "2026-07-09", in.Due.String())

	var empty payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &empty))
	assert.True(t, empty.Due.IsZero())
}
