package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/urbangis/server/internal/domain/events"
)

func TestBuildEventUpdateSingleField(t *testing.T) {
	title := "renamed"
	query, args, err := buildEventUpdate("evt-1", events.Patch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "UPDATE events SET title = $1, updated_at = now() WHERE id = $2", query)
	require.Equal(t, []any{"renamed", "evt-1"}, args)
}

func TestBuildEventUpdateGeometryPair(t *testing.T) {
	lon, lat := 32.8597, 39.9228
	query, args, err := buildEventUpdate("evt-1", events.Patch{Lon: &lon, Lat: &lat})
	require.NoError(t, err)
	require.Equal(t,
		"UPDATE events SET geom = ST_SetSRID(ST_MakePoint($1, $2), 4326), updated_at = now() WHERE id = $3",
		query)
	require.Equal(t, []any{lon, lat, "evt-1"}, args)
}

func TestBuildEventUpdateAllFields(t *testing.T) {
	title := "t"
	description := "d"
	category := "c"
	start := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	price := 12.5
	lon, lat := 1.0, 2.0

	query, args, err := buildEventUpdate("evt-1", events.Patch{
		Title:       &title,
		Description: &description,
		Category:    &category,
		StartTime:   &start,
		EndTime:     &end,
		Price:       &price,
		Lon:         &lon,
		Lat:         &lat,
	})
	require.NoError(t, err)
	require.Contains(t, query, "title = $1")
	require.Contains(t, query, "price = $6")
	require.Contains(t, query, "ST_MakePoint($7, $8)")
	require.Contains(t, query, "WHERE id = $9")
	require.Len(t, args, 9)
}

func TestBuildEventUpdateEmpty(t *testing.T) {
	_, _, err := buildEventUpdate("evt-1", events.Patch{})
	require.ErrorIs(t, err, events.ErrNoFields)

	// a lone coordinate never reaches the SET clause
	lon := 1.0
	_, _, err = buildEventUpdate("evt-1", events.Patch{Lon: &lon})
	require.ErrorIs(t, err, events.ErrNoFields)
}
