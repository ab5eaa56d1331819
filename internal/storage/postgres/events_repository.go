package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/urbangis/server/internal/domain/events"
)

var _ events.Repository = (*EventRepository)(nil)

func (r *EventRepository) List(ctx context.Context, filters events.Filters) ([]events.Event, error) {
	hasBBox := filters.BBox != nil
	var minLon, minLat, maxLon, maxLat float64
	if hasBBox {
		minLon, minLat = filters.BBox.MinLon, filters.BBox.MinLat
		maxLon, maxLat = filters.BBox.MaxLon, filters.BBox.MaxLat
	}

	// The && operator against ST_MakeEnvelope keeps the GiST index usable.
	rows, err := r.pool.Query(ctx, `
SELECT id, title, description, category, start_time, end_time, price::float8,
       created_by, ST_AsGeoJSON(geom)::text
  FROM events
 WHERE ($1 = '' OR category = $1)
   AND (NOT $2::boolean OR geom && ST_MakeEnvelope($3, $4, $5, $6, 4326))
 ORDER BY start_time DESC
 LIMIT $7
`,
		filters.Category,
		hasBBox,
		minLon,
		minLat,
		maxLon,
		maxLat,
		events.ListLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	items := make([]events.Event, 0)
	for rows.Next() {
		var (
			event     events.Event
			startTime pgtype.Timestamptz
			endTime   pgtype.Timestamptz
			geom      string
		)
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Category,
			&startTime,
			&endTime,
			&event.Price,
			&event.CreatedBy,
			&geom,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if startTime.Valid {
			event.StartTime = startTime.Time
		}
		if endTime.Valid {
			value := endTime.Time
			event.EndTime = &value
		}
		event.Geometry = json.RawMessage(geom)
		items = append(items, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) Create(ctx context.Context, createdBy string, input events.CreateInput) (string, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO events (title, description, category, start_time, end_time, price, created_by, geom)
VALUES ($1, $2, $3, $4, $5, $6, $7, ST_SetSRID(ST_MakePoint($8, $9), 4326))
RETURNING id
`,
		input.Title,
		input.Description,
		input.Category,
		input.StartTime,
		input.EndTime,
		input.Price,
		createdBy,
		*input.Lon,
		*input.Lat,
	)

	var id string
	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) GetOwner(ctx context.Context, id string) (string, error) {
	var owner string
	err := r.pool.QueryRow(ctx, `SELECT created_by FROM events WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", events.ErrNotFound
		}
		return "", fmt.Errorf("get event owner: %w", err)
	}
	return owner, nil
}

// Update folds the present patch fields into a SET clause. Column names are
// fixed by the fold below, never caller input.
func (r *EventRepository) Update(ctx context.Context, id string, patch events.Patch) error {
	query, args, err := buildEventUpdate(id, patch)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}

func buildEventUpdate(id string, patch events.Patch) (string, []any, error) {
	set := make([]string, 0, 7)
	args := make([]any, 0, 9)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.StartTime != nil {
		add("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		add("end_time", *patch.EndTime)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.HasGeometry() {
		args = append(args, *patch.Lon, *patch.Lat)
		set = append(set, fmt.Sprintf("geom = ST_SetSRID(ST_MakePoint($%d, $%d), 4326)", len(args)-1, len(args)))
	}
	if len(set) == 0 {
		return "", nil, events.ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE events SET %s, updated_at = now() WHERE id = $%d",
		strings.Join(set, ", "),
		len(args),
	)
	return query, args, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}
