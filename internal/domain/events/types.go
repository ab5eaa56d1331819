package events

import (
	"encoding/json"
	"time"
)

// Event is a geo-tagged event row. Geometry is the GeoJSON point produced by
// ST_AsGeoJSON, passed through to clients untouched.
type Event struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Category    string          `json:"category"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     *time.Time      `json:"end_time"`
	Price       *float64        `json:"price"`
	CreatedBy   string          `json:"created_by"`
	Geometry    json.RawMessage `json:"geom"`
}

// CreateInput carries a new event. Lon and Lat are pointers so a missing
// coordinate is distinguishable from zero.
type CreateInput struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	Category    string     `json:"category" validate:"required"`
	StartTime   *time.Time `json:"start_time" validate:"required"`
	EndTime     *time.Time `json:"end_time"`
	Price       *float64   `json:"price"`
	Lon         *float64   `json:"lon" validate:"required"`
	Lat         *float64   `json:"lat" validate:"required"`
}

// Patch is a sparse update: nil means "leave unchanged". Geometry is only
// recomputed when both Lon and Lat are present; a lone coordinate is ignored.
type Patch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Price       *float64   `json:"price"`
	Lon         *float64   `json:"lon"`
	Lat         *float64   `json:"lat"`
}

func (p Patch) HasGeometry() bool {
	return p.Lon != nil && p.Lat != nil
}

// IsEmpty reports whether the patch changes nothing. A lone lon or lat does
// not count as a change.
func (p Patch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Category == nil &&
		p.StartTime == nil &&
		p.EndTime == nil &&
		p.Price == nil &&
		!p.HasGeometry()
}
