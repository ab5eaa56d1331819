package events

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// BBox is an axis-aligned rectangle in EPSG:4326 lon/lat order.
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

type Filters struct {
	Category string
	BBox     *BBox
}

// ParseFilters reads list filters from the query string. A present but
// malformed bbox is a FilterError; an absent one is simply no filter.
func ParseFilters(query url.Values) (Filters, error) {
	filters := Filters{
		Category: strings.TrimSpace(query.Get("category")),
	}

	raw := strings.TrimSpace(query.Get("bbox"))
	if raw == "" {
		return filters, nil
	}

	bbox, err := ParseBBox(raw)
	if err != nil {
		return Filters{}, err
	}
	filters.BBox = &bbox
	return filters, nil
}

// ParseBBox parses "minLon,minLat,maxLon,maxLat". Each component must be a
// finite number.
func ParseBBox(raw string) (BBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return BBox{}, FilterError{Field: "bbox", Message: "use minLon,minLat,maxLon,maxLat"}
	}

	values := make([]float64, 4)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return BBox{}, FilterError{Field: "bbox", Message: "use minLon,minLat,maxLon,maxLat"}
		}
		values[i] = value
	}

	return BBox{MinLon: values[0], MinLat: values[1], MaxLon: values[2], MaxLat: values[3]}, nil
}
