package events

import (
	"net/url"
	"testing"
)

func TestParseBBox(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    BBox
		wantErr bool
	}{
		{
			name:  "valid",
			input: "32.80,39.85,32.95,40.00",
			want:  BBox{MinLon: 32.80, MinLat: 39.85, MaxLon: 32.95, MaxLat: 40.00},
		},
		{
			name:  "negative coordinates",
			input: "-122.5,37.2,-121.9,37.9",
			want:  BBox{MinLon: -122.5, MinLat: 37.2, MaxLon: -121.9, MaxLat: 37.9},
		},
		{
			name:  "spaces around components",
			input: " 0 , 0 , 1 , 1 ",
			want:  BBox{MaxLon: 1, MaxLat: 1},
		},
		{name: "non numeric", input: "not,a,valid,box", wantErr: true},
		{name: "too few components", input: "1,2,3", wantErr: true},
		{name: "too many components", input: "1,2,3,4,5", wantErr: true},
		{name: "nan", input: "NaN,0,1,1", wantErr: true},
		{name: "inf", input: "0,0,Inf,1", wantErr: true},
		{name: "empty component", input: "0,,1,1", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseBBox(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				if !IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestParseFilters(t *testing.T) {
	filters, err := ParseFilters(url.Values{"category": {"workshop"}})
	if err != nil {
		t.Fatalf("parse filters: %v", err)
	}
	if filters.Category != "workshop" || filters.BBox != nil {
		t.Fatalf("unexpected filters: %+v", filters)
	}

	filters, err = ParseFilters(url.Values{"bbox": {"0,0,1,1"}})
	if err != nil {
		t.Fatalf("parse filters: %v", err)
	}
	if filters.BBox == nil || filters.BBox.MaxLon != 1 {
		t.Fatalf("unexpected bbox: %+v", filters.BBox)
	}

	if _, err := ParseFilters(url.Values{"bbox": {"bad"}}); err == nil {
		t.Fatal("expected error for malformed bbox")
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(Patch{}).IsEmpty() {
		t.Fatal("zero patch is empty")
	}

	lon := 32.8597
	if !(Patch{Lon: &lon}).IsEmpty() {
		t.Fatal("a lone lon is a geometry no-op, patch stays empty")
	}

	lat := 39.9228
	if (Patch{Lon: &lon, Lat: &lat}).IsEmpty() {
		t.Fatal("lon+lat pair is a geometry update")
	}

	title := "new title"
	if (Patch{Title: &title}).IsEmpty() {
		t.Fatal("title change is not empty")
	}
}
