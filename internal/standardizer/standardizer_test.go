package standardizer

import (
	"reflect"
	"testing"
)

func TestStandardize(t *testing.T) {
	tests := []struct {
		name       string
		components Components
		expected   string
	}{
		{
			name: "Street address with postdirectional",
			components: Components{
				"address_number":         "1600",
				"street_name":            "Pennsylvania",
				"street_post_type":       "Avenue",
				"street_postdirectional": "NW",
				"city":                   "Washington",
				"state":                  "DC",
				"zip_code":               "20500",
			},
			expected: "1600 PENNSYLVANIA AVE NW  WASHINGTON, DC 20500",
		},
		{
			name: "Street address with occupancy",
			components: Components{
				"address_number":       "350",
				"street_name":          "Fifth",
				"street_post_type":     "Ave",
				"occupancy_type":       "Suite",
				"occupancy_identifier": "3300",
				"city":                 "New York",
				"state":                "NY",
				"zip_code":             "10118",
			},
			expected: "350 FIFTH AVE  STE 3300  NEW YORK, NY 10118",
		},
		{
			name: "Bare occupancy identifier gets pound designator",
			components: Components{
				"address_number":       "123",
				"street_name":          "Main",
				"street_post_type":     "St",
				"occupancy_identifier": "3300",
			},
			expected: "123 MAIN ST  # 3300",
		},
		{
			name: "Designator folded into identifier",
			components: Components{
				"address_number":       "123",
				"street_name":          "Main",
				"street_post_type":     "St",
				"occupancy_identifier": "Apt 4B",
			},
			expected: "123 MAIN ST  APT 4B",
		},
		{
			name: "Full state name abbreviated",
			components: Components{
				"address_number":   "742",
				"street_name":      "Evergreen",
				"street_post_type": "Terrace",
				"city":             "Springfield",
				"state":            "Illinois",
			},
			expected: "742 EVERGREEN TER  SPRINGFIELD, IL",
		},
		{
			name: "Predirectional abbreviated",
			components: Components{
				"address_number":        "500",
				"street_predirectional": "North",
				"street_name":           "Michigan",
				"street_post_type":      "Avenue",
				"city":                  "Chicago",
				"state":                 "IL",
			},
			expected: "500 N MICHIGAN AVE  CHICAGO, IL",
		},
		{
			name: "Nine digit zip hyphenated",
			components: Components{
				"address_number":   "1",
				"street_name":      "Infinite",
				"street_post_type": "Loop",
				"city":             "Cupertino",
				"state":            "CA",
				"zip_code":         "950142084",
			},
			expected: "1 INFINITE LOOP  CUPERTINO, CA 95014-2084",
		},
		{
			name: "Separate plus four joined",
			components: Components{
				"address_number":   "1",
				"street_name":      "Infinite",
				"street_post_type": "Loop",
				"zip_code":         "95014",
				"zip_plus4":        "2084",
			},
			expected: "1 INFINITE LOOP  95014-2084",
		},
		{
			name: "PO Box forms line one",
			components: Components{
				"usps_box_type": "PO Box",
				"usps_box_id":   "12345",
				"city":          "Portland",
				"state":         "OR",
				"zip_code":      "97201",
			},
			expected: "PO BOX 12345  PORTLAND, OR 97201",
		},
		{
			name:       "City and zip without state",
			components: Components{"city": "Portland", "zip_code": "97201"},
			expected:   "PORTLAND 97201",
		},
		{
			name:       "Empty bag",
			components: Components{},
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Standardize(tt.components)
			if got.Standardized != tt.expected {
				t.Errorf("Standardize() = %q, want %q", got.Standardized, tt.expected)
			}
		})
	}
}

// Standardizing an already standardized component bag changes nothing.
func TestStandardizeIdempotent(t *testing.T) {
	first := Standardize(Components{
		"address_number":       "350",
		"street_name":          "Fifth",
		"street_post_type":     "Avenue",
		"occupancy_type":       "Suite",
		"occupancy_identifier": "3300",
		"city":                 "New York",
		"state":                "New York",
		"zip_code":             "101181234",
	})
	second := Standardize(first.Components)

	if second.Standardized != first.Standardized {
		t.Errorf("second pass = %q, want %q", second.Standardized, first.Standardized)
	}
	if !reflect.DeepEqual(second.Components, first.Components) {
		t.Errorf("second pass components = %v, want %v", second.Components, first.Components)
	}
}

func TestStandardizeIntersection(t *testing.T) {
	got := StandardizeIntersection(
		Components{"street_name": "Hollywood", "street_post_type": "Blvd"},
		Components{"street_name": "Vine", "street_post_type": "St"},
	)
	if got.Standardized != "HOLLYWOOD BLVD & VINE ST" {
		t.Errorf("Standardized = %q, want %q", got.Standardized, "HOLLYWOOD BLVD & VINE ST")
	}

	got = StandardizeIntersection(
		Components{"address_number": "100", "street_name": "Hollywood", "street_post_type": "Boulevard", "city": "Los Angeles", "state": "CA"},
		Components{"street_name": "Vine", "street_post_type": "Street", "occupancy_identifier": "2"},
	)
	if got.Standardized != "HOLLYWOOD BLVD & VINE ST  LOS ANGELES, CA" {
		t.Errorf("Standardized = %q, want %q", got.Standardized, "HOLLYWOOD BLVD & VINE ST  LOS ANGELES, CA")
	}
	if got.Components["address_number"] != "" {
		t.Errorf("house number survived intersection standardization: %v", got.Components)
	}
}

func TestSplitUnit(t *testing.T) {
	tests := []struct {
		name         string
		unitType     string
		unitID       string
		expectedType string
		expectedID   string
	}{
		{name: "Both present", unitType: "STE", unitID: "3300", expectedType: "STE", expectedID: "3300"},
		{name: "Bare identifier", unitType: "", unitID: "3300", expectedType: "#", expectedID: "3300"},
		{name: "Pound prefix", unitType: "", unitID: "# 4B", expectedType: "#", expectedID: "4B"},
		{name: "Folded designator", unitType: "", unitID: "APT 4B", expectedType: "APT", expectedID: "4B"},
		{name: "Nothing", unitType: "", unitID: "", expectedType: "", expectedID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotID := splitUnit(tt.unitType, tt.unitID)
			if gotType != tt.expectedType || gotID != tt.expectedID {
				t.Errorf("splitUnit(%q, %q) = (%q, %q), want (%q, %q)",
					tt.unitType, tt.unitID, gotType, gotID, tt.expectedType, tt.expectedID)
			}
		})
	}
}
