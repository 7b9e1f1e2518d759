package parser

import (
	"reflect"
	"testing"

	"github.com/TFMV/AddressValidator/internal/standardizer"
)

func TestRecoverUnitFromCity(t *testing.T) {
	tests := []struct {
		name     string
		in       standardizer.Components
		expected standardizer.Components
	}{
		{
			name:     "Designator segment peeled into occupancy",
			in:       standardizer.Components{"city": "STE 100, SEATTLE"},
			expected: standardizer.Components{"occupancy_type": "STE", "occupancy_identifier": "100", "city": "SEATTLE"},
		},
		{
			name:     "Bare basement designator",
			in:       standardizer.Components{"city": "BSMT SEATTLE"},
			expected: standardizer.Components{"occupancy_type": "BSMT", "city": "SEATTLE"},
		},
		{
			name:     "Occupied slot still strips the designator",
			in:       standardizer.Components{"occupancy_type": "APT", "occupancy_identifier": "4", "city": "STE 100, SEATTLE"},
			expected: standardizer.Components{"occupancy_type": "APT", "occupancy_identifier": "4", "city": "SEATTLE"},
		},
		{
			name:     "Lone wayfinding word dropped",
			in:       standardizer.Components{"city": "YARD, SEATTLE"},
			expected: standardizer.Components{"city": "SEATTLE"},
		},
		{
			name:     "Plain city untouched",
			in:       standardizer.Components{"city": "New York"},
			expected: standardizer.Components{"city": "New York"},
		},
		{
			name:     "Multi word prefix segment kept",
			in:       standardizer.Components{"city": "West Lake, SEATTLE"},
			expected: standardizer.Components{"city": "West Lake, SEATTLE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recoverUnitFromCity(tt.in)
			if !reflect.DeepEqual(tt.in, tt.expected) {
				t.Errorf("got %v, want %v", tt.in, tt.expected)
			}
		})
	}
}

func TestRecoverFromCity(t *testing.T) {
	components := standardizer.Components{
		"address_number":   "123",
		"street_name":      "Main",
		"street_post_type": "St",
		"city":             "STE 100, Seattle",
		"state":            "WA",
	}
	RecoverFromCity(components)

	expected := standardizer.Components{
		"address_number":       "123",
		"street_name":          "Main",
		"street_post_type":     "St",
		"occupancy_type":       "STE",
		"occupancy_identifier": "100",
		"city":                 "Seattle",
		"state":                "WA",
	}
	if !reflect.DeepEqual(components, expected) {
		t.Errorf("got %v, want %v", components, expected)
	}
}

func TestRecoverIdentifierFragment(t *testing.T) {
	components := standardizer.Components{"occupancy_identifier": "120", "city": "K WALLA WALLA"}
	recoverIdentifierFragment(components)
	if components["occupancy_identifier"] != "120 K" || components["city"] != "WALLA WALLA" {
		t.Errorf("got %v", components)
	}

	// Without an identifier to extend, the city is left alone.
	components = standardizer.Components{"city": "K WALLA WALLA"}
	recoverIdentifierFragment(components)
	if components["city"] != "K WALLA WALLA" {
		t.Errorf("got %v", components)
	}
}
