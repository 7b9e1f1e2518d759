package parser

import (
	"reflect"
	"testing"

	"github.com/TFMV/AddressValidator/internal/standardizer"
)

func TestParseAndClassifyStreetAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected standardizer.Components
	}{
		{
			name:  "Comma separated with postdirectional",
			input: "1600 Pennsylvania Avenue NW, Washington, DC 20500",
			expected: standardizer.Components{
				"address_number":         "1600",
				"street_name":            "Pennsylvania",
				"street_post_type":       "Avenue",
				"street_postdirectional": "NW",
				"city":                   "Washington",
				"state":                  "DC",
				"zip_code":               "20500",
			},
		},
		{
			name:  "No commas with inline unit",
			input: "350 Fifth Ave Suite 3300 New York NY 10118",
			expected: standardizer.Components{
				"address_number":       "350",
				"street_name":          "Fifth",
				"street_post_type":     "Ave",
				"occupancy_type":       "Suite",
				"occupancy_identifier": "3300",
				"city":                 "New York",
				"state":                "NY",
				"zip_code":             "10118",
			},
		},
		{
			name:  "Unit segment and full state name",
			input: "123 Main St, Apt 4, Springfield, Illinois",
			expected: standardizer.Components{
				"address_number":       "123",
				"street_name":          "Main",
				"street_post_type":     "St",
				"occupancy_type":       "Apt",
				"occupancy_identifier": "4",
				"city":                 "Springfield",
				"state":                "Illinois",
			},
		},
		{
			name:  "Trailing directional stays on street",
			input: "123 Main St NE",
			expected: standardizer.Components{
				"address_number":         "123",
				"street_name":            "Main",
				"street_post_type":       "St",
				"street_postdirectional": "NE",
			},
		},
		{
			name:  "Trailing state name reads as city without zip",
			input: "2120 L Street NW, Washington",
			expected: standardizer.Components{
				"address_number":         "2120",
				"street_name":            "L",
				"street_post_type":       "Street",
				"street_postdirectional": "NW",
				"city":                   "Washington",
			},
		},
		{
			name:  "PO Box",
			input: "PO Box 12345, Portland, OR 97201",
			expected: standardizer.Components{
				"usps_box_type": "PO Box",
				"usps_box_id":   "12345",
				"city":          "Portland",
				"state":         "OR",
				"zip_code":      "97201",
			},
		},
		{
			name:  "No-identifier designator segment keeps the city",
			input: "123 Main St, Rear Springfield, IL 62701",
			expected: standardizer.Components{
				"address_number":   "123",
				"street_name":      "Main",
				"street_post_type": "St",
				"occupancy_type":   "Rear",
				"city":             "Springfield",
				"state":            "IL",
				"zip_code":         "62701",
			},
		},
		{
			name:  "Pound unit segment",
			input: "456 Oak Ave, #2B, Denver, CO 80203",
			expected: standardizer.Components{
				"address_number":       "456",
				"street_name":          "Oak",
				"street_post_type":     "Ave",
				"occupancy_type":       "#",
				"occupancy_identifier": "2B",
				"city":                 "Denver",
				"state":                "CO",
				"zip_code":             "80203",
			},
		},
		{
			name:  "Parenthesized note dropped",
			input: "123 Main St (rear entrance), Springfield, IL 62701",
			expected: standardizer.Components{
				"address_number":   "123",
				"street_name":      "Main",
				"street_post_type": "St",
				"city":             "Springfield",
				"state":            "IL",
				"zip_code":         "62701",
			},
		},
		{
			name:  "Split plus four",
			input: "123 Main St, Springfield, IL 62701 1234",
			expected: standardizer.Components{
				"address_number":   "123",
				"street_name":      "Main",
				"street_post_type": "St",
				"city":             "Springfield",
				"state":            "IL",
				"zip_code":         "62701",
				"zip_plus4":        "1234",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseAndClassify(tt.input)
			if result.Classification.Type != StreetAddress {
				t.Fatalf("type = %v, want Street Address (diagnostic %q)", result.Classification.Type, result.Classification.Diagnostic)
			}
			if !reflect.DeepEqual(result.Components, tt.expected) {
				t.Errorf("components = %v, want %v", result.Components, tt.expected)
			}
		})
	}
}

func TestParseAndClassifyIntersection(t *testing.T) {
	result := ParseAndClassify("Hollywood Blvd and Vine St")

	if result.Classification.Type != Intersection {
		t.Fatalf("type = %v, want Intersection", result.Classification.Type)
	}
	wantFirst := standardizer.Components{"street_name": "Hollywood", "street_post_type": "Blvd"}
	wantSecond := standardizer.Components{"street_name": "Vine", "street_post_type": "St"}
	if !reflect.DeepEqual(result.Components, wantFirst) {
		t.Errorf("first = %v, want %v", result.Components, wantFirst)
	}
	if !reflect.DeepEqual(result.Second, wantSecond) {
		t.Errorf("second = %v, want %v", result.Second, wantSecond)
	}

	if got := result.Standardize().Standardized; got != "HOLLYWOOD BLVD & VINE ST" {
		t.Errorf("standardized = %q, want %q", got, "HOLLYWOOD BLVD & VINE ST")
	}
}

func TestParseAndClassifyAmbiguous(t *testing.T) {
	result := ParseAndClassify("1804 & 1810 Columbia Rd NW, Washington, DC 20009")

	if result.Classification.Type != Ambiguous {
		t.Fatalf("type = %v, want Ambiguous", result.Classification.Type)
	}
	want := "Repeated label AddressNumber detected; parse may be inaccurate."
	if result.Classification.Diagnostic != want {
		t.Errorf("diagnostic = %q, want %q", result.Classification.Diagnostic, want)
	}
	if result.Components["address_number"] != "1804-1810" {
		t.Errorf("address_number = %q, want %q", result.Components["address_number"], "1804-1810")
	}

	if got := result.Standardize().Standardized; got != "1804-1810 COLUMBIA RD NW  WASHINGTON, DC 20009" {
		t.Errorf("standardized = %q, want %q", got, "1804-1810 COLUMBIA RD NW  WASHINGTON, DC 20009")
	}
}

func TestParseAndClassifyEmpty(t *testing.T) {
	result := ParseAndClassify("")
	if result.Classification.Type != StreetAddress {
		t.Errorf("type = %v, want Street Address", result.Classification.Type)
	}
	if len(result.Components) != 0 {
		t.Errorf("components = %v, want empty", result.Components)
	}
}

func TestClassifyIntersectionWithHouseNumber(t *testing.T) {
	pairs := []Pair{
		{labelAddressNumber, "100"},
		{labelStreetName, "Main"},
		{labelPostType, "St"},
		{labelSeparator, "and"},
		{secondPrefix + labelStreetName, "Vine"},
		{secondPrefix + labelPostType, "St"},
	}
	got := Classify(pairs, ModeIntersection, nil)
	if got.Type != Ambiguous {
		t.Fatalf("type = %v, want Ambiguous", got.Type)
	}
	if got.Diagnostic == "" {
		t.Error("expected a diagnostic for the house number / intersection conflict")
	}
}

func TestAddressTypeString(t *testing.T) {
	if StreetAddress.String() != "Street Address" || Intersection.String() != "Intersection" || Ambiguous.String() != "Ambiguous" {
		t.Errorf("unexpected AddressType strings: %v %v %v", StreetAddress, Intersection, Ambiguous)
	}
}
