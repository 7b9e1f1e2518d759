// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package parser

import (
	"strings"

	"github.com/TFMV/AddressValidator/internal/standardizer"
)

// canonicalFields maps every tagger label to its canonical component name.
// Several labels merge into one field (multi-part street names, subaddress
// folded into occupancy). Labels absent from this table (separators,
// recipients, anything a future tagger might invent) are dropped, keeping
// the mapping total and forward-compatible.
var canonicalFields = map[string]string{
	labelAddressNumber:       "address_number",
	labelAddressNumberSuffix: "address_number",
	"AddressNumberPrefix":    "address_number",
	labelPreDirectional:      "street_predirectional",
	"StreetNamePreModifier":  "street_name",
	"StreetNamePreType":      "street_name",
	labelStreetName:          "street_name",
	labelPostType:            "street_post_type",
	labelPostModifier:        "street_post_type",
	labelPostDirectional:     "street_postdirectional",
	labelOccupancyType:       "occupancy_type",
	labelOccupancyID:         "occupancy_identifier",
	labelSubaddressType:      "occupancy_type",
	labelSubaddressID:        "occupancy_identifier",
	labelPlaceName:           "city",
	labelStateName:           "state",
	labelZipCode:             "zip_code",
	labelZipPlus4:            "zip_plus4",
	labelBoxType:             "usps_box_type",
	labelBoxID:               "usps_box_id",
}

// MapTags folds an ordered (label, token) sequence into a component bag.
// Tokens whose labels map to the same field concatenate with a single space
// in emission order. Two house numbers around an intersection separator are
// a dual address and join with a hyphen per Pub 28 §232.
func MapTags(pairs []Pair) standardizer.Components {
	components := standardizer.Components{}
	prevLabel := ""
	separatorBefore := false

	for _, p := range pairs {
		if p.Label == labelSeparator {
			separatorBefore = prevLabel == labelAddressNumber
			prevLabel = p.Label
			continue
		}
		field, known := canonicalFields[strings.TrimPrefix(p.Label, secondPrefix)]
		if !known {
			separatorBefore = false
			prevLabel = p.Label
			continue
		}
		if strings.HasPrefix(p.Label, secondPrefix) {
			field = "second_" + field
		}

		if existing, ok := components[field]; ok {
			if field == "address_number" && separatorBefore {
				components[field] = existing + "-" + p.Token
			} else {
				components[field] = existing + " " + p.Token
			}
		} else {
			components[field] = p.Token
		}
		separatorBefore = false
		prevLabel = p.Label
	}
	return components
}

// SplitIntersection divides an intersection tag stream into the two per-street
// streams the engine standardizes independently. Shared trailing fields
// (city, state, ZIP) ride with the first street; Second* labels lose their
// prefix so both sides speak the same vocabulary.
func SplitIntersection(pairs []Pair) ([]Pair, []Pair) {
	var first, second []Pair
	for _, p := range pairs {
		switch {
		case p.Label == labelSeparator:
		case strings.HasPrefix(p.Label, secondPrefix):
			second = append(second, Pair{strings.TrimPrefix(p.Label, secondPrefix), p.Token})
		default:
			first = append(first, p)
		}
	}
	return first, second
}
