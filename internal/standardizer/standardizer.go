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

// Package standardizer normalizes parsed US address components per USPS
// Publication 28: uppercase, abbreviated, ZIP-normalized, assembled into
// address lines and a canonical single-line form.
package standardizer

import (
	"strings"

	"github.com/TFMV/AddressValidator/internal/usps"
)

// Components maps canonical field names (address_number, street_name,
// occupancy_type, city, ...) to their values. Absent fields are omitted,
// never present with an empty string.
type Components map[string]string

// StandardizedAddress is the result of standardizing one address.
type StandardizedAddress struct {
	AddressLine1 string     `json:"address_line_1"`
	AddressLine2 string     `json:"address_line_2"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	ZipCode      string     `json:"zip_code"`
	Standardized string     `json:"standardized"`
	Components   Components `json:"components"`
}

// get returns the normalized value for key, or "" when absent.
func get(components Components, key string) string {
	return Normalize(components[key])
}

// lookupSuffix abbreviates a street type. Merged multi-word values
// ("AVENUE EXTENDED") fall back to word-by-word abbreviation when the whole
// value has no table entry.
func lookupSuffix(value string) string {
	if usps.Contains(usps.Suffixes, value) {
		return usps.Lookup(usps.Suffixes, value)
	}
	words := strings.Fields(value)
	if len(words) < 2 {
		return usps.Lookup(usps.Suffixes, value)
	}
	for i, w := range words {
		words[i] = usps.Lookup(usps.Suffixes, w)
	}
	return strings.Join(words, " ")
}

// splitUnit resolves the occupancy pair. A bare identifier gets the "#"
// designator per Pub 28; a "#" or designator word folded into the identifier
// itself ("# 4B", "NO 16") is split back out first.
func splitUnit(unitType, unitID string) (string, string) {
	if unitType != "" {
		return usps.Lookup(usps.Units, unitType), unitID
	}
	if unitID == "" {
		return "", ""
	}
	if strings.HasPrefix(unitID, "#") {
		unitID = strings.TrimSpace(strings.TrimPrefix(unitID, "#"))
	}
	if fields := strings.SplitN(unitID, " ", 2); len(fields) == 2 && usps.Contains(usps.Units, fields[0]) {
		return usps.Lookup(usps.Units, fields[0]), fields[1]
	}
	return "#", unitID
}

// Standardize normalizes every present field of components, applies the
// Publication 28 abbreviation tables, and assembles the address lines and
// single-line form. It never fails: malformed values pass through normalized,
// and an empty bag yields a mostly empty result.
func Standardize(components Components) StandardizedAddress {
	std := Components{}

	if v := get(components, "address_number"); v != "" {
		std["address_number"] = v
	}
	if v := get(components, "street_predirectional"); v != "" {
		std["street_predirectional"] = usps.Lookup(usps.Directionals, v)
	}
	if v := get(components, "street_name"); v != "" {
		std["street_name"] = v
	}
	if v := get(components, "street_post_type"); v != "" {
		std["street_post_type"] = lookupSuffix(v)
	}
	if v := get(components, "street_postdirectional"); v != "" {
		std["street_postdirectional"] = usps.Lookup(usps.Directionals, v)
	}

	unitType, unitID := splitUnit(get(components, "occupancy_type"), get(components, "occupancy_identifier"))
	if unitType != "" {
		std["occupancy_type"] = unitType
	}
	if unitID != "" {
		std["occupancy_identifier"] = unitID
	}

	if v := get(components, "city"); v != "" {
		std["city"] = v
	}
	if v := get(components, "state"); v != "" {
		std["state"] = usps.Lookup(usps.States, v)
	}

	zip := get(components, "zip_code")
	if plus4 := get(components, "zip_plus4"); plus4 != "" {
		if zip != "" {
			zip += "-" + plus4
		} else {
			zip = plus4
		}
	}
	if zip != "" {
		std["zip_code"] = NormalizeZip(zip)
	}

	if v := get(components, "usps_box_type"); v != "" {
		std["usps_box_type"] = v
	}
	if v := get(components, "usps_box_id"); v != "" {
		std["usps_box_id"] = v
	}

	line1 := joinPresent(std, "address_number", "street_predirectional", "street_name", "street_post_type", "street_postdirectional")
	if line1 == "" {
		line1 = joinPresent(std, "usps_box_type", "usps_box_id")
	}

	line2 := joinPresent(std, "occupancy_type", "occupancy_identifier")

	return assemble(line1, line2, std)
}

// StandardizeIntersection standardizes the two street fragments of an
// intersection independently and joins their first lines with " & ".
// House numbers and occupancy fields are never part of an intersection, so
// they are dropped before standardizing either side. City, state, and ZIP
// are taken from whichever side carries them.
func StandardizeIntersection(first, second Components) StandardizedAddress {
	a := Standardize(stripForIntersection(first))
	b := Standardize(stripForIntersection(second))

	std := Components{}
	for k, v := range a.Components {
		std[k] = v
	}
	for k, v := range b.Components {
		switch k {
		case "city", "state", "zip_code":
			if _, ok := std[k]; !ok {
				std[k] = v
			}
		default:
			std["second_"+k] = v
		}
	}

	line1 := a.AddressLine1
	if b.AddressLine1 != "" {
		if line1 != "" {
			line1 += " & " + b.AddressLine1
		} else {
			line1 = b.AddressLine1
		}
	}

	return assemble(line1, "", std)
}

func stripForIntersection(components Components) Components {
	stripped := Components{}
	for k, v := range components {
		switch k {
		case "address_number", "occupancy_type", "occupancy_identifier":
		default:
			stripped[k] = v
		}
	}
	return stripped
}

func joinPresent(std Components, keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := std[k]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// assemble builds the last line and the single-line form. The double-space
// separator between segments is the USPS single-line convention and must not
// be collapsed.
func assemble(line1, line2 string, std Components) StandardizedAddress {
	city := std["city"]
	state := std["state"]
	zip := std["zip_code"]

	var lastParts []string
	switch {
	case city != "" && state != "":
		lastParts = append(lastParts, city+", "+state)
	case city != "":
		lastParts = append(lastParts, city)
	case state != "":
		lastParts = append(lastParts, state)
	}
	if zip != "" {
		lastParts = append(lastParts, zip)
	}
	lastLine := strings.Join(lastParts, " ")

	var segments []string
	for _, seg := range []string{line1, line2, lastLine} {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	return StandardizedAddress{
		AddressLine1: line1,
		AddressLine2: line2,
		City:         city,
		State:        state,
		ZipCode:      zip,
		Standardized: strings.Join(segments, "  "),
		Components:   std,
	}
}
