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
	"github.com/TFMV/AddressValidator/internal/usps"
)

// addressVocabulary holds every word the four Pub 28 tables know. A lone
// word in front of a comma in a city value that is not in this set is
// wayfinding text ("YARD", "GATE"), not address data.
var addressVocabulary = buildVocabulary()

func buildVocabulary() map[string]bool {
	vocab := map[string]bool{}
	for _, table := range []map[string]string{usps.Suffixes, usps.Directionals, usps.States, usps.Units} {
		for k := range table {
			vocab[k] = true
		}
	}
	return vocab
}

// RecoverFromCity applies the city-recovery heuristics to a caller-supplied
// component bag. ParseAndClassify runs them on its own output; callers
// accepting pre-built bags apply them here before standardizing, since
// comma-carrying city values only arrive through direct component input.
func RecoverFromCity(components standardizer.Components) {
	recoverUnitFromCity(components)
	recoverIdentifierFragment(components)
}

// recoverUnitFromCity moves unit designators stranded at the front of a city
// value back into the occupancy fields. Direct component input can carry a
// city like "STE 100, SEATTLE" or "BSMT SEATTLE"; the designator is not city
// data wherever it ends up. Comma-separated leading segments are peeled
// first, then a bare no-identifier designator word. Designators with nowhere
// to go are still stripped from the city.
func recoverUnitFromCity(components standardizer.Components) {
	slotFree := func() bool {
		return components["occupancy_type"] == "" && components["occupancy_identifier"] == ""
	}

	for {
		city := components["city"]
		if city == "" || !strings.Contains(city, ",") {
			break
		}
		before, after, _ := strings.Cut(city, ",")
		before = strings.TrimSpace(before)
		after = strings.TrimSpace(after)
		if before == "" || after == "" {
			break
		}

		word, identifier, _ := strings.Cut(before, " ")
		if usps.Contains(usps.Units, word) {
			if slotFree() {
				components["occupancy_type"] = word
				if identifier = strings.TrimSpace(identifier); identifier != "" {
					components["occupancy_identifier"] = identifier
				}
			}
			components["city"] = after
			continue
		}
		if identifier == "" && !addressVocabulary[clean(word)] {
			// Lone non-vocabulary word: wayfinding text, drop it. A
			// multi-word segment could be a real city prefix, leave those.
			components["city"] = after
			continue
		}
		break
	}

	city := components["city"]
	first, rest, found := strings.Cut(city, " ")
	if !found || strings.TrimSpace(rest) == "" {
		return
	}
	word := clean(first)
	switch {
	case usps.NoIdentifierUnits[word]:
		if slotFree() {
			components["occupancy_type"] = first
		}
		components["city"] = strings.TrimSpace(rest)
	case usps.Contains(usps.Units, word) && !slotFree():
		// Orphaned designator with the slot already taken: strip it, a
		// bare "KEY" or "UNIT" cannot start a city name here.
		components["city"] = strings.TrimSpace(rest)
	}
}

// recoverIdentifierFragment reattaches a stray single-letter token from the
// front of the city to an existing occupancy identifier. A compound
// identifier like "120 K" sometimes splits so that the letter lands on the
// city ("K WALLA WALLA").
func recoverIdentifierFragment(components standardizer.Components) {
	city := components["city"]
	if len(city) < 3 || city[1] != ' ' {
		return
	}
	fragment := city[0]
	if !('A' <= fragment && fragment <= 'Z' || 'a' <= fragment && fragment <= 'z') {
		return
	}
	rest := strings.TrimSpace(city[2:])
	if rest == "" {
		return
	}
	if id := components["occupancy_identifier"]; id != "" {
		components["occupancy_identifier"] = id + " " + string(fragment)
		components["city"] = rest
	}
}
