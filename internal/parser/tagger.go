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
	"fmt"
	"regexp"
	"strings"

	"github.com/TFMV/AddressValidator/internal/usps"
)

// Tagger labels, following the usaddress vocabulary so the mapping table in
// tagmap.go stays directly comparable with that label set.
const (
	labelAddressNumber       = "AddressNumber"
	labelAddressNumberSuffix = "AddressNumberSuffix"
	labelPreDirectional      = "StreetNamePreDirectional"
	labelStreetName          = "StreetName"
	labelPostType            = "StreetNamePostType"
	labelPostDirectional     = "StreetNamePostDirectional"
	labelPostModifier        = "StreetNamePostModifier"
	labelOccupancyType       = "OccupancyType"
	labelOccupancyID         = "OccupancyIdentifier"
	labelSubaddressType      = "SubaddressType"
	labelSubaddressID        = "SubaddressIdentifier"
	labelPlaceName           = "PlaceName"
	labelStateName           = "StateName"
	labelZipCode             = "ZipCode"
	labelZipPlus4            = "ZipCodePlus4"
	labelBoxType             = "USPSBoxType"
	labelBoxID               = "USPSBoxID"
	labelSeparator           = "IntersectionSeparator"
	secondPrefix             = "Second"
)

// Pair is one (label, token) emission from the tagger, in input order.
type Pair struct {
	Label string
	Token string
}

// ParseMode is the tagger's judgement of the overall input shape.
type ParseMode string

const (
	ModeStreetAddress ParseMode = "Street Address"
	ModeIntersection  ParseMode = "Intersection"
)

// RepeatedLabelError signals that the tagger assigned the same label in two
// separate runs (e.g. two house numbers around an ampersand) and cannot
// resolve the input into one coherent address. The pairs emitted so far are
// carried so callers can still build a best-effort result.
type RepeatedLabelError struct {
	Label string
	Pairs []Pair
}

func (e *RepeatedLabelError) Error() string {
	return fmt.Sprintf("label %s repeated in separate runs", e.Label)
}

var (
	parenRegex    = regexp.MustCompile(`\([^)]*\)`)
	numberRegex   = regexp.MustCompile(`^\d+[A-Za-z]?$`)
	fractionRegex = regexp.MustCompile(`^\d+/\d+$`)
	zipRegex      = regexp.MustCompile(`^(\d{5}|\d{9}|\d{5}-\d{4})$`)
	plus4Regex    = regexp.MustCompile(`^\d{4}$`)
)

// clean uppercases a token and strips periods and stray punctuation for
// vocabulary comparison. The emitted Pair keeps the original token text.
func clean(token string) string {
	c := strings.ToUpper(token)
	c = strings.NewReplacer(".", "", "(", "", ")", "").Replace(c)
	return strings.Trim(c, ",;")
}

func isConnector(token string) bool {
	switch clean(token) {
	case "AND", "&", "AT":
		return true
	}
	return false
}

func isDirectional(token string) bool { return usps.Contains(usps.Directionals, token) }
func isSuffix(token string) bool      { return usps.Contains(usps.Suffixes, token) }
func isUnit(token string) bool        { return usps.Contains(usps.Units, token) }

// tokenize pre-cleans a raw address string and splits it into comma
// segments of whitespace-separated tokens. Parenthesized runs are wayfinding
// notes, not address data (Pub 28 §354), and are removed before splitting.
// A standalone ampersand stays its own token; one embedded in a word does not.
func tokenize(raw string) [][]string {
	cleaned := parenRegex.ReplaceAllString(raw, " ")
	cleaned = strings.NewReplacer("(", "", ")", "").Replace(cleaned)

	var segments [][]string
	for _, part := range strings.FieldsFunc(cleaned, func(r rune) bool { return r == ',' || r == ';' || r == '\n' }) {
		tokens := strings.Fields(part)
		if len(tokens) > 0 {
			segments = append(segments, tokens)
		}
	}
	return segments
}

// Tag breaks a raw address string into labelled (label, token) pairs plus a
// parse mode. It is the deterministic stand-in for a statistical tagger:
// positional rules driven by the Publication 28 vocabulary tables. A
// *RepeatedLabelError is returned when the input cannot be resolved into one
// coherent address; the engine treats that as data, not a failure.
func Tag(raw string) ([]Pair, ParseMode, error) {
	segments := tokenize(raw)
	if len(segments) == 0 {
		return nil, ModeStreetAddress, nil
	}

	zipPairs, segments := extractZip(segments)
	statePair, segments := extractState(segments, len(zipPairs) > 0)

	var pairs []Pair
	mode := ModeStreetAddress

	if len(segments) > 0 {
		street := segments[0]
		rest := segments[1:]

		switch {
		case isBoxStart(street):
			pairs = append(pairs, tagPOBox(street)...)
		case connectorIndex(street) >= 0 && !numberRegex.MatchString(clean(street[0])):
			mode = ModeIntersection
			ci := connectorIndex(street)
			pairs = append(pairs, tagStreet(street[:ci], "")...)
			pairs = append(pairs, Pair{labelSeparator, street[ci]})
			pairs = append(pairs, tagStreet(street[ci+1:], secondPrefix)...)
		default:
			pairs = append(pairs, tagStreetSegment(street)...)
		}

		unitsSeen := 0
		for _, seg := range rest {
			if p, ok := tagUnitSegment(seg, unitsSeen); ok {
				pairs = append(pairs, p...)
				unitsSeen++
				continue
			}
			for _, tok := range seg {
				pairs = append(pairs, Pair{labelPlaceName, tok})
			}
		}
	}

	if statePair != nil {
		pairs = append(pairs, *statePair)
	}
	pairs = append(pairs, zipPairs...)

	if label, repeated := repeatedLabel(pairs); repeated {
		return nil, mode, &RepeatedLabelError{Label: label, Pairs: pairs}
	}
	return pairs, mode, nil
}

// extractZip pulls a trailing ZIP (and a split +4 group) off the final
// segment. Emptied trailing segments are dropped.
func extractZip(segments [][]string) ([]Pair, [][]string) {
	last := segments[len(segments)-1]
	end := len(last)

	var pairs []Pair
	if end > 0 && zipRegex.MatchString(clean(last[end-1])) {
		pairs = []Pair{{labelZipCode, last[end-1]}}
		end--
	} else if end > 1 && plus4Regex.MatchString(clean(last[end-1])) && zipRegex.MatchString(clean(last[end-2])) {
		pairs = []Pair{{labelZipCode, last[end-2]}, {labelZipPlus4, last[end-1]}}
		end -= 2
	}
	if pairs == nil {
		return nil, segments
	}
	return pairs, trimSegment(segments, end)
}

// extractState pulls a trailing state name or two-letter code off the final
// segment. Full state names are only accepted when the position is
// unambiguous: a ZIP follows, or the name sits alone in a trailing segment
// of a three-plus segment address ("..., Springfield, Illinois"). A
// two-letter code that doubles as a directional (NE, NW, ...) is left for
// the street tagger when a street suffix precedes it in the same segment.
func extractState(segments [][]string, zipFound bool) (*Pair, [][]string) {
	if len(segments) == 0 {
		return nil, segments
	}
	last := segments[len(segments)-1]
	end := len(last)
	if end == 0 {
		return nil, segments
	}

	accept := func(tokens []string, wordLen int) bool {
		joined := clean(strings.Join(tokens, " "))
		if !usps.Contains(usps.States, joined) {
			return false
		}
		if len(joined) == 2 && wordLen == 1 {
			// Two-letter code. Prefer the directional reading after a
			// street suffix in a comma-less address ("123 Main St NE").
			if usps.Contains(usps.Directionals, joined) && len(segments) == 1 && hasSuffixBefore(last, end-1) {
				return false
			}
			return true
		}
		// Full name: require a ZIP after it, or a dedicated trailing
		// segment with a city segment still in front of it.
		if zipFound {
			return true
		}
		return wordLen == end && len(segments) >= 3
	}

	if end >= 2 && accept(last[end-2:end], 2) {
		p := Pair{labelStateName, strings.Join(last[end-2:end], " ")}
		return &p, trimSegment(segments, end-2)
	}
	if accept(last[end-1:end], 1) {
		p := Pair{labelStateName, last[end-1]}
		return &p, trimSegment(segments, end-1)
	}
	return nil, segments
}

// hasSuffixBefore reports whether any token before index i is a street suffix.
func hasSuffixBefore(tokens []string, i int) bool {
	for _, t := range tokens[:i] {
		if isSuffix(t) {
			return true
		}
	}
	return false
}

// trimSegment shortens the final segment to end tokens, dropping it entirely
// when emptied.
func trimSegment(segments [][]string, end int) [][]string {
	last := segments[len(segments)-1][:end]
	if len(last) == 0 {
		return segments[:len(segments)-1]
	}
	out := make([][]string, len(segments))
	copy(out, segments)
	out[len(out)-1] = last
	return out
}

func isBoxStart(tokens []string) bool {
	if len(tokens) >= 2 && clean(tokens[0]) == "PO" && clean(tokens[1]) == "BOX" {
		return true
	}
	if len(tokens) >= 3 && clean(tokens[0]) == "P" && clean(tokens[1]) == "O" && clean(tokens[2]) == "BOX" {
		return true
	}
	return len(tokens) >= 3 && clean(tokens[0]) == "POST" && clean(tokens[1]) == "OFFICE" && clean(tokens[2]) == "BOX"
}

func tagPOBox(tokens []string) []Pair {
	var pairs []Pair
	i := 0
	for ; i < len(tokens) && clean(tokens[i]) != "BOX"; i++ {
		pairs = append(pairs, Pair{labelBoxType, tokens[i]})
	}
	if i < len(tokens) {
		pairs = append(pairs, Pair{labelBoxType, tokens[i]})
		i++
	}
	if i < len(tokens) {
		pairs = append(pairs, Pair{labelBoxID, tokens[i]})
		i++
	}
	for ; i < len(tokens); i++ {
		pairs = append(pairs, Pair{labelPlaceName, tokens[i]})
	}
	return pairs
}

func connectorIndex(tokens []string) int {
	for i := 1; i < len(tokens)-1; i++ {
		if isConnector(tokens[i]) {
			return i
		}
	}
	return -1
}

// tagStreet labels one street fragment: optional predirectional, street name
// words, a post type located as the last suffix word, then a directional or
// modifier tail. prefix is "Second" for the far side of an intersection.
func tagStreet(tokens []string, prefix string) []Pair {
	if len(tokens) == 0 {
		return nil
	}
	var pairs []Pair
	i := 0
	if len(tokens) >= 3 && isDirectional(tokens[0]) {
		pairs = append(pairs, Pair{prefix + labelPreDirectional, tokens[0]})
		i = 1
	}

	suffix := -1
	for j := i + 1; j < len(tokens); j++ {
		if isSuffix(tokens[j]) {
			suffix = j
		}
	}
	if suffix < 0 {
		for _, tok := range tokens[i:] {
			pairs = append(pairs, Pair{prefix + labelStreetName, tok})
		}
		return pairs
	}

	for _, tok := range tokens[i:suffix] {
		pairs = append(pairs, Pair{prefix + labelStreetName, tok})
	}
	pairs = append(pairs, Pair{prefix + labelPostType, tokens[suffix]})
	for _, tok := range tokens[suffix+1:] {
		if isDirectional(tok) {
			pairs = append(pairs, Pair{prefix + labelPostDirectional, tok})
		} else {
			pairs = append(pairs, Pair{prefix + labelPostModifier, tok})
		}
	}
	return pairs
}

// tagStreetSegment handles the leading segment of a street address: house
// number (including dual numbers and fractions), then the street fragment,
// then, in comma-less addresses, an inline unit and trailing city words.
func tagStreetSegment(tokens []string) []Pair {
	var pairs []Pair
	i := 0

	if i < len(tokens) && numberRegex.MatchString(clean(tokens[i])) {
		pairs = append(pairs, Pair{labelAddressNumber, tokens[i]})
		i++
		// Dual address: "1804 & 1810 Main St". Both are house numbers; the
		// repeated-label check downstream surfaces this as ambiguous.
		for i+1 < len(tokens) && isConnector(tokens[i]) && numberRegex.MatchString(clean(tokens[i+1])) {
			pairs = append(pairs, Pair{labelSeparator, tokens[i]})
			pairs = append(pairs, Pair{labelAddressNumber, tokens[i+1]})
			i += 2
		}
		if i < len(tokens) && fractionRegex.MatchString(clean(tokens[i])) {
			pairs = append(pairs, Pair{labelAddressNumberSuffix, tokens[i]})
			i++
		}
	}

	tokens = tokens[i:]
	if len(tokens) == 0 {
		return pairs
	}

	// Locate the street core: up to the last suffix word before any inline
	// unit designator.
	unitStart := inlineUnitIndex(tokens)
	streetEnd := len(tokens)
	if unitStart >= 0 {
		streetEnd = unitStart
	}

	suffix := -1
	for j := 1; j < streetEnd; j++ {
		if isSuffix(tokens[j]) {
			suffix = j
		}
	}

	if suffix < 0 {
		pairs = append(pairs, tagStreet(tokens[:streetEnd], "")...)
		pairs = append(pairs, tagInlineTail(tokens, streetEnd, unitStart >= 0)...)
		return pairs
	}

	// With a suffix located, anything after it (and after an optional
	// directional) that is not a unit is trailing city data.
	core := suffix + 1
	if core < streetEnd && isDirectional(tokens[core]) {
		core++
	}
	pairs = append(pairs, tagStreet(tokens[:core], "")...)
	pairs = append(pairs, tagInlineTail(tokens, core, unitStart >= 0)...)
	return pairs
}

// inlineUnitIndex finds a unit designator ("Suite", "#", "Apt 3B") embedded
// in a comma-less segment. Index 0 is never a unit start: a leading
// designator word there is street data ("Key West Ave" has no unit).
func inlineUnitIndex(tokens []string) int {
	for i := 1; i < len(tokens); i++ {
		if strings.HasPrefix(tokens[i], "#") || isUnit(tokens[i]) {
			return i
		}
	}
	return -1
}

// tagInlineTail labels the tokens after the street core of a comma-less
// segment: an optional unit pair followed by city words.
func tagInlineTail(tokens []string, from int, hasUnit bool) []Pair {
	var pairs []Pair
	i := from
	if hasUnit && i < len(tokens) {
		tok := tokens[i]
		switch {
		case strings.HasPrefix(tok, "#") && len(tok) > 1:
			pairs = append(pairs, Pair{labelOccupancyType, "#"})
			pairs = append(pairs, Pair{labelOccupancyID, strings.TrimPrefix(tok, "#")})
			i++
		case usps.NoIdentifierUnits[clean(tok)]:
			pairs = append(pairs, Pair{labelOccupancyType, tok})
			i++
		default:
			pairs = append(pairs, Pair{labelOccupancyType, tok})
			i++
			if i < len(tokens) {
				pairs = append(pairs, Pair{labelOccupancyID, tokens[i]})
				i++
			}
		}
	}
	for ; i < len(tokens); i++ {
		pairs = append(pairs, Pair{labelPlaceName, tokens[i]})
	}
	return pairs
}

// tagUnitSegment labels a whole comma segment as a secondary unit when it
// opens with a designator or "#". The first such segment takes the occupancy
// labels, the next the subaddress labels, matching the usaddress label set.
func tagUnitSegment(tokens []string, unitsSeen int) ([]Pair, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	first := tokens[0]
	if !strings.HasPrefix(first, "#") && !isUnit(first) {
		return nil, false
	}
	typeLabel, idLabel := labelOccupancyType, labelOccupancyID
	if unitsSeen == 1 {
		typeLabel, idLabel = labelSubaddressType, labelSubaddressID
	}

	var pairs []Pair
	rest := tokens[1:]
	switch {
	case strings.HasPrefix(first, "#") && len(first) > 1:
		pairs = append(pairs, Pair{typeLabel, "#"})
		pairs = append(pairs, Pair{idLabel, strings.TrimPrefix(first, "#")})
	case usps.NoIdentifierUnits[clean(first)]:
		// No-identifier designator (REAR, BSMT, ...): the rest of the
		// segment is city data, not an identifier.
		pairs = append(pairs, Pair{typeLabel, first})
		for _, tok := range rest {
			pairs = append(pairs, Pair{labelPlaceName, tok})
		}
		return pairs, true
	default:
		pairs = append(pairs, Pair{typeLabel, first})
	}
	for _, tok := range rest {
		pairs = append(pairs, Pair{idLabel, tok})
	}
	return pairs, true
}

// repeatedLabel finds the first label emitted in two non-contiguous runs.
// Contiguous repeats (multi-word street names, multi-token identifiers) are
// normal; a second run of the same label means the input holds two of
// something an address has one of.
func repeatedLabel(pairs []Pair) (string, bool) {
	lastIndex := map[string]int{}
	for i, p := range pairs {
		if p.Label == labelSeparator {
			continue
		}
		if prev, seen := lastIndex[p.Label]; seen && prev != i-1 {
			// A separator between two runs of the same label still counts
			// as a repeat (dual house numbers).
			if !allSeparators(pairs[prev+1 : i]) {
				return p.Label, true
			}
			if p.Label == labelAddressNumber {
				return p.Label, true
			}
		}
		lastIndex[p.Label] = i
	}
	return "", false
}

func allSeparators(pairs []Pair) bool {
	for _, p := range pairs {
		if p.Label != labelSeparator {
			return false
		}
	}
	return true
}
