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
	"errors"
	"fmt"
)

// AddressType is the overall shape of a parsed input.
type AddressType int

const (
	StreetAddress AddressType = iota
	Intersection
	Ambiguous
)

func (t AddressType) String() string {
	switch t {
	case StreetAddress:
		return "Street Address"
	case Intersection:
		return "Intersection"
	case Ambiguous:
		return "Ambiguous"
	}
	return "Unknown"
}

// Classification carries the address type plus, for Ambiguous only, a
// human-readable diagnostic. Ambiguity is advisory data: the parse still
// yields a best-effort component bag.
type Classification struct {
	Type       AddressType
	Diagnostic string
}

// Classify turns the tagger's output into a Classification. A repeated-label
// failure is Ambiguous with a diagnostic naming the offending label. An
// intersection parse that also carries a house number mixes two
// interpretations, and the ambiguity is surfaced rather than a winner
// silently picked.
func Classify(pairs []Pair, mode ParseMode, err error) Classification {
	var repeated *RepeatedLabelError
	if errors.As(err, &repeated) {
		return Classification{
			Type:       Ambiguous,
			Diagnostic: fmt.Sprintf("Repeated label %s detected; parse may be inaccurate.", repeated.Label),
		}
	}
	if mode == ModeIntersection {
		for _, p := range pairs {
			if p.Label == labelAddressNumber {
				return Classification{
					Type:       Ambiguous,
					Diagnostic: "Input carries both a house number and an intersection; parse may be inaccurate.",
				}
			}
		}
		return Classification{Type: Intersection}
	}
	return Classification{Type: StreetAddress}
}
