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

// Package parser breaks a free-form US address string into labelled
// components. A deterministic rule-based tagger produces (label, token)
// pairs, a fixed mapping folds them into the canonical component bag, and a
// classifier decides whether the input is a street address, a street
// intersection, or unresolvably ambiguous.
package parser

import "github.com/TFMV/AddressValidator/internal/standardizer"

// Result is the outcome of parsing one input string. For intersections,
// Second holds the far street's components and Components the near street's
// plus any shared city/state/ZIP; otherwise Second is nil.
type Result struct {
	Input          string
	Components     standardizer.Components
	Second         standardizer.Components
	Classification Classification
}

// ParseAndClassify parses raw into labelled components and classifies the
// input shape. It always returns a value: empty input yields an empty bag,
// and a repeated-label condition yields a best-effort bag with an Ambiguous
// classification rather than an error.
func ParseAndClassify(raw string) Result {
	pairs, mode, err := Tag(raw)
	classification := Classify(pairs, mode, err)

	switch classification.Type {
	case Ambiguous:
		tagged := pairs
		if repeated, ok := err.(*RepeatedLabelError); ok {
			tagged = repeated.Pairs
		}
		components := MapTags(tagged)
		recoverUnitFromCity(components)
		return Result{Input: raw, Components: components, Classification: classification}

	case Intersection:
		firstPairs, secondPairs := SplitIntersection(pairs)
		return Result{
			Input:          raw,
			Components:     MapTags(firstPairs),
			Second:         MapTags(secondPairs),
			Classification: classification,
		}

	default:
		components := MapTags(pairs)
		recoverUnitFromCity(components)
		recoverIdentifierFragment(components)
		return Result{Input: raw, Components: components, Classification: classification}
	}
}

// Standardize runs the engine over a parse result, routing intersections
// through the two-bag path.
func (r Result) Standardize() standardizer.StandardizedAddress {
	if r.Classification.Type == Intersection && r.Second != nil {
		return standardizer.StandardizeIntersection(r.Components, r.Second)
	}
	return standardizer.Standardize(r.Components)
}
