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

// Package similarity scores how alike two standardized address strings are,
// for duplicate detection across already-normalized data.
package similarity

import (
	"math"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"gonum.org/v1/gonum/floats"
)

const ngramSize = 3

// Score returns the cosine similarity of the two strings' character trigram
// frequency vectors, in [0, 1]. Case and punctuation are ignored, so the
// score measures surface closeness of the address text itself.
func Score(a, b string) float64 {
	freqA := ngramFrequencies(ngrams(a, ngramSize))
	freqB := ngramFrequencies(ngrams(b, ngramSize))
	if len(freqA) == 0 || len(freqB) == 0 {
		return 0.0
	}

	vocab := make([]string, 0, len(freqA)+len(freqB))
	seen := make(map[string]bool, len(freqA)+len(freqB))
	for g := range freqA {
		vocab = append(vocab, g)
		seen[g] = true
	}
	for g := range freqB {
		if !seen[g] {
			vocab = append(vocab, g)
		}
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, g := range vocab {
		vecA[i] = float64(freqA[g])
		vecB[i] = float64(freqB[g])
	}

	magA := math.Sqrt(floats.Dot(vecA, vecA))
	magB := math.Sqrt(floats.Dot(vecB, vecB))
	if magA == 0 || magB == 0 {
		return 0.0
	}
	return floats.Dot(vecA, vecB) / (magA * magB)
}

// TokenOverlap returns the Jaccard overlap of the two strings' token sets.
// Tokenization goes through prose so that punctuation-attached tokens split
// the same way they do elsewhere in the matching pipeline.
func TokenOverlap(a, b string) (float64, error) {
	setA, err := tokenSet(a)
	if err != nil {
		return 0, err
	}
	setB, err := tokenSet(b)
	if err != nil {
		return 0, err
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0, nil
	}

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union), nil
}

func tokenSet(text string) (map[string]bool, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}
	set := map[string]bool{}
	for _, tok := range doc.Tokens() {
		set[strings.ToLower(tok.Text)] = true
	}
	return set, nil
}

func ngrams(s string, n int) []string {
	normalized := normalizeString(s)
	if len(normalized) < n {
		return nil
	}
	grams := make([]string, 0, len(normalized)-n+1)
	for i := 0; i <= len(normalized)-n; i++ {
		grams = append(grams, normalized[i:i+n])
	}
	return grams
}

// normalizeString keeps letters and digits only, lowercased.
func normalizeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func ngramFrequencies(grams []string) map[string]int {
	freq := make(map[string]int, len(grams))
	for _, g := range grams {
		freq[g]++
	}
	return freq
}
