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

package api

import "github.com/TFMV/AddressValidator/internal/standardizer"

// MaxAddressLength caps the raw address accepted at the transport edge. The
// engine itself imposes no limit.
const MaxAddressLength = 1000

// ParseRequest carries a raw address string to break into components.
type ParseRequest struct {
	Address string `json:"address" binding:"required"`
}

// ParseResponse reports the labelled components and the input's shape. For
// intersections the far street's fields appear under second_* keys. Warning
// is set only for ambiguous parses.
type ParseResponse struct {
	Input      string                  `json:"input"`
	Components standardizer.Components `json:"components"`
	Type       string                  `json:"type"`
	Warning    string                  `json:"warning,omitempty"`
}

// StandardizeRequest accepts either a raw address string or pre-parsed
// components. When both are given, components win and the string is ignored.
type StandardizeRequest struct {
	Address    string                  `json:"address"`
	Components standardizer.Components `json:"components"`
}

// CompareAddress is one side of a compare request, with the same
// address-or-components choice as StandardizeRequest.
type CompareAddress struct {
	Address    string                  `json:"address"`
	Components standardizer.Components `json:"components"`
}

// CompareRequest carries the two addresses to score against each other.
type CompareRequest struct {
	First  CompareAddress `json:"first"`
	Second CompareAddress `json:"second"`
}

// CompareResponse reports both standardized forms plus similarity scores.
type CompareResponse struct {
	First        standardizer.StandardizedAddress `json:"first"`
	Second       standardizer.StandardizedAddress `json:"second"`
	ExactMatch   bool                             `json:"exact_match"`
	Similarity   float64                          `json:"similarity"`
	TokenOverlap float64                          `json:"token_overlap"`
}
