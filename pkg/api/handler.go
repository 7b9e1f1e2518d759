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

import (
	"net/http"
	"strings"
	"time"

	"github.com/TFMV/AddressValidator/internal/parser"
	"github.com/TFMV/AddressValidator/internal/similarity"
	"github.com/TFMV/AddressValidator/internal/standardizer"
	"github.com/gin-gonic/gin"
)

// ParseHandler breaks a raw address string into labelled components.
func ParseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		raw := strings.TrimSpace(req.Address)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
			return
		}
		if len(raw) > MaxAddressLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "address exceeds 1000 characters"})
			return
		}

		result := parser.ParseAndClassify(raw)
		c.JSON(http.StatusOK, parseResponse(raw, result))
	}
}

func parseResponse(raw string, result parser.Result) ParseResponse {
	components := result.Components
	if result.Second != nil {
		merged := standardizer.Components{}
		for k, v := range result.Components {
			merged[k] = v
		}
		for k, v := range result.Second {
			merged["second_"+k] = v
		}
		components = merged
	}
	resp := ParseResponse{
		Input:      raw,
		Components: components,
		Type:       result.Classification.Type.String(),
	}
	if result.Classification.Type == parser.Ambiguous {
		resp.Warning = result.Classification.Diagnostic
	}
	return resp
}

// StandardizeHandler normalizes an address per USPS Publication 28. Explicit
// components take precedence over a raw address string when both are given.
func StandardizeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StandardizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		std, err := standardizeOne(req.Address, req.Components)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, std)
	}
}

type badRequestError string

func (e badRequestError) Error() string { return string(e) }

func standardizeOne(address string, components standardizer.Components) (standardizer.StandardizedAddress, error) {
	if len(components) > 0 {
		parser.RecoverFromCity(components)
		return standardizer.Standardize(components), nil
	}
	raw := strings.TrimSpace(address)
	if raw == "" {
		return standardizer.StandardizedAddress{},
			badRequestError("provide 'address' (non-empty string) or 'components' (non-empty object)")
	}
	if len(raw) > MaxAddressLength {
		return standardizer.StandardizedAddress{}, badRequestError("address exceeds 1000 characters")
	}
	return parser.ParseAndClassify(raw).Standardize(), nil
}

// CompareHandler standardizes two addresses and scores their similarity,
// for duplicate detection.
func CompareHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CompareRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		first, err := standardizeOne(req.First.Address, req.First.Components)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "first: " + err.Error()})
			return
		}
		second, err := standardizeOne(req.Second.Address, req.Second.Components)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "second: " + err.Error()})
			return
		}

		overlap, err := similarity.TokenOverlap(first.Standardized, second.Standardized)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to tokenize addresses: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, CompareResponse{
			First:        first,
			Second:       second,
			ExactMatch:   first.Standardized == second.Standardized && first.Standardized != "",
			Similarity:   similarity.Score(first.Standardized, second.Standardized),
			TokenOverlap: overlap,
		})
	}
}

// HealthCheckHandler handles health check requests
func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"zuluTime": zuluTime,
		})
	}
}
