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

// Package usps holds the USPS Publication 28 abbreviation tables: street
// suffixes (Appendix C1), directionals and state codes (Appendix B), and
// secondary unit designators (Appendix C2). The maps are built once at
// startup and never written afterwards, so concurrent readers need no
// synchronization.
package usps

import "strings"

// Lookup returns the USPS abbreviation for key in table, or the cleaned key
// unchanged when there is no entry. It uppercases and strips periods itself,
// so it is safe to call with raw as well as pre-cleaned input.
func Lookup(table map[string]string, key string) string {
	cleaned := strings.ToUpper(key)
	cleaned = strings.NewReplacer(".", "", "(", "", ")", "").Replace(cleaned)
	cleaned = strings.Trim(cleaned, " \t,;")
	if abbr, ok := table[cleaned]; ok {
		return abbr
	}
	return cleaned
}

// Contains reports whether key has an entry in table after the same cleanup
// Lookup performs.
func Contains(table map[string]string, key string) bool {
	cleaned := strings.ToUpper(key)
	cleaned = strings.NewReplacer(".", "", "(", "", ")", "").Replace(cleaned)
	cleaned = strings.Trim(cleaned, " \t,;")
	_, ok := table[cleaned]
	return ok
}
