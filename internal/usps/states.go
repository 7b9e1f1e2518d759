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

package usps

// States maps state, district, territory, and military "state" names to the
// two-letter code from USPS Publication 28 Appendix B. Codes map to themselves.
var States = map[string]string{
	"ALABAMA": "AL", "AL": "AL",
	"ALASKA": "AK", "AK": "AK",
	"AMERICAN SAMOA": "AS", "AS": "AS",
	"ARIZONA": "AZ", "AZ": "AZ",
	"ARKANSAS": "AR", "AR": "AR",
	"CALIFORNIA": "CA", "CA": "CA",
	"COLORADO": "CO", "CO": "CO",
	"CONNECTICUT": "CT", "CT": "CT",
	"DELAWARE": "DE", "DE": "DE",
	"DISTRICT OF COLUMBIA": "DC", "DC": "DC",
	"FEDERATED STATES OF MICRONESIA": "FM", "FM": "FM",
	"FLORIDA": "FL", "FL": "FL",
	"GEORGIA": "GA", "GA": "GA",
	"GUAM": "GU", "GU": "GU",
	"HAWAII": "HI", "HI": "HI",
	"IDAHO": "ID", "ID": "ID",
	"ILLINOIS": "IL", "IL": "IL",
	"INDIANA": "IN", "IN": "IN",
	"IOWA": "IA", "IA": "IA",
	"KANSAS": "KS", "KS": "KS",
	"KENTUCKY": "KY", "KY": "KY",
	"LOUISIANA": "LA", "LA": "LA",
	"MAINE": "ME", "ME": "ME",
	"MARSHALL ISLANDS": "MH", "MH": "MH",
	"MARYLAND": "MD", "MD": "MD",
	"MASSACHUSETTS": "MA", "MA": "MA",
	"MICHIGAN": "MI", "MI": "MI",
	"MINNESOTA": "MN", "MN": "MN",
	"MISSISSIPPI": "MS", "MS": "MS",
	"MISSOURI": "MO", "MO": "MO",
	"MONTANA": "MT", "MT": "MT",
	"NEBRASKA": "NE", "NE": "NE",
	"NEVADA": "NV", "NV": "NV",
	"NEW HAMPSHIRE": "NH", "NH": "NH",
	"NEW JERSEY": "NJ", "NJ": "NJ",
	"NEW MEXICO": "NM", "NM": "NM",
	"NEW YORK": "NY", "NY": "NY",
	"NORTH CAROLINA": "NC", "NC": "NC",
	"NORTH DAKOTA": "ND", "ND": "ND",
	"NORTHERN MARIANA ISLANDS": "MP", "MP": "MP",
	"OHIO": "OH", "OH": "OH",
	"OKLAHOMA": "OK", "OK": "OK",
	"OREGON": "OR", "OR": "OR",
	"PALAU": "PW", "PW": "PW",
	"PENNSYLVANIA": "PA", "PA": "PA",
	"PUERTO RICO": "PR", "PR": "PR",
	"RHODE ISLAND": "RI", "RI": "RI",
	"SOUTH CAROLINA": "SC", "SC": "SC",
	"SOUTH DAKOTA": "SD", "SD": "SD",
	"TENNESSEE": "TN", "TN": "TN",
	"TEXAS": "TX", "TX": "TX",
	"UTAH": "UT", "UT": "UT",
	"VERMONT": "VT", "VT": "VT",
	"VIRGIN ISLANDS": "VI", "VI": "VI",
	"VIRGINIA": "VA", "VA": "VA",
	"WASHINGTON": "WA", "WA": "WA",
	"WEST VIRGINIA": "WV", "WV": "WV",
	"WISCONSIN": "WI", "WI": "WI",
	"WYOMING": "WY", "WY": "WY",
	"ARMED FORCES AFRICA": "AE", "ARMED FORCES EUROPE": "AE", "ARMED FORCES MIDDLE EAST": "AE", "AE": "AE",
	"ARMED FORCES AMERICAS": "AA", "AA": "AA",
	"ARMED FORCES PACIFIC": "AP", "AP": "AP",
}
