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

// Units maps secondary unit designators to the abbreviation from USPS
// Publication 28 Appendix C2.
var Units = map[string]string{
	"APARTMENT": "APT", "APT": "APT",
	"BASEMENT": "BSMT", "BSMT": "BSMT",
	"BUILDING": "BLDG", "BLDG": "BLDG", "BLD": "BLDG",
	"DEPARTMENT": "DEPT", "DEPT": "DEPT",
	"FLOOR": "FL", "FL": "FL",
	"FRONT": "FRNT", "FRNT": "FRNT",
	"HANGAR": "HNGR", "HNGR": "HNGR",
	"KEY": "KEY",
	"LOBBY": "LBBY", "LBBY": "LBBY",
	"LOT": "LOT",
	"LOWER": "LOWR", "LOWR": "LOWR",
	"OFFICE": "OFC", "OFC": "OFC",
	"PENTHOUSE": "PH", "PH": "PH",
	"PIER": "PIER",
	"REAR": "REAR",
	"ROOM": "RM", "RM": "RM",
	"SIDE": "SIDE",
	"SLIP": "SLIP",
	"SPACE": "SPC", "SPC": "SPC",
	"STOP": "STOP",
	"SUITE": "STE", "STE": "STE",
	"TRAILER": "TRLR", "TRLR": "TRLR",
	"UNIT": "UNIT",
	"UPPER": "UPPR", "UPPR": "UPPR",
	"NO": "#", "#": "#",
}

// NoIdentifierUnits lists designators that never take an identifier
// (Pub 28 Appendix C2 "does not require secondary RANGE"). Used by the
// classifier when deciding whether a bare leading word in a city value
// is a stranded designator or part of the city name.
var NoIdentifierUnits = map[string]bool{
	"BASEMENT": true, "BSMT": true,
	"FRONT": true, "FRNT": true,
	"LOBBY": true, "LBBY": true,
	"LOWER": true, "LOWR": true,
	"PENTHOUSE": true, "PH": true,
	"REAR": true, "SIDE": true,
	"UPPER": true, "UPPR": true,
}
