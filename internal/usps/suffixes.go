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

// Suffixes maps street suffix spellings and common misspellings to the
// standard abbreviation from USPS Publication 28 Appendix C1. The standard
// abbreviations map to themselves so already-abbreviated input passes through.
var Suffixes = map[string]string{
	"ALLEE": "ALY", "ALLEY": "ALY", "ALLY": "ALY", "ALY": "ALY",
	"ANEX": "ANX", "ANNEX": "ANX", "ANNX": "ANX", "ANX": "ANX",
	"ARC": "ARC", "ARCADE": "ARC",
	"AV": "AVE", "AVE": "AVE", "AVEN": "AVE", "AVENU": "AVE", "AVENUE": "AVE", "AVN": "AVE", "AVNUE": "AVE",
	"BAYOO": "BYU", "BAYOU": "BYU", "BYU": "BYU",
	"BCH": "BCH", "BEACH": "BCH",
	"BEND": "BND", "BND": "BND",
	"BLF": "BLF", "BLUF": "BLF", "BLUFF": "BLF",
	"BLUFFS": "BLFS", "BLFS": "BLFS",
	"BOT": "BTM", "BTM": "BTM", "BOTTM": "BTM", "BOTTOM": "BTM",
	"BLVD": "BLVD", "BOUL": "BLVD", "BOULEVARD": "BLVD", "BOULV": "BLVD",
	"BR": "BR", "BRNCH": "BR", "BRANCH": "BR",
	"BRDGE": "BRG", "BRG": "BRG", "BRIDGE": "BRG",
	"BRK": "BRK", "BROOK": "BRK",
	"BROOKS": "BRKS", "BRKS": "BRKS",
	"BURG": "BG", "BG": "BG",
	"BURGS": "BGS", "BGS": "BGS",
	"BYP": "BYP", "BYPA": "BYP", "BYPAS": "BYP", "BYPASS": "BYP", "BYPS": "BYP",
	"CAMP": "CP", "CP": "CP", "CMP": "CP",
	"CANYN": "CYN", "CANYON": "CYN", "CNYN": "CYN", "CYN": "CYN",
	"CAPE": "CPE", "CPE": "CPE",
	"CAUSEWAY": "CSWY", "CAUSWA": "CSWY", "CSWY": "CSWY",
	"CEN": "CTR", "CENT": "CTR", "CENTER": "CTR", "CENTR": "CTR", "CENTRE": "CTR", "CNTER": "CTR", "CNTR": "CTR", "CTR": "CTR",
	"CENTERS": "CTRS", "CTRS": "CTRS",
	"CIR": "CIR", "CIRC": "CIR", "CIRCL": "CIR", "CIRCLE": "CIR", "CRCL": "CIR", "CRCLE": "CIR",
	"CIRCLES": "CIRS", "CIRS": "CIRS",
	"CLF": "CLF", "CLIFF": "CLF",
	"CLFS": "CLFS", "CLIFFS": "CLFS",
	"CLB": "CLB", "CLUB": "CLB",
	"COMMON": "CMN", "CMN": "CMN",
	"COMMONS": "CMNS", "CMNS": "CMNS",
	"COR": "COR", "CORNER": "COR",
	"CORNERS": "CORS", "CORS": "CORS",
	"COURSE": "CRSE", "CRSE": "CRSE",
	"COURT": "CT", "CT": "CT",
	"COURTS": "CTS", "CTS": "CTS",
	"COVE": "CV", "CV": "CV",
	"COVES": "CVS", "CVS": "CVS",
	"CREEK": "CRK", "CRK": "CRK",
	"CRESCENT": "CRES", "CRES": "CRES", "CRSENT": "CRES", "CRSNT": "CRES",
	"CREST": "CRST", "CRST": "CRST",
	"CROSSING": "XING", "CRSSNG": "XING", "XING": "XING",
	"CROSSROAD": "XRD", "XRD": "XRD",
	"CROSSROADS": "XRDS", "XRDS": "XRDS",
	"CURVE": "CURV", "CURV": "CURV",
	"DALE": "DL", "DL": "DL",
	"DAM": "DM", "DM": "DM",
	"DIV": "DV", "DIVIDE": "DV", "DV": "DV", "DVD": "DV",
	"DR": "DR", "DRIV": "DR", "DRIVE": "DR", "DRV": "DR",
	"DRIVES": "DRS", "DRS": "DRS",
	"EST": "EST", "ESTATE": "EST",
	"ESTATES": "ESTS", "ESTS": "ESTS",
	"EXP": "EXPY", "EXPR": "EXPY", "EXPRESS": "EXPY", "EXPRESSWAY": "EXPY", "EXPW": "EXPY", "EXPY": "EXPY",
	"EXT": "EXT", "EXTENSION": "EXT", "EXTN": "EXT", "EXTNSN": "EXT",
	"EXTS": "EXTS",
	"FALL": "FALL",
	"FALLS": "FLS", "FLS": "FLS",
	"FERRY": "FRY", "FRRY": "FRY", "FRY": "FRY",
	"FIELD": "FLD", "FLD": "FLD",
	"FIELDS": "FLDS", "FLDS": "FLDS",
	"FLAT": "FLT", "FLT": "FLT",
	"FLATS": "FLTS", "FLTS": "FLTS",
	"FORD": "FRD", "FRD": "FRD",
	"FORDS": "FRDS", "FRDS": "FRDS",
	"FOREST": "FRST", "FORESTS": "FRST", "FRST": "FRST",
	"FORG": "FRG", "FORGE": "FRG", "FRG": "FRG",
	"FORGES": "FRGS", "FRGS": "FRGS",
	"FORK": "FRK", "FRK": "FRK",
	"FORKS": "FRKS", "FRKS": "FRKS",
	"FORT": "FT", "FRT": "FT", "FT": "FT",
	"FREEWAY": "FWY", "FREEWY": "FWY", "FRWAY": "FWY", "FRWY": "FWY", "FWY": "FWY",
	"GARDEN": "GDN", "GARDN": "GDN", "GRDEN": "GDN", "GRDN": "GDN", "GDN": "GDN",
	"GARDENS": "GDNS", "GDNS": "GDNS", "GRDNS": "GDNS",
	"GATEWAY": "GTWY", "GATEWY": "GTWY", "GATWAY": "GTWY", "GTWAY": "GTWY", "GTWY": "GTWY",
	"GLEN": "GLN", "GLN": "GLN",
	"GLENS": "GLNS", "GLNS": "GLNS",
	"GREEN": "GRN", "GRN": "GRN",
	"GREENS": "GRNS", "GRNS": "GRNS",
	"GROV": "GRV", "GROVE": "GRV", "GRV": "GRV",
	"GROVES": "GRVS", "GRVS": "GRVS",
	"HARB": "HBR", "HARBOR": "HBR", "HARBR": "HBR", "HBR": "HBR", "HRBOR": "HBR",
	"HARBORS": "HBRS", "HBRS": "HBRS",
	"HAVEN": "HVN", "HVN": "HVN",
	"HEIGHTS": "HTS", "HT": "HTS", "HTS": "HTS",
	"HIGHWAY": "HWY", "HIGHWY": "HWY", "HIWAY": "HWY", "HIWY": "HWY", "HWAY": "HWY", "HWY": "HWY",
	"HILL": "HL", "HL": "HL",
	"HILLS": "HLS", "HLS": "HLS",
	"HLLW": "HOLW", "HOLLOW": "HOLW", "HOLLOWS": "HOLW", "HOLW": "HOLW", "HOLWS": "HOLW",
	"INLET": "INLT", "INLT": "INLT",
	"IS": "IS", "ISLAND": "IS", "ISLND": "IS",
	"ISLANDS": "ISS", "ISLNDS": "ISS", "ISS": "ISS",
	"ISLE": "ISLE", "ISLES": "ISLE",
	"JCT": "JCT", "JCTION": "JCT", "JCTN": "JCT", "JUNCTION": "JCT", "JUNCTN": "JCT", "JUNCTON": "JCT",
	"JCTNS": "JCTS", "JCTS": "JCTS", "JUNCTIONS": "JCTS",
	"KEY": "KY", "KY": "KY",
	"KEYS": "KYS", "KYS": "KYS",
	"KNL": "KNL", "KNOL": "KNL", "KNOLL": "KNL",
	"KNLS": "KNLS", "KNOLLS": "KNLS",
	"LAKE": "LK", "LK": "LK",
	"LAKES": "LKS", "LKS": "LKS",
	"LAND": "LAND",
	"LANDING": "LNDG", "LNDG": "LNDG", "LNDNG": "LNDG",
	"LANE": "LN", "LN": "LN",
	"LGT": "LGT", "LIGHT": "LGT",
	"LIGHTS": "LGTS", "LGTS": "LGTS",
	"LCK": "LCK", "LOCK": "LCK",
	"LCKS": "LCKS", "LOCKS": "LCKS",
	"LDG": "LDG", "LDGE": "LDG", "LODG": "LDG", "LODGE": "LDG",
	"LOOP": "LOOP", "LOOPS": "LOOP",
	"MALL": "MALL",
	"MANOR": "MNR", "MNR": "MNR",
	"MANORS": "MNRS", "MNRS": "MNRS",
	"MEADOW": "MDW", "MDW": "MDW",
	"MDWS": "MDWS", "MEADOWS": "MDWS", "MEDOWS": "MDWS",
	"MEWS": "MEWS",
	"MILL": "ML", "ML": "ML",
	"MILLS": "MLS", "MLS": "MLS",
	"MISSION": "MSN", "MISSN": "MSN", "MSN": "MSN", "MSSN": "MSN",
	"MOTORWAY": "MTWY", "MTWY": "MTWY",
	"MNT": "MT", "MT": "MT", "MOUNT": "MT",
	"MNTAIN": "MTN", "MNTN": "MTN", "MOUNTAIN": "MTN", "MOUNTIN": "MTN", "MTIN": "MTN", "MTN": "MTN",
	"MNTNS": "MTNS", "MOUNTAINS": "MTNS", "MTNS": "MTNS",
	"NCK": "NCK", "NECK": "NCK",
	"ORCH": "ORCH", "ORCHARD": "ORCH", "ORCHRD": "ORCH",
	"OVAL": "OVAL", "OVL": "OVAL",
	"OVERPASS": "OPAS", "OPAS": "OPAS",
	"PARK": "PARK", "PRK": "PARK", "PARKS": "PARK",
	"PARKWAY": "PKWY", "PARKWY": "PKWY", "PKWAY": "PKWY", "PKWY": "PKWY", "PKY": "PKWY",
	"PARKWAYS": "PKWY", "PKWYS": "PKWY",
	"PASS": "PASS",
	"PASSAGE": "PSGE", "PSGE": "PSGE",
	"PATH": "PATH", "PATHS": "PATH",
	"PIKE": "PIKE", "PIKES": "PIKE",
	"PINE": "PNE", "PNE": "PNE",
	"PINES": "PNES", "PNES": "PNES",
	"PL": "PL", "PLACE": "PL",
	"PLAIN": "PLN", "PLN": "PLN",
	"PLAINS": "PLNS", "PLNS": "PLNS",
	"PLAZA": "PLZ", "PLZ": "PLZ", "PLZA": "PLZ",
	"POINT": "PT", "PT": "PT",
	"POINTS": "PTS", "PTS": "PTS",
	"PORT": "PRT", "PRT": "PRT",
	"PORTS": "PRTS", "PRTS": "PRTS",
	"PR": "PR", "PRAIRIE": "PR", "PRR": "PR",
	"RAD": "RADL", "RADIAL": "RADL", "RADIEL": "RADL", "RADL": "RADL",
	"RAMP": "RAMP",
	"RANCH": "RNCH", "RANCHES": "RNCH", "RNCH": "RNCH", "RNCHS": "RNCH",
	"RAPID": "RPD", "RPD": "RPD",
	"RAPIDS": "RPDS", "RPDS": "RPDS",
	"REST": "RST", "RST": "RST",
	"RDG": "RDG", "RDGE": "RDG", "RIDGE": "RDG",
	"RDGS": "RDGS", "RIDGES": "RDGS",
	"RIV": "RIV", "RIVER": "RIV", "RVR": "RIV", "RIVR": "RIV",
	"RD": "RD", "ROAD": "RD",
	"ROADS": "RDS", "RDS": "RDS",
	"ROUTE": "RTE", "RTE": "RTE",
	"ROW": "ROW",
	"RUE": "RUE",
	"RUN": "RUN",
	"SHL": "SHL", "SHOAL": "SHL",
	"SHLS": "SHLS", "SHOALS": "SHLS",
	"SHOAR": "SHR", "SHORE": "SHR", "SHR": "SHR",
	"SHOARS": "SHRS", "SHORES": "SHRS", "SHRS": "SHRS",
	"SKYWAY": "SKWY", "SKWY": "SKWY",
	"SPG": "SPG", "SPNG": "SPG", "SPRING": "SPG", "SPRNG": "SPG",
	"SPGS": "SPGS", "SPNGS": "SPGS", "SPRINGS": "SPGS", "SPRNGS": "SPGS",
	"SPUR": "SPUR", "SPURS": "SPUR",
	"SQ": "SQ", "SQR": "SQ", "SQRE": "SQ", "SQU": "SQ", "SQUARE": "SQ",
	"SQRS": "SQS", "SQS": "SQS", "SQUARES": "SQS",
	"STA": "STA", "STATION": "STA", "STATN": "STA", "STN": "STA",
	"STRA": "STRA", "STRAV": "STRA", "STRAVEN": "STRA", "STRAVENUE": "STRA", "STRAVN": "STRA", "STRVN": "STRA", "STRVNUE": "STRA",
	"STREAM": "STRM", "STREME": "STRM", "STRM": "STRM",
	"ST": "ST", "STR": "ST", "STREET": "ST", "STRT": "ST",
	"STREETS": "STS", "STS": "STS",
	"SMT": "SMT", "SUMIT": "SMT", "SUMITT": "SMT", "SUMMIT": "SMT",
	"TER": "TER", "TERR": "TER", "TERRACE": "TER",
	"THROUGHWAY": "TRWY", "TRWY": "TRWY",
	"TRACE": "TRCE", "TRACES": "TRCE", "TRCE": "TRCE",
	"TRACK": "TRAK", "TRACKS": "TRAK", "TRAK": "TRAK", "TRK": "TRAK", "TRKS": "TRAK",
	"TRAFFICWAY": "TRFY", "TRFY": "TRFY",
	"TRAIL": "TRL", "TRAILS": "TRL", "TRL": "TRL", "TRLS": "TRL",
	"TRAILER": "TRLR", "TRLR": "TRLR", "TRLRS": "TRLR",
	"TUNEL": "TUNL", "TUNL": "TUNL", "TUNLS": "TUNL", "TUNNEL": "TUNL", "TUNNELS": "TUNL", "TUNNL": "TUNL",
	"TURNPIKE": "TPKE", "TPKE": "TPKE", "TRNPK": "TPKE", "TURNPK": "TPKE",
	"UNDERPASS": "UPAS", "UPAS": "UPAS",
	"UN": "UN", "UNION": "UN",
	"UNIONS": "UNS", "UNS": "UNS",
	"VALLEY": "VLY", "VALLY": "VLY", "VLLY": "VLY", "VLY": "VLY",
	"VALLEYS": "VLYS", "VLYS": "VLYS",
	"VDCT": "VIA", "VIA": "VIA", "VIADCT": "VIA", "VIADUCT": "VIA",
	"VIEW": "VW", "VW": "VW",
	"VIEWS": "VWS", "VWS": "VWS",
	"VILL": "VLG", "VILLAG": "VLG", "VILLAGE": "VLG", "VILLG": "VLG", "VILLIAGE": "VLG", "VLG": "VLG",
	"VILLAGES": "VLGS", "VLGS": "VLGS",
	"VILLE": "VL", "VL": "VL",
	"VIS": "VIS", "VIST": "VIS", "VISTA": "VIS", "VST": "VIS", "VSTA": "VIS",
	"WALK": "WALK", "WALKS": "WALK",
	"WALL": "WALL",
	"WAY": "WAY", "WY": "WAY",
	"WAYS": "WAYS",
	"WELL": "WL", "WL": "WL",
	"WELLS": "WLS", "WLS": "WLS",
}
