package metar

// Static code tables. All maps in this file are read-only process-wide
// constants; they are never mutated after init and need no synchronization.

// weatherIntensity maps the optional 1- or 2-character prefix of a present
// weather group.
var weatherIntensity = map[string]string{
	"-":  "light",
	"+":  "heavy",
	"VC": "in the vicinity",
}

// weatherDescriptors is the fixed descriptor set. Keeping it separate from
// weatherPhenomena disambiguates descriptor pairs from precipitation codes
// during greedy consumption.
var weatherDescriptors = map[string]string{
	"MI": "shallow",
	"PR": "partial",
	"BC": "patches of",
	"DR": "low drifting",
	"BL": "blowing",
	"SH": "showers of",
	"TS": "thunderstorm",
	"FZ": "freezing",
}

// weatherPhenomena maps 2-character phenomenon codes to descriptions.
var weatherPhenomena = map[string]string{
	"DZ": "drizzle",
	"RA": "rain",
	"SN": "snow",
	"SG": "snow grains",
	"IC": "ice crystals",
	"PL": "ice pellets",
	"GR": "hail",
	"GS": "small hail",
	"UP": "unknown precipitation",
	"BR": "mist",
	"FG": "fog",
	"FU": "smoke",
	"VA": "volcanic ash",
	"DU": "widespread dust",
	"SA": "sand",
	"HZ": "haze",
	"PY": "spray",
	"PO": "dust whirls",
	"SQ": "squalls",
	"FC": "funnel cloud",
	"SS": "sandstorm",
	"DS": "duststorm",
}

// recentWeather maps standalone recent-phenomenon codes that may appear in
// the report body.
var recentWeather = map[string]string{
	"RESN": "recent snow",
	"RETS": "recent thunderstorm",
	"RERA": "recent rain",
}

// cloudCoverage maps coverage codes to descriptions.
var cloudCoverage = map[string]string{
	"FEW": "few clouds",
	"SCT": "scattered clouds",
	"BKN": "broken clouds",
	"OVC": "overcast",
	"VV":  "sky obscured",
}

// clearSkySentinels are codes that report an absence of significant cloud.
// They produce no cloud layer.
var clearSkySentinels = map[string]bool{
	"SKC":   true,
	"CLR":   true,
	"NSC":   true,
	"NCD":   true,
	"CAVOK": true,
}

// cloudTypes maps convective type suffixes.
var cloudTypes = map[string]string{
	"CB":  "cumulonimbus",
	"TCU": "towering cumulus",
}

// CoverageDescription returns the prose form of a cloud coverage code.
// Unknown codes pass through unchanged.
func CoverageDescription(code string) string {
	if desc, ok := cloudCoverage[code]; ok {
		return desc
	}
	return code
}

// CloudTypeDescription returns the prose form of a convective cloud type
// suffix, or "" when the code is empty or unknown.
func CloudTypeDescription(code string) string {
	return cloudTypes[code]
}

// runwaySurfaceCodes maps the first digit of a standard runway state group
// to the deposit on the surface.
var runwaySurfaceCodes = map[byte]string{
	'0': "Clear and dry",
	'1': "Damp",
	'2': "Wet or water patches",
	'3': "Rime or frost",
	'4': "Dry snow",
	'5': "Wet snow",
	'6': "Slush",
	'7': "Ice",
	'8': "Compacted snow",
	'9': "Frozen ruts or ridges",
	'/': "Not reported",
}

// runwayCoverageCodes maps the second digit of a standard runway state group
// to the extent of contamination.
var runwayCoverageCodes = map[byte]string{
	'1': "10% or less",
	'2': "11-25%",
	'5': "26-50%",
	'9': "51-100%",
	'/': "Not reported",
}
