package profiles

import (
	"regexp"
	"strconv"
	"strings"
)

// dmsPattern matches degree-minute-second notation like 50°52'21.9"N or
// 50:52:21.9N, with minutes and seconds optional and either ASCII,
// typographic, or colon separators.
var dmsPattern = regexp.MustCompile(
	`^(\d+(?:\.\d+)?)\s*[°º:]\s*(?:(\d+(?:\.\d+)?)(?:\s*['′:]\s*(?:(\d+(?:\.\d+)?)\s*["″]?\s*)?)?)?([NSEW])$`)

// ConvLatLon converts a latitude/longitude pair, stored in either decimal
// or degree-minute-second notation, to decimal degrees. Both values must
// parse and lie in range; otherwise ok is false and callers render null
// coordinates.
func ConvLatLon(lat, long string) (float64, float64, bool) {
	latVal, ok := parseCoordinate(lat, 90, "N", "S")
	if !ok {
		return 0, 0, false
	}
	longVal, ok := parseCoordinate(long, 180, "E", "W")
	if !ok {
		return 0, 0, false
	}
	return latVal, longVal, true
}

func parseCoordinate(value string, limit float64, positive, negative string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		if v < -limit || v > limit {
			return 0, false
		}
		return v, true
	}
	m := dmsPattern.FindStringSubmatch(strings.ToUpper(value))
	if m == nil {
		return 0, false
	}
	degrees, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	var minutes, seconds float64
	if m[2] != "" {
		if minutes, err = strconv.ParseFloat(m[2], 64); err != nil || minutes >= 60 {
			return 0, false
		}
	}
	if m[3] != "" {
		if seconds, err = strconv.ParseFloat(m[3], 64); err != nil || seconds >= 60 {
			return 0, false
		}
	}
	hemisphere := m[4]
	if hemisphere != positive && hemisphere != negative {
		return 0, false
	}
	v := degrees + minutes/60 + seconds/3600
	if v > limit {
		return 0, false
	}
	if hemisphere == negative {
		v = -v
	}
	return v, true
}
