package profiles

import (
	"math"
	"testing"
)

func TestConvLatLon(t *testing.T) {
	cases := []struct {
		lat, long string
		wantLat   float64
		wantLong  float64
		ok        bool
	}{
		{"39.78", "-89.65", 39.78, -89.65, true},
		{"-33.87", "151.21", -33.87, 151.21, true},
		{`50°52'21.9"N`, `4°21'E`, 50.87275, 4.35, true},
		{`50°52'S`, `4°21'W`, -50.866666, -4.35, true},
		{"50:52:21.9N", "4:21E", 50.87275, 4.35, true},
		{"95", "10", 0, 0, false},         // latitude out of range
		{"10", "181", 0, 0, false},        // longitude out of range
		{`50°70'N`, "4", 0, 0, false},     // minutes out of range
		{`50°10'N`, `4°21'N`, 0, 0, false}, // wrong hemisphere for longitude
		{"", "4.35", 0, 0, false},
		{"39.78", "not a number", 0, 0, false},
	}
	for _, tc := range cases {
		lat, long, ok := ConvLatLon(tc.lat, tc.long)
		if ok != tc.ok {
			t.Errorf("ConvLatLon(%q, %q) ok = %v, want %v", tc.lat, tc.long, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if math.Abs(lat-tc.wantLat) > 1e-4 || math.Abs(long-tc.wantLong) > 1e-4 {
			t.Errorf("ConvLatLon(%q, %q) = (%v, %v), want (%v, %v)",
				tc.lat, tc.long, lat, long, tc.wantLat, tc.wantLong)
		}
	}
}
