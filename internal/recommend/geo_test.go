package recommend

import (
	"testing"
)

func TestNearbyIndex(t *testing.T) {
	nearby := DefaultNearby()

	tests := []struct {
		a, b string
		want bool
	}{
		{"Mumbai", "Thane", true},
		{"Thane", "Mumbai", true}, // reverse direction via the hub entry
		{"SILIGURI", "darjeeling", true},
		{"Cooch Behar", "Jalpaiguri", true},
		{"Mumbai", "Delhi", false},
		{"Mumbai", "Mumbai", false}, // exact match is not "nearby"
		{"", "Mumbai", false},
		{"Atlantis", "Mumbai", false},
	}

	for _, tt := range tests {
		if got := nearby.Nearby(tt.a, tt.b); got != tt.want {
			t.Errorf("Nearby(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
