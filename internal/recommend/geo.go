package recommend

import (
	"strings"
)

// NearbyIndex maps a canonical city name (lowercase) to the cities treated
// as its neighbours. Lookups check both directions, so the table does not
// have to list every pair twice.
type NearbyIndex map[string][]string

// DefaultNearby returns the adjacency table for the pilot cities.
func DefaultNearby() NearbyIndex {
	return NearbyIndex{
		"mumbai":      {"thane", "navi mumbai", "kalyan"},
		"delhi":       {"noida", "gurgaon", "ghaziabad"},
		"bangalore":   {"mysore", "mandya", "tumkur"},
		"siliguri":    {"darjeeling", "jalpaiguri", "cooch behar", "alipurduar"},
		"darjeeling":  {"siliguri", "jalpaiguri", "kurseong", "kalimpong"},
		"jalpaiguri":  {"siliguri", "cooch behar", "alipurduar", "darjeeling"},
		"cooch behar": {"jalpaiguri", "alipurduar", "siliguri"},
	}
}

// Nearby reports whether the two cities are neighbours. Matching is
// case-insensitive and symmetric: either city may be the table key.
func (n NearbyIndex) Nearby(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return n.listed(a, b) || n.listed(b, a)
}

func (n NearbyIndex) listed(hub, city string) bool {
	for _, neighbour := range n[hub] {
		if neighbour == city {
			return true
		}
	}
	return false
}
