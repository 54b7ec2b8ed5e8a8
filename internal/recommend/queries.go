package recommend

import (
	"sort"
	"strings"

	"github.com/saathi-app/saathi/internal/models"
)

// topRatedLimit caps the quality query: the three best-rated suppliers are
// enough for a vendor to pick from.
const topRatedLimit = 3

// SuppliersByLocation returns every catalog supplier in the given city.
// Matching is case-insensitive and exact; no scoring is involved.
func (e *Engine) SuppliersByLocation(location string) []models.Supplier {
	location = strings.ToLower(strings.TrimSpace(location))
	snap := e.catalog.Load()

	out := []models.Supplier{}
	for i := range snap.entries {
		if snap.entries[i].location == location {
			out = append(out, snap.entries[i].supplier)
		}
	}
	return out
}

// SuppliersByItem returns every catalog supplier stocking the given
// ingredient (case-insensitive exact name).
func (e *Engine) SuppliersByItem(item string) []models.Supplier {
	item = strings.ToLower(strings.TrimSpace(item))
	snap := e.catalog.Load()

	out := []models.Supplier{}
	for i := range snap.entries {
		if snap.entries[i].hasItem(item) {
			out = append(out, snap.entries[i].supplier)
		}
	}
	return out
}

// PriceTiers partitions the suppliers stocking item in location into
// low/medium/high buckets. It returns nil when no supplier in that location
// carries the item, so callers can distinguish "nothing there" from three
// empty buckets.
func (e *Engine) PriceTiers(item, location string) map[models.PriceRange][]models.Supplier {
	suppliers := e.byItemAndLocation(item, location)
	if len(suppliers) == 0 {
		return nil
	}

	tiers := map[models.PriceRange][]models.Supplier{
		models.PriceRangeLow:    {},
		models.PriceRangeMedium: {},
		models.PriceRangeHigh:   {},
	}
	for _, sup := range suppliers {
		tiers[sup.PriceRange] = append(tiers[sup.PriceRange], sup)
	}
	return tiers
}

// TopRatedByItem returns the best-rated suppliers stocking item in location,
// rating descending (ties by id ascending), capped at three.
func (e *Engine) TopRatedByItem(item, location string) []models.Supplier {
	suppliers := e.byItemAndLocation(item, location)

	sort.Slice(suppliers, func(i, j int) bool {
		if suppliers[i].Rating != suppliers[j].Rating {
			return suppliers[i].Rating > suppliers[j].Rating
		}
		return suppliers[i].ID < suppliers[j].ID
	})

	if len(suppliers) > topRatedLimit {
		suppliers = suppliers[:topRatedLimit]
	}
	return suppliers
}

func (e *Engine) byItemAndLocation(item, location string) []models.Supplier {
	item = strings.ToLower(strings.TrimSpace(item))
	location = strings.ToLower(strings.TrimSpace(location))
	snap := e.catalog.Load()

	out := []models.Supplier{}
	for i := range snap.entries {
		ent := &snap.entries[i]
		if ent.location == location && ent.hasItem(item) {
			out = append(out, ent.supplier)
		}
	}
	return out
}
