package recommend

import (
	"context"
	"errors"
	"strings"

	"github.com/saathi-app/saathi/internal/models"
)

// ErrCatalogUnavailable is returned when the supplier catalog cannot be
// loaded. Callers must treat it as a hard failure, never as "no matches".
var ErrCatalogUnavailable = errors.New("supplier catalog unavailable")

// CatalogSource supplies the full set of suppliers the engine ranks.
// Implementations read from whatever backs the catalog (database, fixture);
// the engine only ever calls FetchAll.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]models.Supplier, error)
}

// StaticSource is a fixed in-memory catalog. It backs tests and the demo
// seeder, and stands in for a database read in small deployments.
type StaticSource struct {
	suppliers []models.Supplier
}

// NewStaticSource creates a catalog source over a fixed supplier list.
func NewStaticSource(suppliers []models.Supplier) *StaticSource {
	return &StaticSource{suppliers: suppliers}
}

// FetchAll returns a copy of the configured supplier list.
func (s *StaticSource) FetchAll(ctx context.Context) ([]models.Supplier, error) {
	out := make([]models.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out, nil
}

// entry is one catalog supplier with its matching keys precomputed:
// lowercased location and a deduplicated lowercase item set. The supplier
// itself keeps its original casing for display.
type entry struct {
	supplier models.Supplier
	location string
	itemSet  map[string]struct{}
}

// snapshot is an immutable view of the whole catalog. The engine publishes a
// new snapshot on refresh; readers never observe a partially built one.
type snapshot struct {
	entries []entry
}

func buildSnapshot(suppliers []models.Supplier) *snapshot {
	entries := make([]entry, 0, len(suppliers))
	for _, sup := range suppliers {
		itemSet := make(map[string]struct{}, len(sup.Items))
		for _, item := range sup.Items {
			itemSet[strings.ToLower(strings.TrimSpace(item))] = struct{}{}
		}
		entries = append(entries, entry{
			supplier: sup,
			location: strings.ToLower(strings.TrimSpace(sup.Location)),
			itemSet:  itemSet,
		})
	}
	return &snapshot{entries: entries}
}

func (e *entry) hasItem(item string) bool {
	_, ok := e.itemSet[item]
	return ok
}
