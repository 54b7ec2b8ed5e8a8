package recommend

import (
	"context"
	"reflect"
	"testing"

	"github.com/saathi-app/saathi/internal/models"
)

func supplierNames(suppliers []models.Supplier) []string {
	out := make([]string, len(suppliers))
	for i, sup := range suppliers {
		out[i] = sup.Name
	}
	return out
}

func TestSuppliersByLocation(t *testing.T) {
	engine := newTestEngine(t)

	mumbai := engine.SuppliersByLocation("mumbai")
	if len(mumbai) != 3 {
		t.Errorf("Mumbai suppliers = %v, want 3", supplierNames(mumbai))
	}
	for _, sup := range mumbai {
		if sup.Location != "Mumbai" {
			t.Errorf("unexpected location %q for %s", sup.Location, sup.Name)
		}
	}

	if got := engine.SuppliersByLocation("Pune"); len(got) != 0 {
		t.Errorf("Pune suppliers = %v, want none", supplierNames(got))
	}
}

func TestSuppliersByItem(t *testing.T) {
	engine := newTestEngine(t)

	rice := engine.SuppliersByItem("Rice")
	want := []string{
		"Quality Foods Ltd.",
		"Mumbai Market Hub",
		"Capital Vegetables",
		"Siliguri Fresh Market",
		"Jalpaiguri Wholesale Hub",
		"Cooch Behar Food Supply",
	}
	if got := supplierNames(rice); !reflect.DeepEqual(got, want) {
		t.Errorf("rice suppliers = %v, want %v", got, want)
	}

	if got := engine.SuppliersByItem("saffron"); len(got) != 0 {
		t.Errorf("saffron suppliers = %v, want none", supplierNames(got))
	}
}

func TestPriceTiers(t *testing.T) {
	engine := newTestEngine(t)

	tiers := engine.PriceTiers("rice", "Siliguri")
	if tiers == nil {
		t.Fatal("expected tiers for rice in Siliguri")
	}
	if got := supplierNames(tiers[models.PriceRangeLow]); !reflect.DeepEqual(got, []string{"Siliguri Fresh Market"}) {
		t.Errorf("low tier = %v", got)
	}
	if len(tiers[models.PriceRangeMedium]) != 0 || len(tiers[models.PriceRangeHigh]) != 0 {
		t.Errorf("medium/high tiers should be empty, got %v / %v",
			supplierNames(tiers[models.PriceRangeMedium]), supplierNames(tiers[models.PriceRangeHigh]))
	}

	// No Mumbai supplier stocks tea: nil, not empty buckets.
	if tiers := engine.PriceTiers("tea", "Mumbai"); tiers != nil {
		t.Errorf("expected nil tiers for tea in Mumbai, got %v", tiers)
	}
}

func TestTopRatedByItem(t *testing.T) {
	engine := newTestEngine(t)

	top := engine.TopRatedByItem("spices", "Darjeeling")
	want := []string{"Darjeeling Spice Traders", "Darjeeling Organic Foods"}
	if got := supplierNames(top); !reflect.DeepEqual(got, want) {
		t.Errorf("top spices suppliers = %v, want %v", got, want)
	}
}

func TestTopRatedByItem_CappedAtThree(t *testing.T) {
	sup := func(id int, rating float64) models.Supplier {
		return models.Supplier{
			ID:           id,
			Name:         "Stall",
			Location:     "Pune",
			Items:        []string{"onion"},
			Rating:       rating,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliveryNextDay,
		}
	}
	engine, err := New(context.Background(), NewStaticSource([]models.Supplier{
		sup(1, 3.0), sup(2, 4.9), sup(3, 4.1), sup(4, 4.5), sup(5, 2.2),
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	top := engine.TopRatedByItem("onion", "pune")
	if len(top) != 3 {
		t.Fatalf("got %d suppliers, want 3", len(top))
	}
	wantIDs := []int{2, 4, 3}
	for i, sup := range top {
		if sup.ID != wantIDs[i] {
			t.Errorf("position %d: id = %d, want %d", i, sup.ID, wantIDs[i])
		}
	}
}
