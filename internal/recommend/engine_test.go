package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/saathi-app/saathi/internal/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(context.Background(), NewStaticSource(SampleCatalog()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return engine
}

func names(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Name
	}
	return out
}

func TestRecommend_EmptyNeeds(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(Request{
		Needs:              nil,
		Location:           "Mumbai",
		MaxRecommendations: DefaultMaxRecommendations,
	})

	if len(result.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d", len(result.Recommendations))
	}
	if result.TotalFound != 0 {
		t.Errorf("TotalFound = %d, want 0", result.TotalFound)
	}
	if result.VendorLocation != "Mumbai" {
		t.Errorf("VendorLocation = %q, want %q", result.VendorLocation, "Mumbai")
	}
}

func TestRecommend_MaxZero(t *testing.T) {
	engine := newTestEngine(t)

	for _, max := range []int{0, -1} {
		result := engine.Recommend(Request{
			Needs:              []string{"onion"},
			Location:           "Mumbai",
			MaxRecommendations: max,
		})
		if len(result.Recommendations) != 0 {
			t.Errorf("max %d: expected empty list, got %d entries", max, len(result.Recommendations))
		}
	}
}

func TestRecommend_BoundedPositiveAndSorted(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(Request{
		Needs:              []string{"onion", "tomato", "potato"},
		Location:           "Mumbai",
		MaxRecommendations: DefaultMaxRecommendations,
	})

	if len(result.Recommendations) > DefaultMaxRecommendations {
		t.Errorf("got %d recommendations, cap is %d", len(result.Recommendations), DefaultMaxRecommendations)
	}
	if len(result.Recommendations) > engine.CatalogSize() {
		t.Errorf("got %d recommendations, catalog has %d suppliers", len(result.Recommendations), engine.CatalogSize())
	}
	if result.TotalFound != len(result.Recommendations) {
		t.Errorf("TotalFound = %d, want %d", result.TotalFound, len(result.Recommendations))
	}
	for i, rec := range result.Recommendations {
		if rec.Score <= 0 {
			t.Errorf("%s: score %.2f is not strictly positive", rec.Name, rec.Score)
		}
		if i > 0 && rec.Score > result.Recommendations[i-1].Score {
			t.Errorf("recommendations not sorted: %s (%.2f) after %s (%.2f)",
				rec.Name, rec.Score, result.Recommendations[i-1].Name, result.Recommendations[i-1].Score)
		}
	}
}

func TestRecommend_MumbaiVegetables(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(Request{
		Needs:              []string{"onion", "tomato", "potato"},
		Location:           "Mumbai",
		MaxRecommendations: DefaultMaxRecommendations,
	})

	if len(result.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	top := result.Recommendations[0]
	if top.Name != "Mumbai Market Hub" {
		t.Fatalf("top recommendation = %q, want Mumbai Market Hub (got %v)", top.Name, names(result.Recommendations))
	}
	if top.Score != 103.6 {
		t.Errorf("Mumbai Market Hub score = %v, want 103.6", top.Score)
	}
	if !reflect.DeepEqual(top.MatchingItems, []string{"onion", "tomato", "potato"}) {
		t.Errorf("MatchingItems = %v, want full coverage in need order", top.MatchingItems)
	}
	if top.CoveragePercentage != 100 {
		t.Errorf("CoveragePercentage = %v, want 100", top.CoveragePercentage)
	}

	second := result.Recommendations[1]
	if second.Name != "Fresh Vegetables Co." {
		t.Errorf("second recommendation = %q, want Fresh Vegetables Co.", second.Name)
	}
	if second.Score != 103.0 {
		t.Errorf("Fresh Vegetables Co. score = %v, want 103.0", second.Score)
	}

	// Any Delhi supplier with the same coverage loses the 40-point exact
	// location factor and must rank below both Mumbai matches.
	for _, rec := range result.Recommendations {
		if rec.Location == "Delhi" && rec.Score >= second.Score {
			t.Errorf("Delhi supplier %s (%.2f) should rank below Mumbai matches", rec.Name, rec.Score)
		}
	}
}

func TestRecommend_DarjeelingSpicesAndTea(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(Request{
		Needs:              []string{"spices", "tea"},
		Location:           "Darjeeling",
		MaxRecommendations: DefaultMaxRecommendations,
	})

	scores := map[string]float64{}
	for _, rec := range result.Recommendations {
		scores[rec.Name] = rec.Score
	}

	// Both Darjeeling suppliers stock spices and tea, so full coverage and
	// the exact-location factor apply to both; the medium price tier puts
	// Organic Foods ahead of the high-tier Spice Traders.
	if got, want := scores["Darjeeling Organic Foods"], 99.6; got != want {
		t.Errorf("Darjeeling Organic Foods score = %v, want %v", got, want)
	}
	if got, want := scores["Darjeeling Spice Traders"], 93.8; got != want {
		t.Errorf("Darjeeling Spice Traders score = %v, want %v", got, want)
	}
	if result.Recommendations[0].Name != "Darjeeling Organic Foods" {
		t.Errorf("top recommendation = %q, want Darjeeling Organic Foods", result.Recommendations[0].Name)
	}
}

func TestRecommend_NearbySuppliersIncluded(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(Request{
		Needs:              []string{"rice"},
		Location:           "Siliguri",
		MaxRecommendations: 12,
	})

	rank := map[string]int{}
	for i, rec := range result.Recommendations {
		rank[rec.Name] = i
	}

	siliguri, ok := rank["Siliguri Fresh Market"]
	if !ok {
		t.Fatal("expected Siliguri Fresh Market in results")
	}
	for _, nearby := range []string{"Jalpaiguri Wholesale Hub", "Cooch Behar Food Supply"} {
		pos, ok := rank[nearby]
		if !ok {
			t.Errorf("expected nearby supplier %s in results", nearby)
			continue
		}
		if pos < siliguri {
			t.Errorf("%s ranked above the exact-location Siliguri match", nearby)
		}
	}
}

func TestRecommend_ZeroCoverageStillListed(t *testing.T) {
	engine := newTestEngine(t)

	// No supplier stocks paneer, but every supplier keeps a positive score
	// from rating/price/delivery, so the whole catalog surfaces. Current
	// behaviour, kept on purpose; only a strictly-positive-score filter
	// applies.
	result := engine.Recommend(Request{
		Needs:              []string{"paneer"},
		Location:           "Mumbai",
		MaxRecommendations: 20,
	})

	if result.TotalFound != engine.CatalogSize() {
		t.Fatalf("TotalFound = %d, want full catalog %d", result.TotalFound, engine.CatalogSize())
	}
	for _, rec := range result.Recommendations {
		if len(rec.MatchingItems) != 0 {
			t.Errorf("%s: unexpected matching items %v", rec.Name, rec.MatchingItems)
		}
		if rec.CoveragePercentage != 0 {
			t.Errorf("%s: coverage = %v, want 0", rec.Name, rec.CoveragePercentage)
		}
		if rec.Score <= 0 {
			t.Errorf("%s: score %v not positive", rec.Name, rec.Score)
		}
	}
}

func TestRecommend_CoverageRounding(t *testing.T) {
	engine := newTestEngine(t)

	// Quality Foods Ltd. stocks rice and oil but not paneer: 2/3 coverage.
	result := engine.Recommend(Request{
		Needs:              []string{"rice", "oil", "paneer"},
		Location:           "Mumbai",
		MaxRecommendations: 12,
	})

	for _, rec := range result.Recommendations {
		if rec.Name != "Quality Foods Ltd." {
			continue
		}
		if !reflect.DeepEqual(rec.MatchingItems, []string{"rice", "oil"}) {
			t.Errorf("MatchingItems = %v, want [rice oil]", rec.MatchingItems)
		}
		if rec.CoveragePercentage != 66.7 {
			t.Errorf("CoveragePercentage = %v, want 66.7", rec.CoveragePercentage)
		}
		return
	}
	t.Fatal("Quality Foods Ltd. not found in results")
}

func TestRecommend_CaseInsensitiveMatching(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(Request{
		Needs:              []string{"ONION", "Tomato"},
		Location:           "mumbai",
		MaxRecommendations: 1,
	})

	if len(result.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(result.Recommendations))
	}
	top := result.Recommendations[0]
	if top.Location != "Mumbai" {
		t.Errorf("top location = %q, want exact Mumbai match", top.Location)
	}
	// Matching items echo the vendor's own spelling, not the catalog's.
	if !reflect.DeepEqual(top.MatchingItems, []string{"ONION", "Tomato"}) {
		t.Errorf("MatchingItems = %v, want vendor casing preserved", top.MatchingItems)
	}
}

func TestRecommend_NoFuzzyMatching(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(Request{
		Needs:              []string{"tomatoes"},
		Location:           "Mumbai",
		MaxRecommendations: 12,
	})

	for _, rec := range result.Recommendations {
		if len(rec.MatchingItems) != 0 {
			t.Errorf("%s matched %v; \"tomatoes\" must not match \"tomato\"", rec.Name, rec.MatchingItems)
		}
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	engine := newTestEngine(t)
	req := Request{
		Needs:              []string{"rice", "flour", "oil"},
		Location:           "Delhi",
		MaxRecommendations: DefaultMaxRecommendations,
	}

	first := engine.Recommend(req)
	second := engine.Recommend(req)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests against an unchanged catalog returned different results")
	}
}

func TestRecommend_TieBreakByID(t *testing.T) {
	twin := func(id int, name string) models.Supplier {
		return models.Supplier{
			ID:           id,
			Name:         name,
			Location:     "Mumbai",
			Items:        []string{"onion"},
			Rating:       4.0,
			TotalRatings: 30,
			PriceRange:   models.PriceRangeMedium,
			DeliveryTime: models.DeliverySameDay,
		}
	}
	engine, err := New(context.Background(), NewStaticSource([]models.Supplier{
		twin(7, "Later Twin"),
		twin(2, "Earlier Twin"),
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := engine.Recommend(Request{
		Needs:              []string{"onion"},
		Location:           "Mumbai",
		MaxRecommendations: DefaultMaxRecommendations,
	})

	if got := names(result.Recommendations); !reflect.DeepEqual(got, []string{"Earlier Twin", "Later Twin"}) {
		t.Errorf("equal scores should order by id ascending, got %v", got)
	}
}

func TestScore_Factors(t *testing.T) {
	engine := newTestEngine(t)

	base := models.Supplier{
		ID:       99,
		Name:     "Probe",
		Location: "Thane",
		Items:    []string{"onion"},
	}

	tests := []struct {
		name     string
		mutate   func(*models.Supplier)
		needs    []string
		location string
		want     float64
	}{
		{
			// unknown price/delivery fall back to the middle score (3)
			name:     "nearby location only",
			needs:    []string{"ginger"},
			location: "Mumbai",
			want:     20 + 0 + 0 + 9 + 6 + 0,
		},
		{
			name:     "exact location beats nearby",
			mutate:   func(s *models.Supplier) { s.Location = "Mumbai" },
			needs:    []string{"ginger"},
			location: "Mumbai",
			want:     40 + 9 + 6,
		},
		{
			name:     "full coverage",
			needs:    []string{"onion"},
			location: "Mumbai",
			want:     20 + 30 + 9 + 6,
		},
		{
			name:     "rating doubled",
			mutate:   func(s *models.Supplier) { s.Rating = 4.5 },
			needs:    []string{"ginger"},
			location: "Mumbai",
			want:     20 + 9 + 9 + 6,
		},
		{
			name:     "low price tier",
			mutate:   func(s *models.Supplier) { s.PriceRange = models.PriceRangeLow },
			needs:    []string{"ginger"},
			location: "Mumbai",
			want:     20 + 15 + 6,
		},
		{
			name:     "within week delivery",
			mutate:   func(s *models.Supplier) { s.DeliveryTime = models.DeliveryWithinWeek },
			needs:    []string{"ginger"},
			location: "Mumbai",
			want:     20 + 9 + 2,
		},
		{
			name:     "reliability bonus above 20",
			mutate:   func(s *models.Supplier) { s.TotalRatings = 21 },
			needs:    []string{"ginger"},
			location: "Mumbai",
			want:     20 + 9 + 6 + 5,
		},
		{
			name:     "reliability bonus above 10",
			mutate:   func(s *models.Supplier) { s.TotalRatings = 11 },
			needs:    []string{"ginger"},
			location: "Mumbai",
			want:     20 + 9 + 6 + 3,
		},
		{
			name:     "no reliability bonus at 10",
			mutate:   func(s *models.Supplier) { s.TotalRatings = 10 },
			needs:    []string{"ginger"},
			location: "Mumbai",
			want:     20 + 9 + 6,
		},
		{
			name:     "unrelated city",
			needs:    []string{"ginger"},
			location: "Chennai",
			want:     9 + 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sup := base
			sup.Items = append([]string(nil), base.Items...)
			if tt.mutate != nil {
				tt.mutate(&sup)
			}
			if got := engine.Score(sup, tt.needs, tt.location); got != tt.want {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

type failingSource struct{ err error }

func (f failingSource) FetchAll(ctx context.Context) ([]models.Supplier, error) {
	return nil, f.err
}

func TestNew_SourceFailure(t *testing.T) {
	_, err := New(context.Background(), failingSource{err: errors.New("connection refused")})
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("err = %v, want ErrCatalogUnavailable", err)
	}
}

func TestNew_EmptyCatalog(t *testing.T) {
	_, err := New(context.Background(), NewStaticSource(nil))
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("err = %v, want ErrCatalogUnavailable", err)
	}
}

type flakySource struct {
	suppliers []models.Supplier
	fail      bool
}

func (f *flakySource) FetchAll(ctx context.Context) ([]models.Supplier, error) {
	if f.fail {
		return nil, errors.New("temporary outage")
	}
	return f.suppliers, nil
}

func TestRefresh_KeepsSnapshotOnFailure(t *testing.T) {
	source := &flakySource{suppliers: SampleCatalog()}
	engine, err := New(context.Background(), source)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	source.fail = true
	if err := engine.Refresh(context.Background()); !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatalf("Refresh err = %v, want ErrCatalogUnavailable", err)
	}

	// The previous snapshot must still serve reads.
	result := engine.Recommend(Request{
		Needs:              []string{"onion"},
		Location:           "Mumbai",
		MaxRecommendations: 1,
	})
	if result.TotalFound != 1 {
		t.Errorf("TotalFound = %d after failed refresh, want 1", result.TotalFound)
	}
}

func TestRefresh_PublishesNewCatalog(t *testing.T) {
	source := &flakySource{suppliers: SampleCatalog()}
	engine, err := New(context.Background(), source)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	source.suppliers = []models.Supplier{{
		ID:           50,
		Name:         "Chennai Greens",
		Location:     "Chennai",
		Items:        []string{"okra"},
		Rating:       4.1,
		TotalRatings: 5,
		PriceRange:   models.PriceRangeLow,
		DeliveryTime: models.DeliverySameDay,
	}}
	if err := engine.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if size := engine.CatalogSize(); size != 1 {
		t.Fatalf("CatalogSize = %d after refresh, want 1", size)
	}
	result := engine.Recommend(Request{
		Needs:              []string{"okra"},
		Location:           "Chennai",
		MaxRecommendations: DefaultMaxRecommendations,
	})
	if result.TotalFound != 1 || result.Recommendations[0].Name != "Chennai Greens" {
		t.Errorf("expected the refreshed catalog to serve reads, got %v", names(result.Recommendations))
	}
}
