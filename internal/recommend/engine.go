package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/saathi-app/saathi/internal/models"
)

// DefaultMaxRecommendations is the result cap applied when the caller does
// not ask for a specific one.
const DefaultMaxRecommendations = 5

// Scoring weights. Location dominates, then item coverage, then the softer
// signals (rating, price tier, delivery window, reliability).
const (
	exactLocationScore  = 40.0
	nearbyLocationScore = 20.0
	coverageWeight      = 30.0
	ratingWeight        = 2.0
	priceWeight         = 3.0
	deliveryWeight      = 2.0
)

var priceScores = map[models.PriceRange]float64{
	models.PriceRangeLow:    5,
	models.PriceRangeMedium: 3,
	models.PriceRangeHigh:   1,
}

var deliveryScores = map[models.DeliveryTime]float64{
	models.DeliverySameDay:    5,
	models.DeliveryNextDay:    3,
	models.DeliveryWithinWeek: 1,
}

// Engine ranks the supplier catalog against a vendor's needs. The catalog is
// loaded once at construction and replaced wholesale on Refresh, so scoring
// never observes a partially updated entry and reads need no locking.
type Engine struct {
	source  CatalogSource
	nearby  NearbyIndex
	catalog atomic.Pointer[snapshot]
}

// New creates an engine and loads the catalog from source. A source failure
// or an empty catalog is reported as ErrCatalogUnavailable; the engine never
// starts silently empty.
func New(ctx context.Context, source CatalogSource) (*Engine, error) {
	e := &Engine{
		source: source,
		nearby: DefaultNearby(),
	}
	if err := e.Refresh(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Refresh re-reads the catalog from the source and publishes it as a new
// snapshot. On failure the previous snapshot stays in place.
func (e *Engine) Refresh(ctx context.Context) error {
	suppliers, err := e.source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if len(suppliers) == 0 {
		return fmt.Errorf("%w: source returned no suppliers", ErrCatalogUnavailable)
	}
	e.catalog.Store(buildSnapshot(suppliers))
	return nil
}

// CatalogSize returns the number of suppliers in the current snapshot.
func (e *Engine) CatalogSize() int {
	return len(e.catalog.Load().entries)
}

// Request is one recommendation call: what the vendor needs, where they are,
// and how many results to return at most. MaxRecommendations <= 0 yields an
// empty result; callers wanting the default pass DefaultMaxRecommendations.
type Request struct {
	Needs              []string `json:"needs"`
	Location           string   `json:"location"`
	MaxRecommendations int      `json:"max_recommendations"`
}

// Recommendation is one scored, annotated supplier in a result.
type Recommendation struct {
	ID                 int                 `json:"id"`
	Name               string              `json:"name"`
	Location           string              `json:"location"`
	Rating             float64             `json:"rating"`
	TotalRatings       int                 `json:"total_ratings"`
	PriceRange         models.PriceRange   `json:"price_range"`
	DeliveryTime       models.DeliveryTime `json:"delivery_time"`
	Description        string              `json:"description"`
	Score              float64             `json:"score"`
	MatchingItems      []string            `json:"matching_items"`
	CoveragePercentage float64             `json:"coverage_percentage"`
}

// Result is the full response for one recommendation call.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	TotalFound      int              `json:"total_found"`
	VendorNeeds     []string         `json:"vendor_needs"`
	VendorLocation  string           `json:"vendor_location"`
}

// Recommend scores every catalog supplier against the request, keeps those
// with a strictly positive score, and returns them ordered by score
// descending (ties broken by supplier id ascending, so ranking is
// reproducible). Suppliers with zero item coverage still appear when their
// location/rating score is positive; that matches the behaviour vendors see
// today and is covered by an explicit test.
func (e *Engine) Recommend(req Request) Result {
	result := Result{
		Recommendations: []Recommendation{},
		VendorNeeds:     req.Needs,
		VendorLocation:  req.Location,
	}
	if len(req.Needs) == 0 || req.MaxRecommendations <= 0 {
		return result
	}

	needs := foldNeeds(req.Needs)
	location := strings.ToLower(strings.TrimSpace(req.Location))
	snap := e.catalog.Load()

	type scored struct {
		entry    *entry
		score    float64
		matching []string
	}
	candidates := make([]scored, 0, len(snap.entries))
	for i := range snap.entries {
		ent := &snap.entries[i]
		score, matching := e.scoreEntry(ent, req.Needs, needs, location)
		if score > 0 {
			candidates = append(candidates, scored{entry: ent, score: score, matching: matching})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].entry.supplier.ID < candidates[j].entry.supplier.ID
	})

	if len(candidates) > req.MaxRecommendations {
		candidates = candidates[:req.MaxRecommendations]
	}

	for _, cand := range candidates {
		sup := cand.entry.supplier
		coverage := float64(len(cand.matching)) / float64(len(req.Needs)) * 100
		result.Recommendations = append(result.Recommendations, Recommendation{
			ID:                 sup.ID,
			Name:               sup.Name,
			Location:           sup.Location,
			Rating:             sup.Rating,
			TotalRatings:       sup.TotalRatings,
			PriceRange:         sup.PriceRange,
			DeliveryTime:       sup.DeliveryTime,
			Description:        sup.Description,
			Score:              round(cand.score, 2),
			MatchingItems:      cand.matching,
			CoveragePercentage: round(coverage, 1),
		})
	}
	result.TotalFound = len(result.Recommendations)
	return result
}

// Score computes the raw (unrounded) score one supplier would receive for
// the given needs and location. It is a pure function of its inputs and the
// adjacency table.
func (e *Engine) Score(sup models.Supplier, needs []string, location string) float64 {
	snap := buildSnapshot([]models.Supplier{sup})
	score, _ := e.scoreEntry(&snap.entries[0], needs, foldNeeds(needs),
		strings.ToLower(strings.TrimSpace(location)))
	return score
}

// scoreEntry returns the entry's score plus the subset of rawNeeds the
// supplier can fulfil, in the vendor's original order. foldedNeeds must be
// the lowercased form of rawNeeds, index for index.
func (e *Engine) scoreEntry(ent *entry, rawNeeds, foldedNeeds []string, location string) (float64, []string) {
	var score float64

	// Location: exact match wins, otherwise the adjacency table. Mutually
	// exclusive by construction.
	switch {
	case ent.location != "" && ent.location == location:
		score += exactLocationScore
	case e.nearby.Nearby(ent.supplier.Location, location):
		score += nearbyLocationScore
	}

	matching := make([]string, 0, len(rawNeeds))
	for i, folded := range foldedNeeds {
		if ent.hasItem(folded) {
			matching = append(matching, rawNeeds[i])
		}
	}
	coverage := float64(len(matching)) / float64(len(rawNeeds))
	score += coverage * coverageWeight

	score += ent.supplier.Rating * ratingWeight
	score += priceScore(ent.supplier.PriceRange) * priceWeight
	score += deliveryScore(ent.supplier.DeliveryTime) * deliveryWeight
	score += reliabilityBonus(ent.supplier.TotalRatings)

	return score, matching
}

func priceScore(p models.PriceRange) float64 {
	if s, ok := priceScores[p]; ok {
		return s
	}
	return 3
}

func deliveryScore(d models.DeliveryTime) float64 {
	if s, ok := deliveryScores[d]; ok {
		return s
	}
	return 3
}

func reliabilityBonus(totalRatings int) float64 {
	switch {
	case totalRatings > 20:
		return 5
	case totalRatings > 10:
		return 3
	default:
		return 0
	}
}

func foldNeeds(needs []string) []string {
	folded := make([]string, len(needs))
	for i, need := range needs {
		folded[i] = strings.ToLower(strings.TrimSpace(need))
	}
	return folded
}

func round(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
