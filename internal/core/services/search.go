package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/srgjo27/bus_booking/internal/core/domain"
	"github.com/srgjo27/bus_booking/internal/core/ports"
)

// SortMode orders a result list for display.
type SortMode string

const (
	SortRecommended SortMode = "recommended"
	SortFareAsc     SortMode = "fare_asc"
	SortFareDesc    SortMode = "fare_desc"
	SortDepartAsc   SortMode = "depart_asc"
	SortDepartDesc  SortMode = "depart_desc"
	SortRatingDesc  SortMode = "rating_desc"
)

// SortLabel returns the display name of a sort mode.
func SortLabel(mode SortMode) string {
	switch mode {
	case SortFareAsc:
		return "Fare: Low to High"
	case SortFareDesc:
		return "Fare: High to Low"
	case SortDepartAsc:
		return "Departure: Early to Late"
	case SortDepartDesc:
		return "Departure: Late to Early"
	case SortRatingDesc:
		return "Ratings: High to Low"
	default:
		return "Recommended"
	}
}

// BusResult is a Bus annotated with display-only enrichment. The
// enrichment is computed once per search and cached on the result for
// the lifetime of that result set.
type BusResult struct {
	domain.Bus
	Rating      float64
	RatingCount int
	Bestseller  bool
	Trusted     bool
	OnTime      bool
	Amenities   []string
}

// SearchService performs bus searches against the trip service, with an
// optional response cache in front and enrichment on the way out.
type SearchService struct {
	api      ports.TripService
	cache    ports.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewSearchService builds a SearchService. cache may be nil, in which
// case every search hits the trip service.
func NewSearchService(api ports.TripService, cache ports.Cache, cacheTTL time.Duration, logger *zap.Logger) *SearchService {
	return &SearchService{api: api, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Search runs a filtered bus search and returns enriched results. Cache
// failures degrade to the uncached path; only the trip-service call
// itself can fail the search.
func (s *SearchService) Search(ctx context.Context, query ports.SearchQuery) ([]BusResult, error) {
	key := searchCacheKey(query)
	if buses, ok := s.cachedBuses(ctx, key); ok {
		return enrich(buses), nil
	}
	buses, err := s.api.SearchBuses(ctx, query)
	if err != nil {
		return nil, err
	}
	s.storeBuses(ctx, key, buses)
	return enrich(buses), nil
}

func (s *SearchService) cachedBuses(ctx context.Context, key string) ([]domain.Bus, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != ports.ErrCacheMiss {
			s.logger.Warn("search cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var buses []domain.Bus
	if err := json.Unmarshal(raw, &buses); err != nil {
		s.logger.Warn("search cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	s.logger.Debug("search cache hit", zap.String("key", key), zap.Int("results", len(buses)))
	return buses, true
}

func (s *SearchService) storeBuses(ctx context.Context, key string, buses []domain.Bus) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(buses)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn("search cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func searchCacheKey(q ports.SearchQuery) string {
	return "buses:" + strings.Join([]string{q.From, q.To, q.Date, q.Operator, q.Type, q.FareMin, q.FareMax}, "|")
}

func enrich(buses []domain.Bus) []BusResult {
	results := make([]BusResult, 0, len(buses))
	for _, bus := range buses {
		results = append(results, BusResult{
			Bus:         bus,
			Rating:      domain.MockRating(bus),
			RatingCount: domain.MockRatingCount(bus),
			Bestseller:  domain.IsBestseller(bus),
			Trusted:     domain.IsTrusted(bus),
			OnTime:      domain.IsOnTime(bus),
			Amenities:   domain.Amenities(bus),
		})
	}
	return results
}

// Sort returns a copy of results ordered by the given mode. Recommended
// keeps the service's order.
func Sort(results []BusResult, mode SortMode) []BusResult {
	sorted := append([]BusResult(nil), results...)
	switch mode {
	case SortFareAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Fare < sorted[j].Fare })
	case SortFareDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Fare > sorted[j].Fare })
	case SortDepartAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return domain.ParseDepartTime(sorted[i].DepartTime).Before(domain.ParseDepartTime(sorted[j].DepartTime))
		})
	case SortDepartDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return domain.ParseDepartTime(sorted[j].DepartTime).Before(domain.ParseDepartTime(sorted[i].DepartTime))
		})
	case SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	}
	return sorted
}
