package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cities-api/internal/fuzzy"
	"cities-api/internal/models"
)

// Sort keys accepted by Search, one per City field. Anything else is rejected
// with ErrInvalidSortKey rather than producing an undefined ordering.
const (
	SortByName = "name"
	SortByLat  = "lat"
	SortByLng  = "lng"
	SortByTz   = "tz"
	SortByPop  = "pop"
	SortByLoc  = "loc"
)

// OrderDesc is the only order value that reverses a sort; every other value,
// including the empty string, sorts ascending.
const OrderDesc = "desc"

var (
	// ErrNoFilter is returned when a search supplies none of the filter
	// parameters.
	ErrNoFilter = errors.New("service: at least one filter (q, tz or min_pop) is required")

	// ErrInvalidSortKey is returned when the sort key does not name a City
	// field.
	ErrInvalidSortKey = errors.New("service: unknown sort key")
)

// SearchCriteria carries the per-request filter, sort and pagination
// parameters. A zero Query or Timezone means the filter is absent; MinPop is
// a pointer so that an explicit 0 still counts as a filter.
type SearchCriteria struct {
	Query    string
	Timezone string
	MinPop   *int
	SortKey  string
	Order    string
	Limit    int
	Offset   int
}

// Repository interface for dependency injection
type CityRepository interface {
	Cities(ctx context.Context) ([]models.City, error)
}

// CityService contains the core query pipeline: filter, sort, paginate.
type CityService struct {
	repo CityRepository
}

// NewCityService creates a new city service
func NewCityService(repo CityRepository) *CityService {
	return &CityService{repo: repo}
}

// Search applies the fuzzy name, timezone and minimum population filters in
// sequence, then stable-sorts by the requested key and slices out the page.
// Offset and limit address the filtered and sorted set, clamped to its bounds
// like slice indices, so out-of-range values yield a short or empty page
// rather than an error.
func (s *CityService) Search(ctx context.Context, criteria SearchCriteria) ([]models.City, error) {
	if criteria.Query == "" && criteria.Timezone == "" && criteria.MinPop == nil {
		return nil, ErrNoFilter
	}

	less, err := comparatorFor(criteria.SortKey)
	if err != nil {
		return nil, err
	}

	cities, err := s.repo.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cities: %w", err)
	}

	matched := make([]models.City, 0, len(cities))
	for _, city := range cities {
		if criteria.Query != "" && !fuzzy.Match(criteria.Query, city.Name) {
			continue
		}
		if criteria.Timezone != "" && city.Tz != criteria.Timezone {
			continue
		}
		if criteria.MinPop != nil && city.Pop < *criteria.MinPop {
			continue
		}
		matched = append(matched, city)
	}

	if less != nil {
		if criteria.Order == OrderDesc {
			asc := less
			less = func(a, b models.City) bool { return asc(b, a) }
		}
		sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })
	}

	return paginate(matched, criteria.Offset, criteria.Limit), nil
}

// comparatorFor maps a sort key to its ascending comparator. The empty key
// means no sorting and yields a nil comparator.
func comparatorFor(key string) (func(a, b models.City) bool, error) {
	switch key {
	case "":
		return nil, nil
	case SortByName:
		return func(a, b models.City) bool { return a.Name < b.Name }, nil
	case SortByLat:
		return func(a, b models.City) bool { return a.Lat < b.Lat }, nil
	case SortByLng:
		return func(a, b models.City) bool { return a.Lng < b.Lng }, nil
	case SortByTz:
		return func(a, b models.City) bool { return a.Tz < b.Tz }, nil
	case SortByPop:
		return func(a, b models.City) bool { return a.Pop < b.Pop }, nil
	case SortByLoc:
		return func(a, b models.City) bool { return a.Loc < b.Loc }, nil
	default:
		return nil, ErrInvalidSortKey
	}
}

func paginate(cities []models.City, offset, limit int) []models.City {
	if offset < 0 {
		offset = 0
	}
	if offset > len(cities) {
		offset = len(cities)
	}
	if limit < 0 {
		limit = 0
	}
	// Compare instead of adding offset+limit: the sum can overflow for huge
	// limits, and clamping must never panic.
	if limit > len(cities)-offset {
		limit = len(cities) - offset
	}
	return cities[offset : offset+limit]
}
