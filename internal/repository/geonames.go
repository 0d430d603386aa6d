package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"cities-api/internal/models"
)

// Positional columns of the GeoNames tab-delimited city dump. The timezone is
// addressed from the end of the row because trailing columns were appended to
// the format over time.
const (
	colName = 1
	colLat  = 4
	colLng  = 5
	colLoc  = 8
	colPop  = 14

	// minColumns guarantees every positional index above and the
	// second-to-last timezone column exist.
	minColumns = 15
)

// ParseError reports a malformed field in the source file, naming the line it
// appeared on. The load is fail-fast: the first bad record aborts startup.
type ParseError struct {
	Line  int
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("repository: line %d: invalid %s %q", e.Line, e.Field, e.Value)
}

// GeoNamesRepository serves the city table parsed from a GeoNames dump file.
// The file is read and parsed at most once per process; every call after the
// first returns the cached table. Concurrent first callers wait on the same
// parse and observe its single result.
type GeoNamesRepository struct {
	path string

	once   sync.Once
	cities []models.City
	err    error
}

// NewGeoNamesRepository creates a repository backed by the dump file at path.
// The file is not touched until the first call to Cities.
func NewGeoNamesRepository(path string) *GeoNamesRepository {
	return &GeoNamesRepository{path: path}
}

// Cities returns the full city table, loading it on first use. The returned
// slice is shared across callers and must be treated as read-only.
func (r *GeoNamesRepository) Cities(_ context.Context) ([]models.City, error) {
	r.once.Do(func() {
		r.cities, r.err = r.load()
	})
	return r.cities, r.err
}

func (r *GeoNamesRepository) load() ([]models.City, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open data file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1 // trailing columns vary between dumps
	reader.LazyQuotes = true    // city names may contain unescaped quotes

	var cities []models.City
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("repository: failed to read record: %w", err)
		}

		if len(row) < minColumns {
			return nil, &ParseError{Line: line, Field: "record", Value: fmt.Sprintf("%d columns", len(row))}
		}

		lat, err := strconv.ParseFloat(row[colLat], 64)
		if err != nil {
			return nil, &ParseError{Line: line, Field: "latitude", Value: row[colLat]}
		}

		lng, err := strconv.ParseFloat(row[colLng], 64)
		if err != nil {
			return nil, &ParseError{Line: line, Field: "longitude", Value: row[colLng]}
		}

		pop := 0
		if row[colPop] != "" {
			pop, err = strconv.Atoi(row[colPop])
			if err != nil {
				return nil, &ParseError{Line: line, Field: "population", Value: row[colPop]}
			}
		}

		cities = append(cities, models.City{
			Name: row[colName],
			Lat:  lat,
			Lng:  lng,
			Tz:   row[len(row)-2],
			Pop:  pop,
			Loc:  row[colLoc],
		})
	}

	return cities, nil
}
