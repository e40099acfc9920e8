// Package airports provides the static airport, nearby-airport, and hub
// tables that the analyzers consume. The table is constructed explicitly at
// startup and passed to components; there is no lazy global state.
package airports

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Info describes a single airport.
type Info struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Name    string `json:"name"`
	Region  string `json:"region"`
}

// Table is an immutable lookup table of airport metadata.
type Table struct {
	airports map[string]Info
}

// airportsFile is the on-disk shape of an airport database file.
type airportsFile struct {
	Airports map[string]Info `json:"airports"`
}

// builtin is the two-entry fallback used when no database file is available.
func builtin() map[string]Info {
	return map[string]Info{
		"FRA": {City: "Frankfurt", Country: "DE", Name: "Frankfurt Airport", Region: "Europe"},
		"JFK": {City: "New York", Country: "US", Name: "John F. Kennedy Intl", Region: "North America"},
	}
}

// NewTable builds a table from an explicit airport mapping. Codes are
// normalized to upper case.
func NewTable(airports map[string]Info) *Table {
	m := make(map[string]Info, len(airports))
	for code, info := range airports {
		m[strings.ToUpper(code)] = info
	}
	return &Table{airports: m}
}

// Builtin returns the built-in fallback table.
func Builtin() *Table {
	return NewTable(builtin())
}

// Load reads an airport database file. A missing file is not an error: the
// built-in fallback table is returned instead.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Builtin(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading airport database: %w", err)
	}

	var file airportsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing airport database: %w", err)
	}
	if len(file.Airports) == 0 {
		return Builtin(), nil
	}
	return NewTable(file.Airports), nil
}

// Lookup returns airport metadata for a code. The second return is false for
// unknown codes.
func (t *Table) Lookup(code string) (Info, bool) {
	info, ok := t.airports[strings.ToUpper(code)]
	return info, ok
}

// Country returns the airport's country code, or "" when unknown.
func (t *Table) Country(code string) string {
	info, ok := t.Lookup(code)
	if !ok {
		return ""
	}
	return info.Country
}

// FormatRoute renders a route as "City (CODE) -> City (CODE)", falling back
// to the raw code when the airport is unknown.
func (t *Table) FormatRoute(origin, destination string) string {
	return fmt.Sprintf("%s → %s", t.describe(origin), t.describe(destination))
}

func (t *Table) describe(code string) string {
	if info, ok := t.Lookup(code); ok {
		return fmt.Sprintf("%s (%s)", info.City, strings.ToUpper(code))
	}
	return strings.ToUpper(code)
}

// SearchResult is one match from Search.
type SearchResult struct {
	Code string `json:"code"`
	Info
}

// Search matches airports by code, city, or name substring, returning at
// most ten results.
func (t *Table) Search(query string) []SearchResult {
	query = strings.ToUpper(query)
	var results []SearchResult
	for code, info := range t.airports {
		if strings.Contains(code, query) ||
			strings.Contains(strings.ToUpper(info.City), query) ||
			strings.Contains(strings.ToUpper(info.Name), query) {
			results = append(results, SearchResult{Code: code, Info: info})
			if len(results) == 10 {
				break
			}
		}
	}
	return results
}
