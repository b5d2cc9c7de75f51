package data

import "sort"

// Row is one flattened observation row of a statistical dataset. Value
// columns are arbitrary; an outlierness sidecar may exist per value column.
type Row struct {
	Location      string
	LocationType  string
	Timestamp     string
	TimestampType string
	Agent         string
	AgentType     string
	Values        map[string]float64
	Outlierness   map[string]float64
}

// OutliernessFor returns the outlierness sidecar for a value column,
// falling back to the grouped-by-time sidecar when the plain one is absent.
func (r Row) OutliernessFor(col string) (float64, bool) {
	if v, ok := r.Outlierness[col]; ok && v != 0 {
		return v, true
	}
	if v, ok := r.Outlierness[col+":grouped_by_time"]; ok {
		return v, true
	}
	return 0, false
}

// Store is a read-only source of dataset rows. Data is pre-loaded; all
// methods are cheap and safe for concurrent use.
type Store interface {
	// All returns every row in the dataset.
	All() []Row
	// Query returns the rows matching the predicate.
	Query(pred func(Row) bool) []Row
	// Locations returns the distinct locations present, sorted.
	Locations() []string
}

// MemoryStore is an immutable in-memory Store.
type MemoryStore struct {
	rows []Row
}

// NewMemoryStore wraps rows into a store.
func NewMemoryStore(rows []Row) *MemoryStore {
	return &MemoryStore{rows: rows}
}

// All returns every row.
func (s *MemoryStore) All() []Row {
	return s.rows
}

// Query returns the rows matching the predicate.
func (s *MemoryStore) Query(pred func(Row) bool) []Row {
	var out []Row
	for _, r := range s.rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Locations returns the distinct locations present, sorted.
func (s *MemoryStore) Locations() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range s.rows {
		if !seen[r.Location] {
			seen[r.Location] = true
			out = append(out, r.Location)
		}
	}
	sort.Strings(out)
	return out
}
