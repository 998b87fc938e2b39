package engine

// TransTable memoizes node scores keyed by placement hash. One table is
// created fresh per top-level search call and never shared across calls or
// concurrent searches; growth is bounded only by the breadth of that one
// search. Distinct positions that hash identically silently share a score.
type TransTable struct {
	entries map[uint64]int
}

// NewTransTable returns an empty table.
func NewTransTable() *TransTable {
	return &TransTable{entries: make(map[uint64]int)}
}

// Get returns the cached score for hash, if any.
func (tt *TransTable) Get(hash uint64) (int, bool) {
	score, ok := tt.entries[hash]
	return score, ok
}

// Set stores or overwrites the score for hash.
func (tt *TransTable) Set(hash uint64, score int) {
	tt.entries[hash] = score
}

// Len returns the number of cached positions.
func (tt *TransTable) Len() int { return len(tt.entries) }
