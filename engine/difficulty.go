package engine

// Difficulty selects how deep the automated opponent searches. Depths stay
// small: the search runs the full tree with no time cutoff, so depth is
// the only bound on worst-case latency.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Depth returns the search depth in plies for the tier. Unknown tiers fall
// back to Easy.
func (d Difficulty) Depth() int {
	switch d {
	case Medium:
		return 3
	case Hard:
		return 4
	default:
		return 2
	}
}

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}
