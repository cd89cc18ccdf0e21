package session

// DefaultMaxInteractions is the follow-up cap per analysis.
const DefaultMaxInteractions = 3

// Budget tracks how many follow-ups remain for an analysis. The count itself
// is held by the client and echoed on every request.
type Budget struct {
	Cap int
}

func NewBudget(limit int) Budget {
	if limit < 0 {
		limit = 0
	}
	return Budget{Cap: limit}
}

// Remaining is cap - count, never below zero.
func (b Budget) Remaining(count int) int {
	if count < 0 {
		count = 0
	}
	if r := b.Cap - count; r > 0 {
		return r
	}
	return 0
}

func (b Budget) Exhausted(count int) bool {
	return count >= b.Cap
}
