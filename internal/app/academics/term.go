package academics

import (
	"fmt"
	"time"
)

// TermFor returns the semester label for a point in time: Fall from August
// onward, Summer from May, Spring otherwise, suffixed with the year.
//
// The engine itself never consults the wall clock; entities carry an injected
// current-term label so every date-dependent rule stays deterministic. This
// helper exists for callers that want wall-clock behavior at the edge.
func TermFor(t time.Time) string {
	year := t.Year()
	switch {
	case t.Month() >= time.August:
		return fmt.Sprintf("Fall %d", year)
	case t.Month() >= time.May:
		return fmt.Sprintf("Summer %d", year)
	default:
		return fmt.Sprintf("Spring %d", year)
	}
}
