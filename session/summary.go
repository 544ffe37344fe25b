package session

import (
	"fmt"

	"github.com/multa-cli/multa/card"
)

// Summary counts the graded answers of one run.
type Summary struct {
	OK int
	KO int
}

// Count records one graded answer.
func (s *Summary) Count(rating card.Rating) {
	if rating == card.Good {
		s.OK++
	} else {
		s.KO++
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Summary: %d OK%s; %d KO%s", s.OK, plural(s.OK), s.KO, plural(s.KO))
}

func plural(x int) string {
	if x > 1 {
		return "(s)"
	}
	return ""
}
