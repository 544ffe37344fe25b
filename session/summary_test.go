package session

import (
	"testing"

	"github.com/multa-cli/multa/card"
)

func TestSummaryCount(t *testing.T) {
	var s Summary
	s.Count(card.Good)
	s.Count(card.Good)
	s.Count(card.Bad)

	if s.OK != 2 || s.KO != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
}

func TestSummaryString(t *testing.T) {
	cases := []struct {
		summary  Summary
		expected string
	}{
		{Summary{}, "Summary: 0 OK; 0 KO"},
		{Summary{OK: 1, KO: 1}, "Summary: 1 OK; 1 KO"},
		{Summary{OK: 2, KO: 3}, "Summary: 2 OK(s); 3 KO(s)"},
	}
	for _, c := range cases {
		if c.summary.String() != c.expected {
			t.Fatalf("unexpected summary: %s", c.summary)
		}
	}
}
