package card

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
)

// Factors is a single multiplication fact.
type Factors struct {
	X uint8
	Y uint8
}

// Compute returns the product of the two factors.
func (f Factors) Compute() uint8 {
	return f.X * f.Y
}

func (f Factors) String() string {
	return fmt.Sprintf("%d x %d", f.X, f.Y)
}

// MarshalJSON encodes the fact as a two-element array, the layout used by the
// save files.
func (f Factors) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint8{f.X, f.Y})
}

func (f *Factors) UnmarshalJSON(data []byte) error {
	var pair [2]uint8
	if err := json.Unmarshal(data, &pair); err != nil {
		return eris.Wrap(err, "invalid factors")
	}
	f.X, f.Y = pair[0], pair[1]
	return nil
}

// Kind describes how far along a card is.
type Kind uint8

const (
	Unseen Kind = iota
	Learning
	Learned
)

// Status tracks a card's progress. Due is the session tick at which a
// Learning or Learned card comes up again; it is meaningless for Unseen.
type Status struct {
	Kind Kind
	Due  uint32
}

// MarshalJSON encodes the status the way the save files expect it:
// "Unseen" as a bare string, the other kinds tagged with their due tick,
// e.g. {"Learning":5}.
func (s Status) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case Unseen:
		return json.Marshal("Unseen")
	case Learning:
		return json.Marshal(map[string]uint32{"Learning": s.Due})
	case Learned:
		return json.Marshal(map[string]uint32{"Learned": s.Due})
	}
	return nil, eris.Errorf("unknown status kind %d", s.Kind)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "Unseen" {
			return eris.Errorf("unknown status %q", name)
		}
		*s = Status{Kind: Unseen}
		return nil
	}

	var tagged map[string]uint32
	if err := json.Unmarshal(data, &tagged); err != nil {
		return eris.Wrap(err, "invalid status")
	}
	if due, ok := tagged["Learning"]; ok && len(tagged) == 1 {
		*s = Status{Kind: Learning, Due: due}
		return nil
	}
	if due, ok := tagged["Learned"]; ok && len(tagged) == 1 {
		*s = Status{Kind: Learned, Due: due}
		return nil
	}
	return eris.New("invalid status object")
}

// Rating is the grade given to an answer.
type Rating uint8

const (
	Good Rating = iota
	Bad
)

func (r Rating) String() string {
	if r == Good {
		return "Good"
	}
	return "Bad"
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return eris.Wrap(err, "invalid rating")
	}
	switch name {
	case "Good":
		*r = Good
	case "Bad":
		*r = Bad
	default:
		return eris.Errorf("unknown rating %q", name)
	}
	return nil
}

// Card is one multiplication fact together with its scheduling state.
type Card struct {
	Value      Factors `json:"value"`
	Interval   uint32  `json:"interval"`
	Status     Status  `json:"status"`
	LastResult *Rating `json:"last_result"`
	LastSeen   *uint64 `json:"last_seen"`
}

// New returns a fresh, unseen card. The interval starts at the top rung of
// the review ladder, so a card answered correctly on first sight graduates
// immediately.
func New(x, y uint8) Card {
	return Card{
		Value:    Factors{X: x, Y: y},
		Interval: 55,
		Status:   Status{Kind: Unseen},
	}
}
