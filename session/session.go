package session

import (
	"math/rand"
	"sort"
	"time"

	"github.com/multa-cli/multa/card"
)

// intervals is the review ladder: a correct answer climbs one rung, a wrong
// answer drops back to the bottom. The top rung saturates.
var intervals = []uint32{2, 3, 5, 8, 13, 21, 34, 55}

func firstInterval() uint32 {
	return intervals[0]
}

func lastInterval() uint32 {
	return intervals[len(intervals)-1]
}

func nextInterval(current uint32) uint32 {
	for i, v := range intervals {
		if v == current {
			if i+1 < len(intervals) {
				return intervals[i+1]
			}
			return lastInterval()
		}
	}
	return firstInterval()
}

// NewDeck returns the 64 multiplication facts (factors 2 through 9) in random
// order.
func NewDeck() []card.Factors {
	deck := make([]card.Factors, 0, 64)
	for x := uint8(2); x < 10; x++ {
		for y := uint8(2); y < 10; y++ {
			deck = append(deck, card.Factors{X: x, Y: y})
		}
	}
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

type snapshot struct {
	cards []card.Card
	tick  uint32
}

// Session holds the deck in ask-order together with the current tick. The
// tick advances by one per review; all dues are expressed in ticks.
type Session struct {
	Cards []card.Card
	Tick  uint32

	snapshot *snapshot
}

// New returns a session over a freshly shuffled full deck.
func New() *Session {
	deck := NewDeck()
	cards := make([]card.Card, 0, len(deck))
	for _, f := range deck {
		cards = append(cards, card.New(f.X, f.Y))
	}
	return &Session{Cards: cards}
}

// FromCards returns a session over the given cards, ordered for asking.
func FromCards(cards []card.Card) *Session {
	s := &Session{Cards: cards}
	s.rebuild()
	return s
}

// Peek returns the card to ask next, or nil if the deck is empty.
func (s *Session) Peek() *card.Card {
	if len(s.Cards) == 0 {
		return nil
	}
	return &s.Cards[0]
}

// Review grades the peeked card and reschedules it: a good answer climbs the
// interval ladder, a bad one drops to the bottom rung. The card graduates to
// Learned when it reaches the top rung.
func (s *Session) Review(rating card.Rating) {
	cards := make([]card.Card, len(s.Cards))
	copy(cards, s.Cards)
	s.snapshot = &snapshot{cards: cards, tick: s.Tick}

	c := s.Peek()
	if c == nil {
		return
	}

	interval := firstInterval()
	if rating == card.Good {
		interval = nextInterval(c.Interval)
	}
	due := s.Tick + interval
	now := uint64(time.Now().Unix())

	c.Interval = interval
	c.LastResult = &rating
	c.LastSeen = &now
	if interval == lastInterval() {
		c.Status = card.Status{Kind: card.Learned, Due: due}
	} else {
		c.Status = card.Status{Kind: card.Learning, Due: due}
	}

	s.Tick++
	s.rebuild()
}

// Rollback restores the state from before the last review. It is one level
// deep; a second call without an intervening review is a no-op.
func (s *Session) Rollback() {
	if s.snapshot == nil {
		return
	}
	s.Cards = s.snapshot.cards
	s.Tick = s.snapshot.tick
	s.snapshot = nil
}

// ApplyChanges replaces cards whose fact matches one of the given cards and
// reorders the deck.
func (s *Session) ApplyChanges(changes []card.Card) {
	byValue := make(map[card.Factors]card.Card, len(changes))
	for _, c := range changes {
		byValue[c.Value] = c
	}
	for i := range s.Cards {
		if c, ok := byValue[s.Cards[i].Value]; ok {
			s.Cards[i] = c
		}
	}
	s.rebuild()
}

// CardsToSave returns the cards worth persisting: unseen cards are dropped,
// and all dues are shifted down so the smallest due (or the current tick,
// whichever is lower) becomes zero.
func (s *Session) CardsToSave() []card.Card {
	minDue := s.Tick
	for _, c := range s.Cards {
		if c.Status.Kind != card.Unseen && c.Status.Due < minDue {
			minDue = c.Status.Due
		}
	}

	saved := make([]card.Card, 0, len(s.Cards))
	for _, c := range s.Cards {
		if c.Status.Kind == card.Unseen {
			continue
		}
		c.Status.Due -= minDue
		saved = append(saved, c)
	}
	return saved
}

func (s *Session) rebuild() {
	tick := s.Tick
	sort.SliceStable(s.Cards, func(i, j int) bool {
		return compareCards(&s.Cards[i], &s.Cards[j], tick) < 0
	})
}

// compareCards orders cards for asking: Learning cards that are due come
// first, then Unseen cards, then Learned cards, then Learning cards that are
// not due yet. Cards of the same kind are ordered by due tick.
func compareCards(a, b *card.Card, tick uint32) int {
	ak, bk := a.Status.Kind, b.Status.Kind
	switch {
	case ak == card.Learning && bk == card.Learning:
		return compareDue(a.Status.Due, b.Status.Due)
	case ak == card.Learning:
		if a.Status.Due <= tick {
			return -1
		}
		return 1
	case ak == card.Unseen && bk == card.Unseen:
		return 0
	case ak == card.Unseen && bk == card.Learning:
		if b.Status.Due <= tick {
			return 1
		}
		return -1
	case ak == card.Unseen:
		return -1
	case bk == card.Learned:
		return compareDue(a.Status.Due, b.Status.Due)
	case bk == card.Learning:
		if b.Status.Due > tick {
			return -1
		}
		return 1
	default:
		return 1
	}
}

func compareDue(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
