package game

import (
	"math/rand"
	"sync"
	"time"
)

// DeckSize is the number of cards in a fresh dungeon deck.
const DeckSize = 44

// Shuffler permutes n elements through swap. Implementations must be safe
// for concurrent use: one shuffler is shared by every game a server deals.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// lockedShuffler serializes access to a *rand.Rand, which is not safe for
// concurrent use.
type lockedShuffler struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// NewShuffler returns a time-seeded shuffler.
func NewShuffler() Shuffler {
	return NewSeededShuffler(time.Now().UnixNano())
}

// NewSeededShuffler returns a shuffler that always yields the same
// sequence of permutations for the same seed.
func NewSeededShuffler(seed int64) Shuffler {
	return &lockedShuffler{r: rand.New(rand.NewSource(seed))}
}

// Deck is an ordered pile of cards. The front is drawn next and returned
// cards go to the back.
type Deck struct {
	cards []Card
}

// NewDeck builds all monster cards (ranks 2..14) and all weapon and potion
// cards (ranks 2..10), then shuffles them once with s.
func NewDeck(s Shuffler) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		top := Ace
		if suit == Diamonds || suit == Hearts {
			top = MaxUtilityRank
		}
		for r := MinRank; r <= top; r++ {
			cards = append(cards, Card{Suit: suit, Rank: r})
		}
	}
	if s != nil {
		s.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
	}
	return &Deck{cards: cards}
}

// NewDeckOf returns a deck holding exactly cards, front first.
func NewDeckOf(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Draw removes the front card. ok is false when the deck is empty.
func (d *Deck) Draw() (c Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c = d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Return appends c to the back.
func (d *Deck) Return(c Card) {
	d.cards = append(d.cards, c)
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) Empty() bool { return len(d.cards) == 0 }

// Cards returns a copy of the deck, front first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
