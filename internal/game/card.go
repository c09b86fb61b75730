package game

import (
	"fmt"
	"strconv"
)

// Suit is one of the four card categories. Spades and Clubs are monsters,
// Diamonds are weapons and Hearts are potions.
type Suit string

const (
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
)

// Suits lists every suit in deck-construction order.
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

const (
	MinRank = 2
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14

	// MaxUtilityRank is the highest rank kept for weapon and potion suits.
	MaxUtilityRank = 10
)

// Card is an immutable suit and rank pair.
type Card struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"`
}

func (c Card) IsMonster() bool { return c.Suit == Spades || c.Suit == Clubs }
func (c Card) IsWeapon() bool  { return c.Suit == Diamonds }
func (c Card) IsPotion() bool  { return c.Suit == Hearts }

// Kind names what the card does when played.
func (c Card) Kind() string {
	switch {
	case c.IsMonster():
		return "monster"
	case c.IsWeapon():
		return "weapon"
	case c.IsPotion():
		return "potion"
	default:
		return "unknown"
	}
}

// RankLabel maps 11..14 to J, Q, K and A.
func RankLabel(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// String renders the card the way it is shown to the player, e.g. "Q♠".
func (c Card) String() string {
	return fmt.Sprintf("%s%s", RankLabel(c.Rank), c.Suit.Symbol())
}
