package game

import "fmt"

// RemainingMonsters lists the monsters still in the room and the deck.
func (g *Game) RemainingMonsters() []Card {
	var out []Card
	for _, c := range g.room.Cards() {
		if c.IsMonster() {
			out = append(out, c)
		}
	}
	for _, c := range g.deck.cards {
		if c.IsMonster() {
			out = append(out, c)
		}
	}
	return out
}

// Threat is the sum of ranks of every remaining monster.
func (g *Game) Threat() int {
	total := 0
	for _, m := range g.RemainingMonsters() {
		total += m.Rank
	}
	return total
}

// FinalScore is the remaining health after a survived run, otherwise the
// negated threat still left in the dungeon.
func (g *Game) FinalScore() int {
	if g.survived {
		return g.health
	}
	return -g.Threat()
}

// RemainingSummary describes the threat left in the dungeon.
func (g *Game) RemainingSummary() string {
	threat := g.Threat()
	if threat == 0 {
		return MsgNoMonstersRemain
	}
	return fmt.Sprintf("Remaining monsters total threat: -%d", threat)
}
