package game

func (g *Game) State() State { return g.state }
func (g *Game) Health() int { return g.health }
func (g *Game) MaxHealth() int { return g.maxHealth }
func (g *Game) CanSkip() bool { return g.canSkip }
func (g *Game) InteractionsLeft() int { return g.interactionsLeft }
func (g *Game) PotionUsedThisRoom() bool { return g.potionUsed }
func (g *Game) AwaitingWeaponChoice() bool { return g.awaitingWeaponChoice }
func (g *Game) Message() string { return g.message }
func (g *Game) Survived() bool { return g.survived }
func (g *Game) Over() bool { return g.state == StateGameOver }
func (g *Game) DeckLen() int { return g.deck.Len() }
func (g *Game) Deck() []Card { return g.deck.Cards() }
func (g *Game) Rules() Rules { return g.rules }
func (g *Game) Discarded() []Card { return append([]Card(nil), g.discard...) }
func (g *Game) Journal() []Event { return append([]Event(nil), g.journal...) }
func (g *Game) SetMessage(msg string) { g.message = msg }
func (g *Game) Dead() bool { return g.health <= 0 && g.state != StateGameOver }

// Room returns a copy of the room; changing it does not affect the game.
func (g *Game) Room() Room {
	var r Room
	for i, c := range g.room {
		if c != nil {
			cc := *c
			r[i] = &cc
		}
	}
	return r
}

// Weapon returns the equipped weapon, if any.
func (g *Game) Weapon() (Card, bool) {
	if g.weapon == nil {
		return Card{}, false
	}
	return *g.weapon, true
}

// WeaponLimit returns the rank of the last monster slain with the equipped
// weapon. ok is false while the weapon has not killed anything.
func (g *Game) WeaponLimit() (rank int, ok bool) {
	if g.weapon == nil || g.lastSlain == 0 {
		return 0, false
	}
	return g.lastSlain, true
}

// CurrentMonster returns the monster waiting on the weapon prompt.
func (g *Game) CurrentMonster() (Card, bool) {
	if g.currentMonster == nil {
		return Card{}, false
	}
	return *g.currentMonster, true
}
