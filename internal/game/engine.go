package game

import "fmt"

// Game is the whole state of one run. It is mutated only through its
// methods; invalid requests leave the state untouched and set a guidance
// message instead of returning an error.
//
// A Game is not safe for concurrent use.
type Game struct {
	rules    Rules
	shuffler Shuffler

	deck *Deck
	room Room
	// discard holds cards that left play: defeated monsters, drunk or
	// wasted potions and replaced weapons.
	discard []Card

	health    int
	maxHealth int

	weapon *Card
	// lastSlain is the rank of the last monster killed with the equipped
	// weapon; 0 while the weapon is unused.
	lastSlain int

	potionUsed       bool
	canSkip          bool
	interactionsLeft int

	currentMonster       *Card
	awaitingWeaponChoice bool

	state    State
	survived bool
	message  string

	journal []Event
}

// Option configures a new Game.
type Option func(*Game)

// WithRules overrides DefaultRules.
func WithRules(r Rules) Option {
	return func(g *Game) { g.rules = r }
}

// WithShuffler sets the randomness source used for every deck the game builds.
func WithShuffler(s Shuffler) Option {
	return func(g *Game) { g.shuffler = s }
}

// WithDeck replaces the initial shuffled deck. Restart still shuffles a new one.
func WithDeck(d *Deck) Option {
	return func(g *Game) { g.deck = d }
}

// New returns a game in the main menu with a freshly shuffled deck,
// an empty room and full health.
func New(opts ...Option) *Game {
	g := &Game{rules: DefaultRules()}
	for _, opt := range opts {
		opt(g)
	}
	if g.shuffler == nil {
		g.shuffler = NewShuffler()
	}
	if g.deck == nil {
		g.deck = NewDeck(g.shuffler)
	}
	g.health = g.rules.MaxHealth
	g.maxHealth = g.rules.MaxHealth
	g.canSkip = true
	g.state = StateMainMenu
	g.message = HintMainMenu
	return g
}

// Start leaves the main menu and deals the first room.
func (g *Game) Start() {
	if g.state != StateMainMenu {
		g.message = MsgAlreadyStarted
		return
	}
	g.state = StateRoomChoice
	g.FillRoom()
	g.message = MsgEnteredDungeon
	g.record(EventStart, nil, 0)
}

// Restart throws the current run away and starts a new one with a new
// shuffle from the same source and the same rules.
func (g *Game) Restart() {
	*g = *New(WithRules(g.rules), WithShuffler(g.shuffler))
	g.Start()
}

// FillRoom refills empty room positions from the front of the deck.
func (g *Game) FillRoom() {
	g.room.Fill(g.deck)
}

// RoomEmpty reports whether no card is left in the room.
func (g *Game) RoomEmpty() bool {
	return g.room.Empty()
}

// FaceRoom commits to resolving the current room.
func (g *Game) FaceRoom() {
	if g.state != StateRoomChoice {
		g.message = g.refusal()
		return
	}
	g.potionUsed = false
	g.interactionsLeft = g.rules.InteractionsPerRoom
	g.state = StateCardSelection
	g.message = MsgFaceRoom
	g.record(EventFace, nil, 0)
}

// SkipRoom sends every room card to the back of the deck, keeping their
// left-to-right order, and deals a new room. Only one skip is allowed
// until a faced room is resolved.
func (g *Game) SkipRoom() {
	if g.state != StateRoomChoice {
		g.message = g.refusal()
		return
	}
	if !g.canSkip {
		g.message = MsgNeedFaceOnly
		return
	}

	// TODO: randomize the order of skipped cards; slot order lets a
	// player predict where a skipped room resurfaces.
	for i := range g.room {
		if c, ok := g.room.Take(i); ok {
			g.deck.Return(c)
		}
	}

	g.canSkip = false
	g.FillRoom()
	g.record(EventSkip, nil, 0)

	if g.room.Empty() && g.deck.Empty() {
		g.win()
		return
	}
	g.message = MsgSkippedRoom
}

// PlayCard resolves the card in room position idx (0..3). Monsters that
// the equipped weapon can fight open the weapon prompt; everything else
// resolves and advances the room immediately.
func (g *Game) PlayCard(idx int) Outcome {
	if g.state != StateCardSelection {
		g.message = MsgMustFaceFirst
		return OutcomeNone
	}
	card, ok := g.room.Take(idx)
	if !ok {
		g.message = MsgInvalidCardSelection
		return OutcomeNone
	}

	switch {
	case card.IsMonster():
		g.currentMonster = &card
		g.state = StateCardInteraction
		if g.CanUseWeaponOn(card) {
			g.awaitingWeaponChoice = true
			g.message = fmt.Sprintf("Monster %s: use weapon %s? (y/n)", card, *g.weapon)
			return OutcomeNone
		}
		dmg := g.fight(card, false)
		g.message = fmt.Sprintf("Fought monster! Took %d damage.", dmg)
		g.advance()
		return OutcomeNone

	case card.IsWeapon():
		if g.weapon != nil {
			g.discard = append(g.discard, *g.weapon)
		}
		g.weapon = &card
		g.lastSlain = 0
		g.state = StateCardInteraction
		g.message = fmt.Sprintf("Equipped %s!", card)
		g.record(EventEquip, &card, 0)
		g.advance()
		return OutcomeNone

	case card.IsPotion():
		g.state = StateCardInteraction
		g.discard = append(g.discard, card)
		if !g.potionUsed {
			g.health = min(g.health+card.Rank, g.maxHealth)
			g.potionUsed = true
			g.message = fmt.Sprintf("Healed for %d HP.", card.Rank)
			g.record(EventHeal, &card, card.Rank)
		} else {
			g.message = MsgPotionWasted
			g.record(EventPotionWasted, &card, 0)
		}
		g.advance()
		return OutcomeNone
	}

	// Unreachable for decks built by NewDeck; put the card back untouched.
	g.room[idx] = &card
	g.message = MsgInvalidCardSelection
	return OutcomeNone
}

// AnswerWeaponPrompt settles the pending monster with or without the
// weapon. Unlike every other resolution it does not advance the room:
// the driver must call Continue next.
func (g *Game) AnswerWeaponPrompt(useWeapon bool) Outcome {
	if !g.awaitingWeaponChoice {
		g.message = g.refusal()
		return OutcomeNone
	}
	if g.currentMonster == nil {
		g.awaitingWeaponChoice = false
		return OutcomeNone
	}
	monster := *g.currentMonster

	dmg := g.fight(monster, useWeapon)
	g.awaitingWeaponChoice = false
	if useWeapon {
		g.message = fmt.Sprintf("Fought with weapon! Took %d damage.", dmg)
	} else {
		g.message = fmt.Sprintf("Fought monster! Took %d damage.", dmg)
	}
	return OutcomeAwaitContinue
}

// Continue acknowledges a resolved interaction and advances the room.
// It is valid only while an acknowledgement is pending.
func (g *Game) Continue() {
	if g.state != StateCardInteraction {
		g.message = g.refusal()
		return
	}
	if g.awaitingWeaponChoice {
		g.message = MsgNeedYOrN
		return
	}
	g.advance()
}

// advance is the shared end-of-interaction step: death check, interaction
// bookkeeping, room refill and survival check.
func (g *Game) advance() {
	if g.health <= 0 {
		g.survived = false
		g.state = StateGameOver
		g.message = MsgYouDied
		g.record(EventDied, nil, 0)
		return
	}

	if g.interactionsLeft > 0 {
		g.interactionsLeft--
	}

	if g.interactionsLeft == 0 {
		g.canSkip = true
		g.FillRoom()
		if g.room.Empty() && g.deck.Empty() {
			g.win()
			return
		}
		g.state = StateRoomChoice
		g.message = MsgRoomResolved
		g.record(EventRoomResolved, nil, 0)
		return
	}

	if g.room.Empty() && g.deck.Empty() {
		g.win()
		return
	}
	g.state = StateCardSelection
}

func (g *Game) win() {
	g.survived = true
	g.state = StateGameOver
	g.message = MsgYouSurvived
	g.record(EventSurvived, nil, 0)
}

// refusal picks the guidance for an intent that does not fit the state.
func (g *Game) refusal() string {
	switch g.state {
	case StateMainMenu:
		return MsgNeedStart
	case StateRoomChoice:
		if g.canSkip {
			return MsgNeedFaceOrSkip
		}
		return MsgNeedFaceOnly
	case StateCardSelection:
		return HintCardSelection
	case StateCardInteraction:
		if g.awaitingWeaponChoice {
			return MsgNeedYOrN
		}
		return HintAcknowledge
	default:
		return MsgRestartHelp
	}
}

func (g *Game) record(kind EventKind, c *Card, amount int) {
	e := Event{
		Seq:    len(g.journal) + 1,
		Kind:   kind,
		Amount: amount,
		Health: g.health,
	}
	if c != nil {
		cc := *c
		e.Card = &cc
	}
	g.journal = append(g.journal, e)
}
