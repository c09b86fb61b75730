package game

// State is the control state a driver uses to decide which intents are valid.
type State string

const (
	StateMainMenu        State = "main_menu"
	StateRoomChoice      State = "room_choice"
	StateCardSelection   State = "card_selection"
	StateCardInteraction State = "card_interaction"
	StateGameOver        State = "game_over"
)

// Outcome tells the driver whether it must wait for an acknowledgement
// (a Continue call) before the next intent.
type Outcome string

const (
	OutcomeNone          Outcome = "none"
	OutcomeAwaitContinue Outcome = "await_continue"
)

// Rules are the tunable numbers of a run.
type Rules struct {
	MaxHealth           int
	InteractionsPerRoom int
}

// DefaultRules are the standard table rules: 20 health, 3 cards per room.
func DefaultRules() Rules {
	return Rules{
		MaxHealth:           20,
		InteractionsPerRoom: 3,
	}
}

// EventKind classifies a journal entry.
type EventKind string

const (
	EventStart        EventKind = "start"
	EventFace         EventKind = "face"
	EventSkip         EventKind = "skip"
	EventEquip        EventKind = "equip"
	EventHeal         EventKind = "heal"
	EventPotionWasted EventKind = "potion_wasted"
	EventFight        EventKind = "fight"
	EventFightWeapon  EventKind = "fight_weapon"
	EventRoomResolved EventKind = "room_resolved"
	EventDied         EventKind = "died"
	EventSurvived     EventKind = "survived"
)

// Event is one entry of the run journal. Card is nil for events that do
// not involve a card. Amount is damage taken or health restored.
type Event struct {
	Seq    int       `json:"seq"`
	Kind   EventKind `json:"kind"`
	Card   *Card     `json:"card,omitempty"`
	Amount int       `json:"amount,omitempty"`
	Health int       `json:"health"`
}
