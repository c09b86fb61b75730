package web

import "scoundrel/internal/game"

// CardView is a room card as the client draws it.
type CardView struct {
	Suit    game.Suit `json:"suit"`
	Rank    int       `json:"rank"`
	Label   string    `json:"label"`
	Kind    string    `json:"kind"`
	Preview string    `json:"preview,omitempty"`
}

// GameView is the JSON shape of one game.
type GameView struct {
	ID                   string                   `json:"id"`
	State                game.State               `json:"state"`
	Health               int                      `json:"health"`
	MaxHealth            int                      `json:"max_health"`
	Weapon               *CardView                `json:"weapon"`
	WeaponLimit          *int                     `json:"weapon_limit"`
	CanSkip              bool                     `json:"can_skip"`
	InteractionsLeft     int                      `json:"interactions_left"`
	Room                 [game.RoomSize]*CardView `json:"room"`
	DeckSize             int                      `json:"deck_size"`
	AwaitingWeaponChoice bool                     `json:"awaiting_weapon_choice"`
	CurrentMonster       *CardView                `json:"current_monster"`
	Message              string                   `json:"message"`
	Hint                 string                   `json:"hint"`
	Actions              []string                 `json:"actions"`
	Outcome              game.Outcome             `json:"outcome"`
	Survived             *bool                    `json:"survived,omitempty"`
	Score                *int                     `json:"score,omitempty"`
	Summary              string                   `json:"summary,omitempty"`
}

func cardView(g *game.Game, c game.Card, withPreview bool) *CardView {
	v := &CardView{
		Suit:  c.Suit,
		Rank:  c.Rank,
		Label: c.String(),
		Kind:  c.Kind(),
	}
	if withPreview {
		v.Preview = g.Preview(c)
	}
	return v
}

func makeView(id string, g *game.Game, out game.Outcome) GameView {
	if out == "" {
		out = game.OutcomeNone
	}
	vm := GameView{
		ID:                   id,
		State:                g.State(),
		Health:               g.Health(),
		MaxHealth:            g.MaxHealth(),
		CanSkip:              g.CanSkip(),
		InteractionsLeft:     g.InteractionsLeft(),
		DeckSize:             g.DeckLen(),
		AwaitingWeaponChoice: g.AwaitingWeaponChoice(),
		Message:              g.Message(),
		Hint:                 g.Hint(),
		Actions:              g.Actions(),
		Outcome:              out,
	}
	if w, ok := g.Weapon(); ok {
		vm.Weapon = cardView(g, w, false)
	}
	if limit, ok := g.WeaponLimit(); ok {
		vm.WeaponLimit = &limit
	}
	if m, ok := g.CurrentMonster(); ok {
		vm.CurrentMonster = cardView(g, m, true)
	}
	room := g.Room()
	for i, c := range room {
		if c != nil {
			vm.Room[i] = cardView(g, *c, true)
		}
	}
	if g.Over() {
		survived := g.Survived()
		score := g.FinalScore()
		vm.Survived = &survived
		vm.Score = &score
		vm.Summary = g.RemainingSummary()
	}
	return vm
}
