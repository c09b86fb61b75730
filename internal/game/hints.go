package game

import "fmt"

// Action words a driver can offer the player.
const (
	ActionStart    = "start"
	ActionFace     = "face"
	ActionSkip     = "skip"
	ActionPlay     = "play"
	ActionYes      = "yes"
	ActionNo       = "no"
	ActionContinue = "continue"
	ActionRestart  = "restart"
)

// Hint is the one-line guidance for the current state.
func (g *Game) Hint() string {
	switch g.state {
	case StateMainMenu:
		return HintMainMenu
	case StateRoomChoice:
		if g.canSkip {
			return HintRoomChoiceCanSkip
		}
		return HintRoomChoiceNoSkip
	case StateCardSelection:
		return HintCardSelection
	case StateCardInteraction:
		if g.awaitingWeaponChoice {
			return HintWeaponPrompt
		}
		return HintAcknowledge
	default:
		return HintGameOver
	}
}

// Actions lists the intents the game accepts right now. Restart is always
// last because it is valid everywhere.
func (g *Game) Actions() []string {
	var out []string
	switch g.state {
	case StateMainMenu:
		out = append(out, ActionStart)
	case StateRoomChoice:
		out = append(out, ActionFace)
		if g.canSkip {
			out = append(out, ActionSkip)
		}
	case StateCardSelection:
		out = append(out, ActionPlay)
	case StateCardInteraction:
		if g.awaitingWeaponChoice {
			out = append(out, ActionYes, ActionNo)
		} else {
			out = append(out, ActionContinue)
		}
	}
	return append(out, ActionRestart)
}

// Preview describes what playing c would do given the current weapon and
// potion state.
func (g *Game) Preview(c Card) string {
	switch {
	case c.IsMonster():
		if g.weapon == nil {
			return fmt.Sprintf("Monster (ATK %d)", c.Rank)
		}
		if g.CanUseWeaponOn(c) {
			return fmt.Sprintf("Monster (ATK %d) - With weapon: %d damage", c.Rank, g.DamageWithWeapon(c))
		}
		return fmt.Sprintf("Monster (ATK %d) - Weapon degraded. Will take %d damage", c.Rank, c.Rank)
	case c.IsWeapon():
		if g.weapon != nil && g.lastSlain != 0 {
			return fmt.Sprintf("Weapon (ATK %d) (updates to < %d)", c.Rank, g.lastSlain)
		}
		return fmt.Sprintf("Weapon (ATK %d) (no restriction)", c.Rank)
	case c.IsPotion():
		// The flag outlives its room until the next FaceRoom resets it.
		inRoom := g.state == StateCardSelection || g.state == StateCardInteraction
		if g.potionUsed && inRoom {
			return fmt.Sprintf("Potion (Heal for %d) - wasted, already drank this room", c.Rank)
		}
		return fmt.Sprintf("Potion (Heal for %d)", c.Rank)
	default:
		return "Unknown card"
	}
}
