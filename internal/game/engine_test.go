package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, rules Rules, cards ...Card) *Game {
	t.Helper()
	g := New(WithRules(rules), WithDeck(NewDeckOf(cards...)), WithShuffler(NewSeededShuffler(1)))
	g.Start()
	require.Equal(t, StateRoomChoice, g.State())
	return g
}

func TestNew(t *testing.T) {
	g := New(WithShuffler(NewSeededShuffler(3)))

	assert.Equal(t, StateMainMenu, g.State())
	assert.Equal(t, 20, g.Health())
	assert.Equal(t, 20, g.MaxHealth())
	assert.True(t, g.CanSkip())
	assert.True(t, g.RoomEmpty())
	assert.Equal(t, DeckSize, g.DeckLen())
	_, ok := g.Weapon()
	assert.False(t, ok)
}

func TestStart(t *testing.T) {
	g := New(WithShuffler(NewSeededShuffler(3)))
	g.Start()

	assert.Equal(t, StateRoomChoice, g.State())
	assert.Equal(t, 4, g.Room().Count())
	assert.Equal(t, DeckSize-4, g.DeckLen())
	assert.Equal(t, MsgEnteredDungeon, g.Message())

	g.Start()
	assert.Equal(t, MsgAlreadyStarted, g.Message())
	assert.Equal(t, DeckSize-4, g.DeckLen())
}

func TestPlayCard_EquipWeapon(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Spades, 5}, Card{Clubs, 10}, Card{Diamonds, 7}, Card{Hearts, 3},
		Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4}, Card{Spades, 6},
	)
	g.FaceRoom()
	require.Equal(t, StateCardSelection, g.State())
	require.Equal(t, 3, g.InteractionsLeft())

	out := g.PlayCard(2)
	assert.Equal(t, OutcomeNone, out)

	w, ok := g.Weapon()
	require.True(t, ok)
	assert.Equal(t, Card{Diamonds, 7}, w)
	_, limited := g.WeaponLimit()
	assert.False(t, limited)
	assert.Equal(t, 2, g.InteractionsLeft())
	assert.Equal(t, StateCardSelection, g.State())
	assert.Equal(t, "Equipped 7♦!", g.Message())
}

func TestWeaponPrompt_DefersAdvance(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Spades, 5}, Card{Clubs, 10}, Card{Diamonds, 7}, Card{Hearts, 3},
		Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4}, Card{Spades, 6},
	)
	g.FaceRoom()
	g.PlayCard(2)

	out := g.PlayCard(0)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, StateCardInteraction, g.State())
	assert.True(t, g.AwaitingWeaponChoice())
	assert.Contains(t, g.Message(), "(y/n)")
	m, ok := g.CurrentMonster()
	require.True(t, ok)
	assert.Equal(t, Card{Spades, 5}, m)

	out = g.AnswerWeaponPrompt(true)
	assert.Equal(t, OutcomeAwaitContinue, out)
	assert.Equal(t, 20, g.Health())
	limit, ok := g.WeaponLimit()
	require.True(t, ok)
	assert.Equal(t, 5, limit)
	assert.False(t, g.AwaitingWeaponChoice())
	_, pending := g.CurrentMonster()
	assert.False(t, pending)

	// The room does not move until the driver acknowledges.
	assert.Equal(t, StateCardInteraction, g.State())
	assert.Equal(t, 2, g.InteractionsLeft())

	g.Continue()
	assert.Equal(t, StateCardSelection, g.State())
	assert.Equal(t, 1, g.InteractionsLeft())

	// 10 is not below the last kill (5), so no prompt and full damage.
	out = g.PlayCard(1)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, 10, g.Health())
	assert.Equal(t, StateRoomChoice, g.State())
	assert.Equal(t, 0, g.InteractionsLeft())
	assert.True(t, g.CanSkip())

	room := g.Room()
	assert.Equal(t, Card{Spades, 2}, *room[0])
	assert.Equal(t, Card{Spades, 3}, *room[1])
	assert.Equal(t, Card{Spades, 4}, *room[2])
	assert.Equal(t, Card{Hearts, 3}, *room[3], "leftover card keeps its position")
	assert.Equal(t, []Card{{Spades, 6}}, g.Deck())
}

func TestAnswerWeaponPrompt_Declined(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Diamonds, 5}, Card{Spades, 8}, Card{Clubs, 2}, Card{Clubs, 3}, Card{Clubs, 4},
	)
	g.FaceRoom()
	g.PlayCard(0)
	g.PlayCard(1)
	require.True(t, g.AwaitingWeaponChoice())

	out := g.AnswerWeaponPrompt(false)
	assert.Equal(t, OutcomeAwaitContinue, out)
	assert.Equal(t, 12, g.Health())
	_, limited := g.WeaponLimit()
	assert.False(t, limited, "declining keeps the weapon fresh")
}

func TestAnswerWeaponPrompt_NotAwaiting(t *testing.T) {
	g := newTestGame(t, DefaultRules(), Card{Spades, 5}, Card{Spades, 6}, Card{Spades, 7}, Card{Spades, 8})

	out := g.AnswerWeaponPrompt(true)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, StateRoomChoice, g.State())
	assert.Equal(t, MsgNeedFaceOrSkip, g.Message())
	assert.Equal(t, 20, g.Health())
}

func TestWeaponDegradation(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Diamonds, 10}, Card{Spades, 12}, Card{Spades, 8}, Card{Spades, 3},
		Card{Clubs, 2}, Card{Clubs, 3}, Card{Clubs, 4},
	)
	assert.False(t, g.CanUseWeaponOn(Card{Spades, 2}), "no weapon equipped")

	g.FaceRoom()
	g.PlayCard(0)
	assert.True(t, g.CanUseWeaponOn(Card{Spades, 14}), "fresh weapon fights anything")

	g.PlayCard(1)
	g.AnswerWeaponPrompt(true)
	assert.Equal(t, 18, g.Health())
	g.Continue()
	assert.True(t, g.CanUseWeaponOn(Card{Clubs, 11}))
	assert.False(t, g.CanUseWeaponOn(Card{Clubs, 12}))

	g.PlayCard(2)
	require.True(t, g.AwaitingWeaponChoice())
	g.AnswerWeaponPrompt(true)
	assert.Equal(t, 18, g.Health())
	g.Continue()

	assert.Equal(t, StateRoomChoice, g.State())
	assert.False(t, g.CanUseWeaponOn(Card{Clubs, 8}))
	assert.True(t, g.CanUseWeaponOn(Card{Clubs, 7}))

	limit, ok := g.WeaponLimit()
	require.True(t, ok)
	assert.Equal(t, 8, limit)
}

func TestPlayCard_Potions(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Hearts, 5}, Card{Hearts, 4}, Card{Spades, 3}, Card{Clubs, 2},
		Card{Clubs, 4}, Card{Clubs, 5}, Card{Clubs, 6}, Card{Clubs, 7},
	)
	g.FaceRoom()

	g.PlayCard(2)
	assert.Equal(t, 17, g.Health())

	g.PlayCard(0)
	assert.Equal(t, 20, g.Health(), "healing is capped at max health")
	assert.Equal(t, "Healed for 5 HP.", g.Message())
	assert.True(t, g.PotionUsedThisRoom())

	g.PlayCard(1)
	assert.Equal(t, 20, g.Health())
	assert.Equal(t, StateRoomChoice, g.State())
	assert.True(t, g.PotionUsedThisRoom())

	g.FaceRoom()
	assert.False(t, g.PotionUsedThisRoom())
}

func TestPlayCard_SecondPotionWasted(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Spades, 10}, Card{Hearts, 4}, Card{Hearts, 6}, Card{Clubs, 2}, Card{Clubs, 3},
	)
	g.FaceRoom()
	g.PlayCard(0)
	require.Equal(t, 10, g.Health())

	g.PlayCard(1)
	assert.Equal(t, 14, g.Health())

	g.PlayCard(2)
	assert.Equal(t, 14, g.Health())
	journal := g.Journal()
	assert.Equal(t, EventPotionWasted, journal[len(journal)-2].Kind)
	assert.Equal(t, EventRoomResolved, journal[len(journal)-1].Kind)
}

func TestPlayCard_Refused(t *testing.T) {
	g := newTestGame(t, DefaultRules(), Card{Spades, 5}, Card{Spades, 6}, Card{Spades, 7}, Card{Spades, 8}, Card{Clubs, 9})
	before := g.Room()

	assert.Equal(t, OutcomeNone, g.PlayCard(0))
	assert.Equal(t, MsgMustFaceFirst, g.Message())
	assert.Equal(t, before, g.Room())

	g.FaceRoom()
	for _, idx := range []int{-1, 4, 10} {
		g.SetMessage("")
		assert.Equal(t, OutcomeNone, g.PlayCard(idx))
		assert.Equal(t, MsgInvalidCardSelection, g.Message())
	}
	assert.Equal(t, before, g.Room())
	assert.Equal(t, 3, g.InteractionsLeft())

	g.PlayCard(0)
	assert.Equal(t, 15, g.Health())
	g.PlayCard(0)
	assert.Equal(t, MsgInvalidCardSelection, g.Message())
	assert.Equal(t, 15, g.Health())
	assert.Equal(t, 2, g.InteractionsLeft())
}

func TestSkipRoom(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4}, Card{Spades, 5},
		Card{Clubs, 6}, Card{Clubs, 7}, Card{Clubs, 8}, Card{Clubs, 9},
	)

	g.SkipRoom()
	assert.Equal(t, StateRoomChoice, g.State())
	assert.False(t, g.CanSkip())
	assert.Equal(t, MsgSkippedRoom, g.Message())
	assert.Equal(t, []Card{{Clubs, 6}, {Clubs, 7}, {Clubs, 8}, {Clubs, 9}}, g.Room().Cards())
	assert.Equal(t, []Card{{Spades, 2}, {Spades, 3}, {Spades, 4}, {Spades, 5}}, g.Deck(), "skipped cards keep slot order")
}

func TestSkipRoom_NotAllowedChangesOnlyMessage(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4}, Card{Spades, 5},
		Card{Clubs, 6}, Card{Clubs, 7}, Card{Clubs, 8}, Card{Clubs, 9},
	)
	g.SkipRoom()
	require.False(t, g.CanSkip())

	room, deck, journal := g.Room(), g.Deck(), g.Journal()
	g.SkipRoom()

	assert.Equal(t, MsgNeedFaceOnly, g.Message())
	assert.Equal(t, StateRoomChoice, g.State())
	assert.Equal(t, room, g.Room())
	assert.Equal(t, deck, g.Deck())
	assert.Equal(t, journal, g.Journal())
	assert.False(t, g.CanSkip())
}

func TestSkipRoom_RestoredAfterRoomResolved(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4}, Card{Spades, 5},
		Card{Clubs, 2}, Card{Clubs, 3}, Card{Clubs, 4}, Card{Clubs, 5},
	)
	g.SkipRoom()
	g.FaceRoom()
	g.PlayCard(0)
	g.PlayCard(1)
	assert.False(t, g.CanSkip())
	g.PlayCard(2)

	assert.Equal(t, StateRoomChoice, g.State())
	assert.True(t, g.CanSkip())
	assert.Equal(t, 20-2-3-4, g.Health())
	assert.Equal(t, []Card{{Spades, 2}, {Spades, 3}, {Spades, 4}, {Clubs, 5}}, g.Room().Cards())
}

func TestSkipRoom_WrongState(t *testing.T) {
	g := newTestGame(t, DefaultRules(), Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4}, Card{Spades, 5}, Card{Clubs, 6})
	g.FaceRoom()
	deck := g.Deck()

	g.SkipRoom()
	assert.Equal(t, StateCardSelection, g.State())
	assert.Equal(t, deck, g.Deck())
	assert.True(t, g.CanSkip())
}

func TestContinue_Refused(t *testing.T) {
	g := newTestGame(t, DefaultRules(), Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4}, Card{Spades, 5}, Card{Clubs, 6})
	g.Continue()
	assert.Equal(t, StateRoomChoice, g.State())
	assert.Equal(t, MsgNeedFaceOrSkip, g.Message())

	g = newTestGame(t, DefaultRules(), Card{Diamonds, 3}, Card{Spades, 2}, Card{Spades, 4}, Card{Spades, 5}, Card{Clubs, 6})
	g.FaceRoom()
	g.PlayCard(0)
	g.PlayCard(1)
	require.True(t, g.AwaitingWeaponChoice())

	g.Continue()
	assert.Equal(t, MsgNeedYOrN, g.Message())
	assert.True(t, g.AwaitingWeaponChoice())
	assert.Equal(t, 2, g.InteractionsLeft())
}

func TestDeath_Barehanded(t *testing.T) {
	g := newTestGame(t, Rules{MaxHealth: 5, InteractionsPerRoom: 3},
		Card{Clubs, 10}, Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4}, Card{Spades, 5},
	)
	g.FaceRoom()
	g.PlayCard(0)

	assert.Equal(t, StateGameOver, g.State())
	assert.False(t, g.Survived())
	assert.Equal(t, MsgYouDied, g.Message())
	assert.Equal(t, 3, g.InteractionsLeft(), "death stops the advance step")
	assert.Equal(t, -14, g.FinalScore())
	assert.Equal(t, "Remaining monsters total threat: -14", g.RemainingSummary())
}

func TestDeath_AfterWeaponPrompt(t *testing.T) {
	g := newTestGame(t, Rules{MaxHealth: 10, InteractionsPerRoom: 3},
		Card{Diamonds, 2}, Card{Spades, 14}, Card{Spades, 3}, Card{Clubs, 4}, Card{Clubs, 5},
	)
	g.FaceRoom()
	g.PlayCard(0)
	g.PlayCard(1)
	g.AnswerWeaponPrompt(true)

	assert.Equal(t, -2, g.Health())
	assert.True(t, g.Dead())
	assert.Equal(t, StateCardInteraction, g.State())

	g.Continue()
	assert.Equal(t, StateGameOver, g.State())
	assert.False(t, g.Survived())
	assert.False(t, g.Dead())
	assert.Equal(t, -12, g.FinalScore())
}

func TestSurvive_MidRoom(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Diamonds, 5}, Card{Hearts, 3}, Card{Diamonds, 2}, Card{Hearts, 2},
	)
	g.FaceRoom()
	g.PlayCard(0)
	g.PlayCard(1)
	g.PlayCard(2)

	require.Equal(t, StateRoomChoice, g.State())
	assert.Equal(t, 0, g.DeckLen())
	assert.Equal(t, 1, g.Room().Count())

	g.FaceRoom()
	g.PlayCard(3)

	assert.Equal(t, StateGameOver, g.State())
	assert.True(t, g.Survived())
	assert.Equal(t, MsgYouSurvived, g.Message())
	assert.Equal(t, 20, g.FinalScore())
	assert.Equal(t, MsgNoMonstersRemain, g.RemainingSummary())
}

func TestSurvive_EndOfRoom(t *testing.T) {
	g := newTestGame(t, DefaultRules(),
		Card{Spades, 2}, Card{Spades, 3}, Card{Spades, 4},
	)
	g.FaceRoom()
	g.PlayCard(0)
	g.PlayCard(1)
	g.PlayCard(2)

	assert.Equal(t, StateGameOver, g.State())
	assert.True(t, g.Survived())
	assert.Equal(t, 11, g.FinalScore())
}

func TestSurvive_BySkip(t *testing.T) {
	g := newTestGame(t, DefaultRules())
	require.True(t, g.RoomEmpty())

	g.SkipRoom()
	assert.Equal(t, StateGameOver, g.State())
	assert.True(t, g.Survived())
	assert.Equal(t, 20, g.FinalScore())
}

func TestRestart(t *testing.T) {
	g := New(WithShuffler(NewSeededShuffler(9)), WithRules(Rules{MaxHealth: 15, InteractionsPerRoom: 3}))
	g.Start()
	g.FaceRoom()
	g.PlayCard(0)

	g.Restart()
	assert.Equal(t, StateRoomChoice, g.State())
	assert.Equal(t, 15, g.Health())
	assert.Equal(t, 15, g.MaxHealth())
	assert.Equal(t, DeckSize-4, g.DeckLen())
	assert.Empty(t, g.Discarded())
	assert.True(t, g.CanSkip())
	assert.Len(t, g.Journal(), 1)
	_, ok := g.Weapon()
	assert.False(t, ok)
}

// cardsAccountedFor counts every card the game still tracks.
func cardsAccountedFor(g *Game) int {
	n := g.Room().Count() + g.DeckLen() + len(g.Discarded())
	if _, ok := g.Weapon(); ok {
		n++
	}
	if _, ok := g.CurrentMonster(); ok {
		n++
	}
	return n
}

func TestConservation_FullRun(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New(WithShuffler(NewSeededShuffler(seed)))
		g.Start()

		for step := 0; step < 1000 && !g.Over(); step++ {
			switch g.State() {
			case StateRoomChoice:
				if g.CanSkip() && step%7 == 0 {
					g.SkipRoom()
				} else {
					g.FaceRoom()
				}
			case StateCardSelection:
				room := g.Room()
				for i := range room {
					if room[i] != nil {
						g.PlayCard(i)
						break
					}
				}
			case StateCardInteraction:
				if g.AwaitingWeaponChoice() {
					g.AnswerWeaponPrompt(true)
				} else {
					g.Continue()
				}
			}
			require.Equal(t, DeckSize, cardsAccountedFor(g), "seed %d step %d", seed, step)
			require.GreaterOrEqual(t, g.InteractionsLeft(), 0)
			require.LessOrEqual(t, g.InteractionsLeft(), 3)
		}

		require.True(t, g.Over(), "seed %d did not finish", seed)
		if g.Survived() {
			assert.Equal(t, g.Health(), g.FinalScore())
			assert.Positive(t, g.FinalScore())
		} else {
			assert.LessOrEqual(t, g.FinalScore(), 0)
			assert.Equal(t, -g.Threat(), g.FinalScore())
		}
	}
}
