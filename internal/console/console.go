// Package console drives a game from typed command lines and renders it
// as plain text.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scoundrel/internal/game"
)

const cmdPrefix = "> "

// Guidance for lines that do not parse in the current state.
const (
	msgNeedSelectCard = "Type 1-4 to select a card."
)

// Console relays one command line at a time to a game.
type Console struct {
	Game *game.Game
	Out  io.Writer

	// LastCommand echoes the previous non-empty line.
	LastCommand string
}

func New(g *game.Game, out io.Writer) *Console {
	return &Console{Game: g, Out: out}
}

// Execute applies one command line. It reports false once the player asks
// to quit.
func (c *Console) Execute(line string) bool {
	g := c.Game
	cmd := strings.TrimSpace(line)

	// An empty line only acknowledges a resolved fight.
	if cmd == "" {
		if g.State() == game.StateCardInteraction && !g.AwaitingWeaponChoice() {
			g.Continue()
		}
		return true
	}
	c.LastCommand = cmdPrefix + cmd

	switch {
	case is(cmd, "exit", "quit"):
		return false
	case is(cmd, "restart"):
		g.Restart()
		return true
	}

	switch g.State() {
	case game.StateMainMenu:
		if is(cmd, "start", "s") {
			g.Start()
		} else {
			g.SetMessage(game.MsgNeedStart)
		}

	case game.StateRoomChoice:
		switch {
		case is(cmd, "f", "face"):
			g.FaceRoom()
		case is(cmd, "s", "skip"):
			g.SkipRoom()
		case g.CanSkip():
			g.SetMessage(game.MsgNeedFaceOrSkip)
		default:
			g.SetMessage(game.MsgNeedFaceOnly)
		}

	case game.StateCardSelection:
		n, err := strconv.Atoi(cmd)
		if err != nil {
			g.SetMessage(msgNeedSelectCard)
			break
		}
		g.PlayCard(n - 1)

	case game.StateCardInteraction:
		switch {
		case g.AwaitingWeaponChoice() && is(cmd, "y", "yes"):
			g.AnswerWeaponPrompt(true)
		case g.AwaitingWeaponChoice() && is(cmd, "n", "no"):
			g.AnswerWeaponPrompt(false)
		case g.AwaitingWeaponChoice():
			g.SetMessage(game.MsgNeedYOrN)
		case is(cmd, "ok", "continue"):
			g.Continue()
		}

	case game.StateGameOver:
		g.SetMessage(game.MsgRestartHelp)
	}

	// A lethal weapon fight waits on Continue; end the run right away.
	if g.Dead() {
		g.Continue()
	}
	return true
}

func is(cmd string, words ...string) bool {
	for _, w := range words {
		if strings.EqualFold(cmd, w) {
			return true
		}
	}
	return false
}

// Render writes the whole table as text.
func (c *Console) Render() {
	g := c.Game
	var b strings.Builder

	fmt.Fprintf(&b, "HP %d/%d", g.Health(), g.MaxHealth())
	if w, ok := g.Weapon(); ok {
		fmt.Fprintf(&b, "  Weapon %s", w)
		if limit, ok := g.WeaponLimit(); ok {
			fmt.Fprintf(&b, " (< %s)", game.RankLabel(limit))
		}
	} else {
		b.WriteString("  Weapon -")
	}
	fmt.Fprintf(&b, "  Deck %d\n", g.DeckLen())

	if g.State() != game.StateMainMenu {
		room := g.Room()
		for i, card := range room {
			if card == nil {
				fmt.Fprintf(&b, "  [%d] --\n", i+1)
				continue
			}
			fmt.Fprintf(&b, "  [%d] %-4s %s\n", i+1, card, g.Preview(*card))
		}
	}

	if g.Over() {
		fmt.Fprintf(&b, "Score: %d\n%s\n", g.FinalScore(), g.RemainingSummary())
	}
	if c.LastCommand != "" {
		fmt.Fprintf(&b, "%s\n", c.LastCommand)
	}
	fmt.Fprintf(&b, "%s\n%s [%s]\n", g.Message(), g.Hint(), strings.Join(g.Actions(), " | "))

	_, _ = io.WriteString(c.Out, b.String())
}

// Run reads commands from in until EOF or quit, rendering after each one.
func (c *Console) Run(in io.Reader) error {
	c.Render()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if !c.Execute(sc.Text()) {
			return nil
		}
		c.Render()
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
