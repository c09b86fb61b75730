// Package report renders a finished (or running) dungeon crawl as a
// printable PDF log: the outcome, the score and every journal entry.
package report

import (
	"bytes"
	"fmt"
	"math"

	"scoundrel/internal/game"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	fontSize  = 9
	titleSize = 18
	rowH      = 14.0
)

// column widths: seq, event, card, amount, health
var colW = [5]float64{40, 215, 110, 70, 80}

// Generate returns PDF bytes for g's run. A nil game yields nil.
func Generate(g *game.Game, title string) ([]byte, error) {
	if g == nil {
		return nil, nil
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(245, 235, 210)
		pdf.Rect(0, 0, pageW, pageH, "F")
		drawWavyBorder(pdf)
		pdf.SetXY(margin+10, margin+10)
	})
	pdf.AddPage()

	pdf.SetTextColor(80, 50, 30)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, 22, "Dungeon Log", "", 1, "L", false, 0, "")
	if title != "" {
		pdf.SetFont("Helvetica", "I", fontSize)
		pdf.SetX(margin + 10)
		pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", fontSize+2)
	for _, line := range summaryLines(g) {
		pdf.SetX(margin + 10)
		pdf.CellFormat(0, 14, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	drawJournal(pdf, g.Journal())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render dungeon log: %w", err)
	}
	return buf.Bytes(), nil
}

func summaryLines(g *game.Game) []string {
	lines := make([]string, 0, 4)
	switch {
	case !g.Over():
		lines = append(lines, "Outcome: still in the dungeon")
	case g.Survived():
		lines = append(lines, "Outcome: survived")
	default:
		lines = append(lines, "Outcome: died")
	}
	lines = append(lines, fmt.Sprintf("Health: %d / %d", g.Health(), g.MaxHealth()))
	if w, ok := g.Weapon(); ok {
		lines = append(lines, "Weapon: "+cardLabel(w))
	}
	if g.Over() {
		lines = append(lines, fmt.Sprintf("Score: %d", g.FinalScore()))
	}
	lines = append(lines, g.RemainingSummary())
	return lines
}

func drawJournal(pdf *gofpdf.Fpdf, events []game.Event) {
	header := [5]string{"#", "Event", "Card", "Amount", "Health"}
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetDrawColor(80, 50, 30)
	pdf.SetX(margin + 10)
	for i, h := range header {
		pdf.CellFormat(colW[i], rowH, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", fontSize)
	for _, e := range events {
		card := ""
		if e.Card != nil {
			card = cardLabel(*e.Card)
		}
		amount := ""
		if e.Amount != 0 {
			amount = fmt.Sprintf("%d", e.Amount)
		}
		pdf.SetX(margin + 10)
		if e.Kind == game.EventDied {
			pdf.SetTextColor(180, 40, 40)
		}
		cells := [5]string{fmt.Sprintf("%d", e.Seq), describe(e.Kind), card, amount, fmt.Sprintf("%d", e.Health)}
		for i, c := range cells {
			pdf.CellFormat(colW[i], rowH, c, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(80, 50, 30)
	}
}

// describe turns a journal kind into a log line.
func describe(k game.EventKind) string {
	switch k {
	case game.EventStart:
		return "Entered the dungeon"
	case game.EventFace:
		return "Faced the room"
	case game.EventSkip:
		return "Skipped the room"
	case game.EventEquip:
		return "Equipped a weapon"
	case game.EventHeal:
		return "Drank a potion"
	case game.EventPotionWasted:
		return "Wasted a potion"
	case game.EventFight:
		return "Fought barehanded"
	case game.EventFightWeapon:
		return "Fought with weapon"
	case game.EventRoomResolved:
		return "Room resolved"
	case game.EventDied:
		return "Died"
	case game.EventSurvived:
		return "Survived"
	default:
		return string(k)
	}
}

// cardLabel spells the suit out; the core PDF fonts have no suit glyphs.
func cardLabel(c game.Card) string {
	return fmt.Sprintf("%s of %s", game.RankLabel(c.Rank), c.Suit)
}

// drawWavyBorder draws a tattered parchment edge around the page.
func drawWavyBorder(pdf *gofpdf.Fpdf) {
	pts := wavyRectPoints(margin/2, margin/2, pageW-margin, pageH-margin, 14, 3)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1.5)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}

// wavyRectPoints returns polygon points for a rectangle with sinusoidal wobble on each side.
func wavyRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	pts := make([]gofpdf.PointType, 0, steps*4+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + t*w, Y: y + amp*math.Sin(float64(i)*0.9)})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + w + amp*math.Cos(float64(i)*0.7), Y: y + t*h})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + w - t*w, Y: y + h + amp*math.Sin(float64(i)*0.5)})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + amp*math.Cos(float64(i)*0.6), Y: y + h - t*h})
	}
	return pts
}
