// internal/ui/high_score_table.go
package ui

import (
	"fmt"
	"image/color"

	"go-kaboom/internal/storage"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	tableWidth   = 420
	tableRowGap  = 8
	tablePadding = 16
)

// HighScoreTable рисует список лучших результатов.
type HighScoreTable struct {
	CenterX, Y int
	Highlight  string // SessionID строки, которую нужно выделить
}

func NewHighScoreTable(centerX, y int) *HighScoreTable {
	return &HighScoreTable{CenterX: centerX, Y: y}
}

// formatRow возвращает строку таблицы для позиции rank (с 1).
func formatRow(rank int, s storage.HighScore) string {
	return fmt.Sprintf("%d.  %6d   level %d   %s", rank, s.Score, s.Level, s.FinishedAt.Local().Format("2006-01-02"))
}

func (t *HighScoreTable) Draw(screen *ebiten.Image, scores []storage.HighScore, face, titleFace font.Face, clr, highlight color.Color) {
	rowHeight := face.Metrics().Height.Ceil() + tableRowGap
	titleHeight := titleFace.Metrics().Height.Ceil()
	rows := len(scores)
	if rows == 0 {
		rows = 1
	}
	height := tablePadding*2 + titleHeight + rows*rowHeight

	x := float32(t.CenterX - tableWidth/2)
	vector.DrawFilledRect(screen, x, float32(t.Y), tableWidth, float32(height), color.RGBA{0, 0, 0, 140}, true)
	vector.StrokeRect(screen, x, float32(t.Y), tableWidth, float32(height), 2, borderColor, true)

	y := t.Y + tablePadding + titleHeight
	DrawCentered(screen, "HIGH SCORES", titleFace, t.CenterX, y, clr)

	if len(scores) == 0 {
		DrawCentered(screen, "no games yet", face, t.CenterX, y+rowHeight, clr)
		return
	}
	left := int(x) + tablePadding
	for i, s := range scores {
		y += rowHeight
		rowColor := clr
		if t.Highlight != "" && s.SessionID == t.Highlight {
			rowColor = highlight
		}
		text.Draw(screen, formatRow(i+1, s), face, left, y, rowColor)
	}
}
