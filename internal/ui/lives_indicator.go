// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LifeCircleRadius  = 10.0
	LifeCircleSpacing = 6.0
)

var (
	lifeFullColor  = color.RGBA{60, 120, 200, 255}
	lifeLastColor  = color.RGBA{200, 60, 60, 255}
	lifeEmptyColor = color.RGBA{0, 0, 0, 160}
)

// LivesIndicator отображает оставшиеся ракетки в виде ряда кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// lifeColor: последняя жизнь красная, пустые ячейки тёмные.
func lifeColor(slot, lives int) color.RGBA {
	switch {
	case slot >= lives:
		return lifeEmptyColor
	case lives == 1:
		return lifeLastColor
	default:
		return lifeFullColor
	}
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int, face font.Face) {
	step := float32(LifeCircleRadius*2 + LifeCircleSpacing)
	for j := 0; j < maxLives; j++ {
		cx := i.X + float32(j)*step + LifeCircleRadius
		cy := i.Y + LifeCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LifeCircleRadius, lifeColor(j, lives), true)
		vector.StrokeCircle(screen, cx, cy, LifeCircleRadius, 1, color.White, true)
	}

	// Текст над рядом
	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	width := float32(maxLives)*step - LifeCircleSpacing
	DrawCentered(screen, label, face, int(i.X+width/2), int(i.Y)-6, color.White)
}

// Width возвращает ширину ряда кружков.
func (i *LivesIndicator) Width(maxLives int) float32 {
	return float32(maxLives)*(LifeCircleRadius*2+LifeCircleSpacing) - LifeCircleSpacing
}
