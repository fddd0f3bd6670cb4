// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"go-kaboom/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает уровень и прогресс поимки бомб на уровне.
type PlayerLevelIndicator struct {
	X, Y      float32
	MaxLevel  int
	FillColor color.Color

	shownRatio float32 // сглаженное значение заполнения
}

const (
	progressBarWidth  = 200
	progressBarHeight = 12
	levelRectWidth    = 18
	levelRectHeight   = 12
	levelRectGap      = 8
	borderWidth       = 1
	fillSmoothing     = 10.0
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, maxLevel int, fill color.Color) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, MaxLevel: maxLevel, FillColor: fill}
}

// progressRatio - доля пойманных бомб от квоты уровня, в [0, 1].
func progressRatio(caught, limit int) float32 {
	if limit <= 0 {
		return 0
	}
	return float32(utils.Clamp(float64(caught)/float64(limit), 0, 1))
}

// Update плавно подводит полосу к текущему прогрессу.
func (i *PlayerLevelIndicator) Update(deltaTime float64, caught, limit int) {
	target := progressRatio(caught, limit)
	t := float32(utils.Clamp(deltaTime*fillSmoothing, 0, 1))
	i.shownRatio = utils.Lerp(i.shownRatio, target, t)
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level int) {
	// 1. Обводка полосы прогресса
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillWidth := float32(progressBarWidth-borderWidth*2) * i.shownRatio
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, progressBarHeight-borderWidth*2, i.FillColor, true)
	}

	// 3. Прямоугольники уровней
	rectY := i.Y + progressBarHeight + 10
	for j := 0; j < i.MaxLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, i.FillColor, true)
		}
	}
}
