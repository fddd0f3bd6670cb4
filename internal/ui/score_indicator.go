// internal/ui/score_indicator.go
package ui

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ScoreIndicator отображает счёт вверху по центру.
type ScoreIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewScoreIndicator создает новый индикатор счёта.
func NewScoreIndicator(x, y int, clr color.Color) *ScoreIndicator {
	return &ScoreIndicator{
		X:                x,
		Y:                y,
		Color:            clr,
		OutlineColor:     color.Black,
		OutlineThickness: 2,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает счёт и под ним номер уровня римскими цифрами.
func (i *ScoreIndicator) Draw(screen *ebiten.Image, score, level int, scoreFace, labelFace font.Face) {
	DrawOutlined(screen, strconv.Itoa(score), scoreFace, i.X, i.Y, i.OutlineThickness, i.Color, i.OutlineColor)

	label := toRoman(level)
	if label == "" {
		return
	}
	labelY := i.Y + labelFace.Metrics().Height.Ceil() + 4
	DrawOutlined(screen, label, labelFace, i.X, labelY, 1, i.Color, i.OutlineColor)
}
