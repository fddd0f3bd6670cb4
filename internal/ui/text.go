// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку с центром по X в cx; y - базовая линия.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}

// DrawOutlined рисует центрированную строку с обводкой толщиной thickness пикселей.
func DrawOutlined(screen *ebiten.Image, s string, face font.Face, cx, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawCentered(screen, s, face, cx+dx, y+dy, outline)
		}
	}
	DrawCentered(screen, s, face, cx, y, clr)
}
