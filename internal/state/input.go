// internal/state/input.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// keyboardInput читает клавиши движения: A/D или стрелки.
type keyboardInput struct{}

func (keyboardInput) LeftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
}

func (keyboardInput) RightPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
}
