// internal/state/pause_state.go
package state

import (
	"go-kaboom/internal/config"
	"go-kaboom/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию: предыдущее состояние рисуется, но не обновляется.
type PauseState struct {
	stateMachine  *StateMachine
	ctx           *Context
	previousState *GameState
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		ctx:           ctx,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ctx.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.ctx))
		return
	}

	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	ui.DrawCentered(screen, "PAUSED", s.ctx.Fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
	ui.DrawCentered(screen, "P / Esc to resume    M to mute    Q to quit", s.ctx.Fonts.HUD, config.ScreenWidth/2, config.ScreenHeight/2+50, config.TextLightColor)
}

func (s *PauseState) Exit() {}
