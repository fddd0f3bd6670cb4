// internal/state/menu_state.go
package state

import (
	"go-kaboom/internal/config"
	"go-kaboom/internal/storage"
	"go-kaboom/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState - стартовый экран с таблицей рекордов
type MenuState struct {
	sm     *StateMachine
	ctx    *Context
	scores []storage.HighScore
	table  *ui.HighScoreTable
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:    sm,
		ctx:   ctx,
		table: ui.NewHighScoreTable(config.ScreenWidth/2, config.ScreenHeight/2),
	}
}

func (m *MenuState) Enter() {
	m.scores = m.ctx.topScores()
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.ctx))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		m.ctx.toggleMute()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawOutlined(screen, config.WindowTitle, m.ctx.Fonts.Title, config.ScreenWidth/2, config.ScreenHeight/4, 3, config.ScoreColor, config.BombColor)
	ui.DrawCentered(screen, "Catch the bombs with your paddles: A/D or arrows", m.ctx.Fonts.HUD, config.ScreenWidth/2, config.ScreenHeight/4+60, config.TextLightColor)
	ui.DrawCentered(screen, "Press Space to start", m.ctx.Fonts.HUD, config.ScreenWidth/2, config.ScreenHeight/4+100, config.TextLightColor)
	m.table.Draw(screen, m.scores, m.ctx.Fonts.HUD, m.ctx.Fonts.HUD, config.TextLightColor, config.ScoreColor)
}

func (m *MenuState) Exit() {}
