// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-kaboom/internal/config"
	"go-kaboom/internal/event"
	"go-kaboom/internal/storage"
	"go-kaboom/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState показывает итог сессии и таблицу рекордов.
type GameOverState struct {
	sm     *StateMachine
	ctx    *Context
	result event.SessionResult
	scores []storage.HighScore
	table  *ui.HighScoreTable
}

func NewGameOverState(sm *StateMachine, ctx *Context, result event.SessionResult) *GameOverState {
	table := ui.NewHighScoreTable(config.ScreenWidth/2, config.ScreenHeight/2)
	table.Highlight = result.SessionID
	return &GameOverState{sm: sm, ctx: ctx, result: result, table: table}
}

func (s *GameOverState) Enter() {
	s.scores = s.ctx.topScores()
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawOutlined(screen, "GAME OVER", s.ctx.Fonts.Title, config.ScreenWidth/2, config.ScreenHeight/4, 3, config.ScoreColor, config.BombColor)
	summary := fmt.Sprintf("Score %d    Level %d    Bombs caught %d", s.result.Score, s.result.Level, s.result.BombsCaught)
	ui.DrawCentered(screen, summary, s.ctx.Fonts.HUD, config.ScreenWidth/2, config.ScreenHeight/4+60, config.TextLightColor)
	ui.DrawCentered(screen, "Space to play again    Esc for menu", s.ctx.Fonts.HUD, config.ScreenWidth/2, config.ScreenHeight/4+100, config.TextLightColor)
	s.table.Draw(screen, s.scores, s.ctx.Fonts.HUD, s.ctx.Fonts.HUD, config.TextLightColor, config.ScoreColor)
}

func (s *GameOverState) Exit() {}
