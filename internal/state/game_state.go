// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	game "go-kaboom/internal/app"
	"go-kaboom/internal/component"
	"go-kaboom/internal/config"
	"go-kaboom/internal/event"
	"go-kaboom/internal/storage"
	"go-kaboom/internal/ui"
	"go-kaboom/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GameState - состояние игры
type GameState struct {
	sm             *StateMachine
	ctx            *Context
	game           *game.Game
	renderer       *render.SceneRenderer
	score          *ui.ScoreIndicator
	lives          *ui.LivesIndicator
	levelIndicator *ui.PlayerLevelIndicator
	pauseButton    *ui.PauseButton
	result         *event.SessionResult
	overElapsed    float64
	best           int
	hasBest        bool
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	seed := ctx.Settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gameLogic := game.NewGame(game.Options{
		Seed:          seed,
		BombDropDelay: ctx.Settings.BombDropDelay,
		PauseDelay:    ctx.Settings.PauseDelay,
		Input:         keyboardInput{},
		Sound:         ctx.soundPlayer(),
		Logger:        ctx.Log,
	})

	sceneColors := &render.SceneColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     config.GroundColor,
		GuardColor:      config.GuardColor,
		GuardStripe:     config.GuardStripe,
		BombColor:       config.BombColor,
		FuseColor:       config.FuseColor,
		StrokeWidth:     config.StrokeWidth,
	}

	gs := &GameState{
		sm:       sm,
		ctx:      ctx,
		game:     gameLogic,
		renderer: render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight, config.GroundTopRatio, sceneColors),
		score:    ui.NewScoreIndicator(config.ScreenWidth/2, config.HUDMargin+config.ScoreFontSize, config.ScoreColor),
		lives:    ui.NewLivesIndicator(config.HUDMargin, config.HUDMargin+config.HUDFontSize),
		levelIndicator: ui.NewPlayerLevelIndicator(
			config.ScreenWidth-config.HUDMargin*2-200-config.PauseButtonSize*2,
			config.HUDMargin,
			config.MaxLevel,
			config.LevelFillColor,
		),
		pauseButton: ui.NewPauseButton(
			config.ScreenWidth-config.HUDMargin-config.PauseButtonSize,
			config.HUDMargin+config.PauseButtonSize,
			config.PauseButtonSize,
			config.TextLightColor,
			config.TextLightColor,
		),
	}
	gs.best, gs.hasBest = ctx.bestScore()
	return gs
}

// Enter подписывается на конец игры; Exit снимает подписку, так что
// брошенная сессия не пишет в старый экран.
func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	g.game.EventDispatcher.Subscribe(event.GameOver, g)
}

func (g *GameState) Update(deltaTime float64) {
	if g.result != nil {
		g.game.Update(deltaTime)
		g.overElapsed += deltaTime
		if g.overElapsed >= config.GameOverScreenDelay {
			g.sm.SetState(NewGameOverState(g.sm, g.ctx, *g.result))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.openPause()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); g.pauseButton.IsClicked(x, y) {
			g.openPause()
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.ctx.toggleMute()
	}

	g.game.Update(deltaTime)
	g.levelIndicator.Update(deltaTime, g.game.Level.BombsCaught(), g.game.Level.BombLimit())
}

func (g *GameState) openPause() {
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
}

// OnEvent сохраняет результат; переход на экран итогов - в Update, после задержки.
func (g *GameState) OnEvent(e event.Event) {
	if e.Type != event.GameOver {
		return
	}
	result, ok := e.Data.(event.SessionResult)
	if !ok {
		return
	}
	g.result = &result
	g.ctx.saveScore(storage.HighScore{
		SessionID:   result.SessionID,
		Score:       result.Score,
		Level:       result.Level,
		BombsCaught: result.BombsCaught,
		FinishedAt:  time.Now(),
	})
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS, g.game.Scheduler.Now())

	g.score.Draw(screen, g.game.Level.CurrentScore(), g.game.Level.CurrentLevel(), g.ctx.Fonts.Score, g.ctx.Fonts.HUD)
	g.lives.Draw(screen, g.game.Lives(), config.MaxLives, g.ctx.Fonts.HUD)
	if g.hasBest {
		text.Draw(screen, bestLine(g.best, g.game.Level.CurrentScore()), g.ctx.Fonts.HUD,
			config.HUDMargin, config.HUDMargin+config.HUDFontSize*3, config.TextLightColor)
	}
	g.levelIndicator.Draw(screen, g.game.Level.CurrentLevel())
	g.pauseButton.Draw(screen)

	switch g.game.Phase() {
	case component.GameOverPhase:
		ui.DrawOutlined(screen, "GAME OVER", g.ctx.Fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2, 2, config.ScoreColor, config.BombColor)
	case component.PausedPhase:
		msg := "Get ready"
		if g.game.ECS.GameState.PauseReason == component.PauseQuotaReached {
			msg = "Catch them all!"
		}
		msg = fmt.Sprintf("%s  %.1f", msg, g.game.PauseRemaining())
		ui.DrawCentered(screen, msg, g.ctx.Fonts.HUD, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
	}
}

// bestLine показывает рекорд; текущий счёт заменяет его, как только превзойдёт.
func bestLine(best, score int) string {
	if score > best {
		best = score
	}
	return fmt.Sprintf("BEST %d", best)
}

func (g *GameState) Exit() {
	g.game.EventDispatcher.Unsubscribe(event.GameOver, g)
	if g.ctx.Sound != nil {
		g.ctx.Sound.StopFuse()
	}
}
