// internal/app/game.go
package app

import (
	"fmt"
	"time"

	"go-kaboom/internal/component"
	"go-kaboom/internal/config"
	"go-kaboom/internal/defs"
	"go-kaboom/internal/entity"
	"go-kaboom/internal/event"
	"go-kaboom/internal/interfaces"
	"go-kaboom/internal/level"
	"go-kaboom/internal/platform/logger"
	"go-kaboom/internal/system"
	"go-kaboom/internal/timer"
	"go-kaboom/internal/types"
	"go-kaboom/internal/utils"

	"github.com/google/uuid"
)

// Options - параметры новой сессии. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	Seed          int64
	BombDropDelay time.Duration
	PauseDelay    time.Duration
	Input         system.InputSource
	Sound         interfaces.SoundPlayer
	Logger        *logger.Logger
}

// Game holds one play session: entities, systems, timers and the level controller.
type Game struct {
	SessionID       string
	ECS             *entity.ECS
	Level           *level.Controller
	Scheduler       *timer.Scheduler
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem  *system.MovementSystem
	GuardSystem     *system.GuardSystem
	PlayerSystem    *system.PlayerSystem
	CollisionSystem *system.CollisionSystem
	StateSystem     *system.StateSystem

	GuardID    types.EntityID
	BoundaryID types.EntityID

	dropTimer   *timer.Timer
	pauseTimer  *timer.Timer
	pauseDelay  float64
	totalCaught int
	sound       interfaces.SoundPlayer
	log         *logger.Logger
}

// NewGame initializes a new session and starts the bomb-drop timer.
func NewGame(opts Options) *Game {
	if opts.BombDropDelay <= 0 {
		opts.BombDropDelay = time.Duration(config.BombDropDelay * float64(time.Second))
	}
	if opts.PauseDelay <= 0 {
		opts.PauseDelay = time.Duration(config.GamePauseDelay * float64(time.Second))
	}
	if opts.Sound == nil {
		opts.Sound = silentSound{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		SessionID:       uuid.NewString(),
		ECS:             ecs,
		Level:           level.NewController(),
		Scheduler:       timer.NewScheduler(),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		MovementSystem:  system.NewMovementSystem(ecs, config.ScreenWidth, config.ScreenHeight),
		GuardSystem:     system.NewGuardSystem(ecs, rng),
		PlayerSystem:    system.NewPlayerSystem(ecs, opts.Input),
		StateSystem:     system.NewStateSystem(ecs, eventDispatcher),
		pauseDelay:      opts.PauseDelay.Seconds(),
		sound:           opts.Sound,
		log:             opts.Logger,
	}

	g.BoundaryID = g.createBoundary()
	g.GuardID = g.createGuard(config.ScreenWidth*config.GuardStartXRatio, config.ScreenHeight*config.GuardStartYRatio)
	g.createPlayer(config.ScreenWidth*0.5, config.ScreenHeight*config.PlayerStartYRatio)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.BoundaryID, g.handleBombPlayerOverlap, g.handleBombBoundaryOverlap)

	g.dropTimer = g.Scheduler.AddEvent(timer.Options{
		Delay:    opts.BombDropDelay.Seconds(),
		Loop:     true,
		Callback: g.dropBomb,
	})

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LevelUp, listener)
	eventDispatcher.Subscribe(event.LifeLost, listener)
	eventDispatcher.Subscribe(event.LifeGained, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)

	g.log.Event("SessionStarted", g.SessionID, fmt.Sprintf("seed=%d", opts.Seed))
	return g
}

// Update progresses the session by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.StateSystem.IsGameOver() {
		g.updateFuse()
		return
	}

	g.Scheduler.Update(deltaTime)
	g.GuardSystem.Update(g.Scheduler.Now())
	g.PlayerSystem.Update()
	g.MovementSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.updateFuse()
}

func (g *Game) updateFuse() {
	if len(g.ECS.Bombs) > 0 {
		if !g.sound.IsFusePlaying() {
			g.sound.PlayFuse()
		}
	} else if g.sound.IsFusePlaying() {
		g.sound.StopFuse()
	}
}

func (g *Game) dropBomb() {
	if !g.Level.ShouldDropBomb() {
		g.pauseGuard(component.PauseQuotaReached)
		return
	}

	guardPos := g.ECS.Positions[g.GuardID]
	g.createBomb(guardPos.X, guardPos.Y)
	g.Level.AddBombDropped()
	g.EventDispatcher.Dispatch(event.Event{Type: event.BombDropped})
}

func (g *Game) handleBombBoundaryOverlap(bombID types.EntityID) {
	for _, id := range g.ECS.BombIDs() {
		g.destroyBomb(id)
	}

	g.pauseGuard(component.PauseAfterMiss)
	g.PlayerSystem.RemoveLife()
	g.Level.ResetDroppedBombs()

	lives := event.LivesChange{Lives: g.PlayerSystem.Lives()}
	g.EventDispatcher.Dispatch(event.Event{Type: event.BombMissed, Data: lives})
	g.EventDispatcher.Dispatch(event.Event{Type: event.LifeLost, Data: lives})

	if !g.PlayerSystem.IsAlive() {
		g.pauseTimer.Destroy()
		g.pauseTimer = nil
		g.StateSystem.SwitchToGameOver()
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.Result()})
	}
}

func (g *Game) handleBombPlayerOverlap(bombID, paddleID types.EntityID) {
	g.destroyBomb(bombID)

	previousScore := g.Level.CurrentScore()
	previousThousands := previousScore / config.LifeBonusPoints

	g.sound.PlayCatch()
	leveledUp := g.Level.AddBombCaught()
	g.totalCaught++
	g.EventDispatcher.Dispatch(event.Event{Type: event.BombCaught, Data: event.ScoreChange{
		Previous: previousScore,
		Current:  g.Level.CurrentScore(),
		Level:    g.Level.CurrentLevel(),
	}})
	if leveledUp {
		g.EventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: g.Level.CurrentLevel()})
	}

	currentThousands := g.Level.CurrentScore() / config.LifeBonusPoints
	if currentThousands > previousThousands && g.PlayerSystem.AddLife() {
		g.EventDispatcher.Dispatch(event.Event{Type: event.LifeGained, Data: event.LivesChange{Lives: g.PlayerSystem.Lives()}})
	}

	if g.GuardSpeedLevel() < g.Level.CurrentLevel() {
		g.GuardSystem.RiseSpeedLevel(g.GuardID)
	}
}

// pauseGuard останавливает охранника и сброс бомб; заменяет ожидающий таймер возобновления.
func (g *Game) pauseGuard(reason component.PauseReason) {
	g.dropTimer.Paused = true
	g.GuardSystem.StopMovement(g.GuardID)

	if g.pauseTimer != nil {
		g.pauseTimer.Destroy()
	}
	g.pauseTimer = g.Scheduler.AddEvent(timer.Options{
		Delay:    g.pauseDelay,
		Callback: g.resumeGuard,
	})
	g.StateSystem.SwitchToPaused(reason)
}

func (g *Game) resumeGuard() {
	g.pauseTimer.Destroy()
	g.pauseTimer = nil
	g.GuardSystem.StartMovement(g.GuardID)
	g.dropTimer.Paused = false
	g.StateSystem.SwitchToRunning()
}

func (g *Game) destroyBomb(id types.EntityID) {
	g.ECS.RemoveEntity(id)
}

// Result возвращает итог сессии для таблицы рекордов.
func (g *Game) Result() event.SessionResult {
	return event.SessionResult{
		SessionID:   g.SessionID,
		Score:       g.Level.CurrentScore(),
		Level:       g.Level.CurrentLevel(),
		BombsCaught: g.totalCaught,
	}
}

func (g *Game) Phase() component.Phase { return g.StateSystem.Current() }

func (g *Game) IsGameOver() bool { return g.StateSystem.IsGameOver() }

func (g *Game) Lives() int { return g.PlayerSystem.Lives() }

func (g *Game) GuardSpeedLevel() int {
	if guard, ok := g.ECS.Guards[g.GuardID]; ok {
		return guard.SpeedLevel
	}
	return defs.MinSpeedLevel
}

// PauseRemaining возвращает время до возобновления или 0, если таймер не запущен.
func (g *Game) PauseRemaining() float64 {
	return g.pauseTimer.Remaining()
}

// GameEventListener пишет в лог важные события сессии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.LevelUp:
		g.log.Event(string(e.Type), g.SessionID, fmt.Sprintf("level=%v score=%d", e.Data, g.Level.CurrentScore()))
	case event.LifeLost, event.LifeGained:
		if lives, ok := e.Data.(event.LivesChange); ok {
			g.log.Event(string(e.Type), g.SessionID, fmt.Sprintf("lives=%d", lives.Lives))
		}
	case event.GameOver:
		if result, ok := e.Data.(event.SessionResult); ok {
			g.log.Event(string(e.Type), g.SessionID, fmt.Sprintf("score=%d level=%d caught=%d", result.Score, result.Level, result.BombsCaught))
		}
	}
}

type silentSound struct{}

func (silentSound) PlayCatch()          {}
func (silentSound) PlayFuse()           {}
func (silentSound) StopFuse()           {}
func (silentSound) IsFusePlaying() bool { return false }
