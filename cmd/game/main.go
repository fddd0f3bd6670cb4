// cmd/game/main.go
package main

import (
	"database/sql"
	"flag"
	"os"
	"time"

	"go-kaboom/internal/assets"
	"go-kaboom/internal/config"
	"go-kaboom/internal/platform/logger"
	"go-kaboom/internal/state"
	"go-kaboom/internal/storage"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to YAML settings")
	dbPath := flag.String("db", "", "high score database (overrides settings)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one per session")
	menu := flag.Bool("menu", false, "start on the menu screen")
	flag.Parse()

	log := logger.NewLogger()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	if *dbPath != "" {
		settings.DatabasePath = *dbPath
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *menu {
		settings.StartOnMenu = true
	}

	if err := run(settings, log); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// run владеет ресурсами процесса, чтобы defer отработал до выхода.
func run(settings config.Settings, log *logger.Logger) error {
	var err error
	ctx := &state.Context{Settings: settings, Log: log}

	var db *sql.DB
	if db, err = storage.InitSQLite(settings.DatabasePath); err != nil {
		log.Warnf("high scores disabled: %v", err)
	} else {
		defer db.Close()
		ctx.Scores = storage.NewSQLiteHighScoreRepository(db)
	}

	if ctx.Fonts, err = assets.LoadFonts(); err != nil {
		log.Warnf("%v, using fallback font", err)
		ctx.Fonts = assets.FallbackFonts()
	}

	audioContext := audio.NewContext(assets.SampleRate)
	if ctx.Sound, err = assets.NewSoundManager(audioContext, settings.SoundDir, settings.Volume, settings.Muted, log); err != nil {
		log.Warnf("sound disabled: %v", err)
		ctx.Sound = nil
	} else {
		defer ctx.Sound.Close()
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.StartOnMenu {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		sm.SetState(state.NewGameState(sm, ctx))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	log.Infof("starting, db=%s sfx=%s", settings.DatabasePath, settings.SoundDir)
	return ebiten.RunGame(app)
}
