// internal/state/context.go
package state

import (
	"context"
	"time"

	"go-kaboom/internal/assets"
	"go-kaboom/internal/config"
	"go-kaboom/internal/interfaces"
	"go-kaboom/internal/platform/logger"
	"go-kaboom/internal/storage"
)

const storeTimeout = 2 * time.Second

// Context - общие ресурсы, которые живут дольше одной сессии.
// Sound и Scores могут быть nil: игра работает без звука и без таблицы рекордов.
type Context struct {
	Settings config.Settings
	Fonts    *assets.Fonts
	Sound    *assets.SoundManager
	Scores   storage.HighScoreRepository
	Log      *logger.Logger
}

func (c *Context) soundPlayer() interfaces.SoundPlayer {
	if c.Sound == nil {
		return nil
	}
	return c.Sound
}

// topScores читает таблицу рекордов; ошибка хранилища пишется в лог и даёт пустой список.
func (c *Context) topScores() []storage.HighScore {
	if c.Scores == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	scores, err := c.Scores.Top(ctx, config.HighScoreRows)
	if err != nil {
		c.Log.Warnf("failed to load high scores: %v", err)
		return nil
	}
	return scores
}

// bestScore возвращает лучший сохранённый счёт; false, если рекордов нет или хранилище недоступно.
func (c *Context) bestScore() (int, bool) {
	if c.Scores == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	best, ok, err := c.Scores.Best(ctx)
	if err != nil {
		c.Log.Warnf("failed to load best score: %v", err)
		return 0, false
	}
	return best.Score, ok
}

func (c *Context) saveScore(s storage.HighScore) {
	if c.Scores == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := c.Scores.Save(ctx, s); err != nil {
		c.Log.Warnf("failed to save high score: %v", err)
	}
}

func (c *Context) toggleMute() {
	if c.Sound == nil {
		return
	}
	if c.Sound.ToggleMute() {
		c.Log.Info("sound muted")
	} else {
		c.Log.Info("sound unmuted")
	}
}
