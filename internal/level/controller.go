// Package level tracks bomb quotas, score and difficulty tier for one game session.
package level

import "go-kaboom/internal/config"

// Controller считает сброшенные и пойманные бомбы текущего уровня
// и решает, когда повышать уровень.
type Controller struct {
	level        int
	bombsDropped int
	bombsCaught  int
	score        int
}

// NewController создаёт контроллер в начальном состоянии: уровень 1, нулевые счётчики.
func NewController() *Controller {
	return &Controller{level: 1}
}

func (c *Controller) CurrentLevel() int { return c.level }

func (c *Controller) CurrentScore() int { return c.score }

func (c *Controller) BombsDropped() int { return c.bombsDropped }

func (c *Controller) BombsCaught() int { return c.bombsCaught }

// BombLimit - сколько бомб нужно сбросить и поймать для перехода на следующий уровень.
func (c *Controller) BombLimit() int {
	return c.level * config.BombsPerLevel
}

// ShouldDropBomb сообщает, остались ли бомбы в квоте уровня.
func (c *Controller) ShouldDropBomb() bool {
	return c.bombsDropped < c.BombLimit()
}

func (c *Controller) AddBombDropped() {
	c.bombsDropped++
}

// AddBombCaught начисляет очки по текущему уровню и повышает уровень,
// когда поймана вся квота. Возвращает true, если уровень вырос.
func (c *Controller) AddBombCaught() bool {
	c.bombsCaught++
	c.score += c.level

	if c.bombsCaught == c.BombLimit() {
		return c.increaseLevel()
	}
	return false
}

// ResetDroppedBombs обнуляет прогресс квоты после промаха. Уровень и очки не меняются.
func (c *Controller) ResetDroppedBombs() {
	c.bombsDropped = 0
	c.bombsCaught = 0
}

func (c *Controller) increaseLevel() bool {
	c.bombsDropped = 0
	c.bombsCaught = 0

	if c.level < config.MaxLevel {
		c.level++
		return true
	}
	return false
}
