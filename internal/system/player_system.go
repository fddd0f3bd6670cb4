// internal/system/player_system.go
package system

import (
	"go-kaboom/internal/config"
	"go-kaboom/internal/entity"
)

// InputSource - состояние клавиш движения игрока.
type InputSource interface {
	LeftPressed() bool
	RightPressed() bool
}

// PlayerSystem отвечает за ракетки игрока и его жизни.
type PlayerSystem struct {
	ecs   *entity.ECS
	input InputSource
}

func NewPlayerSystem(ecs *entity.ECS, input InputSource) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, input: input}
}

// Update выставляет общую горизонтальную скорость всем ракеткам.
func (s *PlayerSystem) Update() {
	speed := 0.0
	if s.input != nil {
		if s.input.LeftPressed() {
			speed -= config.PlayerSpeed
		}
		if s.input.RightPressed() {
			speed += config.PlayerSpeed
		}
	}
	for id := range s.ecs.Paddles {
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.X = speed
		}
	}
}

func (s *PlayerSystem) Lives() int {
	if s.ecs.PlayerState == nil {
		return 0
	}
	return s.ecs.PlayerState.Lives
}

func (s *PlayerSystem) IsAlive() bool {
	return s.ecs.PlayerState != nil && s.ecs.PlayerState.IsAlive()
}

// AddLife добавляет жизнь, если она не максимальная. Возвращает true, если жизнь добавлена.
func (s *PlayerSystem) AddLife() bool {
	state := s.ecs.PlayerState
	if state == nil || state.Lives >= state.MaxLives {
		return false
	}
	s.SetLives(state.Lives + 1)
	return true
}

func (s *PlayerSystem) RemoveLife() {
	if s.ecs.PlayerState == nil {
		return
	}
	s.SetLives(s.ecs.PlayerState.Lives - 1)
}

func (s *PlayerSystem) ResetLives() {
	if s.ecs.PlayerState == nil {
		return
	}
	s.SetLives(s.ecs.PlayerState.MaxLives)
}

// SetLives включает ракетку с номером Tier, пока жизней не меньше Tier.
func (s *PlayerSystem) SetLives(lives int) {
	state := s.ecs.PlayerState
	if state == nil {
		return
	}
	if lives < 0 {
		lives = 0
	}
	if lives > state.MaxLives {
		lives = state.MaxLives
	}
	state.Lives = lives

	for id, paddle := range s.ecs.Paddles {
		paddle.Enabled = lives >= paddle.Tier
		if r, ok := s.ecs.Renderables[id]; ok {
			r.Visible = paddle.Enabled
		}
	}
}
