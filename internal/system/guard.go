package system

import (
	"go-kaboom/internal/config"
	"go-kaboom/internal/defs"
	"go-kaboom/internal/entity"
	"go-kaboom/internal/types"
	"go-kaboom/internal/utils"
)

// GuardSystem управляет случайным блужданием охранника вдоль верхнего края поля.
type GuardSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewGuardSystem(ecs *entity.ECS, rng *utils.PRNGService) *GuardSystem {
	return &GuardSystem{ecs: ecs, rng: rng}
}

// Update меняет направление и выставляет скорость. now - игровое время в секундах.
func (s *GuardSystem) Update(now float64) {
	for id, guard := range s.ecs.Guards {
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		if !guard.Moving {
			vel.X = 0
			continue
		}
		if s.shouldChangeDirection(id, now) {
			guard.DirectionModifier *= -1
			guard.LastDirectionChange = now
		}
		vel.X = defs.GuardSpeed(guard.SpeedLevel) * guard.DirectionModifier
		vel.Y = 0
	}
}

func (s *GuardSystem) shouldChangeDirection(id types.EntityID, now float64) bool {
	guard := s.ecs.Guards[id]
	if body, ok := s.ecs.Bodies[id]; ok && (body.BlockedLeft || body.BlockedRight) {
		return true
	}

	sinceLastChange := now - guard.LastDirectionChange
	if sinceLastChange > config.MaxDirectionChangeTime {
		return true
	} else if sinceLastChange > config.MinDirectionChangeTime {
		return s.rng.Chance(config.BaseDirectionChangeChance * float64(guard.SpeedLevel))
	}
	return false
}

// StopMovement останавливает охранника до StartMovement.
func (s *GuardSystem) StopMovement(id types.EntityID) {
	if guard, ok := s.ecs.Guards[id]; ok {
		guard.Moving = false
	}
	if vel, ok := s.ecs.Velocities[id]; ok {
		vel.X = 0
	}
}

func (s *GuardSystem) StartMovement(id types.EntityID) {
	if guard, ok := s.ecs.Guards[id]; ok {
		guard.Moving = true
	}
}

// RiseSpeedLevel повышает уровень скорости на один, не выше максимального.
// Понижения нет: скорость охранника только растёт в течение сессии.
func (s *GuardSystem) RiseSpeedLevel(id types.EntityID) {
	guard, ok := s.ecs.Guards[id]
	if !ok {
		return
	}
	if guard.SpeedLevel < defs.MaxSpeedLevel {
		guard.SpeedLevel++
	}
}
