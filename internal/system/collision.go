package system

import (
	"go-kaboom/internal/component"
	"go-kaboom/internal/entity"
	"go-kaboom/internal/types"
)

// CollisionSystem ищет пересечения бомб с ракетками и нижней границей.
// Реакция на столкновение задаётся колбэками оркестратора.
type CollisionSystem struct {
	ecs        *entity.ECS
	boundaryID types.EntityID
	onCatch    func(bombID, paddleID types.EntityID)
	onMiss     func(bombID types.EntityID)
}

func NewCollisionSystem(ecs *entity.ECS, boundaryID types.EntityID, onCatch func(bombID, paddleID types.EntityID), onMiss func(bombID types.EntityID)) *CollisionSystem {
	return &CollisionSystem{
		ecs:        ecs,
		boundaryID: boundaryID,
		onCatch:    onCatch,
		onMiss:     onMiss,
	}
}

func (s *CollisionSystem) Update() {
	boundaryPos, ok := s.ecs.Positions[s.boundaryID]
	if !ok {
		return
	}
	boundary := s.ecs.Bodies[s.boundaryID].Bounds(boundaryPos)
	paddleIDs := s.ecs.PaddleIDs()

	for _, bombID := range s.ecs.BombIDs() {
		// Бомба могла быть уничтожена предыдущим колбэком.
		pos, alive := s.ecs.Positions[bombID]
		if !alive {
			continue
		}
		bounds := s.ecs.Bodies[bombID].Bounds(pos)

		if paddleID, caught := s.findPaddle(bounds, paddleIDs); caught {
			s.onCatch(bombID, paddleID)
			continue
		}
		if bounds.Overlaps(boundary) {
			s.onMiss(bombID)
		}
	}
}

func (s *CollisionSystem) findPaddle(bomb component.Rect, paddleIDs []types.EntityID) (types.EntityID, bool) {
	for _, id := range paddleIDs {
		paddle := s.ecs.Paddles[id]
		if !paddle.Enabled {
			continue
		}
		if s.ecs.Bodies[id].Bounds(s.ecs.Positions[id]).Overlaps(bomb) {
			return id, true
		}
	}
	return 0, false
}
