// internal/system/movement.go
package system

import (
	"go-kaboom/internal/entity"
)

// MovementSystem двигает сущности по их скорости и удерживает тела с CollideWorld внутри мира.
type MovementSystem struct {
	ecs           *entity.ECS
	width, height float64
}

func NewMovementSystem(ecs *entity.ECS, worldWidth, worldHeight float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, width: worldWidth, height: worldHeight}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel {
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		body, hasBody := s.ecs.Bodies[id]
		if !hasBody {
			continue
		}
		body.BlockedLeft, body.BlockedRight = false, false
		if !body.CollideWorld {
			continue
		}

		// Сдвигаем точку привязки так, чтобы прямоугольник остался в мире.
		bounds := body.Bounds(pos)
		if bounds.MinX < 0 {
			pos.X -= bounds.MinX
			body.BlockedLeft = vel.X < 0
		} else if bounds.MaxX > s.width {
			pos.X -= bounds.MaxX - s.width
			body.BlockedRight = vel.X > 0
		}
		if bounds.MinY < 0 {
			pos.Y -= bounds.MinY
		} else if bounds.MaxY > s.height {
			pos.Y -= bounds.MaxY - s.height
		}
	}
}
