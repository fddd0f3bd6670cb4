// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-kaboom/internal/component"
	"go-kaboom/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Bodies      map[types.EntityID]*component.Body
	Renderables map[types.EntityID]*component.Renderable
	Guards      map[types.EntityID]*component.Guard
	Bombs       map[types.EntityID]*component.Bomb
	Paddles     map[types.EntityID]*component.Paddle
	PlayerState *component.PlayerStateComponent
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Bodies:      make(map[types.EntityID]*component.Body),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Guards:      make(map[types.EntityID]*component.Guard),
		Bombs:       make(map[types.EntityID]*component.Bomb),
		Paddles:     make(map[types.EntityID]*component.Paddle),
		GameState:   &component.GameState{Phase: component.RunningPhase},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Bodies, id)
	delete(ecs.Renderables, id)
	delete(ecs.Guards, id)
	delete(ecs.Bombs, id)
	delete(ecs.Paddles, id)
}

// BombIDs возвращает бомбы в порядке появления, чтобы обработка столкновений не зависела от обхода map.
func (ecs *ECS) BombIDs() []types.EntityID {
	return sortedIDs(ecs.Bombs)
}

// PaddleIDs возвращает ракетки в порядке создания.
func (ecs *ECS) PaddleIDs() []types.EntityID {
	return sortedIDs(ecs.Paddles)
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
