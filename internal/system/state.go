// internal/system/state.go
package system

import (
	"go-kaboom/internal/component"
	"go-kaboom/internal/entity"
	"go-kaboom/internal/event"
)

// StateSystem переключает фазы сессии. Конец игры терминален:
// после SwitchToGameOver остальные переключения игнорируются.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) SwitchToPaused(reason component.PauseReason) bool {
	if s.IsGameOver() {
		return false
	}
	s.ecs.GameState.Phase = component.PausedPhase
	s.ecs.GameState.PauseReason = reason
	s.eventDispatcher.Dispatch(event.Event{Type: event.GuardPaused, Data: reason})
	return true
}

func (s *StateSystem) SwitchToRunning() bool {
	if s.IsGameOver() {
		return false
	}
	s.ecs.GameState.Phase = component.RunningPhase
	s.ecs.GameState.PauseReason = component.NoPause
	s.eventDispatcher.Dispatch(event.Event{Type: event.GuardResumed})
	return true
}

func (s *StateSystem) SwitchToGameOver() bool {
	if s.IsGameOver() {
		return false
	}
	s.ecs.GameState.Phase = component.GameOverPhase
	s.ecs.GameState.PauseReason = component.NoPause
	return true
}

func (s *StateSystem) IsGameOver() bool {
	return s.ecs.GameState.Phase == component.GameOverPhase
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}
