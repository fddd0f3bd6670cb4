package component

// Phase - фаза игровой сессии
type Phase int

const (
	RunningPhase Phase = iota
	PausedPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case RunningPhase:
		return "running"
	case PausedPhase:
		return "paused"
	case GameOverPhase:
		return "game over"
	}
	return "unknown"
}

// PauseReason - почему охранник остановился
type PauseReason int

const (
	NoPause PauseReason = iota
	PauseAfterMiss
	PauseQuotaReached
)

// GameState - компонент состояния сессии
type GameState struct {
	Phase       Phase
	PauseReason PauseReason
}
