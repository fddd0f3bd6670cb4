// internal/event/types.go
package event

const (
	BombDropped  EventType = "BombDropped"
	BombCaught   EventType = "BombCaught"  // Data: ScoreChange
	BombMissed   EventType = "BombMissed"  // Data: LivesChange
	LevelUp      EventType = "LevelUp"     // Data: int - новый уровень
	LifeGained   EventType = "LifeGained"  // Data: LivesChange
	LifeLost     EventType = "LifeLost"    // Data: LivesChange
	GuardPaused  EventType = "GuardPaused" // Data: component.PauseReason
	GuardResumed EventType = "GuardResumed"
	GameOver     EventType = "GameOver" // Data: SessionResult
)

// ScoreChange - данные для BombCaught
type ScoreChange struct {
	Previous int
	Current  int
	Level    int
}

// LivesChange - данные для событий жизней
type LivesChange struct {
	Lives int
}

// SessionResult - итог сессии
type SessionResult struct {
	SessionID   string
	Score       int
	Level       int
	BombsCaught int
}
