// internal/component/player.go
package component

// Paddle - одна из ракеток игрока. Tier: 1 - верхняя, 3 - нижняя.
// Каждая ракетка - одна жизнь; выключенная ракетка не ловит бомбы и не рисуется.
type Paddle struct {
	Tier    int
	Enabled bool
}

// PlayerStateComponent хранит жизни игрока.
type PlayerStateComponent struct {
	Lives    int
	MaxLives int
}

func (p *PlayerStateComponent) IsAlive() bool {
	return p.Lives > 0
}
