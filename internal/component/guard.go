package component

// Guard - состояние случайного блуждания охранника.
type Guard struct {
	DirectionModifier   float64 // -1 или +1
	SpeedLevel          int
	LastDirectionChange float64 // игровое время в секундах
	Moving              bool
}

// Bomb помечает падающую бомбу.
type Bomb struct {
	DroppedAt float64
}
