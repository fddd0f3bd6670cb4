// component/movement.go
package component

// Position - компонент позиции (точка привязки спрайта)
type Position struct {
	X, Y float64
}

// Velocity - скорость в пикселях в секунду
type Velocity struct {
	X, Y float64
}

// Body - прямоугольник столкновений. OriginX/OriginY задают точку привязки
// в долях размера, как у спрайтов: 0.5, 0.5 - центр.
type Body struct {
	Width, Height    float64
	OriginX, OriginY float64
	CollideWorld     bool
	BlockedLeft      bool
	BlockedRight     bool
}

// Rect - выровненный по осям прямоугольник.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds возвращает прямоугольник тела в мировых координатах.
func (b *Body) Bounds(pos *Position) Rect {
	left := pos.X - b.Width*b.OriginX
	top := pos.Y - b.Height*b.OriginY
	return Rect{MinX: left, MinY: top, MaxX: left + b.Width, MaxY: top + b.Height}
}

// Overlaps проверяет пересечение. Касание краями считается пересечением.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}
