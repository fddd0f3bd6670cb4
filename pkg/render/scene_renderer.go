package render

import (
	"math"

	"go-kaboom/internal/component"
	"go-kaboom/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneRenderer рисует игровое поле: задник, охранника, бомбы и ракетки.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	groundTop    float32
	colors       *SceneColors
	backdrop     *ebiten.Image // предрендеренные небо и земля
}

func NewSceneRenderer(screenWidth, screenHeight int, groundTopRatio float64, colors *SceneColors) *SceneRenderer {
	r := &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		groundTop:    float32(float64(screenHeight) * groundTopRatio),
		colors:       colors,
		backdrop:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderBackdrop()
	return r
}

func (r *SceneRenderer) renderBackdrop() {
	r.backdrop.Fill(r.colors.BackgroundColor)
	vector.DrawFilledRect(r.backdrop, 0, r.groundTop, float32(r.screenWidth), float32(r.screenHeight)-r.groundTop, r.colors.GroundColor, false)
}

// Draw рисует кадр. now - игровое время; фитиль каждой бомбы мерцает от момента её сброса.
func (r *SceneRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, now float64) {
	screen.DrawImage(r.backdrop, nil)

	for id, guard := range ecs.Guards {
		r.drawGuard(screen, ecs.Bodies[id].Bounds(ecs.Positions[id]), guard)
	}
	for _, id := range ecs.BombIDs() {
		r.drawBomb(screen, ecs.Bodies[id].Bounds(ecs.Positions[id]), now-ecs.Bombs[id].DroppedAt)
	}
	for _, id := range ecs.PaddleIDs() {
		rend := ecs.Renderables[id]
		if rend == nil || !rend.Visible {
			continue
		}
		r.drawPaddle(screen, ecs.Bodies[id].Bounds(ecs.Positions[id]), rend)
	}
}

func (r *SceneRenderer) drawGuard(screen *ebiten.Image, b component.Rect, guard *component.Guard) {
	x, y := float32(b.MinX), float32(b.MinY)
	w, h := float32(b.MaxX-b.MinX), float32(b.MaxY-b.MinY)
	headR := w * 0.3
	bodyTop := y + headR*2

	// Голова
	vector.DrawFilledCircle(screen, x+w/2, y+headR, headR, r.colors.GuardColor, true)
	vector.StrokeCircle(screen, x+w/2, y+headR, headR, r.colors.StrokeWidth, DarkenColor(r.colors.GuardColor), true)

	// Роба в полоску
	vector.DrawFilledRect(screen, x, bodyTop, w, h-headR*2, r.colors.GuardColor, true)
	stripeH := (h - headR*2) / 9
	for i := 1; i < 9; i += 2 {
		vector.DrawFilledRect(screen, x, bodyTop+float32(i)*stripeH, w, stripeH, r.colors.GuardStripe, true)
	}
	vector.StrokeRect(screen, x, bodyTop, w, h-headR*2, r.colors.StrokeWidth, DarkenColor(r.colors.GuardColor), true)

	// Остановившийся охранник держит бомбу над головой
	if !guard.Moving {
		vector.DrawFilledCircle(screen, x+w/2, y-headR*0.6, headR*0.6, r.colors.BombColor, true)
	}
}

// fuseFlicker возвращает масштаб искры фитиля в [0.6, 1] для бомбы возраста age секунд.
func fuseFlicker(age float64) float32 {
	return float32(0.6 + 0.4*math.Abs(math.Sin(age*25)))
}

func (r *SceneRenderer) drawBomb(screen *ebiten.Image, b component.Rect, age float64) {
	cx := float32((b.MinX + b.MaxX) / 2)
	w := float32(b.MaxX - b.MinX)
	radius := w / 2
	cy := float32(b.MaxY) - radius

	vector.DrawFilledCircle(screen, cx, cy, radius, r.colors.BombColor, true)
	vector.DrawFilledCircle(screen, cx-radius*0.35, cy-radius*0.35, radius*0.2, LightenColor(r.colors.BombColor), true)

	fuseTop := float32(b.MinY)
	vector.StrokeLine(screen, cx, cy-radius, cx+radius*0.3, fuseTop+2, r.colors.StrokeWidth, DarkenColor(r.colors.FuseColor), true)

	vector.DrawFilledCircle(screen, cx+radius*0.3, fuseTop+2, 4*fuseFlicker(age), r.colors.FuseColor, true)
}

func (r *SceneRenderer) drawPaddle(screen *ebiten.Image, b component.Rect, rend *component.Renderable) {
	x, y := float32(b.MinX), float32(b.MinY)
	w, h := float32(b.MaxX-b.MinX), float32(b.MaxY-b.MinY)
	vector.DrawFilledRect(screen, x, y, w, h, rend.Color, true)
	vector.DrawFilledRect(screen, x, y, w, h*0.3, LightenColor(rend.Color), true)
	vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, DarkenColor(rend.Color), true)
}
