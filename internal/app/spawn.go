package app

import (
	"go-kaboom/internal/component"
	"go-kaboom/internal/config"
	"go-kaboom/internal/defs"
	"go-kaboom/internal/types"
)

// createBoundary создаёт невидимую полосу во всю ширину у нижнего края мира.
func (g *Game) createBoundary() types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight}
	g.ECS.Bodies[id] = &component.Body{
		Width:   config.ScreenWidth,
		Height:  config.BoundaryHeight,
		OriginX: 0.5,
		OriginY: 1,
	}
	return id
}

func (g *Game) createGuard(x, y float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Bodies[id] = &component.Body{
		Width:        config.GuardWidth,
		Height:       config.GuardHeight,
		OriginX:      0.5,
		OriginY:      config.GuardOriginY,
		CollideWorld: true,
	}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.GuardColor, Visible: true}
	g.ECS.Guards[id] = &component.Guard{
		DirectionModifier:   g.Rng.Sign(),
		SpeedLevel:          defs.MinSpeedLevel,
		LastDirectionChange: g.Scheduler.Now(),
		Moving:              true,
	}
	return id
}

// createPlayer создаёт три ракетки друг над другом: нижняя в (x, y), каждая следующая выше на PaddleSpacing.
func (g *Game) createPlayer(x, y float64) {
	g.ECS.PlayerState = &component.PlayerStateComponent{MaxLives: config.MaxLives}

	// Tier 3 - нижняя ракетка, пропадает первой.
	for tier := config.MaxLives; tier >= 1; tier-- {
		id := g.ECS.NewEntity()
		offset := float64(config.MaxLives-tier) * config.PaddleSpacing
		g.ECS.Positions[id] = &component.Position{X: x, Y: y - offset}
		g.ECS.Velocities[id] = &component.Velocity{}
		g.ECS.Bodies[id] = &component.Body{
			Width:        config.PaddleWidth,
			Height:       config.PaddleHeight,
			OriginX:      0.5,
			OriginY:      0.5,
			CollideWorld: true,
		}
		g.ECS.Renderables[id] = &component.Renderable{Color: config.PaddleColor}
		g.ECS.Paddles[id] = &component.Paddle{Tier: tier}
	}
	g.PlayerSystem.ResetLives()
}

func (g *Game) createBomb(x, y float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Velocities[id] = &component.Velocity{Y: config.BombDropSpeed}
	g.ECS.Bodies[id] = &component.Body{
		Width:        config.BombWidth,
		Height:       config.BombHeight,
		OriginX:      0.5,
		OriginY:      0.5,
		CollideWorld: true,
	}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.BombColor, Visible: true}
	g.ECS.Bombs[id] = &component.Bomb{DroppedAt: g.Scheduler.Now()}
	return id
}
