package system

import (
	"testing"

	"go-kaboom/internal/component"
	"go-kaboom/internal/defs"
	"go-kaboom/internal/entity"
	"go-kaboom/internal/event"
	"go-kaboom/internal/types"
	"go-kaboom/internal/utils"
)

type fakeInput struct{ left, right bool }

func (f *fakeInput) LeftPressed() bool  { return f.left }
func (f *fakeInput) RightPressed() bool { return f.right }

func addBody(ecs *entity.ECS, x, y, w, h float64, collide bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Bodies[id] = &component.Body{Width: w, Height: h, OriginX: 0.5, OriginY: 0.5, CollideWorld: collide}
	return id
}

func addGuard(ecs *entity.ECS, x float64) types.EntityID {
	id := addBody(ecs, x, 100, 60, 120, true)
	ecs.Guards[id] = &component.Guard{DirectionModifier: 1, SpeedLevel: 1, Moving: true}
	return id
}

func TestMovementClampsAndBlocks(t *testing.T) {
	ecs := entity.NewECS()
	id := addBody(ecs, 980, 500, 40, 40, true)
	ecs.Velocities[id].X = 100

	ms := NewMovementSystem(ecs, 1000, 1000)
	ms.Update(1)

	if got := ecs.Positions[id].X; got != 980 {
		t.Errorf("X = %v, want 980 (clamped)", got)
	}
	if !ecs.Bodies[id].BlockedRight {
		t.Error("BlockedRight = false at right edge")
	}

	ecs.Velocities[id].X = -100
	ms.Update(0.1)
	if ecs.Bodies[id].BlockedRight || ecs.Bodies[id].BlockedLeft {
		t.Error("blocked flags not cleared when moving away from the edge")
	}
	if got := ecs.Positions[id].X; got != 970 {
		t.Errorf("X = %v, want 970", got)
	}
}

func TestMovementClampsToFloor(t *testing.T) {
	ecs := entity.NewECS()
	id := addBody(ecs, 500, 990, 20, 20, true)
	ecs.Velocities[id].Y = 400
	NewMovementSystem(ecs, 1000, 1000).Update(0.5)
	if got := ecs.Positions[id].Y; got != 990 {
		t.Errorf("Y = %v, want 990", got)
	}
	if ecs.Bodies[id].BlockedLeft || ecs.Bodies[id].BlockedRight {
		t.Error("vertical clamp set a horizontal blocked flag")
	}
}

func TestGuardFlipsWhenBlocked(t *testing.T) {
	ecs := entity.NewECS()
	id := addGuard(ecs, 500)
	ecs.Bodies[id].BlockedRight = true

	gs := NewGuardSystem(ecs, utils.NewPRNGService(1))
	gs.Update(0.01)

	g := ecs.Guards[id]
	if g.DirectionModifier != -1 {
		t.Errorf("DirectionModifier = %v, want -1 after block", g.DirectionModifier)
	}
	if g.LastDirectionChange != 0.01 {
		t.Errorf("LastDirectionChange = %v, want 0.01", g.LastDirectionChange)
	}
	if got := ecs.Velocities[id].X; got != -defs.GuardSpeed(1) {
		t.Errorf("velocity = %v, want %v", got, -defs.GuardSpeed(1))
	}
}

func TestGuardFlipsAfterMaxTime(t *testing.T) {
	ecs := entity.NewECS()
	id := addGuard(ecs, 500)
	gs := NewGuardSystem(ecs, utils.NewPRNGService(1))

	gs.Update(0.1)
	if ecs.Guards[id].DirectionModifier != 1 {
		t.Fatal("guard changed direction before the minimum interval")
	}
	gs.Update(3.5)
	if ecs.Guards[id].DirectionModifier != -1 {
		t.Error("guard kept direction past the maximum interval")
	}
}

// countRandomTurns держит охранника в окне случайного разворота (0.15s, 3s]
// и считает развороты за frames кадров.
func countRandomTurns(speedLevel, frames int, seed int64) int {
	ecs := entity.NewECS()
	id := addGuard(ecs, 500)
	ecs.Guards[id].SpeedLevel = speedLevel
	gs := NewGuardSystem(ecs, utils.NewPRNGService(seed))

	turns := 0
	for i := 0; i < frames; i++ {
		guard := ecs.Guards[id]
		guard.LastDirectionChange = 0
		before := guard.DirectionModifier
		gs.Update(1.0)
		if guard.DirectionModifier != before {
			turns++
		}
	}
	return turns
}

func TestGuardRandomTurnsScaleWithSpeedLevel(t *testing.T) {
	const frames = 20000
	slow := countRandomTurns(1, frames, 11)
	fast := countRandomTurns(defs.MaxSpeedLevel, frames, 11)

	// Ожидаемо около 100 и 800 разворотов.
	if slow == 0 {
		t.Fatal("no random turns at speed level 1 inside the window")
	}
	if slow > frames/50 {
		t.Errorf("speed level 1 turned %d times in %d frames, want about %d", slow, frames, frames/200)
	}
	if fast < 4*slow {
		t.Errorf("speed level 8 turned %d times, speed level 1 %d; want level 8 at least 4x more often", fast, slow)
	}
}

func TestGuardNoRandomTurnAtMinInterval(t *testing.T) {
	tests := []struct {
		name string
		now  float64
	}{
		{"at min interval", 0.15},
		{"inside min interval", 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			id := addGuard(ecs, 500)
			ecs.Guards[id].SpeedLevel = defs.MaxSpeedLevel
			gs := NewGuardSystem(ecs, utils.NewPRNGService(5))
			for i := 0; i < 5000; i++ {
				ecs.Guards[id].LastDirectionChange = 0
				gs.Update(tt.now)
				if ecs.Guards[id].DirectionModifier != 1 {
					t.Fatalf("guard turned at %.2fs since last change (frame %d)", tt.now, i)
				}
			}
		})
	}
}

func TestGuardStopStart(t *testing.T) {
	ecs := entity.NewECS()
	id := addGuard(ecs, 500)
	gs := NewGuardSystem(ecs, utils.NewPRNGService(1))

	gs.Update(0.05)
	if ecs.Velocities[id].X == 0 {
		t.Fatal("moving guard has zero velocity")
	}
	gs.StopMovement(id)
	gs.Update(0.1)
	if ecs.Velocities[id].X != 0 {
		t.Errorf("stopped guard velocity = %v", ecs.Velocities[id].X)
	}
	gs.StartMovement(id)
	gs.Update(0.12)
	if ecs.Velocities[id].X == 0 {
		t.Error("guard did not resume")
	}
}

func TestRiseSpeedLevelCapped(t *testing.T) {
	ecs := entity.NewECS()
	id := addGuard(ecs, 500)
	gs := NewGuardSystem(ecs, utils.NewPRNGService(1))
	prev := ecs.Guards[id].SpeedLevel
	for i := 0; i < 20; i++ {
		gs.RiseSpeedLevel(id)
		lvl := ecs.Guards[id].SpeedLevel
		if lvl < prev {
			t.Fatalf("speed level dropped from %d to %d", prev, lvl)
		}
		prev = lvl
	}
	if prev != defs.MaxSpeedLevel {
		t.Errorf("SpeedLevel = %d, want %d", prev, defs.MaxSpeedLevel)
	}
}

func newPlayer(ecs *entity.ECS, input InputSource) *PlayerSystem {
	ecs.PlayerState = &component.PlayerStateComponent{MaxLives: 3}
	for tier := 1; tier <= 3; tier++ {
		id := addBody(ecs, 500, 950-float64(3-tier)*90, 120, 20, true)
		ecs.Paddles[id] = &component.Paddle{Tier: tier}
		ecs.Renderables[id] = &component.Renderable{}
	}
	ps := NewPlayerSystem(ecs, input)
	ps.ResetLives()
	return ps
}

func enabledTiers(ecs *entity.ECS) map[int]bool {
	out := map[int]bool{}
	for id, p := range ecs.Paddles {
		if p.Enabled != ecs.Renderables[id].Visible {
			panic("paddle visibility out of sync")
		}
		if p.Enabled {
			out[p.Tier] = true
		}
	}
	return out
}

func TestPlayerLivesTogglePaddles(t *testing.T) {
	ecs := entity.NewECS()
	ps := newPlayer(ecs, nil)

	if ps.Lives() != 3 || len(enabledTiers(ecs)) != 3 {
		t.Fatalf("after reset lives = %d, paddles = %v", ps.Lives(), enabledTiers(ecs))
	}
	ps.RemoveLife()
	tiers := enabledTiers(ecs)
	if tiers[3] || !tiers[1] || !tiers[2] {
		t.Errorf("lives 2 paddles = %v, want tiers 1 and 2", tiers)
	}
	ps.RemoveLife()
	ps.RemoveLife()
	ps.RemoveLife()
	if ps.Lives() != 0 || ps.IsAlive() {
		t.Errorf("lives = %d alive = %v, want 0/false", ps.Lives(), ps.IsAlive())
	}
	if len(enabledTiers(ecs)) != 0 {
		t.Errorf("paddles enabled with no lives: %v", enabledTiers(ecs))
	}

	if !ps.AddLife() {
		t.Error("AddLife() = false below max")
	}
	ps.AddLife()
	ps.AddLife()
	if ps.AddLife() {
		t.Error("AddLife() = true at max")
	}
	if ps.Lives() != 3 {
		t.Errorf("lives = %d, want 3", ps.Lives())
	}
}

func TestPlayerInputSpeed(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{name: "none", want: 0},
		{name: "left", left: true, want: -1500},
		{name: "right", right: true, want: 1500},
		{name: "both", left: true, right: true, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			ps := newPlayer(ecs, &fakeInput{left: tt.left, right: tt.right})
			ps.Update()
			for id := range ecs.Paddles {
				if got := ecs.Velocities[id].X; got != tt.want {
					t.Errorf("paddle %d velocity = %v, want %v", id, got, tt.want)
				}
			}
		})
	}
}

func TestCollisionCatchAndMiss(t *testing.T) {
	ecs := entity.NewECS()
	newPlayer(ecs, nil)
	boundary := addBody(ecs, 500, 1000, 1000, 1, false)
	ecs.Bodies[boundary].OriginY = 1

	catchable := addBody(ecs, 500, 950, 20, 20, true)
	ecs.Bombs[catchable] = &component.Bomb{}
	missed := addBody(ecs, 100, 990, 20, 20, true)
	ecs.Bombs[missed] = &component.Bomb{}
	falling := addBody(ecs, 100, 400, 20, 20, true)
	ecs.Bombs[falling] = &component.Bomb{}

	var caught, misses []types.EntityID
	cs := NewCollisionSystem(ecs, boundary,
		func(bombID, paddleID types.EntityID) {
			caught = append(caught, bombID)
			ecs.RemoveEntity(bombID)
		},
		func(bombID types.EntityID) {
			misses = append(misses, bombID)
			for _, id := range ecs.BombIDs() {
				ecs.RemoveEntity(id)
			}
		})
	cs.Update()

	if len(caught) != 1 || caught[0] != catchable {
		t.Errorf("caught = %v, want [%d]", caught, catchable)
	}
	if len(misses) != 1 || misses[0] != missed {
		t.Errorf("misses = %v, want [%d]", misses, missed)
	}
	if len(ecs.Bombs) != 0 {
		t.Errorf("bombs left = %d, want 0", len(ecs.Bombs))
	}
}

func TestCollisionIgnoresDisabledPaddle(t *testing.T) {
	ecs := entity.NewECS()
	ps := newPlayer(ecs, nil)
	ps.SetLives(0)
	boundary := addBody(ecs, 500, 1000, 1000, 1, false)
	ecs.Bodies[boundary].OriginY = 1

	bomb := addBody(ecs, 500, 950, 20, 20, true)
	ecs.Bombs[bomb] = &component.Bomb{}

	calls := 0
	NewCollisionSystem(ecs, boundary,
		func(types.EntityID, types.EntityID) { calls++ },
		func(types.EntityID) {}).Update()
	if calls != 0 {
		t.Errorf("disabled paddle caught %d bombs", calls)
	}
}

func TestStateSystemGameOverIsTerminal(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	ss := NewStateSystem(ecs, d)

	resumed := 0
	d.Subscribe(event.GuardResumed, event.ListenerFunc(func(event.Event) { resumed++ }))

	if !ss.SwitchToPaused(component.PauseAfterMiss) || ss.Current() != component.PausedPhase {
		t.Fatal("SwitchToPaused failed")
	}
	if ecs.GameState.PauseReason != component.PauseAfterMiss {
		t.Errorf("PauseReason = %v", ecs.GameState.PauseReason)
	}
	if !ss.SwitchToGameOver() {
		t.Fatal("SwitchToGameOver failed")
	}
	if ss.SwitchToRunning() || ss.SwitchToPaused(component.PauseQuotaReached) || ss.SwitchToGameOver() {
		t.Error("transition out of game over succeeded")
	}
	if ss.Current() != component.GameOverPhase || resumed != 0 {
		t.Errorf("phase = %v resumed = %d, want game over / 0", ss.Current(), resumed)
	}
}
