// internal/defs/speed_levels.go
package defs

// SpeedLevels maps a guard speed level to its horizontal speed in pixels per second.
// Deltas grow towards the top levels.
var SpeedLevels = map[int]float64{
	1: 500,
	2: 700,
	3: 900,
	4: 1100,
	5: 1300,
	6: 1500,
	7: 1700,
	8: 2000,
}

const (
	MinSpeedLevel = 1
	MaxSpeedLevel = 8
)

// GuardSpeed returns the speed for level, clamping out-of-range levels to the table bounds.
func GuardSpeed(level int) float64 {
	if level < MinSpeedLevel {
		level = MinSpeedLevel
	}
	if level > MaxSpeedLevel {
		level = MaxSpeedLevel
	}
	return SpeedLevels[level]
}
