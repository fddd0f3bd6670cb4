package ui

import (
	"strings"
	"testing"
	"time"

	"go-kaboom/internal/storage"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{1, "I"},
		{4, "IV"},
		{8, "VIII"},
		{9, "IX"},
		{14, "XIV"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgressRatio(t *testing.T) {
	tests := []struct {
		caught, limit int
		want          float32
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
		{15, 10, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := progressRatio(tt.caught, tt.limit); got != tt.want {
			t.Errorf("progressRatio(%d, %d) = %v, want %v", tt.caught, tt.limit, got, tt.want)
		}
	}
}

func TestLevelIndicatorSmoothing(t *testing.T) {
	ind := NewPlayerLevelIndicator(0, 0, 8, borderColor)
	ind.Update(0.01, 10, 10)
	if ind.shownRatio <= 0 || ind.shownRatio >= 1 {
		t.Fatalf("after one short frame shownRatio = %v, want in (0, 1)", ind.shownRatio)
	}
	// Большая дельта сразу доводит до цели.
	ind.Update(1, 10, 10)
	if ind.shownRatio < 0.9999 || ind.shownRatio > 1.0001 {
		t.Errorf("shownRatio = %v, want 1", ind.shownRatio)
	}
}

func TestLifeColor(t *testing.T) {
	if lifeColor(0, 3) != lifeFullColor {
		t.Error("slot 0 with 3 lives should be full")
	}
	if lifeColor(0, 1) != lifeLastColor {
		t.Error("last life should be highlighted")
	}
	if lifeColor(2, 2) != lifeEmptyColor {
		t.Error("slot beyond lives should be empty")
	}
}

func TestFormatRow(t *testing.T) {
	row := formatRow(2, storage.HighScore{Score: 1234, Level: 7, FinishedAt: time.Date(2026, 3, 4, 12, 0, 0, 0, time.Local)})
	for _, part := range []string{"2.", "1234", "level 7", "2026-03-04"} {
		if !strings.Contains(row, part) {
			t.Errorf("formatRow() = %q, missing %q", row, part)
		}
	}
}
