package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"go-kaboom/internal/platform/logger"
)

func TestSynthesizedPCMLayout(t *testing.T) {
	tests := []struct {
		name   string
		pcm    []byte
		frames int
	}{
		{"beep", SynthesizeBeep(880, 0.1), SampleRate / 10},
		{"fuse", SynthesizeFuse(0.5), SampleRate / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.pcm) != tt.frames*bytesPerFrame {
				t.Fatalf("len = %d, want %d", len(tt.pcm), tt.frames*bytesPerFrame)
			}
			nonZero := false
			for i := 0; i < tt.frames; i++ {
				left := binary.LittleEndian.Uint16(tt.pcm[i*4:])
				right := binary.LittleEndian.Uint16(tt.pcm[i*4+2:])
				if left != right {
					t.Fatalf("frame %d: left %d != right %d", i, left, right)
				}
				if left != 0 {
					nonZero = true
				}
			}
			if !nonZero {
				t.Error("signal is silent")
			}
		})
	}
}

func TestSynthesizeFuseIsDeterministic(t *testing.T) {
	a := SynthesizeFuse(0.1)
	b := SynthesizeFuse(0.1)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts() error = %v", err)
	}
	if fonts.Score == nil || fonts.HUD == nil || fonts.Title == nil {
		t.Fatal("LoadFonts() returned nil face")
	}
	if fonts.Score.Metrics().Height <= fonts.HUD.Metrics().Height {
		t.Error("score face should be taller than hud face")
	}
}

func TestLoadWavMissingFile(t *testing.T) {
	if _, err := loadWav("does/not/exist.wav"); err == nil {
		t.Error("loadWav() on missing file: error = nil")
	}
}

type stubPlayer struct{ err error }

func (s stubPlayer) Rewind() error { return s.err }

func TestRewindLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)

	if !rewind(stubPlayer{}, "catch", log) {
		t.Error("rewind() = false for a healthy player")
	}
	if buf.Len() != 0 {
		t.Errorf("healthy rewind logged %q", buf.String())
	}

	if rewind(stubPlayer{err: errors.New("device lost")}, "fuse", log) {
		t.Error("rewind() = true for a failing player")
	}
	if out := buf.String(); !strings.Contains(out, "fuse") || !strings.Contains(out, "device lost") {
		t.Errorf("log = %q, want the sound name and the error", out)
	}
}
