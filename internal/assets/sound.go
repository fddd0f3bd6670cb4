// internal/assets/sound.go
package assets

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go-kaboom/internal/platform/logger"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	SampleRate = 44100

	catchFile = "catch.wav"
	fuseFile  = "fuse.wav"

	bytesPerFrame = 4 // 16 бит, стерео
)

// SoundManager проигрывает звук поимки и зацикленный звук фитиля.
type SoundManager struct {
	ctx    *audio.Context
	catch  *audio.Player
	fuse   *audio.Player
	volume float64
	muted  bool
	log    *logger.Logger
}

// NewSoundManager загружает WAV из dir; отсутствующий файл заменяется синтезированным звуком.
// Context создаётся один раз на процесс, поэтому его передаёт вызывающий.
func NewSoundManager(ctx *audio.Context, dir string, volume float64, muted bool, log *logger.Logger) (*SoundManager, error) {
	m := &SoundManager{ctx: ctx, volume: volume, muted: muted, log: log}

	catchPCM, err := loadWav(filepath.Join(dir, catchFile))
	if err != nil {
		log.Warnf("catch sound: %v, using synthesized beep", err)
		catchPCM = SynthesizeBeep(880, 0.08)
	}
	m.catch = ctx.NewPlayerFromBytes(catchPCM)

	fusePCM, err := loadWav(filepath.Join(dir, fuseFile))
	if err != nil {
		log.Warnf("fuse sound: %v, using synthesized crackle", err)
		fusePCM = SynthesizeFuse(0.5)
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(fusePCM), int64(len(fusePCM)))
	m.fuse, err = ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create fuse player: %w", err)
	}

	m.applyVolume()
	return m, nil
}

// loadWav декодирует файл целиком в PCM с частотой контекста.
func loadWav(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(stream); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

type rewinder interface {
	Rewind() error
}

// rewind перематывает плеер в начало; ошибка пишется в лог, false - играть не с начала.
func rewind(p rewinder, name string, log *logger.Logger) bool {
	if err := p.Rewind(); err != nil {
		log.Warnf("failed to rewind %s sound: %v", name, err)
		return false
	}
	return true
}

func (m *SoundManager) PlayCatch() {
	if !rewind(m.catch, "catch", m.log) {
		return
	}
	m.catch.Play()
}

func (m *SoundManager) PlayFuse() {
	m.fuse.Play()
}

func (m *SoundManager) StopFuse() {
	m.fuse.Pause()
	rewind(m.fuse, "fuse", m.log)
}

func (m *SoundManager) IsFusePlaying() bool {
	return m.fuse.IsPlaying()
}

// ToggleMute переключает звук и возвращает новое состояние.
func (m *SoundManager) ToggleMute() bool {
	m.muted = !m.muted
	m.applyVolume()
	return m.muted
}

func (m *SoundManager) Muted() bool { return m.muted }

func (m *SoundManager) applyVolume() {
	v := m.volume
	if m.muted {
		v = 0
	}
	m.catch.SetVolume(v)
	m.fuse.SetVolume(v)
}

// Close останавливает и освобождает плееры.
func (m *SoundManager) Close() error {
	if err := m.catch.Close(); err != nil {
		return err
	}
	return m.fuse.Close()
}

// SynthesizeBeep возвращает 16-битный стерео PCM синусоиды с затухающей огибающей.
func SynthesizeBeep(freq, durSec float64) []byte {
	n := int(float64(SampleRate) * durSec)
	buf := make([]byte, n*bytesPerFrame)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		envelope := math.Exp(-30 * t)
		writeFrame(buf, i, math.Sin(2*math.Pi*freq*t)*0.4*envelope)
	}
	return buf
}

// SynthesizeFuse возвращает шипение фитиля: детерминированный шум с треском.
// Длина кратна периоду треска, чтобы цикл не щёлкал на стыке.
func SynthesizeFuse(durSec float64) []byte {
	n := int(float64(SampleRate) * durSec)
	buf := make([]byte, n*bytesPerFrame)
	var seed uint32 = 0x9e3779b9
	for i := 0; i < n; i++ {
		// xorshift32
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		noise := float64(seed)/math.MaxUint32*2 - 1

		t := float64(i) / SampleRate
		crackle := 0.5 + 0.5*math.Abs(math.Sin(2*math.Pi*8*t))
		writeFrame(buf, i, noise*0.15*crackle)
	}
	return buf
}

func writeFrame(buf []byte, frame int, v float64) {
	s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
	for ch := 0; ch < 2; ch++ {
		idx := frame*bytesPerFrame + ch*2
		buf[idx] = byte(s)
		buf[idx+1] = byte(s >> 8)
	}
}
