// internal/interfaces/sound.go
package interfaces

// SoundPlayer - звуки, которые запускает игровая логика.
type SoundPlayer interface {
	PlayCatch()
	PlayFuse()
	StopFuse()
	IsFusePlaying() bool
}
