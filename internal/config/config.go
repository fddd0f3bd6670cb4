// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 1000
	MaxDeltaTime = 0.06
	WindowTitle  = "Kaboom!"

	// Тайминги в секундах
	BombDropDelay  = 0.25
	GamePauseDelay = 2.0

	MaxLevel        = 8
	BombsPerLevel   = 10 // лимит бомб уровня = level * BombsPerLevel
	MaxLives        = 3
	LifeBonusPoints = 1000

	PlayerSpeed       = 1500.0 // pixels per second
	PaddleWidth       = 130.0
	PaddleHeight      = 26.0
	PaddleSpacing     = 90.0
	PlayerStartYRatio = 0.95

	BombDropSpeed = 400.0 // pixels per second
	BombWidth     = 28.0
	BombHeight    = 36.0

	GuardWidth       = 63.0
	GuardHeight      = 135.0
	GuardOriginY     = 0.9 // точка привязки спрайта по Y
	GuardStartXRatio = 0.8
	GuardStartYRatio = 0.2

	BaseDirectionChangeChance = 0.005
	MinDirectionChangeTime    = 0.15
	MaxDirectionChangeTime    = 3.0

	BoundaryHeight = 1.0
	GroundTopRatio = 0.2

	ScoreFontSize = 42
	HUDFontSize   = 18
	TitleFontSize = 64
	HUDMargin     = 20
	HighScoreRows = 5

	PauseButtonSize     = 18
	GameOverScreenDelay = 1.0 // секунды между последним промахом и экраном итогов
)

var (
	BackgroundColor = color.RGBA{0x95, 0xa5, 0xa6, 0xff}
	GroundColor     = color.RGBA{0x52, 0x7e, 0x2d, 0xff}
	ScoreColor      = color.RGBA{0xce, 0xd0, 0x59, 0xff}
	GuardColor      = color.RGBA{230, 230, 230, 255}
	GuardStripe     = color.RGBA{30, 30, 30, 255}
	BombColor       = color.RGBA{20, 20, 25, 255}
	FuseColor       = color.RGBA{255, 160, 40, 255}
	PaddleColor     = color.RGBA{60, 120, 200, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	LevelFillColor  = color.RGBA{206, 208, 89, 220}
	StrokeWidth     = float32(2.0)
)
