// internal/assets/fonts.go
package assets

import (
	"fmt"

	"go-kaboom/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts - начертания для счёта, HUD и заголовков экранов.
type Fonts struct {
	Score font.Face
	HUD   font.Face
	Title font.Face
}

// LoadFonts создаёт начертания из встроенного Go Regular.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	score, err := newFace(config.ScoreFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create score face: %w", err)
	}
	hud, err := newFace(config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create hud face: %w", err)
	}
	title, err := newFace(config.TitleFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create title face: %w", err)
	}
	return &Fonts{Score: score, HUD: hud, Title: title}, nil
}

// FallbackFonts возвращает растровый шрифт, если TTF не удалось загрузить.
func FallbackFonts() *Fonts {
	return &Fonts{Score: basicfont.Face7x13, HUD: basicfont.Face7x13, Title: basicfont.Face7x13}
}
