// pkg/render/fonts.go
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор шрифтов сцены.
type Fonts struct {
	Regular font.Face
	Big     font.Face
	Small   font.Face
}

// LoadFonts собирает шрифты Go из встроенных TTF, без файлов на диске.
func LoadFonts(size, bigSize, smallSize, dpi float64) (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}

	fonts := &Fonts{}
	if fonts.Regular, err = face(regular, size); err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	if fonts.Big, err = face(bold, bigSize); err != nil {
		return nil, fmt.Errorf("failed to create big font face: %w", err)
	}
	if fonts.Small, err = face(regular, smallSize); err != nil {
		return nil, fmt.Errorf("failed to create small font face: %w", err)
	}
	return fonts, nil
}
