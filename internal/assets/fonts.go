// internal/assets/fonts.go
package assets

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error

	facesMu sync.Mutex
	faces   = make(map[float64]font.Face)
)

// Face returns the UI font at a point size. Faces are cached per size.
func Face(size float64) (font.Face, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", parseErr)
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	faces[size] = f
	return f, nil
}

// FaceOrFallback returns Face(size), or the built-in bitmap face when the
// vector font cannot be loaded.
func FaceOrFallback(size float64) font.Face {
	f, err := Face(size)
	if err != nil {
		return basicfont.Face7x13
	}
	return f
}
