package ui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var fontFiles = map[string][]byte{
	"Go":      goregular.TTF,
	"Go-Bold": gobold.TTF,
	"Go-Mono": gomono.TTF,
}

var sources sync.Map // map[string]*text.GoTextFaceSource

func loadFontSource(name string) (*text.GoTextFaceSource, error) {
	if cached, ok := sources.Load(name); ok {
		return cached.(*text.GoTextFaceSource), nil
	}
	ttf, ok := fontFiles[name]
	if !ok {
		return nil, fmt.Errorf("font %q not found", name)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	sources.Store(name, source)
	return source, nil
}

// parseFontSpec splits "Go-Bold-24" into its family and size.
func parseFontSpec(spec string) (string, float64, error) {
	idx := strings.LastIndex(spec, "-")
	if idx == -1 {
		return "", 0, fmt.Errorf("invalid font spec %q: no size", spec)
	}
	size, err := strconv.ParseFloat(spec[idx+1:], 64)
	if err != nil || size <= 0 {
		return "", 0, fmt.Errorf("invalid font spec %q: bad size", spec)
	}
	return spec[:idx], size, nil
}

var fontCache sync.Map // map[string]*text.Face

// Font returns the face for a "<family>-<size>" spec. Unknown specs are a
// programming error and panic.
func (u *UI) Font(spec string) *text.Face {
	if cached, ok := fontCache.Load(spec); ok {
		return cached.(*text.Face)
	}

	name, size, err := parseFontSpec(spec)
	if err != nil {
		panic(err)
	}
	source, err := loadFontSource(name)
	if err != nil {
		panic(err)
	}
	var face text.Face = &text.GoTextFace{Source: source, Size: size}
	fontCache.Store(spec, &face)
	return &face
}
