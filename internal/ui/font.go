package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
	smallFace   *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 18.0
	smallFontSize   = 11.0
)

func init() {
	initFonts()
}

func initFonts() {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
		return
	}
	regularFace = &text.GoTextFace{Source: regularSource, Size: defaultFontSize}
	smallFace = &text.GoTextFace{Source: regularSource, Size: smallFontSize}

	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
		return
	}
	boldFace = &text.GoTextFace{Source: boldSource, Size: titleFontSize}
}

// GetRegularFace returns the regular font face.
func GetRegularFace() *text.GoTextFace {
	return regularFace
}

// GetBoldFace returns the bold title face.
func GetBoldFace() *text.GoTextFace {
	return boldFace
}

// GetSmallFace returns the face used for board coordinates and hints.
func GetSmallFace() *text.GoTextFace {
	return smallFace
}

// MeasureText returns the width and height of s in face.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
