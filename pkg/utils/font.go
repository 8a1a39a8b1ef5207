package utils

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置 Go Regular 字体，整个进程只解析一次
var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error

	faceMu    sync.Mutex
	faceCache = make(map[float64]*text.GoTextFace)
)

// DefaultFontSource 返回内置字体源
func DefaultFontSource() (*text.GoTextFaceSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("failed to create font source: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

// LoadFontFace 返回指定字号的内置字体 face，按字号缓存
func LoadFontFace(size float64) (*text.GoTextFace, error) {
	faceMu.Lock()
	defer faceMu.Unlock()

	if face, ok := faceCache[size]; ok {
		return face, nil
	}

	source, err := DefaultFontSource()
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	faceCache[size] = face
	return face, nil
}
