package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/bubblerow/pkg/suggest"
)

// NewDefaultFace 创建内置 Go Regular 字体
//
// 参数:
//   - size: 字号（像素）
//
// 返回:
//   - *text.GoTextFace: 字体
//   - error: 字体数据解析失败时返回错误
func NewDefaultFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// FaceMeasurer 使用 ebiten 字体测量文本
type FaceMeasurer struct {
	face *text.GoTextFace
}

// NewFaceMeasurer 创建测量器
func NewFaceMeasurer(face *text.GoTextFace) *FaceMeasurer {
	return &FaceMeasurer{face: face}
}

// Advance 文本的水平前进宽度
func (m *FaceMeasurer) Advance(s string) float64 {
	if s == "" || m.face == nil {
		return 0
	}
	return text.Advance(s, m.face)
}

// Metrics 字体的上升和下降高度
func (m *FaceMeasurer) Metrics() suggest.FontMetrics {
	if m.face == nil {
		return suggest.FontMetrics{}
	}
	fm := m.face.Metrics()
	return suggest.FontMetrics{
		Ascent:  fm.HAscent,
		Descent: fm.HDescent,
	}
}

// Face 底层字体
func (m *FaceMeasurer) Face() *text.GoTextFace {
	return m.face
}
