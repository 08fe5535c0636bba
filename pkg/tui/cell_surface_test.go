package tui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/bubblerow/pkg/config"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	blue  = color.RGBA{0x3f, 0x51, 0xb5, 0xff}
)

func TestCellSurface_FillAndText(t *testing.T) {
	s := NewCellSurface(10, 3, white)

	s.FillRoundRect(2, 1, 5, 1, 4, blue)
	s.DrawText("abc", 3, 2, white)

	lines := s.PlainLines()
	require.Len(t, lines, 3)
	assert.Equal(t, "   abc    ", lines[1])
	assert.Equal(t, blue, s.Background(2, 1))
	assert.Equal(t, blue, s.Background(6, 1))
	assert.Equal(t, white, s.Background(7, 1))
	assert.Equal(t, white, s.Background(2, 0))
}

func TestCellSurface_Clipping(t *testing.T) {
	s := NewCellSurface(5, 1, white)

	s.FillRoundRect(-3, 0, 5, 1, 0, blue)
	s.DrawText("abcdefg", -2, 1, white)

	assert.Equal(t, "cdefg", s.PlainLines()[0])
	assert.Equal(t, blue, s.Background(0, 0))
	assert.Equal(t, blue, s.Background(1, 0))
	assert.Equal(t, white, s.Background(2, 0))

	// 完全在网格外不应 panic
	s.FillRoundRect(100, 100, 5, 5, 0, blue)
	s.DrawText("x", 0, 100, white)
}

func TestCellSurface_WideRunes(t *testing.T) {
	s := NewCellSurface(6, 1, white)

	s.DrawText("气泡a", 0, 1, white)
	assert.Equal(t, "气泡a ", s.PlainLines()[0])

	// 放不下的宽字符整体省略
	s.Clear()
	s.DrawText("a气泡", 2, 1, white)
	assert.Equal(t, "  a气 ", s.PlainLines()[0])
}

func TestCellSurface_Blend(t *testing.T) {
	s := NewCellSurface(1, 1, white)

	// 50% 透明黑色（预乘）叠加到白色上
	s.FillRoundRect(0, 0, 1, 1, 0, color.RGBA{0, 0, 0, 0x80})
	bg := s.Background(0, 0)
	assert.InDelta(t, 0x7f, int(bg.R), 1)
	assert.Equal(t, uint8(0xff), bg.A)

	// 完全透明不改变底色
	s.Clear()
	s.FillRoundRect(0, 0, 1, 1, 0, color.RGBA{})
	assert.Equal(t, white, s.Background(0, 0))
}

func TestCellSurface_Lines(t *testing.T) {
	s := NewCellSurface(4, 1, white)
	s.DrawText("hi", 0, 1, white)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "hi")
}

func TestCellSurface_Resize(t *testing.T) {
	s := NewCellSurface(0, 2, white)
	w, h := s.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, []string{"", ""}, s.PlainLines())

	s.Resize(3, 1)
	assert.Equal(t, []string{"   "}, s.PlainLines())
}

func TestCellMeasurer(t *testing.T) {
	var m CellMeasurer
	assert.Equal(t, 3.0, m.Advance("abc"))
	assert.Equal(t, 4.0, m.Advance("气泡"))
	assert.Equal(t, 1.0, m.Metrics().LineHeight())
}

func TestRowConfig(t *testing.T) {
	cfg := config.DefaultSuggestConfig()
	rc := RowConfig(cfg)

	assert.Equal(t, 1.0, rc.Theme.Padding)
	assert.Equal(t, 0.0, rc.Theme.VerticalPadding)
	assert.Equal(t, 1, rc.Theme.VerticalMargin)
	assert.Equal(t, 1.0, rc.Gesture.TouchSlop)
	assert.Equal(t, cfg.Gesture.MaxFlingVelocity/cellPixels, rc.Gesture.MaxFlingVelocity)
	// 时间参数沿用配置
	assert.Equal(t, cfg.RowConfig().Scroller.FlingFriction, rc.Scroller.FlingFriction)
	assert.Equal(t, cfg.RowConfig().Theme.BubbleColor, rc.Theme.BubbleColor)
}
