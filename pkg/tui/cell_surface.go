package tui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell 一个终端单元格
// wide 的右半格 cont 为 true，渲染时跳过
type cell struct {
	r    rune
	fg   color.RGBA
	bg   color.RGBA
	cont bool
}

// CellSurface 字符网格绘制表面
//
// 坐标单位为单元格。圆角无法在字符网格中表达，
// 圆角矩形按普通矩形填充背景色；半透明颜色与底色混合。
type CellSurface struct {
	width  int
	height int
	base   color.RGBA
	cells  []cell
}

// NewCellSurface 创建指定大小的表面，base 为底色
func NewCellSurface(width, height int, base color.Color) *CellSurface {
	s := &CellSurface{base: toRGBA(base)}
	s.Resize(width, height)
	return s
}

// Resize 调整大小并清空
func (s *CellSurface) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.cells = make([]cell, s.width*s.height)
	s.Clear()
}

// Clear 以底色和空格填充
func (s *CellSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{r: ' ', bg: s.base, fg: s.base}
	}
}

// Size 网格尺寸
func (s *CellSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *CellSurface) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return nil
	}
	return &s.cells[y*s.width+x]
}

// FillRoundRect 填充矩形区域的背景色，忽略圆角
func (s *CellSurface) FillRoundRect(x, y, width, height, _ float64, clr color.Color) {
	x0, x1 := cellIndex(x), cellIndex(x+width)
	y0, y1 := cellIndex(y), cellIndex(y+height)
	src := toRGBA(clr)

	for cy := max(y0, 0); cy < min(y1, s.height); cy++ {
		for cx := max(x0, 0); cx < min(x1, s.width); cx++ {
			c := s.at(cx, cy)
			c.bg = blend(src, c.bg)
			if c.r == ' ' {
				c.fg = c.bg
			}
		}
	}
}

// DrawText 从 (x, baseline) 开始写入字符
// 行号为 baseline 所在格的上一格；超出网格的字符被裁剪
func (s *CellSurface) DrawText(str string, x, baseline float64, clr color.Color) {
	row := int(math.Floor(baseline)) - 1
	col := cellIndex(x)
	fg := toRGBA(clr)

	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= s.width {
			if c := s.at(col, row); c != nil {
				c.r = r
				c.fg = blend(fg, c.bg)
				c.cont = false
				for i := 1; i < w; i++ {
					if next := s.at(col+i, row); next != nil {
						next.cont = true
					}
				}
			}
		}
		col += w
	}
}

// Lines 按行渲染为带样式的字符串
// 相邻同色单元格合并为一个 lipgloss 片段
func (s *CellSurface) Lines() []string {
	lines := make([]string, s.height)
	for y := 0; y < s.height; y++ {
		var b strings.Builder
		var run strings.Builder
		var runFg, runBg color.RGBA
		started := false

		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(runFg))).
				Background(lipgloss.Color(hexColor(runBg)))
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for x := 0; x < s.width; x++ {
			c := s.cells[y*s.width+x]
			if c.cont {
				continue
			}
			if !started || c.fg != runFg || c.bg != runBg {
				flush()
				runFg, runBg = c.fg, c.bg
				started = true
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}

// PlainLines 不带样式的文本，用于测试和日志
func (s *CellSurface) PlainLines() []string {
	lines := make([]string, s.height)
	for y := 0; y < s.height; y++ {
		var b strings.Builder
		for x := 0; x < s.width; x++ {
			c := s.cells[y*s.width+x]
			if !c.cont {
				b.WriteRune(c.r)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// Background 单元格背景色，越界返回底色
func (s *CellSurface) Background(x, y int) color.RGBA {
	if c := s.at(x, y); c != nil {
		return c.bg
	}
	return s.base
}

func cellIndex(v float64) int {
	return int(math.Round(v))
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// blend 预乘颜色 src 叠加到不透明 dst 上
func blend(src, dst color.RGBA) color.RGBA {
	if src.A == 0xff {
		return src
	}
	k := 1 - float64(src.A)/0xff
	return color.RGBA{
		R: src.R + uint8(float64(dst.R)*k),
		G: src.G + uint8(float64(dst.G)*k),
		B: src.B + uint8(float64(dst.B)*k),
		A: 0xff,
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
