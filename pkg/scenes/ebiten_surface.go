package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenSurface 将气泡行绘制到 ebiten.Image
type EbitenSurface struct {
	target *ebiten.Image
	face   *text.GoTextFace

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenSurface 创建绘制表面
func NewEbitenSurface(face *text.GoTextFace) *EbitenSurface {
	return &EbitenSurface{face: face}
}

// SetTarget 设置本帧绘制目标
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// FillRoundRect 填充圆角矩形
// 半径超过短边一半时按短边一半处理
func (s *EbitenSurface) FillRoundRect(x, y, width, height, radius float64, clr color.Color) {
	if s.target == nil || width <= 0 || height <= 0 {
		return
	}

	r := math.Min(radius, math.Min(width, height)/2)
	if r <= 0 {
		vector.DrawFilledRect(s.target, float32(x), float32(y), float32(width), float32(height), clr, true)
		return
	}

	var path vector.Path
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+width), float32(y+height)
	rr := float32(r)

	path.MoveTo(x0+rr, y0)
	path.LineTo(x1-rr, y0)
	path.ArcTo(x1, y0, x1, y0+rr, rr)
	path.LineTo(x1, y1-rr)
	path.ArcTo(x1, y1, x1-rr, y1, rr)
	path.LineTo(x0+rr, y1)
	path.ArcTo(x0, y1, x0, y1-rr, rr)
	path.LineTo(x0, y0+rr)
	path.ArcTo(x0, y0, x0+rr, y0, rr)
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])

	cr, cg, cb, ca := clr.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(cr) / 0xffff
		s.vertices[i].ColorG = float32(cg) / 0xffff
		s.vertices[i].ColorB = float32(cb) / 0xffff
		s.vertices[i].ColorA = float32(ca) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

// DrawText 以基线为起点绘制文本
func (s *EbitenSurface) DrawText(str string, x, baseline float64, clr color.Color) {
	if s.target == nil || s.face == nil {
		return
	}

	// text/v2 以行顶部为原点
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, baseline-s.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.target, str, s.face, op)
}
