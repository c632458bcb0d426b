package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/factorytutor/pkg/config"
)

var (
	buttonColor        = color.RGBA{R: 40, G: 40, B: 48, A: 220}
	buttonCheckedColor = color.RGBA{R: 90, G: 80, B: 40, A: 240}
	buttonBorderColor  = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	labelColor         = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	outlineColor       = color.RGBA{R: 255, G: 211, B: 127, A: 255}
	dialogShadeColor   = color.RGBA{A: 160}
)

// DefaultFace 界面统一使用的位图字体
func DefaultFace() *text.GoXFace {
	return text.NewGoXFace(basicfont.Face7x13)
}

// Draw 绘制按钮、对话框和本帧排队的高亮描边，然后清空高亮队列
// 有对话框时不绘制高亮
func (o *Overlay) Draw(screen *ebiten.Image, face text.Face) {
	for _, w := range o.Widgets() {
		if w.visible {
			drawWidget(screen, w, face)
		}
	}

	if o.HasDialog() {
		drawDialog(screen, o.dialog, face)
	} else {
		inset := PulseInset(o.time)
		for _, r := range o.outlines {
			drawOutline(screen, r, inset)
		}
	}
	o.outlines = o.outlines[:0]
}

// PulseInset 描边呼吸动画的外扩距离（像素），在 [0, OutlinePulse] 之间周期变化
func PulseInset(t float64) float32 {
	phase := math.Sin(2 * math.Pi * t / config.OutlinePulsePeriod)
	return float32((phase + 1) / 2 * config.OutlinePulse)
}

func drawWidget(screen *ebiten.Image, w *Widget, face text.Face) {
	b := w.bounds
	fill := buttonColor
	if w.checked {
		fill = buttonCheckedColor
	}
	x, y := float32(b.Min.X), float32(b.Min.Y)
	vector.DrawFilledRect(screen, x, y, float32(b.Dx()), float32(b.Dy()), fill, true)
	vector.StrokeRect(screen, x, y, float32(b.Dx()), float32(b.Dy()), 1, buttonBorderColor, true)

	if face == nil || w.label == "" {
		return
	}
	tw, th := text.Measure(w.label, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Min.X)+(float64(b.Dx())-tw)/2, float64(b.Min.Y)+(float64(b.Dy())-th)/2)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, w.label, face, op)
}

func drawOutline(screen *ebiten.Image, r image.Rectangle, inset float32) {
	x := float32(r.Min.X) - inset
	y := float32(r.Min.Y) - inset
	w := float32(r.Dx()) + inset*2
	h := float32(r.Dy()) + inset*2
	vector.StrokeRect(screen, x, y, w, h, config.OutlineStroke, outlineColor, true)

	// 指向元素的箭头，元素靠近屏幕顶部时画在下方
	cx := x + w/2
	size := float32(config.OutlineArrowSize)
	if r.Min.Y > int(size)*2 {
		tip := y - 4
		vector.StrokeLine(screen, cx-size/2, tip-size, cx, tip, 3, outlineColor, true)
		vector.StrokeLine(screen, cx+size/2, tip-size, cx, tip, 3, outlineColor, true)
	} else {
		tip := y + h + 4
		vector.StrokeLine(screen, cx-size/2, tip+size, cx, tip, 3, outlineColor, true)
		vector.StrokeLine(screen, cx+size/2, tip+size, cx, tip, 3, outlineColor, true)
	}
}

func drawDialog(screen *ebiten.Image, title string, face text.Face) {
	sw, sh := float32(config.GameWindowWidth), float32(config.GameWindowHeight)
	vector.DrawFilledRect(screen, 0, 0, sw, sh, dialogShadeColor, false)

	const dw, dh = 320, 120
	x, y := (sw-dw)/2, (sh-dh)/2
	vector.DrawFilledRect(screen, x, y, dw, dh, buttonColor, true)
	vector.StrokeRect(screen, x, y, dw, dh, 2, buttonBorderColor, true)

	if face == nil {
		return
	}
	tw, th := text.Measure(title, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+(dw-tw)/2, float64(y)+(dh-th)/2)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, title, face, op)
}
