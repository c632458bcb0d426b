// Package ui 提供教学界面的覆盖层：按名称注册的按钮、模态对话框与高亮描边
package ui

import (
	"image"
	"log"
	"sort"

	"github.com/decker502/factorytutor/pkg/tutorial"
)

// Widget 覆盖层上的一个按钮
type Widget struct {
	name    string
	label   string
	bounds  image.Rectangle
	visible bool
	checked bool
	toggle  bool // 切换型按钮点击时翻转 checked
}

// Name 按钮名称
func (w *Widget) Name() string { return w.name }

// Label 按钮上显示的文字
func (w *Widget) Label() string { return w.label }

// Bounds 实现 tutorial.Element
func (w *Widget) Bounds() image.Rectangle { return w.bounds }

// Checked 实现 tutorial.Element
func (w *Widget) Checked() bool { return w.checked }

// Visible 按钮当前是否显示
func (w *Widget) Visible() bool { return w.visible }

// Overlay UI 覆盖层
// 每帧由教学引擎排队高亮区域，Draw 绘制后清空队列
type Overlay struct {
	widgets map[string]*Widget
	order   []string

	dialog string // 非空表示有模态对话框，内容为标题

	outlines []image.Rectangle
	time     float64
}

// NewOverlay 创建空覆盖层
func NewOverlay() *Overlay {
	return &Overlay{widgets: make(map[string]*Widget)}
}

// Add 注册按钮，同名按钮会被替换
//
// 参数：
//   - name: 按钮名称，教学阶段通过它查找元素
//   - label: 显示文字
//   - bounds: 屏幕坐标下的区域
//
// 返回：
//   - *Widget: 新注册的按钮，默认可见
func (o *Overlay) Add(name, label string, bounds image.Rectangle) *Widget {
	if _, exists := o.widgets[name]; !exists {
		o.order = append(o.order, name)
	}
	w := &Widget{name: name, label: label, bounds: bounds, visible: true}
	o.widgets[name] = w
	return w
}

// AddToggle 注册切换型按钮
func (o *Overlay) AddToggle(name, label string, bounds image.Rectangle) *Widget {
	w := o.Add(name, label, bounds)
	w.toggle = true
	return w
}

// Widget 按名称查找按钮（不论是否可见）
func (o *Overlay) Widget(name string) (*Widget, bool) {
	w, ok := o.widgets[name]
	return w, ok
}

// Widgets 按注册顺序返回全部按钮
func (o *Overlay) Widgets() []*Widget {
	out := make([]*Widget, 0, len(o.order))
	for _, name := range o.order {
		out = append(out, o.widgets[name])
	}
	return out
}

// SetVisible 显示或隐藏按钮
func (o *Overlay) SetVisible(name string, visible bool) {
	if w, ok := o.widgets[name]; ok {
		w.visible = visible
	}
}

// SetChecked 设置按钮选中状态
func (o *Overlay) SetChecked(name string, checked bool) {
	if w, ok := o.widgets[name]; ok {
		w.checked = checked
	}
}

// FindVisible 实现 tutorial.Overlay
func (o *Overlay) FindVisible(name string) (tutorial.Element, bool) {
	w, ok := o.widgets[name]
	if !ok || !w.visible {
		return nil, false
	}
	return w, true
}

// ShowDialog 打开模态对话框
func (o *Overlay) ShowDialog(title string) {
	if title == "" {
		title = " "
	}
	o.dialog = title
	log.Printf("[Overlay] Dialog opened: %s", title)
}

// CloseDialog 关闭模态对话框
func (o *Overlay) CloseDialog() {
	o.dialog = ""
}

// HasDialog 实现 tutorial.Overlay
func (o *Overlay) HasDialog() bool {
	return o.dialog != ""
}

// DialogTitle 当前对话框标题
func (o *Overlay) DialogTitle() string {
	return o.dialog
}

// Outline 实现 tutorial.Overlay：排队一个高亮区域，下一次 Draw 时绘制
func (o *Overlay) Outline(bounds image.Rectangle) {
	o.outlines = append(o.outlines, bounds)
}

// PendingOutlines 返回尚未绘制的高亮区域
func (o *Overlay) PendingOutlines() []image.Rectangle {
	out := make([]image.Rectangle, len(o.outlines))
	copy(out, o.outlines)
	return out
}

// Click 处理一次点击
//
// 参数：
//   - x, y: 屏幕坐标
//
// 返回：
//   - string: 命中的可见按钮名称
//   - bool: 是否命中；有对话框时点击任意位置关闭对话框并返回 false
func (o *Overlay) Click(x, y int) (string, bool) {
	if o.HasDialog() {
		o.CloseDialog()
		return "", false
	}
	p := image.Pt(x, y)
	hits := make([]*Widget, 0, 1)
	for _, name := range o.order {
		w := o.widgets[name]
		if w.visible && p.In(w.bounds) {
			hits = append(hits, w)
		}
	}
	if len(hits) == 0 {
		return "", false
	}
	// 重叠时面积小的优先
	sort.SliceStable(hits, func(i, j int) bool {
		return area(hits[i].bounds) < area(hits[j].bounds)
	})
	o.Press(hits[0].name)
	return hits[0].name, true
}

// Press 按下按钮（点击或快捷键），切换型按钮翻转选中状态
// 按钮不存在时返回 false；隐藏的按钮也可以通过快捷键按下
func (o *Overlay) Press(name string) bool {
	w, ok := o.widgets[name]
	if !ok {
		return false
	}
	if w.toggle {
		w.checked = !w.checked
	}
	return true
}

func area(r image.Rectangle) int {
	return r.Dx() * r.Dy()
}

// Update 推进动画时间
func (o *Overlay) Update(dt float64) {
	o.time += dt
}
