package ui

import (
	"image"

	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/tutorial"
)

const (
	buttonSize = 48
	buttonGap  = 6
	margin     = 10
)

// 除教学高亮目标外，覆盖层还注册这些按钮
const (
	ElementMine     = "mine"
	ElementBuild    = "build"
	ElementWall     = "block-copper-wall"
	ElementWithdraw = "withdraw"
	ElementDeposit  = "deposit"
)

// NewDefaultOverlay 创建教学界面的默认按钮布局
// 底部左侧为分类按钮，右侧为方块按钮；移动端额外显示暂停、拆除模式与确认放置按钮
//
// 参数：
//   - mobile: 是否为移动端布局
func NewDefaultOverlay(mobile bool) *Overlay {
	o := NewOverlay()

	bottom := config.GameWindowHeight - margin - buttonSize
	slot := func(col, row int) image.Rectangle {
		x := margin + col*(buttonSize+buttonGap)
		y := bottom - row*(buttonSize+buttonGap)
		return image.Rect(x, y, x+buttonSize, y+buttonSize)
	}

	o.AddToggle(tutorial.ElementCategoryProduction, "PROD", slot(0, 2))
	o.AddToggle(tutorial.ElementCategoryDistribution, "DIST", slot(0, 1))
	o.AddToggle(tutorial.ElementCategoryTurret, "TUR", slot(0, 0))

	o.AddToggle(tutorial.ElementBlockDrill, "DRILL", slot(1, 2))
	o.AddToggle(tutorial.ElementBlockConveyor, "CONV", slot(1, 1))
	o.AddToggle(tutorial.ElementBlockDuo, "DUO", slot(1, 0))
	o.AddToggle(ElementWall, "WALL", slot(2, 0))

	o.Add(tutorial.ElementBlockInfo, "?", slot(2, 2))
	o.Add(ElementMine, "MINE", slot(3, 0))
	o.Add(ElementWithdraw, "TAKE", slot(4, 0))
	o.Add(ElementDeposit, "PUT", slot(5, 0))

	right := config.GameWindowWidth - margin - buttonSize
	o.Add(tutorial.ElementWaves, "WAVE", image.Rect(right-2*(buttonSize+buttonGap), margin, right+buttonSize, margin+buttonSize))

	// 移动端专用按钮
	o.AddToggle(tutorial.ElementPause, "||", image.Rect(right, margin+buttonSize+buttonGap, right+buttonSize, margin+2*buttonSize+buttonGap))
	o.AddToggle(tutorial.ElementBreakMode, "BRK", slot(2, 1))
	o.Add(tutorial.ElementConfirmPlace, "OK", image.Rect(right, bottom, right+buttonSize, bottom+buttonSize))
	for _, name := range []string{tutorial.ElementPause, tutorial.ElementBreakMode, tutorial.ElementConfirmPlace} {
		o.SetVisible(name, mobile)
	}

	return o
}
