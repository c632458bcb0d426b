package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/factorytutor/pkg/tutorial"
	"github.com/decker502/factorytutor/pkg/types"
	"github.com/decker502/factorytutor/pkg/ui"
	"github.com/decker502/factorytutor/pkg/utils"
)

// keyBindings 桌面端快捷键
var keyBindings = map[ebiten.Key]string{
	ebiten.KeySpace:  tutorial.ElementPause,
	ebiten.KeyDigit1: tutorial.ElementBlockDrill,
	ebiten.KeyDigit2: tutorial.ElementBlockConveyor,
	ebiten.KeyDigit3: tutorial.ElementBlockDuo,
	ebiten.KeyDigit4: ui.ElementWall,
	ebiten.KeyI:      tutorial.ElementBlockInfo,
	ebiten.KeyM:      ui.ElementMine,
	ebiten.KeyQ:      tutorial.ElementBreakMode,
	ebiten.KeyT:      ui.ElementWithdraw,
	ebiten.KeyG:      ui.ElementDeposit,
	ebiten.KeyW:      tutorial.ElementWaves,
}

// handleKeys 处理键盘输入
func (s *TutorialScene) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.overlay.CloseDialog()
	}
	if s.overlay.HasDialog() {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.NextSentence()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.PrevSentence()
	}
	for key, widget := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			s.PressWidget(widget)
		}
	}
}

// handlePointer 处理鼠标与触摸输入
// 点击教学面板翻到下一句，点击按钮执行按钮操作，点击地图操作格子
func (s *TutorialScene) handlePointer() {
	g := s.pointer.Poll()
	cols, rows := s.world.Width(), s.world.Height()

	switch g.Kind {
	case utils.GestureTap:
		if s.overlay.HasDialog() {
			s.overlay.CloseDialog()
			return
		}
		if name, ok := s.overlay.Click(g.EndX, g.EndY); ok {
			s.activate(name)
			return
		}
		if inTutorialPanel(g.EndX, g.EndY) {
			s.NextSentence()
			return
		}
		if col, row, ok := utils.ScreenToTile(g.EndX, g.EndY, cols, rows); ok {
			s.TapTile(types.Point{X: col, Y: row})
		}

	case utils.GestureDrag:
		c0, r0, ok0 := utils.ScreenToTile(g.StartX, g.StartY, cols, rows)
		c1, r1, ok1 := utils.ScreenToTile(g.EndX, g.EndY, cols, rows)
		if ok0 && ok1 {
			s.DragTiles(types.Point{X: c0, Y: r0}, types.Point{X: c1, Y: r1})
		}
	}
}
