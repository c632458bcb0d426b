package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/factorytutor/pkg/components"
	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/ecs"
	"github.com/decker502/factorytutor/pkg/utils"
)

// 文本淡入时间（秒）
const tutorialTextFadeIn = 0.25

var (
	tutorialPanelColor = color.RGBA{R: 20, G: 20, B: 26, A: 255}
	tutorialTextColor  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	tutorialHintColor  = color.RGBA{R: 255, G: 211, B: 127, A: 255}
)

// TutorialRenderSystem 教学文本面板渲染系统
// 在屏幕顶部居中绘制当前句子、翻页提示与阶段进度
type TutorialRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewTutorialRenderSystem 创建教学文本渲染系统
func NewTutorialRenderSystem(em *ecs.EntityManager, face text.Face) *TutorialRenderSystem {
	return &TutorialRenderSystem{entityManager: em, face: face}
}

// Draw 绘制所有教学实体的文本面板
func (s *TutorialRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.TutorialComponent, *components.TutorialTextComponent](s.entityManager) {
		tc, _ := ecs.GetComponent[*components.TutorialComponent](s.entityManager, id)
		textComp, _ := ecs.GetComponent[*components.TutorialTextComponent](s.entityManager, id)
		if !tc.IsActive || textComp.Text == "" {
			continue
		}
		s.drawPanel(screen, tc, textComp)
	}
}

func (s *TutorialRenderSystem) drawPanel(screen *ebiten.Image, tc *components.TutorialComponent, textComp *components.TutorialTextComponent) {
	alpha := TextFadeAlpha(textComp.DisplayTime)

	x := float32(config.GameWindowWidth-config.TutorialPanelWidth) / 2
	y := float32(config.TutorialPanelY)
	bg := tutorialPanelColor
	bg.A = uint8(255 * textComp.BackgroundAlpha)
	vector.DrawFilledRect(screen, x, y, config.TutorialPanelWidth, config.TutorialPanelHeight, bg, true)

	if s.face == nil {
		return
	}

	pad := float64(config.TutorialTextPadding)
	lineHeight := s.face.Metrics().HAscent + s.face.Metrics().HDescent + 2
	lines := utils.WrapText(textComp.Text, s.face, config.TutorialPanelWidth-2*pad)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+pad, float64(y)+pad+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(tutorialTextColor)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, line, s.face, op)
	}

	hint := PageHint(tc)
	hw, hh := text.Measure(hint, s.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+config.TutorialPanelWidth-pad-hw, float64(y)+config.TutorialPanelHeight-pad-hh)
	op.ColorScale.ScaleWithColor(tutorialHintColor)
	text.Draw(screen, hint, s.face, op)
}

// TextFadeAlpha 根据显示时间计算文本透明度（0.0-1.0）
func TextFadeAlpha(displayTime float64) float64 {
	if displayTime <= 0 {
		return 0
	}
	return math.Min(1, displayTime/tutorialTextFadeIn)
}

// PageHint 返回面板右下角的翻页与进度提示，例如 "< 1/2 >  [4/13]"
func PageHint(tc *components.TutorialComponent) string {
	prev, next := " ", " "
	if tc.CanPrev {
		prev = "<"
	}
	if tc.CanNext {
		next = ">"
	}
	return fmt.Sprintf("%s %d/%d %s  [%d/%d]", prev, tc.SentenceIndex+1, tc.SentenceCount, next, tc.StageIndex+1, tc.StageCount)
}
