package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/factorytutor/pkg/tutorial"
	"github.com/decker502/factorytutor/pkg/types"
	"github.com/decker502/factorytutor/pkg/ui"
)

// 脚本中建造的位置，相对玩家核心
var (
	drillOffset    = types.Point{X: 5, Y: 5}
	duoOffset      = types.Point{X: 5, Y: 6}
	conveyorOffset = types.Point{X: 1, Y: 0}
	conveyorLength = 4
)

// maxStageSeconds 单个阶段允许的最长模拟时间
const maxStageSeconds = 120.0

// Walkthrough 以玩家操作的方式完成整个默认教学，直到最后一个阶段并确认发射
//
// 参数：
//   - s: 刚创建的教学场景
//   - dt: 每一步模拟的时间增量（秒）
//
// 返回：
//   - error: 某个阶段没有脚本或在限定时间内没有完成
func Walkthrough(s *TutorialScene, dt float64) error {
	core, ok := s.firstCore()
	if !ok {
		return fmt.Errorf("walkthrough: player has no core")
	}
	actions := s.scriptedActions(core)

	e := s.engine
	for e.StageIndex() < e.StageCount()-1 {
		name := e.CurrentStage().Name()
		act, ok := actions[name]
		if !ok {
			return fmt.Errorf("walkthrough: no scripted action for stage %q", name)
		}
		log.Printf("[Walkthrough] Stage %d: %s", e.StageIndex(), name)

		before := e.StageIndex()
		act()
		s.overlay.CloseDialog()
		for e.CanNextSentence() {
			s.NextSentence()
		}

		for t := 0.0; e.StageIndex() == before; t += dt {
			if t > maxStageSeconds {
				return fmt.Errorf("walkthrough: stage %q did not complete within %.0fs", name, maxStageSeconds)
			}
			s.Step(dt)
		}
	}

	s.PressWidget(tutorial.ElementWaves)
	if !s.Finished() {
		return fmt.Errorf("walkthrough: launch was not confirmed")
	}
	return nil
}

func (s *TutorialScene) firstCore() (types.Point, bool) {
	cores := s.world.Cores(types.DefaultTeam)
	if len(cores) == 0 {
		return types.Point{}, false
	}
	return cores[0], true
}

// place 选中方块并建造到 p，移动端额外确认
func (s *TutorialScene) place(widget string, p types.Point) {
	s.selectOnly(widget)
	s.TapTile(p)
	if s.mobile {
		s.PressWidget(tutorial.ElementConfirmPlace)
	}
}

// selectOnly 确保只有 widget 处于选中状态
func (s *TutorialScene) selectOnly(widget string) {
	if w, ok := s.overlay.Widget(widget); ok && w.Checked() {
		return
	}
	s.PressWidget(widget)
}

func (s *TutorialScene) deselect() {
	for name := range blockWidgets {
		s.overlay.SetChecked(name, false)
	}
	s.selected = types.BlockAir
}

func (s *TutorialScene) scriptedActions(core types.Point) map[string]func() {
	stages := s.cfg.Stages
	drill := core.Add(drillOffset.X, drillOffset.Y)
	duo := core.Add(duoOffset.X, duoOffset.Y)

	return map[string]func(){
		tutorial.StageIntro: func() {
			for s.world.Items(types.DefaultTeam, types.ItemCopper) < stages.MineCopper {
				s.PressWidget(ui.ElementMine)
			}
		},
		tutorial.StageDrill: func() {
			s.selectOnly(tutorial.ElementCategoryProduction)
			s.place(tutorial.ElementBlockDrill, drill)
		},
		tutorial.StageBlockInfo: func() {
			s.selectOnly(tutorial.ElementBlockDrill)
			s.PressWidget(tutorial.ElementBlockInfo)
		},
		tutorial.StageConveyor: func() {
			s.selectOnly(tutorial.ElementCategoryDistribution)
			s.selectOnly(tutorial.ElementBlockConveyor)
			start := core.Add(conveyorOffset.X, conveyorOffset.Y)
			s.DragTiles(start, start.Add(conveyorLength-1, 0))
		},
		tutorial.StageTurret: func() {
			s.selectOnly(tutorial.ElementCategoryTurret)
			s.place(tutorial.ElementBlockDuo, duo)
		},
		tutorial.StageDrillTurret: func() {
			s.deselect()
			s.TapTile(duo)
		},
		tutorial.StagePause: func() {
			if !s.world.Paused() {
				s.PressWidget(tutorial.ElementPause)
			}
		},
		tutorial.StageUnpause: func() {
			if s.world.Paused() {
				s.PressWidget(tutorial.ElementPause)
			}
		},
		tutorial.StageBreaking: func() {
			s.deselect()
			s.overlay.SetChecked(tutorial.ElementBreakMode, false)
			for i := 0; i < stages.BlocksToBreak; i++ {
				s.TapTile(core.Add(stages.BlockOffset, i))
			}
		},
		tutorial.StageWithdraw: func() {
			s.PressWidget(ui.ElementWithdraw)
		},
		tutorial.StageDeposit: func() {
			s.PressWidget(ui.ElementDeposit)
		},
		tutorial.StageWaves: func() {
			for s.world.Wave() <= stages.WaveTarget {
				s.PressWidget(tutorial.ElementWaves)
			}
		},
	}
}
