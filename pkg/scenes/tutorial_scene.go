// Package scenes 提供游戏场景实现
package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/ecs"
	"github.com/decker502/factorytutor/pkg/events"
	"github.com/decker502/factorytutor/pkg/systems"
	"github.com/decker502/factorytutor/pkg/tutorial"
	"github.com/decker502/factorytutor/pkg/types"
	"github.com/decker502/factorytutor/pkg/ui"
	"github.com/decker502/factorytutor/pkg/utils"
	"github.com/decker502/factorytutor/pkg/world"
)

// mineAmount 每次手动采矿获得的铜
const mineAmount = 2

var (
	backgroundColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	planColor       = color.RGBA{R: 120, G: 200, B: 255, A: 255}
)

// blockWidgets 方块按钮与对应方块
var blockWidgets = map[string]types.Block{
	tutorial.ElementBlockDrill:    types.BlockMechanicalDrill,
	tutorial.ElementBlockConveyor: types.BlockConveyor,
	tutorial.ElementBlockDuo:      types.BlockDuo,
	ui.ElementWall:                types.BlockCopperWall,
}

var categoryWidgets = []string{
	tutorial.ElementCategoryProduction,
	tutorial.ElementCategoryDistribution,
	tutorial.ElementCategoryTurret,
}

// TutorialSceneConfig 创建教学场景所需的依赖
type TutorialSceneConfig struct {
	// Stages 已本地化的阶段列表，可在多个场景实例之间共享
	Stages []*tutorial.Stage
	// Tutorial 阶段阈值与世界参数
	Tutorial *config.TutorialConfig
	// Settings 教学完成标记的存储，可为 nil
	Settings tutorial.Settings
	// Metrics 进度指标，可为 nil
	Metrics *tutorial.Metrics
	// Mobile 是否使用移动端布局与文本
	Mobile bool
	// Face 界面字体，为 nil 时不绘制文字
	Face text.Face
}

type plan struct {
	tile  types.Point
	block types.Block
}

// TutorialScene 教学场景
// 组合世界模拟、UI 覆盖层与教学引擎，把玩家输入转换为世界操作
type TutorialScene struct {
	entityManager *ecs.EntityManager
	bus           *events.Bus
	world         *world.World
	overlay       *ui.Overlay
	engine        *tutorial.Engine
	cfg           *config.TutorialConfig
	mobile        bool
	face          text.Face

	tutorialSystem       *systems.TutorialSystem
	tutorialRenderSystem *systems.TutorialRenderSystem
	worldRenderSystem    *systems.WorldRenderSystem

	pointer  *utils.PointerTracker
	selected types.Block
	plans    []plan
	carried  int
	finished bool

	subs []events.Subscription
}

// NewTutorialScene 创建教学场景并从第一个阶段开始
//
// 参数：
//   - sc: 场景依赖
//
// 返回：
//   - *TutorialScene: 场景实例，离开场景时由 SceneManager 调用 Close
//   - error: 教学引擎创建失败时返回
func NewTutorialScene(sc TutorialSceneConfig) (*TutorialScene, error) {
	cfg := sc.Tutorial
	if cfg == nil {
		cfg = config.DefaultTutorialConfig()
	}

	em := ecs.NewEntityManager()
	bus := events.NewBus()
	w := world.New(em, bus, cfg.World)
	overlay := ui.NewDefaultOverlay(sc.Mobile)

	var opts []tutorial.Option
	if sc.Metrics != nil {
		opts = append(opts, tutorial.WithMetrics(sc.Metrics))
	}
	engine, err := tutorial.NewEngine(sc.Stages, bus, tutorial.Env{
		World:    w,
		Overlay:  overlay,
		Settings: sc.Settings,
		Mobile:   sc.Mobile,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tutorial engine: %w", err)
	}
	engine.Reset()

	s := &TutorialScene{
		entityManager:        em,
		bus:                  bus,
		world:                w,
		overlay:              overlay,
		engine:               engine,
		cfg:                  cfg,
		mobile:               sc.Mobile,
		face:                 sc.Face,
		tutorialSystem:       systems.NewTutorialSystem(em, engine),
		tutorialRenderSystem: systems.NewTutorialRenderSystem(em, sc.Face),
		worldRenderSystem:    systems.NewWorldRenderSystem(em, w, sc.Face),
		pointer:              utils.NewPointerTracker(),
	}
	s.subs = append(s.subs, events.On(bus, s.onBlockBuilt))

	log.Printf("[TutorialScene] Started tutorial session %s (mobile=%v)", engine.SessionID(), sc.Mobile)
	return s, nil
}

// Update 更新场景：处理输入、推进世界模拟与教学
func (s *TutorialScene) Update(deltaTime float64) {
	s.handleKeys()
	s.handlePointer()
	s.Step(deltaTime)
}

// Step 推进世界模拟与教学，不读取输入
func (s *TutorialScene) Step(deltaTime float64) {
	s.world.Update(deltaTime)
	s.tutorialSystem.Update(deltaTime)
	s.overlay.Update(deltaTime)
}

// Draw 绘制场景
func (s *TutorialScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.worldRenderSystem.Draw(screen)
	s.drawPlans(screen)
	s.drawDragPreview(screen)

	// 引擎在覆盖层绘制前排队高亮区域
	s.engine.Draw()
	s.overlay.Draw(screen, s.face)
	s.tutorialRenderSystem.Draw(screen)
}

// Close 取消事件订阅
func (s *TutorialScene) Close() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	s.subs = nil
	s.engine.Close()
}

// Engine 返回场景的教学引擎
func (s *TutorialScene) Engine() *tutorial.Engine { return s.engine }

// World 返回场景的世界
func (s *TutorialScene) World() *world.World { return s.world }

// Overlay 返回场景的 UI 覆盖层
func (s *TutorialScene) Overlay() *ui.Overlay { return s.overlay }

// Finished 玩家是否已在最后一个阶段确认发射
func (s *TutorialScene) Finished() bool { return s.finished }

// NextSentence / PrevSentence 翻页
func (s *TutorialScene) NextSentence() { s.tutorialSystem.NextSentence() }
func (s *TutorialScene) PrevSentence() { s.tutorialSystem.PrevSentence() }

// PressWidget 按下覆盖层按钮并执行对应操作
func (s *TutorialScene) PressWidget(name string) {
	if !s.overlay.Press(name) {
		return
	}
	s.activate(name)
}

func (s *TutorialScene) activate(name string) {
	team := types.DefaultTeam

	if block, ok := blockWidgets[name]; ok {
		s.selectBlock(name, block)
		return
	}

	switch name {
	case tutorial.ElementCategoryProduction, tutorial.ElementCategoryDistribution, tutorial.ElementCategoryTurret:
		for _, other := range categoryWidgets {
			if other != name {
				s.overlay.SetChecked(other, false)
			}
		}

	case tutorial.ElementBlockInfo:
		if s.selected == types.BlockAir {
			s.overlay.ShowDialog("Select a block first")
			return
		}
		s.world.ShowBlockInfo(s.selected)
		s.overlay.ShowDialog(s.selected.String())

	case ui.ElementMine:
		s.world.Mine(team, types.ItemCopper, mineAmount)

	case ui.ElementWithdraw:
		s.carried += s.world.Withdraw(team, types.ItemCopper, s.cfg.Stages.WithdrawAmount)

	case ui.ElementDeposit:
		if s.carried > 0 {
			s.world.Deposit(team, types.ItemCopper, s.carried)
			s.carried = 0
		}

	case tutorial.ElementPause:
		s.world.TogglePause()
		s.overlay.SetChecked(tutorial.ElementPause, s.world.Paused())

	case tutorial.ElementBreakMode:
		if s.breakMode() {
			s.selectBlock("", types.BlockAir)
		}

	case tutorial.ElementConfirmPlace:
		s.confirmPlans()

	case tutorial.ElementWaves:
		if s.engine.CurrentStage().Name() == tutorial.StageLaunch {
			s.finished = true
			s.overlay.ShowDialog("Tutorial complete")
			log.Printf("[TutorialScene] Launch confirmed, tutorial finished")
			return
		}
		s.world.RunWave()
	}
}

// selectBlock 选中方块按钮，其余方块按钮取消选中
// widget 为空或按钮已取消选中时清空选择
func (s *TutorialScene) selectBlock(widget string, block types.Block) {
	for name := range blockWidgets {
		if name != widget {
			s.overlay.SetChecked(name, false)
		}
	}
	if w, ok := s.overlay.Widget(widget); ok && w.Checked() {
		s.selected = block
		s.overlay.SetChecked(tutorial.ElementBreakMode, false)
		return
	}
	s.selected = types.BlockAir
}

// Selected 当前选中的方块，未选中时为 BlockAir
func (s *TutorialScene) Selected() types.Block { return s.selected }

// Carried 玩家从核心取出的铜数量
func (s *TutorialScene) Carried() int { return s.carried }

// PendingPlans 移动端待确认的建造数量
func (s *TutorialScene) PendingPlans() int { return len(s.plans) }

func (s *TutorialScene) breakMode() bool {
	w, ok := s.overlay.Widget(tutorial.ElementBreakMode)
	return ok && w.Checked()
}

// TapTile 点击地图格子
//   - 拆除模式下拆除方块
//   - 损坏的方块被修复
//   - 没有选中方块时点击炮塔为其补充弹药
//   - 选中方块时建造（移动端先加入待确认列表）
func (s *TutorialScene) TapTile(p types.Point) {
	team := types.DefaultTeam
	current := s.world.Block(p.X, p.Y)

	switch {
	case s.breakMode():
		s.world.Deconstruct(p.X, p.Y)
	case current == types.BlockScrapWall:
		s.world.Repair(p.X, p.Y, types.BlockCopperWall)
	case s.selected == types.BlockAir:
		if current == types.BlockDuo {
			s.world.DeliverAmmo(p.X, p.Y, types.ItemCopper)
		}
	case s.mobile:
		s.plans = append(s.plans, plan{tile: p, block: s.selected})
	default:
		s.world.Build(p.X, p.Y, s.selected, team)
	}
}

// DragTiles 拖拽建造一条直线
func (s *TutorialScene) DragTiles(from, to types.Point) {
	if s.selected == types.BlockAir || s.breakMode() {
		return
	}
	s.world.BuildLineTo(from, to, s.selected, types.DefaultTeam)
}

func (s *TutorialScene) confirmPlans() {
	for _, pl := range s.plans {
		s.world.Build(pl.tile.X, pl.tile.Y, pl.block, types.DefaultTeam)
	}
	s.plans = s.plans[:0]
}

// onBlockBuilt 简化的物流规则：
// 与核心相邻的钻头或传送带向核心输送铜；
// 与钻头或传送带相邻的炮塔获得弹药
func (s *TutorialScene) onBlockBuilt(ev events.BlockBuildEndEvent) {
	if ev.Breaking {
		return
	}
	team := types.DefaultTeam
	switch ev.Block {
	case types.BlockMechanicalDrill, types.BlockConveyor:
		if s.adjacentTo(ev.Tile, types.BlockCoreShard) {
			s.world.DeliverToCore(team, types.ItemCopper, 1)
		}
		for _, n := range neighbors(ev.Tile) {
			if s.world.Block(n.X, n.Y) == types.BlockDuo {
				s.world.DeliverAmmo(n.X, n.Y, types.ItemCopper)
			}
		}
	case types.BlockDuo:
		if s.adjacentTo(ev.Tile, types.BlockMechanicalDrill) || s.adjacentTo(ev.Tile, types.BlockConveyor) {
			s.world.DeliverAmmo(ev.Tile.X, ev.Tile.Y, types.ItemCopper)
		}
	}
}

func (s *TutorialScene) adjacentTo(p types.Point, block types.Block) bool {
	for _, n := range neighbors(p) {
		if s.world.Block(n.X, n.Y) == block {
			return true
		}
	}
	return false
}

func neighbors(p types.Point) [4]types.Point {
	return [4]types.Point{p.Add(1, 0), p.Add(-1, 0), p.Add(0, 1), p.Add(0, -1)}
}

func (s *TutorialScene) drawPlans(screen *ebiten.Image) {
	cols, rows := s.world.Width(), s.world.Height()
	for _, pl := range s.plans {
		x, y := utils.TileToScreen(pl.tile.X, pl.tile.Y, cols, rows)
		vector.StrokeRect(screen, float32(x)+1, float32(y)+1, config.TileSize-2, config.TileSize-2, 1, planColor, false)
	}
}

func (s *TutorialScene) drawDragPreview(screen *ebiten.Image) {
	if !s.pointer.Dragging() || s.selected == types.BlockAir {
		return
	}
	sx, sy, x, y := s.pointer.DragRange()
	vector.StrokeLine(screen, float32(sx), float32(sy), float32(x), float32(y), 2, planColor, true)
}
