package scenes

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/events"
	"github.com/decker502/factorytutor/pkg/game"
	"github.com/decker502/factorytutor/pkg/tutorial"
	"github.com/decker502/factorytutor/pkg/types"
	"github.com/decker502/factorytutor/pkg/ui"
)

var testBundle = tutorial.StaticBundle{
	"tutorial.intro":            "Mine copper [{0}/{1}]\nTap the ore",
	"tutorial.drill":            "Place a drill",
	"tutorial.blockinfo":        "Open block info",
	"tutorial.conveyor":         "Build a conveyor line [{0}/{1}]",
	"tutorial.turret":           "Place a duo",
	"tutorial.drillturret":      "Feed the duo",
	"tutorial.pause":            "Press space",
	"tutorial.pause.mobile":     "Tap pause",
	"tutorial.unpause":          "Press space again",
	"tutorial.breaking":         "Repair the walls",
	"tutorial.breaking.mobile":  "Tap the broken walls",
	"tutorial.withdraw":         "Take copper",
	"tutorial.deposit":          "Put it back",
	"tutorial.waves":            "Survive\nTwo waves",
	"tutorial.launch":           "Launch",
	"tutorial.launch.mobile":    "Tap launch",
	"tutorial.blockinfo.mobile": "Hold a block",
}

func newTestScene(t *testing.T, mobile bool) (*TutorialScene, *game.SettingsManager) {
	t.Helper()
	cfg := config.DefaultTutorialConfig()
	stages, err := tutorial.BuildStages(tutorial.DefaultStages(cfg.Stages), testBundle, mobile)
	require.NoError(t, err)

	settings, err := game.NewSettingsManager(nil)
	require.NoError(t, err)

	s, err := NewTutorialScene(TutorialSceneConfig{
		Stages:   stages,
		Tutorial: cfg,
		Settings: settings,
		Mobile:   mobile,
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, settings
}

func TestWalkthrough_Desktop(t *testing.T) {
	s, settings := newTestScene(t, false)

	require.NoError(t, Walkthrough(s, 1.0/60))

	assert.Equal(t, tutorial.StageLaunch, s.Engine().CurrentStage().Name())
	assert.True(t, settings.GetBool(tutorial.PlayedTutorialKey, false))
	assert.True(t, s.Finished())
	assert.Equal(t, 5, s.World().Wave())
}

func TestWalkthrough_Mobile(t *testing.T) {
	s, settings := newTestScene(t, true)

	require.NoError(t, Walkthrough(s, 1.0/30))

	assert.True(t, settings.GetBool(tutorial.PlayedTutorialKey, false))
	assert.Zero(t, s.PendingPlans())
}

func TestWalkthrough_WithMetrics(t *testing.T) {
	cfg := config.DefaultTutorialConfig()
	stages, err := tutorial.BuildStages(tutorial.DefaultStages(cfg.Stages), testBundle, false)
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	m, err := tutorial.NewMetrics(reg)
	require.NoError(t, err)

	s, err := NewTutorialScene(TutorialSceneConfig{Stages: stages, Tutorial: cfg, Metrics: m})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, Walkthrough(s, 1.0/60))
	count, err := testutil.GatherAndCount(reg, "tutorial_stage_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, len(stages), count, "every stage was entered")
}

func TestPressWidget_SelectsOneBlock(t *testing.T) {
	s, _ := newTestScene(t, false)

	s.PressWidget(tutorial.ElementBlockDrill)
	assert.Equal(t, types.BlockMechanicalDrill, s.Selected())

	s.PressWidget(tutorial.ElementBlockConveyor)
	assert.Equal(t, types.BlockConveyor, s.Selected())
	drill, _ := s.Overlay().Widget(tutorial.ElementBlockDrill)
	assert.False(t, drill.Checked())

	s.PressWidget(tutorial.ElementBlockConveyor)
	assert.Equal(t, types.BlockAir, s.Selected(), "pressing again deselects")

	s.PressWidget(tutorial.ElementBlockDuo)
	s.PressWidget(tutorial.ElementBreakMode)
	assert.Equal(t, types.BlockAir, s.Selected(), "break mode clears the selection")
}

func TestPressWidget_CategoriesAreExclusive(t *testing.T) {
	s, _ := newTestScene(t, false)

	s.PressWidget(tutorial.ElementCategoryProduction)
	s.PressWidget(tutorial.ElementCategoryTurret)

	prod, _ := s.Overlay().Widget(tutorial.ElementCategoryProduction)
	tur, _ := s.Overlay().Widget(tutorial.ElementCategoryTurret)
	assert.False(t, prod.Checked())
	assert.True(t, tur.Checked())
}

func TestBlockInfo_RequiresSelection(t *testing.T) {
	s, _ := newTestScene(t, false)
	infos := 0
	events.On(s.bus, func(events.BlockInfoEvent) { infos++ })

	s.PressWidget(tutorial.ElementBlockInfo)
	assert.Zero(t, infos)
	assert.True(t, s.Overlay().HasDialog())

	s.Overlay().CloseDialog()
	s.PressWidget(tutorial.ElementBlockDuo)
	s.PressWidget(tutorial.ElementBlockInfo)
	assert.Equal(t, 1, infos)
	assert.Equal(t, "duo", s.Overlay().DialogTitle())
}

func TestTapTile_MobileQueuesPlans(t *testing.T) {
	s, _ := newTestScene(t, true)
	p := types.Point{X: 3, Y: 3}

	s.PressWidget(tutorial.ElementBlockDuo)
	s.TapTile(p)
	assert.Equal(t, 1, s.PendingPlans())
	assert.Equal(t, types.BlockAir, s.World().Block(p.X, p.Y))

	s.PressWidget(tutorial.ElementConfirmPlace)
	assert.Zero(t, s.PendingPlans())
	assert.Equal(t, types.BlockDuo, s.World().Block(p.X, p.Y))
}

func TestTapTile_BreakMode(t *testing.T) {
	s, _ := newTestScene(t, false)
	p := types.Point{X: 4, Y: 4}

	s.PressWidget(ui.ElementWall)
	s.TapTile(p)
	require.Equal(t, types.BlockCopperWall, s.World().Block(p.X, p.Y))

	s.PressWidget(tutorial.ElementBreakMode)
	s.TapTile(p)
	assert.Equal(t, types.BlockAir, s.World().Block(p.X, p.Y))
}

func TestConveyorNextToCore_DeliversItems(t *testing.T) {
	s, _ := newTestScene(t, false)
	core := s.World().Cores(types.DefaultTeam)[0]
	delivered := 0
	events.On(s.bus, func(events.CoreItemDeliverEvent) { delivered++ })

	s.PressWidget(tutorial.ElementBlockConveyor)
	s.DragTiles(core.Add(3, 0), core.Add(1, 0))

	assert.Equal(t, 1, delivered, "only the tile touching the core delivers")
	assert.Equal(t, 3, s.Engine().PlacedCount(types.BlockConveyor))
}

func TestWithdrawDeposit_CarriesItems(t *testing.T) {
	s, _ := newTestScene(t, false)
	s.World().Mine(types.DefaultTeam, types.ItemCopper, 4)

	s.PressWidget(ui.ElementWithdraw)
	assert.Equal(t, 4, s.Carried())
	assert.Zero(t, s.World().Items(types.DefaultTeam, types.ItemCopper))

	s.PressWidget(ui.ElementDeposit)
	assert.Zero(t, s.Carried())
	assert.Equal(t, 4, s.World().Items(types.DefaultTeam, types.ItemCopper))
}

func TestClose_Unsubscribes(t *testing.T) {
	s, _ := newTestScene(t, false)

	s.Close()
	assert.Zero(t, events.HandlerCount[events.BlockBuildEndEvent](s.bus))
	assert.NotPanics(t, s.Close)
}

func TestSceneManager_ClosesReplacedScene(t *testing.T) {
	a, _ := newTestScene(t, false)
	b, _ := newTestScene(t, false)

	sm := game.NewSceneManager()
	sm.SwitchTo(a)
	sm.SwitchTo(b)

	assert.Zero(t, events.HandlerCount[events.LineConfirmEvent](a.bus))
	assert.NotZero(t, events.HandlerCount[events.LineConfirmEvent](b.bus))
}
