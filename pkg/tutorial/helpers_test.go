package tutorial

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/ecs"
	"github.com/decker502/factorytutor/pkg/events"
	"github.com/decker502/factorytutor/pkg/world"
)

// testBundle 覆盖全部默认阶段，conveyor 有两句
var testBundle = StaticBundle{
	"tutorial.intro":        "Mine copper [{0}/{1}]",
	"tutorial.drill":        "Place a drill",
	"tutorial.blockinfo":    "Open block info",
	"tutorial.conveyor":     "Conveyors move items\nBuild a line [{0}/{1}]",
	"tutorial.turret":       "Place a duo",
	"tutorial.drillturret":  "Feed the duo",
	"tutorial.pause":        "Press space to pause",
	"tutorial.pause.mobile": "Tap the pause button",
	"tutorial.unpause":      "Press space again",
	"tutorial.breaking":     "Repair the walls",
	"tutorial.withdraw":     "Take copper from the core",
	"tutorial.deposit":      "Put it back",
	"tutorial.waves":        "Survive two waves",
	"tutorial.launch":       "Launch when ready",
}

type fakeElement struct {
	bounds  image.Rectangle
	checked bool
}

func (e fakeElement) Bounds() image.Rectangle { return e.bounds }
func (e fakeElement) Checked() bool           { return e.checked }

type fakeOverlay struct {
	elements map[string]fakeElement
	dialog   bool
	outlined []image.Rectangle
}

func newFakeOverlay() *fakeOverlay {
	return &fakeOverlay{elements: make(map[string]fakeElement)}
}

func (o *fakeOverlay) FindVisible(name string) (Element, bool) {
	el, ok := o.elements[name]
	return el, ok
}

func (o *fakeOverlay) HasDialog() bool { return o.dialog }

func (o *fakeOverlay) Outline(bounds image.Rectangle) {
	o.outlined = append(o.outlined, bounds)
}

type fakeSettings struct {
	values  map[string]bool
	saves   int
	saveErr error
}

func (s *fakeSettings) Put(key string, value bool) {
	if s.values == nil {
		s.values = make(map[string]bool)
	}
	s.values[key] = value
}

func (s *fakeSettings) Save() error {
	s.saves++
	return s.saveErr
}

var errDiskFull = errors.New("disk full")

type fixture struct {
	engine   *Engine
	world    *world.World
	bus      *events.Bus
	overlay  *fakeOverlay
	settings *fakeSettings
	cfg      *config.TutorialConfig
}

func newFixture(t *testing.T, mobile bool, opts ...Option) *fixture {
	t.Helper()
	cfg := config.DefaultTutorialConfig()
	bus := events.NewBus()
	w := world.New(ecs.NewEntityManager(), bus, cfg.World)

	stages, err := BuildStages(DefaultStages(cfg.Stages), testBundle, mobile)
	require.NoError(t, err)

	f := &fixture{
		world:    w,
		bus:      bus,
		overlay:  newFakeOverlay(),
		settings: &fakeSettings{},
		cfg:      cfg,
	}
	f.engine, err = NewEngine(stages, bus, Env{
		World:    w,
		Overlay:  f.overlay,
		Settings: f.settings,
		Mobile:   mobile,
	}, opts...)
	require.NoError(t, err)
	t.Cleanup(f.engine.Close)

	f.engine.Reset()
	return f
}

// jumpTo 从头推进到指定阶段，沿途执行各阶段的 Begin
func (f *fixture) jumpTo(t *testing.T, name string) {
	t.Helper()
	f.engine.Reset()
	for f.engine.CurrentStage().Name() != name {
		before := f.engine.StageIndex()
		f.engine.Next()
		require.NotEqual(t, before, f.engine.StageIndex(), "stage %q not found", name)
	}
}
