package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/tutorial"
)

func TestFindVisible(t *testing.T) {
	o := NewOverlay()
	o.Add("a", "A", image.Rect(0, 0, 10, 10))

	el, ok := o.FindVisible("a")
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 10, 10), el.Bounds())
	assert.False(t, el.Checked())

	o.SetVisible("a", false)
	_, ok = o.FindVisible("a")
	assert.False(t, ok)

	_, ok = o.FindVisible("missing")
	assert.False(t, ok)
}

func TestAdd_ReplaceKeepsOrder(t *testing.T) {
	o := NewOverlay()
	o.Add("a", "A", image.Rect(0, 0, 1, 1))
	o.Add("b", "B", image.Rect(0, 0, 1, 1))
	o.Add("a", "A2", image.Rect(0, 0, 2, 2))

	ws := o.Widgets()
	require.Len(t, ws, 2)
	assert.Equal(t, "a", ws[0].Name())
	assert.Equal(t, "A2", ws[0].Label())
}

func TestClick_TogglesAndPrefersSmallest(t *testing.T) {
	o := NewOverlay()
	o.Add("big", "", image.Rect(0, 0, 100, 100))
	o.AddToggle("small", "", image.Rect(10, 10, 20, 20))

	name, ok := o.Click(15, 15)
	require.True(t, ok)
	assert.Equal(t, "small", name)
	w, _ := o.Widget("small")
	assert.True(t, w.Checked())

	o.Click(15, 15)
	assert.False(t, w.Checked())

	name, ok = o.Click(50, 50)
	assert.True(t, ok)
	assert.Equal(t, "big", name)

	_, ok = o.Click(500, 500)
	assert.False(t, ok)
}

func TestPress_HiddenToggle(t *testing.T) {
	o := NewOverlay()
	w := o.AddToggle("pause", "", image.Rect(0, 0, 10, 10))
	o.SetVisible("pause", false)

	assert.True(t, o.Press("pause"))
	assert.True(t, w.Checked())
	assert.False(t, o.Press("missing"))
}

func TestClick_HiddenWidgetIgnored(t *testing.T) {
	o := NewOverlay()
	o.Add("a", "", image.Rect(0, 0, 10, 10))
	o.SetVisible("a", false)

	_, ok := o.Click(5, 5)
	assert.False(t, ok)
}

func TestDialog(t *testing.T) {
	o := NewOverlay()
	o.Add("a", "", image.Rect(0, 0, 10, 10))
	assert.False(t, o.HasDialog())

	o.ShowDialog("Block info")
	assert.True(t, o.HasDialog())
	assert.Equal(t, "Block info", o.DialogTitle())

	_, ok := o.Click(5, 5)
	assert.False(t, ok, "the first click closes the dialog")
	assert.False(t, o.HasDialog())

	o.ShowDialog("")
	assert.True(t, o.HasDialog())
}

func TestOutline_Queue(t *testing.T) {
	o := NewOverlay()
	r := image.Rect(1, 2, 3, 4)
	o.Outline(r)
	o.Outline(r)
	assert.Equal(t, []image.Rectangle{r, r}, o.PendingOutlines())
}

func TestPulseInset_Range(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := PulseInset(float64(i) * config.OutlinePulsePeriod / 37)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(config.OutlinePulse)+0.0001)
	}
	assert.InDelta(t, config.OutlinePulse/2, PulseInset(0), 0.0001)
}

func TestDefaultOverlay_MobileWidgets(t *testing.T) {
	desktop := NewDefaultOverlay(false)
	mobile := NewDefaultOverlay(true)

	for _, name := range []string{tutorial.ElementPause, tutorial.ElementBreakMode, tutorial.ElementConfirmPlace} {
		_, ok := desktop.FindVisible(name)
		assert.False(t, ok, name)
		_, ok = mobile.FindVisible(name)
		assert.True(t, ok, name)
	}

	screen := image.Rect(0, 0, config.GameWindowWidth, config.GameWindowHeight)
	for _, w := range mobile.Widgets() {
		assert.True(t, w.Bounds().In(screen), "%s is on screen", w.Name())
	}
	_, ok := desktop.FindVisible(tutorial.ElementWaves)
	assert.True(t, ok)
}

func TestOverlay_ImplementsTutorialOverlay(t *testing.T) {
	var _ tutorial.Overlay = NewOverlay()
}
