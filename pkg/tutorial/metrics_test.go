package tutorial

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/factorytutor/pkg/events"
	"github.com/decker502/factorytutor/pkg/types"
)

func TestMetrics_RecordProgress(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	f := newFixture(t, false, WithMetrics(m))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resets))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues(StageIntro)))

	f.world.Mine(types.DefaultTeam, types.ItemCopper, 18)
	f.engine.Update()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues(StageDrill)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stage))

	f.world.Build(1, 1, types.BlockMechanicalDrill, types.DefaultTeam)
	f.bus.Fire(events.BlockInfoEvent{})
	f.bus.Fire(events.BlockInfoEvent{})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.placements.WithLabelValues("mechanical-drill")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues(string(EventBlockInfo))))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.reset()
		m.eventIngested(EventAmmo)
		m.blockPlaced("duo")
	})
}
