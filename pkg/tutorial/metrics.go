package tutorial

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 教学进度指标
// nil *Metrics 是合法值，所有记录方法都是空操作
type Metrics struct {
	transitions *prometheus.CounterVec
	resets      prometheus.Counter
	events      *prometheus.CounterVec
	placements  *prometheus.CounterVec
	stage       prometheus.Gauge
}

// NewMetrics 创建指标并注册到 reg
//
// 参数：
//   - reg: 指标注册器，通常是 prometheus.NewRegistry()
//
// 返回：
//   - *Metrics: 指标集合
//   - error: 注册失败（例如重复注册）时返回
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tutorial",
			Name:      "stage_transitions_total",
			Help:      "Number of times each stage was entered",
		}, []string{"stage"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tutorial",
			Name:      "resets_total",
			Help:      "Number of tutorial resets",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tutorial",
			Name:      "events_ingested_total",
			Help:      "Gameplay events observed by the tutorial, by tag",
		}, []string{"tag"}),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tutorial",
			Name:      "blocks_placed_total",
			Help:      "Blocks placed while the tutorial was listening, by block",
		}, []string{"block"}),
		stage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tutorial",
			Name:      "current_stage",
			Help:      "Ordinal of the active tutorial stage",
		}),
	}

	for _, c := range []prometheus.Collector{m.transitions, m.resets, m.events, m.placements, m.stage} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register tutorial metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) stageEntered(s *Stage) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(s.Name()).Inc()
	m.stage.Set(float64(s.Ordinal()))
}

func (m *Metrics) reset() {
	if m == nil {
		return
	}
	m.resets.Inc()
}

func (m *Metrics) eventIngested(tag EventTag) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(string(tag)).Inc()
}

func (m *Metrics) blockPlaced(name string) {
	if m == nil {
		return
	}
	m.placements.WithLabelValues(name).Inc()
}
