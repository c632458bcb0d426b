// Package tutorial 实现分阶段的新手教学引擎
//
// 教学由一组有序的阶段组成，每个阶段带有本地化句子和一个完成条件。
// 引擎订阅游戏事件总线，记录当前阶段开始后发生的事件与放置的方块，
// 在完成条件满足且玩家读完所有句子后推进到下一阶段。
// 最后一个阶段的完成条件永远为 false，教学停留在该阶段。
package tutorial

import (
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/decker502/factorytutor/pkg/events"
	"github.com/decker502/factorytutor/pkg/types"
)

// EventTag 阶段完成条件使用的事件标签
type EventTag string

const (
	EventLineConfirm EventTag = "lineconfirm"
	EventAmmo        EventTag = "ammo"
	EventCoreItem    EventTag = "coreitem"
	EventBlockInfo   EventTag = "blockinfo"
	EventDeposit     EventTag = "deposit"
	EventWithdraw    EventTag = "withdraw"
)

// Option 引擎构造选项
type Option func(*Engine)

// WithMetrics 为引擎挂载进度指标
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// Engine 教学状态机
// 非并发安全：Update/Draw 与事件分发都必须在游戏逻辑线程上调用
type Engine struct {
	id      uuid.UUID
	stages  []*Stage
	ctx     *Context
	metrics *Metrics

	stage    int
	sentence int

	// 当前阶段开始后观察到的事件与放置数量，切换阶段时清空
	events map[EventTag]struct{}
	placed map[types.Block]int

	subs []events.Subscription
}

// NewEngine 创建教学引擎并订阅事件总线
//
// 创建后引擎处于第 0 阶段，但尚未调用其 Begin，进入教学时需要先调用 Reset。
//
// 参数：
//   - stages: BuildStages 构建的阶段列表
//   - bus: 游戏事件总线
//   - env: 世界、UI 覆盖层与设置
//   - opts: 可选配置
//
// 返回：
//   - *Engine: 引擎实例，不再使用时调用 Close
//   - error: 阶段列表为空、缺少世界或某个完成条件 panic 时返回
func NewEngine(stages []*Stage, bus *events.Bus, env Env, opts ...Option) (*Engine, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	if env.World == nil {
		return nil, fmt.Errorf("tutorial engine requires a world")
	}
	if bus == nil {
		return nil, fmt.Errorf("tutorial engine requires an event bus")
	}

	e := &Engine{
		id:     uuid.New(),
		stages: stages,
		events: make(map[EventTag]struct{}),
		placed: make(map[types.Block]int),
	}
	e.ctx = &Context{
		World:    env.World,
		Overlay:  env.Overlay,
		Settings: env.Settings,
		Mobile:   env.Mobile,
		engine:   e,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, s := range stages {
		if s == nil || s.done == nil {
			return nil, fmt.Errorf("invalid stage in list: %w", ErrNoPredicate)
		}
		if err := e.probe(s); err != nil {
			return nil, err
		}
	}

	e.subscribe(bus)

	log.Printf("[Tutorial] Engine %s created with %d stages", e.id, len(stages))
	return e, nil
}

// probe 在当前世界状态上试算一次完成条件
func (e *Engine) probe(s *Stage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage %q: completion predicate panicked: %v", s.name, r)
		}
	}()
	s.Done(e.ctx)
	return nil
}

func (e *Engine) subscribe(bus *events.Bus) {
	e.subs = append(e.subs,
		events.On(bus, func(ev events.BlockBuildEndEvent) {
			if ev.Breaking {
				return
			}
			e.placed[ev.Block]++
			e.metrics.blockPlaced(ev.Block.String())
		}),
		events.On(bus, func(events.LineConfirmEvent) { e.tag(EventLineConfirm) }),
		events.On(bus, func(events.TurretAmmoDeliverEvent) { e.tag(EventAmmo) }),
		events.On(bus, func(events.CoreItemDeliverEvent) { e.tag(EventCoreItem) }),
		events.On(bus, func(events.BlockInfoEvent) { e.tag(EventBlockInfo) }),
		events.On(bus, func(events.DepositEvent) { e.tag(EventDeposit) }),
		events.On(bus, func(events.WithdrawEvent) { e.tag(EventWithdraw) }),
	)
}

func (e *Engine) tag(t EventTag) {
	e.events[t] = struct{}{}
	e.metrics.eventIngested(t)
}

// Close 取消所有事件订阅，重复调用无副作用
func (e *Engine) Close() {
	if e.subs == nil {
		return
	}
	for _, s := range e.subs {
		s.Unsubscribe()
	}
	e.subs = nil
	log.Printf("[Tutorial] Engine %s closed", e.id)
}

// Update 每个逻辑帧调用一次
// 完成条件满足且已读到最后一句时推进阶段，否则调用阶段的 Update
func (e *Engine) Update() {
	st := e.stages[e.stage]
	if st.Done(e.ctx) && !e.CanNextSentence() {
		e.Next()
		return
	}
	st.Update(e.ctx)
}

// Draw 每个渲染帧调用一次
// 没有覆盖层或存在模态对话框时不绘制
func (e *Engine) Draw() {
	if e.ctx.Overlay == nil || e.ctx.Overlay.HasDialog() {
		return
	}
	e.stages[e.stage].Draw(e.ctx)
}

// Reset 回到第一个阶段
func (e *Engine) Reset() {
	e.metrics.reset()
	e.enter(0)
}

// Next 进入下一阶段
// 已处于最后一个阶段时停留在原阶段，但仍重新执行 Begin 并清空记录
func (e *Engine) Next() {
	e.enter(min(e.stage+1, len(e.stages)-1))
}

func (e *Engine) enter(index int) {
	from := e.stage
	e.stage = index
	st := e.stages[index]
	st.Begin(e.ctx)
	clear(e.events)
	clear(e.placed)
	e.sentence = 0
	e.metrics.stageEntered(st)
	log.Printf("[Tutorial] Stage %d (%s) -> %d (%s)", from, e.stages[from].name, index, st.name)
}

// CanNextSentence 当前阶段是否还有下一句
func (e *Engine) CanNextSentence() bool {
	return e.sentence+1 < e.stages[e.stage].SentenceCount()
}

// NextSentence 翻到下一句，已是最后一句时不做任何事
func (e *Engine) NextSentence() {
	if e.CanNextSentence() {
		e.sentence++
	}
}

// CanPrevSentence 当前阶段是否还有上一句
func (e *Engine) CanPrevSentence() bool {
	return e.sentence > 0
}

// PrevSentence 翻到上一句，已是第一句时不做任何事
func (e *Engine) PrevSentence() {
	if e.CanPrevSentence() {
		e.sentence--
	}
}

// EventOccurred 当前阶段开始后是否观察到过该事件
func (e *Engine) EventOccurred(tag EventTag) bool {
	_, ok := e.events[tag]
	return ok
}

// ObservedEvents 当前阶段观察到的事件标签（已排序）
func (e *Engine) ObservedEvents() []EventTag {
	tags := make([]EventTag, 0, len(e.events))
	for t := range e.events {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// PlacedCount 当前阶段开始后放置的方块数量
func (e *Engine) PlacedCount(block types.Block) int {
	return e.placed[block]
}

// PlacedAtLeast 当前阶段开始后是否至少放置了 n 个方块
func (e *Engine) PlacedAtLeast(block types.Block, n int) bool {
	return e.placed[block] >= n
}

// Text 当前句子的显示文本
func (e *Engine) Text() string {
	return e.stages[e.stage].Text(e.ctx, e.sentence)
}

// CurrentStage 当前阶段
func (e *Engine) CurrentStage() *Stage { return e.stages[e.stage] }

// StageIndex 当前阶段序号
func (e *Engine) StageIndex() int { return e.stage }

// SentenceIndex 当前句子序号
func (e *Engine) SentenceIndex() int { return e.sentence }

// StageCount 阶段总数
func (e *Engine) StageCount() int { return len(e.stages) }

// Stages 返回阶段列表的副本
func (e *Engine) Stages() []*Stage {
	out := make([]*Stage, len(e.stages))
	copy(out, e.stages)
	return out
}

// SessionID 本次教学会话的唯一标识
func (e *Engine) SessionID() uuid.UUID { return e.id }
