package tutorial

import (
	"image"

	"github.com/decker502/factorytutor/pkg/types"
)

// World 教学引擎需要的世界/会话查询接口
// 由 pkg/world.World 实现
type World interface {
	Block(x, y int) types.Block
	RemoveBlock(x, y int)
	SetBlock(x, y int, block types.Block, team types.Team)

	// Cores 返回队伍的核心位置，可能为空
	Cores(team types.Team) []types.Point
	Items(team types.Team, item types.Item) int
	AddItems(team types.Team, item types.Item, amount int)

	Paused() bool
	Wave() int
	SetWave(wave int)
	Enemies() int
	Spawning() bool
	SetWaveTimer(enabled bool)
	RunWave()
}

// Element 屏幕上可见的 UI 元素
type Element interface {
	// Bounds 屏幕坐标下的边界
	Bounds() image.Rectangle
	// Checked 元素是否处于选中/切换状态
	Checked() bool
}

// Overlay UI 覆盖层查询接口
// 由 pkg/ui.Overlay 实现；无界面运行时可以为 nil
type Overlay interface {
	// FindVisible 按名称查找当前可见的元素
	FindVisible(name string) (Element, bool)
	// HasDialog 当前是否有模态对话框遮挡
	HasDialog() bool
	// Outline 在本帧高亮指定区域
	Outline(bounds image.Rectangle)
}

// Settings 持久化设置接口
// 由 pkg/game.SettingsManager 实现
type Settings interface {
	Put(key string, value bool)
	Save() error
}

// Bundle 本地化文本查询接口
// 由 pkg/game.Bundle 实现
type Bundle interface {
	Has(key string) bool
	Get(key string) (string, bool)
}

// Env 构造引擎所需的外部协作者
type Env struct {
	World    World
	Overlay  Overlay  // 可为 nil
	Settings Settings // 可为 nil，此时完成标记不会持久化
	Mobile   bool
}

// Context 传给阶段函数的会话上下文
// 由引擎持有，阶段定义本身不保存任何会话状态
type Context struct {
	World    World
	Overlay  Overlay
	Settings Settings
	Mobile   bool

	engine *Engine
}

// Event 当前阶段开始后是否发生过该事件
func (c *Context) Event(tag EventTag) bool {
	return c.engine.EventOccurred(tag)
}

// Placed 当前阶段开始后放置的方块数量
func (c *Context) Placed(block types.Block) int {
	return c.engine.PlacedCount(block)
}

// PlacedAtLeast 当前阶段开始后是否至少放置了 n 个方块
func (c *Context) PlacedAtLeast(block types.Block, n int) bool {
	return c.engine.PlacedAtLeast(block, n)
}

// FirstCore 返回玩家队伍的第一个核心
// 队伍还没有核心时返回 false
func (c *Context) FirstCore() (types.Point, bool) {
	cores := c.World.Cores(types.DefaultTeam)
	if len(cores) == 0 {
		return types.Point{}, false
	}
	return cores[0], true
}

// Item 玩家核心中某物品的数量，没有核心时为 0
func (c *Context) Item(item types.Item) int {
	if _, ok := c.FirstCore(); !ok {
		return 0
	}
	return c.World.Items(types.DefaultTeam, item)
}

// Toggled 指定元素是否可见且处于选中状态
func (c *Context) Toggled(name string) bool {
	if c.Overlay == nil {
		return false
	}
	el, ok := c.Overlay.FindVisible(name)
	return ok && el.Checked()
}

// Outline 高亮指定元素
// 元素不可见或已处于选中状态时不高亮
func (c *Context) Outline(name string) {
	if c.Overlay == nil {
		return
	}
	el, ok := c.Overlay.FindVisible(name)
	if !ok || el.Checked() {
		return
	}
	c.Overlay.Outline(el.Bounds())
}
