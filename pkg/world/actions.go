package world

import (
	"log"

	"github.com/decker502/factorytutor/pkg/events"
	"github.com/decker502/factorytutor/pkg/types"
)

// 本文件中的方法模拟玩家操作：修改世界状态后通过事件总线广播对应事件

// Build 建造方块并广播 BlockBuildEndEvent
// 返回 false 表示格子已被占用或越界
func (w *World) Build(x, y int, block types.Block, team types.Team) bool {
	if !w.inBounds(x, y) || w.Block(x, y).IsSolid() {
		return false
	}
	w.SetBlock(x, y, block, team)
	w.bus.Fire(events.BlockBuildEndEvent{
		Tile:  types.Point{X: x, Y: y},
		Block: block,
		Team:  team,
	})
	return true
}

// BuildLine 沿水平方向连续建造方块，完成后广播 LineConfirmEvent
// 返回实际建造的数量
func (w *World) BuildLine(x, y, length int, block types.Block, team types.Team) int {
	if length <= 0 {
		return 0
	}
	return w.BuildLineTo(types.Point{X: x, Y: y}, types.Point{X: x + length - 1, Y: y}, block, team)
}

// BuildLineTo 从 from 到 to 连续建造方块，完成后广播 LineConfirmEvent
// 两点不在同一行或列时沿位移较大的轴建造，另一轴取 from 的坐标
// 返回实际建造的数量
func (w *World) BuildLineTo(from, to types.Point, block types.Block, team types.Team) int {
	dx, dy := to.X-from.X, to.Y-from.Y
	step := types.Point{X: sign(dx)}
	n := abs(dx)
	if abs(dy) > abs(dx) {
		step = types.Point{Y: sign(dy)}
		n = abs(dy)
	}

	built := 0
	p := from
	for i := 0; i <= n; i++ {
		if w.Build(p.X, p.Y, block, team) {
			built++
		}
		p = p.Add(step.X, step.Y)
	}
	w.bus.Fire(events.LineConfirmEvent{})
	return built
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Deconstruct 拆除方块并广播 BlockBuildEndEvent（Breaking=true）
// 核心和空地无法拆除
func (w *World) Deconstruct(x, y int) bool {
	block := w.Block(x, y)
	if !block.IsSolid() || block == types.BlockCoreShard {
		return false
	}
	team := w.TeamAt(x, y)
	w.RemoveBlock(x, y)
	w.bus.Fire(events.BlockBuildEndEvent{
		Tile:     types.Point{X: x, Y: y},
		Block:    block,
		Team:     team,
		Breaking: true,
	})
	return true
}

// Repair 把格子上的方块替换为 replacement 并视为一次建造
// 用于把废料墙修复为正常方块
func (w *World) Repair(x, y int, replacement types.Block) bool {
	if !w.inBounds(x, y) {
		return false
	}
	team := w.TeamAt(x, y)
	w.RemoveBlock(x, y)
	return w.Build(x, y, replacement, team)
}

// Mine 玩家手动采矿：物品直接进入核心（不经过传送带，不广播事件）
func (w *World) Mine(team types.Team, item types.Item, amount int) {
	w.AddItems(team, item, amount)
}

// DeliverToCore 物品经传送带送入核心并广播 CoreItemDeliverEvent
func (w *World) DeliverToCore(team types.Team, item types.Item, amount int) {
	if len(w.Cores(team)) == 0 {
		log.Printf("[World] DeliverToCore: team %s has no core", team)
		return
	}
	w.AddItems(team, item, amount)
	w.bus.Fire(events.CoreItemDeliverEvent{Team: team, Item: item, Amount: amount})
}

// DeliverAmmo 向炮塔补充弹药并广播 TurretAmmoDeliverEvent
func (w *World) DeliverAmmo(x, y int, item types.Item) bool {
	if w.Block(x, y) != types.BlockDuo {
		return false
	}
	w.bus.Fire(events.TurretAmmoDeliverEvent{Tile: types.Point{X: x, Y: y}, Item: item})
	return true
}

// ShowBlockInfo 玩家打开方块信息面板
func (w *World) ShowBlockInfo(block types.Block) {
	w.bus.Fire(events.BlockInfoEvent{Block: block})
}

// Withdraw 从队伍核心取出物品并广播 WithdrawEvent
// 返回实际取出的数量
func (w *World) Withdraw(team types.Team, item types.Item, amount int) int {
	cores := w.Cores(team)
	if len(cores) == 0 {
		return 0
	}
	available := w.Items(team, item)
	if amount > available {
		amount = available
	}
	if amount <= 0 {
		return 0
	}
	w.AddItems(team, item, -amount)
	w.bus.Fire(events.WithdrawEvent{Tile: cores[0], Item: item, Amount: amount})
	return amount
}

// Deposit 向队伍核心存入物品并广播 DepositEvent
func (w *World) Deposit(team types.Team, item types.Item, amount int) {
	cores := w.Cores(team)
	if len(cores) == 0 || amount <= 0 {
		return
	}
	w.AddItems(team, item, amount)
	w.bus.Fire(events.DepositEvent{Tile: cores[0], Item: item, Amount: amount})
}
