package components

import "github.com/decker502/factorytutor/pkg/types"

// CoreComponent 核心建筑组件
// 每个队伍可以拥有零个或多个核心；教学只使用第一个核心
type CoreComponent struct {
	// Team 所属队伍
	Team types.Team

	// Tile 核心所在格子（中心格）
	Tile types.Point
}

// InventoryComponent 物品存储组件
// 挂载在核心实体上，记录核心中储存的物品数量
type InventoryComponent struct {
	// Items 物品 -> 数量
	Items map[types.Item]int
}

// Get 返回某种物品的数量，不存在时返回 0
func (c *InventoryComponent) Get(item types.Item) int {
	if c.Items == nil {
		return 0
	}
	return c.Items[item]
}

// Add 增加物品数量，结果不会小于 0
func (c *InventoryComponent) Add(item types.Item, amount int) {
	if c.Items == nil {
		c.Items = make(map[types.Item]int)
	}
	c.Items[item] += amount
	if c.Items[item] < 0 {
		c.Items[item] = 0
	}
}
