package components

import (
	"testing"

	"github.com/decker502/factorytutor/pkg/types"
)

// TestInventoryComponent_Get 测试未初始化的库存返回 0
func TestInventoryComponent_Get(t *testing.T) {
	var inv InventoryComponent
	if got := inv.Get(types.ItemCopper); got != 0 {
		t.Errorf("Get on empty inventory = %d, want 0", got)
	}
}

// TestInventoryComponent_Add 测试增减物品与下限
func TestInventoryComponent_Add(t *testing.T) {
	var inv InventoryComponent
	inv.Add(types.ItemCopper, 10)
	inv.Add(types.ItemCopper, 5)
	if got := inv.Get(types.ItemCopper); got != 15 {
		t.Errorf("copper = %d, want 15", got)
	}

	inv.Add(types.ItemCopper, -100)
	if got := inv.Get(types.ItemCopper); got != 0 {
		t.Errorf("copper after over-withdraw = %d, want 0", got)
	}
}
