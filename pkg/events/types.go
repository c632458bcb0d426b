package events

import "github.com/decker502/factorytutor/pkg/types"

// BlockBuildEndEvent 方块建造或拆除完成
type BlockBuildEndEvent struct {
	Tile     types.Point
	Block    types.Block // 建造完成时为新方块；拆除时为被拆除的方块
	Team     types.Team
	Breaking bool // true 表示这是一次拆除
}

// LineConfirmEvent 玩家确认了一条连线放置（如拖拽放置传送带）
type LineConfirmEvent struct{}

// TurretAmmoDeliverEvent 炮塔收到弹药
type TurretAmmoDeliverEvent struct {
	Tile types.Point
	Item types.Item
}

// CoreItemDeliverEvent 物品被运送进核心
type CoreItemDeliverEvent struct {
	Team   types.Team
	Item   types.Item
	Amount int
}

// BlockInfoEvent 玩家打开了方块信息面板
type BlockInfoEvent struct {
	Block types.Block
}

// DepositEvent 玩家向方块存入物品
type DepositEvent struct {
	Tile   types.Point
	Item   types.Item
	Amount int
}

// WithdrawEvent 玩家从方块取出物品
type WithdrawEvent struct {
	Tile   types.Point
	Item   types.Item
	Amount int
}
