// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Block 定义方块的类型
// 零值 BlockAir 表示空地
type Block int

const (
	// BlockAir 空地（没有建筑）
	BlockAir Block = iota
	// BlockCoreShard 核心
	BlockCoreShard
	// BlockMechanicalDrill 机械钻头
	BlockMechanicalDrill
	// BlockConveyor 传送带
	BlockConveyor
	// BlockDuo 双管炮塔
	BlockDuo
	// BlockScrapWall 废料墙（教学中被"损坏"的方块）
	BlockScrapWall
	// BlockCopperWall 铜墙
	BlockCopperWall
)

// String 返回方块类型的内部名称
// 与 UI 元素命名保持一致，如 "block-" + Block.String()
func (b Block) String() string {
	switch b {
	case BlockAir:
		return "air"
	case BlockCoreShard:
		return "core-shard"
	case BlockMechanicalDrill:
		return "mechanical-drill"
	case BlockConveyor:
		return "conveyor"
	case BlockDuo:
		return "duo"
	case BlockScrapWall:
		return "scrap-wall"
	case BlockCopperWall:
		return "copper-wall"
	default:
		return "unknown"
	}
}

// IsSolid 返回该方块是否占据格子
func (b Block) IsSolid() bool {
	return b != BlockAir
}

// Point 格子坐标
type Point struct {
	X, Y int
}

// Add 返回偏移后的坐标
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
