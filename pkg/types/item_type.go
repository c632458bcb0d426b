package types

// Item 定义物品的类型
type Item int

const (
	// ItemUnknown 未知物品
	ItemUnknown Item = iota
	// ItemCopper 铜
	ItemCopper
	// ItemLead 铅
	ItemLead
	// ItemScrap 废料
	ItemScrap
)

// String 返回物品类型的内部名称
func (i Item) String() string {
	switch i {
	case ItemCopper:
		return "copper"
	case ItemLead:
		return "lead"
	case ItemScrap:
		return "scrap"
	default:
		return "unknown"
	}
}

// Team 队伍标识
type Team int

const (
	// TeamDerelict 无主方块
	TeamDerelict Team = iota
	// TeamSharded 玩家默认队伍
	TeamSharded
	// TeamCrux 敌方队伍
	TeamCrux
)

// DefaultTeam 玩家所在的默认队伍
const DefaultTeam = TeamSharded

// String 返回队伍名称
func (t Team) String() string {
	switch t {
	case TeamSharded:
		return "sharded"
	case TeamCrux:
		return "crux"
	default:
		return "derelict"
	}
}
