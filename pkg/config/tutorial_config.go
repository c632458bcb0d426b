package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/factorytutor/pkg/embedded"
)

// TutorialConfig 教学流程配置数据结构
// 定义教学各阶段使用的阈值、偏移量以及世界模拟参数
type TutorialConfig struct {
	Stages StageThresholds `yaml:"stages"` // 各阶段的判定阈值
	World  WorldConfig     `yaml:"world"`  // 教学地图与出怪参数
}

// StageThresholds 教学阶段判定参数
type StageThresholds struct {
	MineCopper     int `yaml:"mineCopper"`     // intro 阶段需要采集的铜数量，默认 18
	ConveyorTarget int `yaml:"conveyorTarget"` // conveyor 阶段需要放置的传送带数量，默认 2
	BlocksToBreak  int `yaml:"blocksToBreak"`  // breaking 阶段损坏的方块数量，默认 3
	BlockOffset    int `yaml:"blockOffset"`    // 损坏方块相对核心的横向偏移，默认 -6
	WithdrawAmount int `yaml:"withdrawAmount"` // withdraw 阶段放入核心的铜数量，默认 10
	WaveTarget     int `yaml:"waveTarget"`     // waves 阶段需要超过的波次，默认 2
	LaunchWave     int `yaml:"launchWave"`     // launch 阶段设置的波次，默认 5
}

// WorldConfig 世界模拟参数
type WorldConfig struct {
	Width         int     `yaml:"width"`         // 地图宽度（格），默认 50
	Height        int     `yaml:"height"`        // 地图高度（格），默认 50
	CoreX         int     `yaml:"coreX"`         // 核心 X 坐标，默认 25
	CoreY         int     `yaml:"coreY"`         // 核心 Y 坐标，默认 25
	WaveSpacing   float64 `yaml:"waveSpacing"`   // 自动出怪间隔（秒），默认 30
	SpawnInterval float64 `yaml:"spawnInterval"` // 同一波内敌人生成间隔（秒），默认 0.5
	EnemyLifetime float64 `yaml:"enemyLifetime"` // 敌人存活时间（秒），默认 3
	EnemiesBase   int     `yaml:"enemiesBase"`   // 每波基础敌人数量，默认 1
}

// DefaultTutorialConfig 返回全部使用默认值的配置
func DefaultTutorialConfig() *TutorialConfig {
	cfg := &TutorialConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadTutorialConfig 从YAML文件加载教学配置
// 参数：
//
//	filepath - 配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*TutorialConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadTutorialConfig(filepath string) (*TutorialConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tutorial config file %s: %w", filepath, err)
	}

	cfg, err := ParseTutorialConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tutorial config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// LoadEmbeddedTutorialConfig 从嵌入资源加载教学配置
// 路径必须以 "data/" 开头，调用前需要先初始化 embedded 包
func LoadEmbeddedTutorialConfig(path string) (*TutorialConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tutorial config %s: %w", path, err)
	}

	cfg, err := ParseTutorialConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tutorial config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseTutorialConfig 解析 YAML 数据为教学配置
// 缺失的字段使用默认值，解析后执行合法性校验
func ParseTutorialConfig(data []byte) (*TutorialConfig, error) {
	var cfg TutorialConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tutorial config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateTutorialConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为缺失的可选字段设置默认值
// BlockOffset 为 0 时视为未配置（偏移 0 会覆盖核心本身）
func applyDefaults(cfg *TutorialConfig) {
	s := &cfg.Stages
	if s.MineCopper == 0 {
		s.MineCopper = 18
	}
	if s.ConveyorTarget == 0 {
		s.ConveyorTarget = 2
	}
	if s.BlocksToBreak == 0 {
		s.BlocksToBreak = 3
	}
	if s.BlockOffset == 0 {
		s.BlockOffset = -6
	}
	if s.WithdrawAmount == 0 {
		s.WithdrawAmount = 10
	}
	if s.WaveTarget == 0 {
		s.WaveTarget = 2
	}
	if s.LaunchWave == 0 {
		s.LaunchWave = 5
	}

	w := &cfg.World
	if w.Width == 0 {
		w.Width = 50
	}
	if w.Height == 0 {
		w.Height = 50
	}
	if w.CoreX == 0 {
		w.CoreX = w.Width / 2
	}
	if w.CoreY == 0 {
		w.CoreY = w.Height / 2
	}
	if w.WaveSpacing == 0 {
		w.WaveSpacing = 30
	}
	if w.SpawnInterval == 0 {
		w.SpawnInterval = 0.5
	}
	if w.EnemyLifetime == 0 {
		w.EnemyLifetime = 3
	}
	if w.EnemiesBase == 0 {
		w.EnemiesBase = 1
	}
}

// validateTutorialConfig 验证配置的完整性和合法性
func validateTutorialConfig(cfg *TutorialConfig) error {
	s := cfg.Stages
	if s.MineCopper < 0 {
		return fmt.Errorf("stages.mineCopper cannot be negative, got %d", s.MineCopper)
	}
	if s.ConveyorTarget < 0 {
		return fmt.Errorf("stages.conveyorTarget cannot be negative, got %d", s.ConveyorTarget)
	}
	if s.BlocksToBreak < 0 {
		return fmt.Errorf("stages.blocksToBreak cannot be negative, got %d", s.BlocksToBreak)
	}
	if s.WithdrawAmount < 0 {
		return fmt.Errorf("stages.withdrawAmount cannot be negative, got %d", s.WithdrawAmount)
	}
	if s.LaunchWave <= s.WaveTarget {
		return fmt.Errorf("stages.launchWave (%d) must be greater than stages.waveTarget (%d)", s.LaunchWave, s.WaveTarget)
	}

	w := cfg.World
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.CoreX < 0 || w.CoreX >= w.Width || w.CoreY < 0 || w.CoreY >= w.Height {
		return fmt.Errorf("world core (%d, %d) is outside the %dx%d map", w.CoreX, w.CoreY, w.Width, w.Height)
	}
	// 被损坏的方块必须全部落在地图内
	x := w.CoreX + s.BlockOffset
	if x < 0 || x >= w.Width || w.CoreY+s.BlocksToBreak > w.Height {
		return fmt.Errorf("breaking tiles starting at (%d, %d) fall outside the %dx%d map", x, w.CoreY, w.Width, w.Height)
	}
	if w.SpawnInterval < 0 || w.EnemyLifetime < 0 || w.WaveSpacing < 0 {
		return fmt.Errorf("world timings cannot be negative")
	}
	return nil
}
