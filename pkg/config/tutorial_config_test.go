package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/factorytutor/pkg/embedded"
)

// TestDefaultTutorialConfig 测试默认值
func TestDefaultTutorialConfig(t *testing.T) {
	cfg := DefaultTutorialConfig()

	assert.Equal(t, 18, cfg.Stages.MineCopper)
	assert.Equal(t, 2, cfg.Stages.ConveyorTarget)
	assert.Equal(t, 3, cfg.Stages.BlocksToBreak)
	assert.Equal(t, -6, cfg.Stages.BlockOffset)
	assert.Equal(t, 10, cfg.Stages.WithdrawAmount)
	assert.Equal(t, 2, cfg.Stages.WaveTarget)
	assert.Equal(t, 5, cfg.Stages.LaunchWave)
	assert.Equal(t, 25, cfg.World.CoreX)
	assert.Equal(t, 25, cfg.World.CoreY)
	require.NoError(t, validateTutorialConfig(cfg))
}

// TestParseTutorialConfig_PartialOverride 测试部分字段覆盖
func TestParseTutorialConfig_PartialOverride(t *testing.T) {
	data := []byte(`
stages:
  mineCopper: 30
world:
  width: 40
  height: 30
`)
	cfg, err := ParseTutorialConfig(data)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Stages.MineCopper)
	assert.Equal(t, 3, cfg.Stages.BlocksToBreak, "unset fields keep defaults")
	assert.Equal(t, 20, cfg.World.CoreX, "core defaults to map center")
	assert.Equal(t, 15, cfg.World.CoreY)
}

// TestParseTutorialConfig_Invalid 测试非法配置被拒绝
func TestParseTutorialConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "stages: [1, 2"},
		{"negative copper", "stages:\n  mineCopper: -1\n"},
		{"launch before target", "stages:\n  waveTarget: 6\n  launchWave: 5\n"},
		{"core outside map", "world:\n  width: 10\n  height: 10\n  coreX: 20\n"},
		{"breaking tiles outside map", "world:\n  width: 10\n  height: 10\n  coreX: 3\n  coreY: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTutorialConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

// TestLoadTutorialConfig 测试从文件加载
func TestLoadTutorialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutorial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stages:\n  withdrawAmount: 25\n"), 0644))

	cfg, err := LoadTutorialConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Stages.WithdrawAmount)

	_, err = LoadTutorialConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestLoadEmbeddedTutorialConfig 测试从嵌入资源加载
func TestLoadEmbeddedTutorialConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{}, fstest.MapFS{
		"data/tutorial.yaml": {Data: []byte("stages:\n  launchWave: 7\n")},
		"data/broken.yaml":   {Data: []byte("stages:\n  mineCopper: -4\n")},
	})

	cfg, err := LoadEmbeddedTutorialConfig("data/tutorial.yaml")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Stages.LaunchWave)
	assert.Equal(t, 18, cfg.Stages.MineCopper)

	_, err = LoadEmbeddedTutorialConfig("data/broken.yaml")
	assert.Error(t, err)

	_, err = LoadEmbeddedTutorialConfig("data/missing.yaml")
	assert.Error(t, err)
}
