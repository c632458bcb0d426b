package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.Flags == nil {
		t.Fatal("Flags should be initialized")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	sm.Put("playedtutorial", true)
	if !sm.GetBool("playedtutorial", false) {
		t.Error("GetBool after Put: got false, want true")
	}

	// 降级模式保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode error: %v", err)
	}
}

// TestSettingsGetBoolDefault 测试缺失标记返回默认值
func TestSettingsGetBoolDefault(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if sm.GetBool("missing", false) {
		t.Error("GetBool(missing, false): got true")
	}
	if !sm.GetBool("missing", true) {
		t.Error("GetBool(missing, true): got false")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	// 使用临时目录创建 gdata manager
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_tutorial_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.Put("playedtutorial", true)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	if !sm2.GetBool("playedtutorial", false) {
		t.Error("Loaded playedtutorial: got false, want true")
	}
	if !sm2.GetSettings().Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}
