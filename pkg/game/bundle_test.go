package game

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/factorytutor/pkg/embedded"
)

// TestParseBundle 验证键值解析与换行转义
func TestParseBundle(t *testing.T) {
	content := `
# tutorial texts
tutorial.intro = Welcome.\nMine [accent]{0}/{1}[] copper.
tutorial.drill=Place a drill.
tutorial.drill.mobile = Tap to place a drill.
`
	b, err := ParseBundle(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseBundle() error: %v", err)
	}

	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}

	intro, ok := b.Get("tutorial.intro")
	if !ok {
		t.Fatal("tutorial.intro not found")
	}
	if intro != "Welcome.\nMine [accent]{0}/{1}[] copper." {
		t.Errorf("tutorial.intro = %q", intro)
	}

	if got := b.GetString("tutorial.drill"); got != "Place a drill." {
		t.Errorf("tutorial.drill = %q", got)
	}
	if !b.Has("tutorial.drill.mobile") {
		t.Error("expected tutorial.drill.mobile")
	}
}

// TestParseBundle_Malformed 验证格式错误的行被拒绝
func TestParseBundle_Malformed(t *testing.T) {
	tests := []string{
		"tutorial.intro Welcome",
		"= value without key",
	}
	for _, content := range tests {
		if _, err := ParseBundle(strings.NewReader(content)); err == nil {
			t.Errorf("ParseBundle(%q) expected error", content)
		}
	}
}

// TestBundle_GetStringMissing 验证缺失键的调试显示
func TestBundle_GetStringMissing(t *testing.T) {
	b, _ := ParseBundle(strings.NewReader(""))
	if got := b.GetString("tutorial.none"); got != "[tutorial.none]" {
		t.Errorf("GetString(missing) = %q, want [tutorial.none]", got)
	}
	if _, ok := b.Get("tutorial.none"); ok {
		t.Error("Get(missing) should report false")
	}
}

// TestNewBundle_FromEmbedded 验证从嵌入资源加载
func TestNewBundle_FromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"assets/bundles/bundle.properties": {Data: []byte("tutorial.deposit = Put it back.\n")},
	}, fstest.MapFS{})

	b, err := NewBundle("assets/bundles/bundle.properties")
	if err != nil {
		t.Fatalf("NewBundle() error: %v", err)
	}
	if got := b.GetString("tutorial.deposit"); got != "Put it back." {
		t.Errorf("tutorial.deposit = %q", got)
	}

	if _, err := NewBundle("assets/bundles/missing.properties"); err == nil {
		t.Error("expected error for missing bundle file")
	}
}
