package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func reset() {
	assetsFS, dataFS, initialized = nil, nil, false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{}, fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestOpenNotInitialized 测试未初始化时调用 Open / ReadFile
func TestOpenNotInitialized(t *testing.T) {
	reset()

	if _, err := Open("assets/bundles/bundle.properties"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() before Init: got %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/tutorial.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() before Init: got %v, want ErrNotInitialized", err)
	}
}

// TestReadFileRoutesByPrefix 测试按路径前缀选择文件系统
func TestReadFileRoutesByPrefix(t *testing.T) {
	reset()
	defer reset()

	Init(
		fstest.MapFS{"assets/bundles/bundle.properties": {Data: []byte("a = b")}},
		fstest.MapFS{"data/tutorial.yaml": {Data: []byte("stages: {}")}},
	)

	data, err := ReadFile("./assets/bundles/bundle.properties")
	if err != nil {
		t.Fatalf("ReadFile(assets) error: %v", err)
	}
	if string(data) != "a = b" {
		t.Errorf("ReadFile(assets) = %q", data)
	}

	if !Exists("data/tutorial.yaml") {
		t.Error("Expected data/tutorial.yaml to exist")
	}
	if Exists("assets/missing.png") {
		t.Error("Expected assets/missing.png to be missing")
	}
	if _, err := ReadFile("other/file.txt"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}
