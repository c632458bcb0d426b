package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// 每个字符宽 1 像素
func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

// TestWrapWords 测试按单词换行
func TestWrapWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"短文本不换行", "mine copper", 20, []string{"mine copper"}},
		{"按空格断行", "place a mechanical drill", 10, []string{"place a", "mechanical", "drill"}},
		{"长单词强制断行", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"长单词前有短词", "go abcdef", 4, []string{"go", "abcd", "ef"}},
		{"多余空白被折叠", "a    b", 2, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapWords(tt.input, tt.maxWidth, runeWidth)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapWords(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestWrapText_BitmapFace 使用 7x13 位图字体测试换行
func TestWrapText_BitmapFace(t *testing.T) {
	face := text.NewGoXFace(basicfont.Face7x13)

	lines := WrapText("hello world", face, 50)
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "world" {
		t.Errorf("WrapText = %q, want [hello world]", lines)
	}

	if lines := WrapText("", face, 50); len(lines) != 1 || lines[0] != "" {
		t.Errorf("empty text should return one empty line, got %q", lines)
	}
	if lines := WrapText("hello", nil, 50); len(lines) != 1 {
		t.Errorf("nil face should return the text unchanged, got %q", lines)
	}
}
