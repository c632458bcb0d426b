package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/decker502/factorytutor/pkg/embedded"
)

// Bundle 本地化文本包
// 从 .properties 风格的文件加载，支持通过键快速查询
type Bundle struct {
	strings map[string]string // 键 -> 文本映射
}

// NewBundle 从嵌入资源加载本地化文本包
// 参数：
//   - filePath: 文本包路径（通常为 "assets/bundles/bundle.properties"）
//
// 返回：
//   - *Bundle: 文本包实例
//   - error: 如果文件读取或解析失败
func NewBundle(filePath string) (*Bundle, error) {
	file, err := embedded.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle file %s: %w", filePath, err)
	}
	defer file.Close()

	b, err := ParseBundle(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundle %s: %w", filePath, err)
	}
	return b, nil
}

// ParseBundle 解析文本包内容
//
// 文件格式：
//
//	# 注释
//	key = 文本内容
//
// 文本中的 "\n" 转义为换行，用于把一条文本拆成多句。
// 缺少 "=" 的非空行视为格式错误。
func ParseBundle(r io.Reader) (*Bundle, error) {
	b := &Bundle{
		strings: make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// 跳过空行和注释
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '=' in %q", lineNo, line)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}
		b.strings[key] = unescape(strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	return b, nil
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`).Replace(s)
}

// Has 返回文本包是否包含该键
func (b *Bundle) Has(key string) bool {
	_, ok := b.strings[key]
	return ok
}

// Get 根据键获取文本
// 返回：
//   - string: 对应的文本内容
//   - bool: 键是否存在
func (b *Bundle) Get(key string) (string, bool) {
	text, ok := b.strings[key]
	return text, ok
}

// GetString 根据键获取文本，键不存在时返回 "[key]"（用于调试显示）
func (b *Bundle) GetString(key string) string {
	if text, ok := b.strings[key]; ok {
		return text
	}
	return "[" + key + "]"
}

// Len 返回文本条目数量
func (b *Bundle) Len() int {
	return len(b.strings)
}
