package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return wrapWords(textStr, maxWidth, func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	})
}

// wrapWords 按单词换行，measure 返回字符串的像素宽度
func wrapWords(textStr string, maxWidth float64, measure func(string) float64) []string {
	if measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word) <= maxWidth {
			current = word
			continue
		}

		// 单词过长，按字符切分
		for len(word) > 0 {
			r, size := utf8.DecodeRuneInString(word)
			char := string(r)
			if current != "" && measure(current+char) > maxWidth {
				lines = append(lines, current)
				current = ""
			}
			current += char
			word = word[size:]
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
