package tutorial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoStages 阶段列表为空
	ErrNoStages = errors.New("tutorial has no stages")
	// ErrNoPredicate 阶段缺少完成条件
	ErrNoPredicate = errors.New("stage has no completion predicate")
	// ErrMissingText 文本包中没有阶段文本
	ErrMissingText = errors.New("stage text missing from bundle")
	// ErrNoSentences 阶段文本过滤空行后没有任何句子
	ErrNoSentences = errors.New("stage text has no sentences")
)

// StageDef 本地化之前的阶段描述
// 除 Name 和 Done 外所有字段均可为空
type StageDef struct {
	// Name 阶段名称，同时决定文本键 "tutorial.<Name>"
	Name string

	// Format 文本模板函数，仅当句子包含 "{" 时调用
	Format func(line string, c *Context) string

	// Done 完成条件：必须无副作用，且不能 panic
	Done func(c *Context) bool

	// Begin 阶段激活时调用一次
	Begin func(c *Context)

	// Update 阶段激活且未满足推进条件时每帧调用
	Update func(c *Context)

	// Draw 阶段激活且没有模态对话框时每帧调用
	Draw func(c *Context)
}

// Stage 一个教学阶段
// 由 BuildStages 创建后不可修改，可以在多个会话之间共享
type Stage struct {
	ordinal   int
	name      string
	sentences []string

	format func(string, *Context) string
	done   func(*Context) bool
	begin  func(*Context)
	update func(*Context)
	draw   func(*Context)
}

// Ordinal 阶段序号（从0开始）
func (s *Stage) Ordinal() int { return s.ordinal }

// Name 阶段名称
func (s *Stage) Name() string { return s.name }

// SentenceCount 句子数量，至少为 1
func (s *Stage) SentenceCount() int { return len(s.sentences) }

// Sentences 返回原始句子（未经模板替换）的副本
func (s *Stage) Sentences() []string {
	out := make([]string, len(s.sentences))
	copy(out, s.sentences)
	return out
}

// Text 返回第 sentence 句的显示文本
// 句子包含占位符 "{" 时经过模板函数处理，否则原样返回
func (s *Stage) Text(c *Context, sentence int) string {
	line := s.sentences[sentence]
	if strings.Contains(line, "{") {
		return s.format(line, c)
	}
	return line
}

// Done 求值完成条件
func (s *Stage) Done(c *Context) bool { return s.done(c) }

// Begin 调用激活钩子
func (s *Stage) Begin(c *Context) {
	if s.begin != nil {
		s.begin(c)
	}
}

// Update 调用每帧钩子
func (s *Stage) Update(c *Context) {
	if s.update != nil {
		s.update(c)
	}
}

// Draw 调用绘制钩子
func (s *Stage) Draw(c *Context) {
	if s.draw != nil {
		s.draw(c)
	}
}

// BuildStages 在本地化文本可用后构建阶段列表
//
// 参数：
//   - defs: 按顺序排列的阶段描述
//   - bundle: 本地化文本包
//   - mobile: 为 true 时优先使用 "tutorial.<name>.mobile" 文本
//
// 返回：
//   - []*Stage: 不可变的阶段列表
//   - error: 任一阶段缺少完成条件或文本时返回，加载应当中止
func BuildStages(defs []StageDef, bundle Bundle, mobile bool) ([]*Stage, error) {
	if len(defs) == 0 {
		return nil, ErrNoStages
	}

	seen := make(map[string]bool, len(defs))
	stages := make([]*Stage, 0, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("stage %d: name is required", i)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("stage %d: duplicate name %q", i, def.Name)
		}
		seen[def.Name] = true

		if def.Done == nil {
			return nil, fmt.Errorf("stage %q: %w", def.Name, ErrNoPredicate)
		}

		key := textKey(def.Name, bundle, mobile)
		raw, ok := bundle.Get(key)
		if !ok {
			return nil, fmt.Errorf("stage %q (key %s): %w", def.Name, key, ErrMissingText)
		}
		sentences := splitSentences(raw)
		if len(sentences) == 0 {
			return nil, fmt.Errorf("stage %q (key %s): %w", def.Name, key, ErrNoSentences)
		}

		format := def.Format
		if format == nil {
			format = func(line string, _ *Context) string { return line }
		}

		stages = append(stages, &Stage{
			ordinal:   i,
			name:      def.Name,
			sentences: sentences,
			format:    format,
			done:      def.Done,
			begin:     def.Begin,
			update:    def.Update,
			draw:      def.Draw,
		})
	}
	return stages, nil
}

func textKey(name string, bundle Bundle, mobile bool) string {
	key := "tutorial." + name
	if mobile && bundle.Has(key+".mobile") {
		return key + ".mobile"
	}
	return key
}

func splitSentences(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// FormatLine 把 "{0}"、"{1}" 等占位符替换为对应参数
// 没有对应参数的占位符保持原样
func FormatLine(line string, args ...any) string {
	if len(args) == 0 {
		return line
	}
	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(line)
}

// StaticBundle 基于 map 的文本包，用于测试和无界面工具
type StaticBundle map[string]string

// Has 实现 Bundle
func (b StaticBundle) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// Get 实现 Bundle
func (b StaticBundle) Get(key string) (string, bool) {
	v, ok := b[key]
	return v, ok
}
