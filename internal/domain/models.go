package domain

// Mode 处理模式
type Mode string

const (
	// ModeEncrypt 加密模式（敏感词 → 掩码标记）
	ModeEncrypt Mode = "enc"
	// ModeDecrypt 解密模式（掩码标记 → 敏感词）
	ModeDecrypt Mode = "dec"
)

// TransformFunc 文本变换函数，加密和解密共用同一签名
type TransformFunc func(text string) string

// RunSpan 表示文档中一段独立样式的文本片段。
// 核心引擎只改写其文本内容，不触碰任何样式属性。
type RunSpan struct {
	Text string
}

// TextBlock 是变换引擎处理的最小逻辑文本单元：
// 一个段落、一个单元格，或纯文本文件的全部内容。
// 它在一次变换调用期间独占自己的 RunSpan 列表。
type TextBlock struct {
	Runs []*RunSpan
}

// Text 按顺序拼接所有片段得到完整逻辑文本
func (b *TextBlock) Text() string {
	if len(b.Runs) == 1 {
		return b.Runs[0].Text
	}
	var full string
	for _, r := range b.Runs {
		full += r.Text
	}
	return full
}

// Apply 对文本块应用变换函数并把结果写回片段列表。
// 文本未变化时不做任何改写；发生替换时完整结果写入首个片段、
// 其余片段清空（替换后的段落样式按设计坍缩为首个片段的样式）。
// 写回后校验拼接结果，不一致时清空全部片段并追加一个新片段兜底。
// 返回文本是否发生了变化。
func (b *TextBlock) Apply(fn TransformFunc) bool {
	full := b.Text()
	out := fn(full)
	if out == full {
		return false
	}
	for i, r := range b.Runs {
		if i == 0 {
			r.Text = out
		} else {
			r.Text = ""
		}
	}
	if b.Text() != out {
		for _, r := range b.Runs {
			r.Text = ""
		}
		b.Runs = append(b.Runs, &RunSpan{Text: out})
	}
	return true
}

// DocumentAdapter 单一格式的文档适配器。
// 用法固定为 Extract → 逐块 Apply → Commit。
type DocumentAdapter interface {
	// Extract 按文档顺序提取全部待处理文本块
	Extract() ([]*TextBlock, error)
	// Commit 将文本块的当前内容写回文档结构并保存到目标路径
	Commit(dst string) error
}

// FileResult 批处理中单个文件的处理结果。
// 失败时 Output、Mapping 为空且 Err 非 nil；单个文件失败不影响其它文件。
type FileResult struct {
	Input   string
	Output  string
	Err     error
	Mapping string
}
