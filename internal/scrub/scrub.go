// Package scrub 实现文本变换引擎：按映射把敏感词替换为掩码标记（加密），
// 或把掩码标记还原为敏感词（解密）。
package scrub

import (
	"regexp"
	"sort"
	"strings"

	"github.com/allanpk716/doc-scrubber/internal/domain"
	"github.com/allanpk716/doc-scrubber/internal/mapping"
	"github.com/allanpk716/doc-scrubber/internal/token"
)

// Engine 基于映射执行加密/解密变换。
// 两个方向对输入字符串都是纯函数，不产生错误路径：
// 无法处理的片段按原样保留，而不是失败。
type Engine struct {
	store *mapping.Store
}

// NewEngine 创建基于给定映射的变换引擎
func NewEngine(store *mapping.Store) *Engine {
	return &Engine{store: store}
}

// Mask 把文本中所有已映射敏感词替换为对应标记。
//
// 先用标记词法把文本切成「标记段」和「普通段」，只在普通段内做
// 一次性替换，再按原顺序交错拼回。这样已有标记绝不会被二次替换，
// 即使敏感词恰好出现在某个标记的十六进制体内也不受影响。
// 普通段内的替换按词长降序构造备选分支，保证长词优先于其子串短词。
// 映射为空时恒等返回。
func (e *Engine) Mask(text string) string {
	words := e.store.Words()
	if len(words) == 0 {
		return text
	}

	// 按长度降序，避免短词抢占长词的匹配位置
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	wordPat := regexp.MustCompile(strings.Join(escaped, "|"))

	parts := token.Pattern.Split(text, -1)
	toks := token.Pattern.FindAllString(text, -1)

	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteString(toks[i-1])
		}
		b.WriteString(wordPat.ReplaceAllStringFunc(part, func(m string) string {
			if t, ok := e.store.Token(m); ok {
				return t
			}
			return m
		}))
	}
	return b.String()
}

// Unmask 把文本中所有已知标记还原为敏感词。
// 未知标记（例如来自其它会话）原样保留，不报错。
func (e *Engine) Unmask(text string) string {
	return token.Pattern.ReplaceAllStringFunc(text, func(m string) string {
		if w, ok := e.store.Word(m); ok {
			return w
		}
		return m
	})
}

// Func 返回与模式对应的变换函数
func (e *Engine) Func(mode domain.Mode) domain.TransformFunc {
	if mode == domain.ModeEncrypt {
		return e.Mask
	}
	return e.Unmask
}
