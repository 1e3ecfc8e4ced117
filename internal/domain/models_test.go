package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(texts ...string) *TextBlock {
	b := &TextBlock{}
	for _, t := range texts {
		b.Runs = append(b.Runs, &RunSpan{Text: t})
	}
	return b
}

func TestTextBlock_Text(t *testing.T) {
	assert.Equal(t, "", block().Text())
	assert.Equal(t, "北京欢迎你", block("北", "京欢", "迎你").Text())
}

func TestTextBlock_ApplyUnchanged(t *testing.T) {
	b := block("北", "京")
	changed := b.Apply(func(s string) string { return s })

	assert.False(t, changed)
	// 未变化时片段原样保留
	assert.Equal(t, "北", b.Runs[0].Text)
	assert.Equal(t, "京", b.Runs[1].Text)
}

func TestTextBlock_ApplyConsolidatesIntoFirstRun(t *testing.T) {
	b := block("北", "京欢", "迎你")
	changed := b.Apply(func(s string) string {
		return strings.ReplaceAll(s, "北京", "[MASK_0A1B2C3D]")
	})

	require.True(t, changed)
	assert.Equal(t, "[MASK_0A1B2C3D]欢迎你", b.Runs[0].Text)
	assert.Equal(t, "", b.Runs[1].Text)
	assert.Equal(t, "", b.Runs[2].Text)
	// 写回后拼接结果与变换结果一致
	assert.Equal(t, "[MASK_0A1B2C3D]欢迎你", b.Text())
}

func TestTextBlock_ApplyFallbackAppendsRun(t *testing.T) {
	// 没有片段可承载结果时，兜底追加一个新片段
	b := block()
	changed := b.Apply(func(string) string { return "内容" })

	require.True(t, changed)
	require.Len(t, b.Runs, 1)
	assert.Equal(t, "内容", b.Text())
}
