package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slideXML(text string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld><p:spTree><p:sp><p:txBody><a:bodyPr/>` +
		`<a:p><a:r><a:rPr lang="zh-CN"/><a:t>` + text + `</a:t></a:r></a:p>` +
		`</p:txBody></p:sp></p:spTree></p:cSld></p:sld>`
}

func TestPptxAdapter_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pptx")
	presentation := `<p:presentation>母版引用等原样保留</p:presentation>`
	writeZipFile(t, src, map[string]string{
		"[Content_Types].xml":    testContentTypes,
		"ppt/presentation.xml":   presentation,
		"ppt/slides/slide10.xml": slideXML("第十页没有敏感内容"),
		"ppt/slides/slide1.xml":  slideXML("绝密计划书"),
		"ppt/slides/slide2.xml":  slideXML("第二页也有绝密字样"),
		"ppt/notesSlides/x.xml":  `<x/>`,
	})

	a, err := New(src)
	require.NoError(t, err)

	blocks, err := a.Extract()
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	// 幻灯片按编号排序，不受压缩包条目顺序影响
	assert.Equal(t, "绝密计划书", blocks[0].Text())
	assert.Equal(t, "第二页也有绝密字样", blocks[1].Text())
	assert.Equal(t, "第十页没有敏感内容", blocks[2].Text())

	for _, b := range blocks {
		b.Apply(func(s string) string {
			return maskWord(s, "绝密", "[MASK_0A1B2C3D]")
		})
	}

	dst := filepath.Join(dir, "out.pptx")
	require.NoError(t, a.Commit(dst))

	slide1 := readZipEntry(t, dst, "ppt/slides/slide1.xml")
	assert.NotContains(t, slide1, "绝密")
	assert.Contains(t, slide1, `<a:t>[MASK_0A1B2C3D]计划书</a:t>`)
	assert.Contains(t, slide1, `<a:rPr lang="zh-CN"/>`)

	slide2 := readZipEntry(t, dst, "ppt/slides/slide2.xml")
	assert.Contains(t, slide2, "[MASK_0A1B2C3D]")

	// 未变化的幻灯片与非幻灯片部件原样复制
	assert.Equal(t, slideXML("第十页没有敏感内容"), readZipEntry(t, dst, "ppt/slides/slide10.xml"))
	assert.Equal(t, presentation, readZipEntry(t, dst, "ppt/presentation.xml"))
	assert.Equal(t, `<x/>`, readZipEntry(t, dst, "ppt/notesSlides/x.xml"))
}
