package adapter

// OOXML 文档把一段连续文字拆散存放在多个独立样式的文本 run 里，
// 敏感词可能横跨 run 边界。这里在 XML 层面按段落聚合 run 文本，
// 组成 TextBlock 交给变换引擎，再把改写结果分发回原有 run 结构。
// docx 与 pptx 共用同一套切分/重建逻辑，只是标签命名空间不同。

import (
	"regexp"
	"strings"

	"github.com/allanpk716/doc-scrubber/internal/domain"
)

var (
	// docx 正文段落与文本 run（w 命名空间）。
	// 段落开标签里排除 '/'，自闭合的空段落 <w:p …/> 不会被当作段落匹配
	docxParaPat = regexp.MustCompile(`(?s)<w:p(?:\s[^/>]*)?>.*?</w:p>`)
	docxRunPat  = regexp.MustCompile(`(?s)<w:t(?:\s[^>]*)?/>|<w:t(?:\s[^>]*)?>(.*?)</w:t>`)

	// pptx 幻灯片段落与文本 run（DrawingML 的 a 命名空间），
	// 文本框和表格单元格里的段落都是 <a:p>
	pptxParaPat = regexp.MustCompile(`(?s)<a:p(?:\s[^/>]*)?>.*?</a:p>`)
	pptxRunPat  = regexp.MustCompile(`(?s)<a:t(?:\s[^>]*)?/>|<a:t(?:\s[^>]*)?>(.*?)</a:t>`)
)

var (
	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	xmlUnescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
)

// runSlot 段落片段内一个文本 run 元素的位置
type runSlot struct {
	elemStart, elemEnd int // 整个 <w:t>…</w:t> 元素
	textStart, textEnd int // 元素内文本，自闭合元素为 -1
}

// xmlBlock 一个段落级 XML 片段及其对应的文本块
type xmlBlock struct {
	part       int // 所属 XML 部件（pptx 有多张幻灯片，docx 恒为 0）
	start, end int // 段落片段在部件内容中的位置
	block      *domain.TextBlock
	slots      []runSlot
	orig       []string // 提取时各 run 的原始文本，重建时据此跳过未变化的 run
}

// extractXMLBlocks 在一个 XML 部件内容中切出全部段落文本块
func extractXMLBlocks(content string, part int, paraPat, runPat *regexp.Regexp) []*xmlBlock {
	var out []*xmlBlock
	for _, loc := range paraPat.FindAllStringIndex(content, -1) {
		para := content[loc[0]:loc[1]]
		matches := runPat.FindAllStringSubmatchIndex(para, -1)
		if len(matches) == 0 {
			continue
		}

		xb := &xmlBlock{
			part:  part,
			start: loc[0],
			end:   loc[1],
			block: &domain.TextBlock{},
		}
		for _, m := range matches {
			slot := runSlot{elemStart: m[0], elemEnd: m[1], textStart: m[2], textEnd: m[3]}
			text := ""
			if slot.textStart >= 0 {
				text = xmlUnescaper.Replace(para[slot.textStart:slot.textEnd])
			}
			xb.block.Runs = append(xb.block.Runs, &domain.RunSpan{Text: text})
			xb.slots = append(xb.slots, slot)
			xb.orig = append(xb.orig, text)
		}
		out = append(out, xb)
	}
	return out
}

// rebuildXMLPart 把（可能已被变换的）文本块写回部件内容。
// ns 为 run 标签的命名空间前缀："w"（docx）或 "a"（pptx）。
func rebuildXMLPart(content string, blocks []*xmlBlock, ns string) string {
	var b strings.Builder
	last := 0
	for _, xb := range blocks {
		b.WriteString(content[last:xb.start])
		b.WriteString(rebuildParagraph(content[xb.start:xb.end], xb, ns))
		last = xb.end
	}
	b.WriteString(content[last:])
	return b.String()
}

// rebuildParagraph 重建单个段落片段：
// 文本有变化的 run 换成携带新文本的元素，其余保持原样（字节不变）；
// Apply 兜底追加的新 run 插在段落闭标签之前。
func rebuildParagraph(para string, xb *xmlBlock, ns string) string {
	var b strings.Builder
	last := 0
	for i, slot := range xb.slots {
		b.WriteString(para[last:slot.elemStart])
		text := xb.block.Runs[i].Text
		if text == xb.orig[i] {
			b.WriteString(para[slot.elemStart:slot.elemEnd])
		} else {
			b.WriteString(renderTextElem(ns, text))
		}
		last = slot.elemEnd
	}

	tail := para[last:]
	if extra := xb.block.Runs[len(xb.slots):]; len(extra) > 0 {
		closing := "</" + ns + ":p>"
		if idx := strings.LastIndex(tail, closing); idx >= 0 {
			var runs strings.Builder
			for _, r := range extra {
				runs.WriteString("<" + ns + ":r>")
				runs.WriteString(renderTextElem(ns, r.Text))
				runs.WriteString("</" + ns + ":r>")
			}
			tail = tail[:idx] + runs.String() + tail[idx:]
		}
	}
	b.WriteString(tail)
	return b.String()
}

// renderTextElem 生成携带新文本的 run 文本元素。
// docx 的 <w:t> 需要 xml:space="preserve"，否则首尾空白会被 Word 丢弃。
func renderTextElem(ns, text string) string {
	escaped := xmlEscaper.Replace(text)
	if ns == "w" {
		return `<w:t xml:space="preserve">` + escaped + `</w:t>`
	}
	return "<" + ns + ":t>" + escaped + "</" + ns + ":t>"
}
