package adapter

import (
	"fmt"

	"github.com/nguyenthenguyen/docx"

	"github.com/allanpk716/doc-scrubber/internal/domain"
)

func init() {
	register(".docx", newDocxAdapter)
}

// docxAdapter 基于 word/document.xml 的段落级改写。
// 正文段落和表格单元格里的段落都在同一个部件里，统一处理。
type docxAdapter struct {
	reader   *docx.ReplaceDocx
	editable *docx.Docx
	content  string
	blocks   []*xmlBlock
}

func newDocxAdapter(src string) (domain.DocumentAdapter, error) {
	r, err := docx.ReadDocxFile(src)
	if err != nil {
		return nil, fmt.Errorf("打开 docx 失败: %w", err)
	}
	return &docxAdapter{reader: r, editable: r.Editable()}, nil
}

func (a *docxAdapter) Extract() ([]*domain.TextBlock, error) {
	a.content = a.editable.GetContent()
	a.blocks = extractXMLBlocks(a.content, 0, docxParaPat, docxRunPat)

	out := make([]*domain.TextBlock, len(a.blocks))
	for i, xb := range a.blocks {
		out[i] = xb.block
	}
	return out, nil
}

func (a *docxAdapter) Commit(dst string) error {
	defer a.reader.Close()

	a.editable.SetContent(rebuildXMLPart(a.content, a.blocks, "w"))
	if err := a.editable.WriteToFile(dst); err != nil {
		return fmt.Errorf("保存 docx 失败: %w", err)
	}
	return nil
}
