package adapter

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/allanpk716/doc-scrubber/internal/domain"
)

func init() {
	register(".pptx", newPptxAdapter)
}

var slideNamePat = regexp.MustCompile(`^ppt/slides/slide([0-9]+)\.xml$`)

// pptxPart 一张幻灯片的 XML 部件
type pptxPart struct {
	name    string
	index   int
	content string
	rebuilt string
}

// pptxAdapter 直接改写 pptx 压缩包内的幻灯片 XML。
// 文本框和表格单元格里的段落都以 <a:p> 形式存在幻灯片部件中，
// 其余部件（母版、版式、媒体等）原样复制。
type pptxAdapter struct {
	src    string
	parts  []*pptxPart
	blocks []*xmlBlock
}

func newPptxAdapter(src string) (domain.DocumentAdapter, error) {
	return &pptxAdapter{src: src}, nil
}

func (a *pptxAdapter) Extract() ([]*domain.TextBlock, error) {
	reader, err := zip.OpenReader(a.src)
	if err != nil {
		return nil, fmt.Errorf("打开 pptx 失败: %w", err)
	}
	defer reader.Close()

	for _, f := range reader.File {
		m := slideNamePat.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("打开幻灯片 %s 失败: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("读取幻灯片 %s 失败: %w", f.Name, err)
		}

		index, _ := strconv.Atoi(m[1])
		a.parts = append(a.parts, &pptxPart{name: f.Name, index: index, content: string(data)})
	}

	// 压缩包内条目顺序不保证，按幻灯片编号排序保证文本块顺序与放映顺序一致
	sort.Slice(a.parts, func(i, j int) bool {
		return a.parts[i].index < a.parts[j].index
	})

	var out []*domain.TextBlock
	for pi, p := range a.parts {
		blocks := extractXMLBlocks(p.content, pi, pptxParaPat, pptxRunPat)
		for _, xb := range blocks {
			a.blocks = append(a.blocks, xb)
			out = append(out, xb.block)
		}
	}
	return out, nil
}

func (a *pptxAdapter) Commit(dst string) error {
	for pi, p := range a.parts {
		var blocks []*xmlBlock
		for _, xb := range a.blocks {
			if xb.part == pi {
				blocks = append(blocks, xb)
			}
		}
		p.rebuilt = rebuildXMLPart(p.content, blocks, "a")
	}

	rebuilt := make(map[string]string, len(a.parts))
	for _, p := range a.parts {
		rebuilt[p.name] = p.rebuilt
	}

	reader, err := zip.OpenReader(a.src)
	if err != nil {
		return fmt.Errorf("打开 pptx 失败: %w", err)
	}
	defer reader.Close()

	outputFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer outputFile.Close()

	zipWriter := zip.NewWriter(outputFile)
	defer zipWriter.Close()

	for _, f := range reader.File {
		var content []byte
		if c, ok := rebuilt[f.Name]; ok {
			content = []byte(c)
		} else {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("打开文件 %s 失败: %w", f.Name, err)
			}
			content, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return fmt.Errorf("读取文件 %s 失败: %w", f.Name, err)
			}
		}

		writer, err := zipWriter.CreateHeader(&f.FileHeader)
		if err != nil {
			return fmt.Errorf("创建ZIP文件头失败: %w", err)
		}
		if _, err := writer.Write(content); err != nil {
			return fmt.Errorf("写入文件内容失败: %w", err)
		}
	}
	return nil
}
