package adapter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/allanpk716/doc-scrubber/internal/domain"
)

func init() {
	register(".xlsx", newXlsxAdapter)
}

// xlsxCell 一个字符串单元格对应一个单 run 文本块
type xlsxCell struct {
	sheet string
	axis  string
	block *domain.TextBlock
	orig  string
}

// xlsxAdapter 基于 excelize 的工作簿改写。
// 仅处理字符串单元格，数字、公式、日期原样保留；
// 只对发生变化的单元格写回，样式不受影响。
type xlsxAdapter struct {
	f     *excelize.File
	cells []*xlsxCell
}

func newXlsxAdapter(src string) (domain.DocumentAdapter, error) {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return nil, fmt.Errorf("打开 xlsx 失败: %w", err)
	}
	return &xlsxAdapter{f: f}, nil
}

func (a *xlsxAdapter) Extract() ([]*domain.TextBlock, error) {
	for _, sheet := range a.f.GetSheetList() {
		rows, err := a.f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheet, err)
		}
		for ri, row := range rows {
			for ci, val := range row {
				if val == "" {
					continue
				}
				axis, err := excelize.CoordinatesToCellName(ci+1, ri+1)
				if err != nil {
					return nil, fmt.Errorf("计算单元格坐标失败: %w", err)
				}
				ct, err := a.f.GetCellType(sheet, axis)
				if err != nil {
					return nil, fmt.Errorf("读取单元格 %s!%s 类型失败: %w", sheet, axis, err)
				}
				if ct != excelize.CellTypeSharedString && ct != excelize.CellTypeInlineString {
					continue
				}
				a.cells = append(a.cells, &xlsxCell{
					sheet: sheet,
					axis:  axis,
					block: &domain.TextBlock{Runs: []*domain.RunSpan{{Text: val}}},
					orig:  val,
				})
			}
		}
	}

	out := make([]*domain.TextBlock, len(a.cells))
	for i, c := range a.cells {
		out[i] = c.block
	}
	return out, nil
}

func (a *xlsxAdapter) Commit(dst string) error {
	defer a.f.Close()

	for _, c := range a.cells {
		if text := c.block.Text(); text != c.orig {
			if err := a.f.SetCellStr(c.sheet, c.axis, text); err != nil {
				return fmt.Errorf("写入单元格 %s!%s 失败: %w", c.sheet, c.axis, err)
			}
		}
	}
	if err := a.f.SaveAs(dst); err != nil {
		return fmt.Errorf("保存 xlsx 失败: %w", err)
	}
	return nil
}
