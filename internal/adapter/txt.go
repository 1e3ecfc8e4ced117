package adapter

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/allanpk716/doc-scrubber/internal/domain"
)

func init() {
	register(".txt", newTxtAdapter)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// txtAdapter 纯文本文件：整个文件内容是一个单 run 文本块
type txtAdapter struct {
	src   string
	block *domain.TextBlock
}

func newTxtAdapter(src string) (domain.DocumentAdapter, error) {
	return &txtAdapter{src: src}, nil
}

func (a *txtAdapter) Extract() ([]*domain.TextBlock, error) {
	data, err := os.ReadFile(a.src)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	a.block = &domain.TextBlock{Runs: []*domain.RunSpan{{Text: text}}}
	return []*domain.TextBlock{a.block}, nil
}

// Commit 输出始终写为不带 BOM 的 UTF-8
func (a *txtAdapter) Commit(dst string) error {
	if err := os.WriteFile(dst, []byte(a.block.Text()), 0644); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	return nil
}

// decodeText 依次按 UTF-8（含 BOM）、GBK 解码
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("无法识别的文本编码")
	}
	return string(decoded), nil
}
