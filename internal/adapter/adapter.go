// Package adapter 提供按文件扩展名分派的文档适配器。
// 每个适配器负责在自己的文档结构与 TextBlock 之间转换，
// 调用方式固定为 Extract → 逐块 Apply → Commit。
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/allanpk716/doc-scrubber/internal/domain"
)

type builder func(src string) (domain.DocumentAdapter, error)

// builders 各格式在 init 中注册自己的构造器。
// supported 里有而 builders 里没有的格式视为处理能力缺失。
var builders = map[string]builder{}

func register(ext string, b builder) {
	builders[ext] = b
}

// supported 受支持的现代格式扩展名（小写，含点）
var supported = map[string]bool{
	".docx": true,
	".pptx": true,
	".xlsx": true,
	".txt":  true,
}

// legacyModern 可识别但无法改写的旧版格式及对应的新格式
var legacyModern = map[string]string{
	".doc": ".docx",
	".ppt": ".pptx",
	".xls": ".xlsx",
}

// New 根据扩展名（大小写不敏感）返回 src 对应的文档适配器
func New(src string) (domain.DocumentAdapter, error) {
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, src)
		}
		return nil, fmt.Errorf("访问文件失败: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(src))
	if modern, ok := legacyModern[ext]; ok {
		return nil, &domain.UnsupportedLegacyFormatError{Ext: ext, Modern: modern}
	}
	if !supported[ext] {
		return nil, &domain.UnsupportedFormatError{Ext: ext}
	}

	b, ok := builders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingAdapterDependency, ext)
	}
	return b(src)
}

// SupportedExt 报告扩展名（含点，大小写不敏感）是否为受支持的现代格式
func SupportedExt(ext string) bool {
	return supported[strings.ToLower(ext)]
}
