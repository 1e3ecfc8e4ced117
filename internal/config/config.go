// Package config 提供运行配置：输出文件名后缀、映射快照后缀，
// 以及敏感词列表的解析与加载。
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

// 环境变量名。启动时先用 godotenv 载入工作目录下的 .env（不存在则忽略）。
const (
	EnvMaskSuffix    = "DOC_SCRUBBER_MASK_SUFFIX"
	EnvUnmaskSuffix  = "DOC_SCRUBBER_UNMASK_SUFFIX"
	EnvMappingSuffix = "DOC_SCRUBBER_MAPPING_SUFFIX"
)

// Config 运行配置
type Config struct {
	// MaskSuffix 加密输出文件名后缀（插在扩展名之前）
	MaskSuffix string
	// UnmaskSuffix 解密输出文件名后缀
	UnmaskSuffix string
	// MappingSuffix 映射快照文件后缀
	MappingSuffix string
}

// Load 构造配置：默认值 + .env + 进程环境变量
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MaskSuffix:   "_加密",
		UnmaskSuffix: "_解密",
	}
	if v := os.Getenv(EnvMaskSuffix); v != "" {
		cfg.MaskSuffix = v
	}
	if v := os.Getenv(EnvUnmaskSuffix); v != "" {
		cfg.UnmaskSuffix = v
	}
	if v := os.Getenv(EnvMappingSuffix); v != "" {
		cfg.MappingSuffix = v
	}
	return cfg
}

var wordSepPat = regexp.MustCompile(`[,，\n]`)

// ParseWords 解析敏感词输入：按半角/全角逗号或换行切分，
// 去除首尾空白，丢弃空项，重复词去重（保持首次出现的顺序）。
func ParseWords(raw string) []string {
	var words []string
	seen := make(map[string]bool)
	for _, w := range wordSepPat.Split(raw, -1) {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

// keywordFile 关键词 JSON 文件结构（兼容 docx_replacer 的配置格式）
type keywordFile struct {
	Keywords []struct {
		Key string `json:"key"`
	} `json:"keywords"`
}

// LoadWords 从文件加载敏感词列表。
// .json 文件按 {"keywords":[{"key":...}]} 结构解析，
// 其它文件按每行一个词处理（行内仍可用逗号分隔）。
func LoadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取敏感词文件失败: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var kf keywordFile
		if err := json.Unmarshal(data, &kf); err != nil {
			return nil, fmt.Errorf("解析敏感词文件失败: %w", err)
		}
		var words []string
		seen := make(map[string]bool)
		for _, k := range kf.Keywords {
			key := strings.TrimSpace(k.Key)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			words = append(words, key)
		}
		return words, nil
	}

	return ParseWords(string(data)), nil
}
