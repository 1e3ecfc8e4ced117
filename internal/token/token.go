// Package token 生成和识别掩码标记。
// 标记形如 [MASK_XXXXXXXX]，其中 XXXXXXXX 为 8 位大写十六进制字符，
// 该格式是保留词法：文档中任何匹配该格式的文本一律按标记处理。
package token

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Pattern 掩码标记的词法格式，加密/解密引擎都以它为准切分文本
var Pattern = regexp.MustCompile(`\[MASK_[0-9A-F]{8}\]`)

var exactPattern = regexp.MustCompile(`^\[MASK_[0-9A-F]{8}\]$`)

// Next 生成一个新的掩码标记。
// 随机性来自一枚 128 位随机 UUID，截取前 32 位表示为十六进制。
// 32 位空间在预期映射规模（数十到数千词）下碰撞概率可忽略，
// 这是规模上限而非缺陷。无状态，可并发调用。
func Next() string {
	u := uuid.New()
	return "[MASK_" + strings.ToUpper(hex.EncodeToString(u[:4])) + "]"
}

// IsToken 判断 s 是否恰好是一个完整的掩码标记
func IsToken(s string) bool {
	return exactPattern.MatchString(s)
}
