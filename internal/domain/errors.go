package domain

import (
	"errors"
	"fmt"
)

// 单文件级错误，批处理器在文件边界捕获并记入 FileResult，
// 不会中断同批次的其它文件。
var (
	// ErrFileNotFound 源文件不存在
	ErrFileNotFound = errors.New("文件不存在")
	// ErrMalformedMapping 映射快照无法解析或结构不正确
	ErrMalformedMapping = errors.New("映射文件格式不正确")
	// ErrMissingAdapterDependency 对应格式的处理能力在当前构建中不可用
	ErrMissingAdapterDependency = errors.New("缺少格式处理能力")
)

// 批处理开始前的前置条件错误，整批阻断，不产生单文件结果。
var (
	// ErrNoWords 加密模式下敏感词列表为空
	ErrNoWords = errors.New("敏感词列表为空")
	// ErrNoMapping 解密模式下既无已载入映射也未发现可用快照
	ErrNoMapping = errors.New("未找到映射文件")
	// ErrNoFiles 待处理文件列表为空
	ErrNoFiles = errors.New("文件列表为空")
)

// UnsupportedFormatError 完全无法识别的扩展名
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("不支持的格式: %s", e.Ext)
}

// UnsupportedLegacyFormatError 可识别但无法改写的旧版二进制格式，
// 提示用户另存为对应的新格式
type UnsupportedLegacyFormatError struct {
	Ext    string
	Modern string
}

func (e *UnsupportedLegacyFormatError) Error() string {
	return fmt.Sprintf("%s 为旧版格式，请另存为 %s 后处理", e.Ext, e.Modern)
}
