package cmd

import (
	"flag"
	"fmt"
)

const (
	AppName    = "doc-scrubber"
	AppVersion = "1.0.0"
)

// CommandLineArgs 命令行参数结构
type CommandLineArgs struct {
	Mode          string // enc（加密）| dec（解密）
	Words         string // 敏感词，逗号/换行分隔
	WordsFile     string // 敏感词文件路径
	MappingFile   string // 显式指定的映射快照路径（解密用）
	DeleteMapping bool   // 解密成功后删除映射快照
	ShowAIPrompt  bool
	ShowVersion   bool
	ShowHelp      bool
	Verbose       bool
	Paths         []string // 位置参数：待处理的文件或目录
}

// ParseCommandLineArgs 解析命令行参数
func ParseCommandLineArgs() *CommandLineArgs {
	args := &CommandLineArgs{}

	flag.StringVar(&args.Mode, "mode", "", "处理模式: enc（加密）或 dec（解密）")
	flag.StringVar(&args.Words, "words", "", "敏感词列表，逗号分隔（支持中文逗号）")
	flag.StringVar(&args.WordsFile, "words-file", "", "敏感词文件路径（每行一个词，或 JSON 关键词文件）")
	flag.StringVar(&args.MappingFile, "mapping", "", "映射快照文件路径（解密模式，缺省时自动发现）")
	flag.BoolVar(&args.DeleteMapping, "delete-mapping", false, "解密成功后删除本次用到的映射快照")
	flag.BoolVar(&args.ShowAIPrompt, "ai-prompt", false, "打印提供给 AI 的占位符保护提示词")
	flag.BoolVar(&args.ShowVersion, "version", false, "显示版本信息")
	flag.BoolVar(&args.ShowHelp, "help", false, "显示帮助信息")
	flag.BoolVar(&args.Verbose, "verbose", false, "详细输出")

	flag.Parse()
	args.Paths = flag.Args()

	return args
}

// ValidateArgs 验证命令行参数
func ValidateArgs(args *CommandLineArgs) error {
	if args.Mode != "enc" && args.Mode != "dec" {
		return fmt.Errorf("处理模式必须是 enc 或 dec")
	}

	if len(args.Paths) == 0 {
		return fmt.Errorf("必须指定至少一个文件或目录")
	}

	if args.Mode == "enc" && args.Words == "" && args.WordsFile == "" {
		return fmt.Errorf("加密模式下必须通过 -words 或 -words-file 提供敏感词")
	}

	return nil
}

// ShowUsage 显示使用说明
func ShowUsage() {
	fmt.Printf("%s v%s - 文档脱敏工具\n\n", AppName, AppVersion)
	fmt.Println("用法:")
	fmt.Printf("  %s -mode enc -words 敏感词1,敏感词2 文件或目录...\n", AppName)
	fmt.Printf("  %s -mode dec [-mapping 映射文件.json] 文件或目录...\n\n", AppName)
	fmt.Println("支持的格式: .docx .pptx .xlsx .txt（旧版 .doc/.ppt/.xls 请先另存为新格式）")
	fmt.Println("加密输出保存在源文件旁（文件名加后缀），映射快照保存在输出文件旁。")
	fmt.Println()
	fmt.Println("选项:")
	flag.PrintDefaults()
}
