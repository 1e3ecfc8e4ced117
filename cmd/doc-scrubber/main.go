package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allanpk716/doc-scrubber/internal/adapter"
	"github.com/allanpk716/doc-scrubber/internal/batch"
	"github.com/allanpk716/doc-scrubber/internal/cmd"
	"github.com/allanpk716/doc-scrubber/internal/config"
	"github.com/allanpk716/doc-scrubber/internal/domain"
	"github.com/allanpk716/doc-scrubber/internal/mapping"
)

func main() {
	args := cmd.ParseCommandLineArgs()

	if args.ShowVersion {
		fmt.Printf("%s v%s\n", cmd.AppName, cmd.AppVersion)
		return
	}
	if args.ShowHelp {
		cmd.ShowUsage()
		return
	}
	if args.ShowAIPrompt {
		fmt.Println(cmd.AIPrompt)
		return
	}

	if args.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	if err := cmd.ValidateArgs(args); err != nil {
		log.Fatalf("参数验证失败: %v", err)
	}

	cfg := config.Load()

	words, err := collectWords(args)
	if err != nil {
		log.Fatalf("加载敏感词失败: %v", err)
	}

	files, err := collectFiles(args.Paths)
	if err != nil {
		log.Fatalf("收集文件失败: %v", err)
	}
	if args.Verbose {
		log.Printf("待处理 %d 个文件", len(files))
		for _, f := range files {
			log.Printf("  %s", f)
		}
	}

	store := mapping.NewStore()
	orch := batch.New(store, cfg)

	if args.MappingFile != "" {
		if err := store.Load(args.MappingFile); err != nil {
			log.Fatalf("载入映射失败: %v", err)
		}
		log.Printf("映射已载入: %s (%d 条)", args.MappingFile, store.Len())
	}

	mode := domain.Mode(args.Mode)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	results, err := orch.Run(ctx, files, words, mode, func(index, total int, name, status string) {
		log.Printf("(%d/%d) %s %s", index, total, name, status)
	})
	if err != nil {
		log.Fatalf("批处理失败: %v", err)
	}

	ok, fail := summarize(results, mode)

	// 解密成功后按需删除本次用到的映射快照
	if mode == domain.ModeDecrypt && ok > 0 && args.DeleteMapping {
		for _, p := range store.CleanupSnapshots() {
			log.Printf("映射文件已删除: %s", p)
		}
	}

	if ok == 0 && fail > 0 {
		os.Exit(1)
	}
}

// collectWords 合并 -words 与 -words-file 两个来源的敏感词
func collectWords(args *cmd.CommandLineArgs) ([]string, error) {
	words := config.ParseWords(args.Words)
	if args.WordsFile != "" {
		fromFile, err := config.LoadWords(args.WordsFile)
		if err != nil {
			return nil, err
		}
		words = append(words, fromFile...)
	}
	return words, nil
}

// collectFiles 展开位置参数：目录递归收集受支持格式的文件
// （跳过 Office 的 ~$ 临时文件），普通路径原样保留，
// 让不支持的扩展名在批处理中产生对应的单文件错误。
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.Walk(p, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return nil
			}
			if strings.HasPrefix(fi.Name(), "~$") {
				return nil
			}
			if adapter.SupportedExt(filepath.Ext(path)) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("扫描目录 %s 失败: %w", p, err)
		}
	}
	return files, nil
}

// summarize 打印批处理结果汇总，返回成功与失败的数量
func summarize(results []domain.FileResult, mode domain.Mode) (ok, fail int) {
	action := "加密"
	if mode == domain.ModeDecrypt {
		action = "解密"
	}

	for _, r := range results {
		if r.Err == nil {
			ok++
		} else {
			fail++
		}
	}
	log.Printf("%s完成: %d 成功, %d 失败", action, ok, fail)

	if ok > 0 {
		fmt.Printf("成功 %d 个:\n", ok)
		for _, r := range results {
			if r.Err == nil {
				fmt.Printf("  %s  ->  %s\n", filepath.Base(r.Input), filepath.Base(r.Output))
			}
		}
	}
	if fail > 0 {
		fmt.Printf("失败 %d 个:\n", fail)
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("  %s\n    %v\n", filepath.Base(r.Input), r.Err)
			}
		}
	}
	return ok, fail
}
