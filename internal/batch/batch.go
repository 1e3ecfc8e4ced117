// Package batch 按顺序处理一批文件：单个文件的失败只记录不扩散，
// 每个文件完成后上报进度。
package batch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/allanpk716/doc-scrubber/internal/adapter"
	"github.com/allanpk716/doc-scrubber/internal/config"
	"github.com/allanpk716/doc-scrubber/internal/domain"
	"github.com/allanpk716/doc-scrubber/internal/mapping"
	"github.com/allanpk716/doc-scrubber/internal/scrub"
)

// 进度回调中的状态标记
const (
	StatusDone   = "完成"
	StatusFailed = "失败"
)

// ProgressFunc 每个文件处理完成后的进度回调（序号从 1 开始）
type ProgressFunc func(index, total int, name, status string)

// Orchestrator 批处理调度器。一个实例对应一次工作会话，
// 持有该会话的映射存储。
type Orchestrator struct {
	store  *mapping.Store
	engine *scrub.Engine
	cfg    *config.Config
}

// New 创建批处理调度器
func New(store *mapping.Store, cfg *config.Config) *Orchestrator {
	if cfg.MappingSuffix != "" {
		store.SetSnapshotSuffix(cfg.MappingSuffix)
	}
	return &Orchestrator{
		store:  store,
		engine: scrub.NewEngine(store),
		cfg:    cfg,
	}
}

// Store 返回本会话的映射存储
func (o *Orchestrator) Store() *mapping.Store {
	return o.store
}

// Run 依次处理 files 中的每个文件，返回与文件一一对应的结果列表。
//
// 前置条件在任何文件被处理之前检查，不满足时整批阻断：
// 加密模式要求敏感词非空；解密模式要求已有映射，或能从第一个文件
// 旁自动发现并载入快照。加密模式对整批只扩展一次映射，
// 因此同批所有文件共享同一套标记。
//
// 单个文件的任何失败（文件缺失、格式不支持、解析出错等）
// 只记入该文件的结果，其余文件照常处理。
func (o *Orchestrator) Run(ctx context.Context, files, words []string, mode domain.Mode, cb ProgressFunc) ([]domain.FileResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFiles
	}

	switch mode {
	case domain.ModeEncrypt:
		if !hasWords(words) {
			return nil, domain.ErrNoWords
		}
		o.store.Extend(words)
	case domain.ModeDecrypt:
		if o.store.ReverseLen() == 0 {
			path, ok := o.store.Discover(files[0])
			if !ok {
				return nil, fmt.Errorf("%w: %s", domain.ErrNoMapping, path)
			}
			if err := o.store.Load(path); err != nil {
				return nil, fmt.Errorf("自动载入映射失败: %w", err)
			}
			log.Printf("自动载入映射: %s (%d 条)", path, o.store.Len())
		}
	default:
		return nil, fmt.Errorf("未知的处理模式: %s", mode)
	}

	fn := o.engine.Func(mode)
	results := make([]domain.FileResult, 0, len(files))

	for i, src := range files {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		res := o.processOne(src, mode, fn)
		results = append(results, res)

		if cb != nil {
			status := StatusDone
			if res.Err != nil {
				status = StatusFailed
			}
			cb(i+1, len(files), filepath.Base(src), status)
		}
	}
	return results, nil
}

// processOne 处理单个文件：选择适配器，提取 → 变换 → 写回，
// 加密模式下在输出文件旁保存映射快照。
func (o *Orchestrator) processOne(src string, mode domain.Mode, fn domain.TransformFunc) domain.FileResult {
	res := domain.FileResult{Input: src}

	a, err := adapter.New(src)
	if err != nil {
		res.Err = err
		return res
	}

	blocks, err := a.Extract()
	if err != nil {
		res.Err = err
		return res
	}
	for _, b := range blocks {
		b.Apply(fn)
	}

	dst := o.outputPath(src, mode)
	if err := a.Commit(dst); err != nil {
		res.Err = err
		return res
	}
	res.Output = dst

	if mode == domain.ModeEncrypt {
		mp, err := o.store.Persist(dst)
		if err != nil {
			res.Err = err
			return res
		}
		res.Mapping = mp
	}
	return res
}

// outputPath 在扩展名前插入模式后缀：<dir>/<base>_加密<ext>
func (o *Orchestrator) outputPath(src string, mode domain.Mode) string {
	suffix := o.cfg.MaskSuffix
	if mode == domain.ModeDecrypt {
		suffix = o.cfg.UnmaskSuffix
	}
	dir := filepath.Dir(src)
	ext := filepath.Ext(src)
	base := strings.TrimSuffix(filepath.Base(src), ext)
	return filepath.Join(dir, base+suffix+ext)
}

func hasWords(words []string) bool {
	for _, w := range words {
		if strings.TrimSpace(w) != "" {
			return true
		}
	}
	return false
}
