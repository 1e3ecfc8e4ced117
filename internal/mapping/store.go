// Package mapping 维护敏感词与掩码标记之间的双向映射，
// 以及映射快照的落盘、发现与按需清理。
package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/allanpk716/doc-scrubber/internal/domain"
	"github.com/allanpk716/doc-scrubber/internal/token"
)

// DefaultSnapshotSuffix 映射快照文件的默认后缀，
// 快照与文档同目录同主名：<dir>/<base>_mask_mapping.json
const DefaultSnapshotSuffix = "_mask_mapping.json"

// Store 一次工作会话内的词↔标记双向映射。
// 两个方向同持同修，任一方向查询都是 O(1)。
// 内部带锁，Extend/Load/Persist 可被串行化的并发调用访问；
// 「清空映射」通过整体换一个新 Store 实现，而不是原地清理。
type Store struct {
	mu        sync.Mutex
	mapping   map[string]string // 敏感词 -> 标记
	reverse   map[string]string // 标记 -> 敏感词
	snapshots []string          // 本会话写出或载入过的快照路径
	suffix    string
}

// NewStore 创建一个空映射
func NewStore() *Store {
	return &Store{
		mapping: make(map[string]string),
		reverse: make(map[string]string),
		suffix:  DefaultSnapshotSuffix,
	}
}

// SetSnapshotSuffix 覆盖快照文件后缀（配置项，默认 DefaultSnapshotSuffix）
func (s *Store) SetSnapshotSuffix(suffix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if suffix != "" {
		s.suffix = suffix
	}
}

// Extend 为每个尚未映射的敏感词生成新标记并写入双向映射。
// 词会先去除首尾空白，空词忽略；已映射的词保持原有标记不变，
// 因此重复调用是幂等的，一个 (词, 标记) 对在映射生命周期内不可变。
func (s *Store) Extend(words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := s.mapping[w]; ok {
			continue
		}
		t := token.Next()
		s.mapping[w] = t
		s.reverse[t] = w
	}
}

// Token 查询敏感词对应的标记
func (s *Store) Token(word string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.mapping[word]
	return t, ok
}

// Word 查询标记对应的敏感词
func (s *Store) Word(tok string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.reverse[tok]
	return w, ok
}

// Words 返回当前全部敏感词的副本
func (s *Store) Words() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	words := make([]string, 0, len(s.mapping))
	for w := range s.mapping {
		words = append(words, w)
	}
	return words
}

// Len 返回映射条目数
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.mapping)
}

// ReverseLen 返回反向映射条目数（解密前置检查用）
func (s *Store) ReverseLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reverse)
}

// snapshotFile 快照的 JSON 结构。
// 旧版本把反向映射写在 reverse_mapping 键下，载入时兼容。
type snapshotFile struct {
	Mapping       map[string]string `json:"mapping"`
	Reverse       map[string]string `json:"reverse"`
	LegacyReverse map[string]string `json:"reverse_mapping,omitempty"`
}

// Persist 把完整双向映射序列化到 targetPath 旁的确定性快照路径，
// 返回快照路径并记入本会话的快照清单（供解密后按需清理）。
// 输出为 UTF-8 带缩进的 JSON，便于人工核对。
func (s *Store) Persist(targetPath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshotFile{Mapping: s.mapping, Reverse: s.reverse}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化映射失败: %w", err)
	}

	path := snapshotPath(targetPath, s.suffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("写入映射文件失败: %w", err)
	}

	s.snapshots = append(s.snapshots, path)
	return path, nil
}

// Load 载入一个快照并与当前映射做并集合并（不替换已有条目的标记）。
// 快照无法解析、结构不对或反向映射键不是合法标记时返回 ErrMalformedMapping。
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取映射文件失败: %w", err)
	}

	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedMapping, err)
	}

	reverse := snap.Reverse
	if len(reverse) == 0 {
		reverse = snap.LegacyReverse
	}
	for t := range reverse {
		if !token.IsToken(t) {
			return fmt.Errorf("%w: 非法标记 %q", domain.ErrMalformedMapping, t)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for w, t := range snap.Mapping {
		if _, ok := s.mapping[w]; !ok {
			s.mapping[w] = t
		}
	}
	for t, w := range reverse {
		if _, ok := s.reverse[t]; !ok {
			s.reverse[t] = w
		}
	}
	s.snapshots = append(s.snapshots, path)
	return nil
}

// Discover 计算文档对应的确定性快照路径并报告其是否存在，不做载入
func (s *Store) Discover(docPath string) (string, bool) {
	s.mu.Lock()
	suffix := s.suffix
	s.mu.Unlock()

	path := snapshotPath(docPath, suffix)
	if _, err := os.Stat(path); err != nil {
		return path, false
	}
	return path, true
}

// SnapshotPaths 返回本会话涉及过的快照路径副本
func (s *Store) SnapshotPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.snapshots...)
}

// CleanupSnapshots 删除本会话涉及过的全部快照文件，
// 返回实际删除成功的路径；不存在或删除失败的路径直接跳过。
func (s *Store) CleanupSnapshots() []string {
	s.mu.Lock()
	paths := append([]string(nil), s.snapshots...)
	s.snapshots = nil
	s.mu.Unlock()

	var deleted []string
	for _, p := range paths {
		if err := os.Remove(p); err == nil {
			deleted = append(deleted, p)
		}
	}
	return deleted
}

// snapshotPath 由文档路径推导快照路径：同目录、同主名、固定后缀
func snapshotPath(docPath, suffix string) string {
	dir := filepath.Dir(docPath)
	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	return filepath.Join(dir, base+suffix)
}
