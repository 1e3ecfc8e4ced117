package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func maskBeijing(s string) string {
	return strings.ReplaceAll(s, "北京", "[MASK_0A1B2C3D]")
}

func runTxt(t *testing.T, src string) string {
	t.Helper()
	a, err := New(src)
	require.NoError(t, err)

	blocks, err := a.Extract()
	require.NoError(t, err)
	require.Len(t, blocks, 1, "纯文本文件整体是一个文本块")
	for _, b := range blocks {
		b.Apply(maskBeijing)
	}

	dst := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, a.Commit(dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	return string(data)
}

func TestTxtAdapter_UTF8(t *testing.T) {
	src := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(src, []byte("第一行北京\n第二行没有"), 0644))

	out := runTxt(t, src)
	assert.Equal(t, "第一行[MASK_0A1B2C3D]\n第二行没有", out)
}

func TestTxtAdapter_UTF8BOM(t *testing.T) {
	src := filepath.Join(t.TempDir(), "in.txt")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("北京")...)
	require.NoError(t, os.WriteFile(src, data, 0644))

	// BOM 被剥除，输出为不带 BOM 的 UTF-8
	assert.Equal(t, "[MASK_0A1B2C3D]", runTxt(t, src))
}

func TestTxtAdapter_GBK(t *testing.T) {
	encoded, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("北京欢迎你"))
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(src, encoded, 0644))

	assert.Equal(t, "[MASK_0A1B2C3D]欢迎你", runTxt(t, src))
}

func TestDecodeText_PrefersUTF8(t *testing.T) {
	text, err := decodeText([]byte("plain ascii"))
	require.NoError(t, err)
	assert.Equal(t, "plain ascii", text)
}
