package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanpk716/doc-scrubber/internal/domain"
)

func touch(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestNew_FileNotFound(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "缺失.docx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := New(touch(t, "图片.png"))
	require.Error(t, err)

	var ufe *domain.UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, ".png", ufe.Ext)
}

func TestNew_LegacyFormats(t *testing.T) {
	tests := []struct {
		name   string
		legacy string
		modern string
	}{
		{"word", "旧文档.doc", ".docx"},
		{"powerpoint", "旧演示.PPT", ".pptx"},
		{"excel", "旧表格.xls", ".xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(touch(t, tt.legacy))
			require.Error(t, err)

			var lfe *domain.UnsupportedLegacyFormatError
			require.ErrorAs(t, err, &lfe)
			assert.Equal(t, tt.modern, lfe.Modern)
			// 错误信息指明需要另存为的新格式
			assert.Contains(t, err.Error(), tt.modern)
		})
	}
}

func TestNew_MissingAdapterDependency(t *testing.T) {
	// 临时摘掉 .txt 的构造器，模拟处理能力在当前构建中缺失
	saved := builders[".txt"]
	delete(builders, ".txt")
	defer func() { builders[".txt"] = saved }()

	_, err := New(touch(t, "a.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingAdapterDependency)
}

func TestSupportedExt(t *testing.T) {
	assert.True(t, SupportedExt(".docx"))
	assert.True(t, SupportedExt(".TXT"))
	assert.False(t, SupportedExt(".doc"))
	assert.False(t, SupportedExt(".pdf"))
}
