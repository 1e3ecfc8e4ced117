package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		tok := Next()
		require.True(t, IsToken(tok), "生成的标记不符合词法格式: %s", tok)
		require.Len(t, tok, len("[MASK_XXXXXXXX]"))
	}
}

func TestNext_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := Next()
		require.False(t, seen[tok], "标记重复: %s", tok)
		seen[tok] = true
	}
}

func TestIsToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"well formed", "[MASK_0A1B2C3D]", true},
		{"lowercase hex", "[MASK_0a1b2c3d]", false},
		{"too short", "[MASK_0A1B2C3]", false},
		{"too long", "[MASK_0A1B2C3D4]", false},
		{"non hex", "[MASK_0A1B2C3G]", false},
		{"embedded", "x[MASK_0A1B2C3D]y", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsToken(tt.in))
		})
	}
}
