package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    *CommandLineArgs
		wantErr bool
	}{
		{
			name:    "encrypt with words",
			args:    &CommandLineArgs{Mode: "enc", Words: "北京", Paths: []string{"a.docx"}},
			wantErr: false,
		},
		{
			name:    "encrypt with words file",
			args:    &CommandLineArgs{Mode: "enc", WordsFile: "words.txt", Paths: []string{"a.docx"}},
			wantErr: false,
		},
		{
			name:    "decrypt without words",
			args:    &CommandLineArgs{Mode: "dec", Paths: []string{"a.docx"}},
			wantErr: false,
		},
		{
			name:    "missing mode",
			args:    &CommandLineArgs{Paths: []string{"a.docx"}},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			args:    &CommandLineArgs{Mode: "encrypt", Paths: []string{"a.docx"}},
			wantErr: true,
		},
		{
			name:    "no paths",
			args:    &CommandLineArgs{Mode: "enc", Words: "北京"},
			wantErr: true,
		},
		{
			name:    "encrypt without words",
			args:    &CommandLineArgs{Mode: "enc", Paths: []string{"a.docx"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
