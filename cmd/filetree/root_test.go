package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FileTree/internal/config"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.go"), []byte("package main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README"), []byte("hi"), 0644))
	return root
}

func TestRunTree(t *testing.T) {
	root := setupTree(t)

	tests := []struct {
		name       string
		args       []string
		logLevel   string
		wantErr    bool
		wantStdout string
	}{
		{
			name:     "ディレクトリ",
			args:     []string{root},
			logLevel: "warn",
			wantStdout: "project 14 bytes\n" +
				"├─ src 12 bytes\n" +
				"│  └─ main.go 12 bytes\n" +
				"└─ README 2 bytes\n",
		},
		{
			name:       "ファイル",
			args:       []string{filepath.Join(root, "README")},
			logLevel:   "warn",
			wantStdout: "README 2 bytes\n",
		},
		{
			name:     "存在しないパス",
			args:     []string{filepath.Join(root, "missing")},
			logLevel: "warn",
			wantErr:  true,
		},
		{
			name:     "パスもダイアログも未指定",
			args:     nil,
			logLevel: "warn",
			wantErr:  true,
		},
		{
			name:     "不正なログレベル",
			args:     []string{root},
			logLevel: "chatty",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cfg := config.Config{LogLevel: tt.logLevel}

			err := runTree(cfg, tt.args, &stdout, &stderr)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, stdout.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStdout, stdout.String())
		})
	}
}

func TestRunTree_NotFoundError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runTree(config.Default(), []string{filepath.Join(t.TempDir(), "nope")}, &stdout, &stderr)
	assert.ErrorIs(t, err, errNotFound)
}

func TestRunTree_OutputDir(t *testing.T) {
	root := setupTree(t)
	outDir := t.TempDir()
	var stdout, stderr bytes.Buffer

	cfg := config.Config{LogLevel: "info", OutputDir: outDir}
	require.NoError(t, runTree(cfg, []string{root}, &stdout, &stderr))

	outputPath := strings.TrimSpace(stdout.String())
	assert.Equal(t, outDir, filepath.Dir(outputPath))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "project 14 bytes\n"))
	assert.Contains(t, stderr.String(), `"level":"INFO"`)
}

func TestRootCommand(t *testing.T) {
	root := setupTree(t)
	var stdout bytes.Buffer

	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{filepath.Join(root, "src")})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "src 12 bytes\n└─ main.go 12 bytes\n", stdout.String())
}
