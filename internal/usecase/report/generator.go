// Package report はツリー表示の出力先を扱います
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	OutputFilePrefix = "tree_"
	OutputFileSuffix = ".txt"
	TimestampLayout  = "20060102_150405"
)

// Generator はレポート生成機能を提供します
type Generator struct {
	now func() time.Time
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// OutputPath は outputDir 内のタイムスタンプ付きファイル名を返します
func (g *Generator) OutputPath(outputDir string) string {
	timestamp := g.now().Format(TimestampLayout)
	return filepath.Join(outputDir, fmt.Sprintf("%s%s%s", OutputFilePrefix, timestamp, OutputFileSuffix))
}

// CreateOutputFile は出力ファイルを作成します
func (g *Generator) CreateOutputFile(outputDir string) (*os.File, string, error) {
	outputPath := g.OutputPath(outputDir)

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteTree はツリー表示を書き込みます。ファイル単体の結果には改行を補います。
func (g *Generator) WriteTree(writer io.Writer, rendered string) error {
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	if _, err := io.WriteString(writer, rendered); err != nil {
		return fmt.Errorf("ツリーの書き込みに失敗しました: %w", err)
	}
	return nil
}
