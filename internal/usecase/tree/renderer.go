// Package tree はファイルシステムのツリー表示を生成します
package tree

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"FileTree/internal/domain/model"
	"FileTree/internal/infrastructure/filesystem"
	"FileTree/internal/infrastructure/logging"
)

const (
	Branch     = "├─ "
	LastBranch = "└─ "
	Indent     = "│  "
)

// NodeSource はパスからノードツリーを構築するインターフェースです
type NodeSource interface {
	Scan(root string) (*model.Node, error)
}

// Renderer はノードツリーを罫線付きのテキストに変換します
type Renderer struct {
	source NodeSource
	logger logging.Logger
}

// NewRenderer は新しい Renderer インスタンスを作成します
func NewRenderer(source NodeSource, logger logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Renderer{source: source, logger: logger}
}

// Render はログを出力せずに path のツリーを返します
func Render(path string) (string, bool) {
	return NewRenderer(filesystem.NewScanner(logging.Nop{}), logging.Nop{}).Render(path)
}

// Render は path のツリー表示を返します。
// path が存在しない場合は false を返します。ファイルの場合は "名前 サイズ bytes"
// を改行なしで、ディレクトリの場合は全ての行を改行付きで返します。
func (r *Renderer) Render(path string) (string, bool) {
	root, err := r.source.Scan(path)
	if err != nil {
		level := logging.LevelWarn
		if errors.Is(err, filesystem.ErrNotFound) {
			level = logging.LevelDebug
		}
		r.logger.Log(level, fmt.Sprintf("パス '%s' はツリー表示できません", path), err)
		return "", false
	}

	if !root.IsDir {
		return entryLine(root), true
	}

	ctx := renderContext{root: root.Path}
	var b strings.Builder
	b.WriteString(entryLine(root))
	b.WriteString("\n")
	ctx.writeChildren(&b, root)
	return b.String(), true
}

type renderContext struct {
	root string
}

// writeChildren はサブディレクトリを先に、ファイルを後に出力します。
// 罫線の種類は両者を合わせた兄弟リスト上の位置で決まります。
func (c renderContext) writeChildren(b *strings.Builder, dir *model.Node) {
	for _, sub := range dir.Subdirectories() {
		c.writeEntry(b, dir, sub)
		c.writeChildren(b, sub)
	}
	for _, file := range dir.Files() {
		c.writeEntry(b, dir, file)
	}
}

func (c renderContext) writeEntry(b *strings.Builder, parent, node *model.Node) {
	b.WriteString(strings.Repeat(Indent, c.depth(node.Path)))
	if parent.IsLast(node) {
		b.WriteString(LastBranch)
	} else {
		b.WriteString(Branch)
	}
	b.WriteString(entryLine(node))
	b.WriteString("\n")
}

// depth はルートからのセグメント数から 1 を引いた値です
func (c renderContext) depth(path string) int {
	rel, err := filepath.Rel(c.root, path)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(rel, string(filepath.Separator))) - 1
}

func entryLine(n *model.Node) string {
	return fmt.Sprintf("%s %d bytes", n.Name, n.Size)
}
