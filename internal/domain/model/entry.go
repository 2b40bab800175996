// package model はドメインモデルを定義します
package model

// Node はファイルシステムの要素（ファイルまたはディレクトリ）を表します
type Node struct {
	// Name は要素のベース名を表します
	Name string
	// Path は走査ルートを起点にしたパスを表します
	Path string
	// IsDir はディレクトリであるかどうかを示します
	IsDir bool
	// Size はファイルでは先頭行の文字数、ディレクトリでは配下ファイルの合計を表します
	Size int64
	// Children はソート済みの子要素を表します（ディレクトリのみ）
	Children []*Node
	// ReadErr は読み込みや一覧取得で握りつぶしたエラーを保持します
	ReadErr error
}

// NewFile はファイルノードを作成します
func NewFile(name, path string, size int64) *Node {
	return &Node{Name: name, Path: path, Size: size}
}

// NewDirectory はディレクトリノードを作成し、子要素のサイズを合計します
func NewDirectory(name, path string, children []*Node) *Node {
	n := &Node{Name: name, Path: path, IsDir: true, Children: children}
	for _, c := range children {
		n.Size += c.Size
	}
	return n
}

// IsLast は child が兄弟リストの最後の要素かどうかを返します
func (n *Node) IsLast(child *Node) bool {
	return len(n.Children) > 0 && n.Children[len(n.Children)-1] == child
}

// Subdirectories はディレクトリの子要素を並び順のまま返します
func (n *Node) Subdirectories() []*Node {
	var dirs []*Node
	for _, c := range n.Children {
		if c.IsDir {
			dirs = append(dirs, c)
		}
	}
	return dirs
}

// Files はファイルの子要素を並び順のまま返します
func (n *Node) Files() []*Node {
	var files []*Node
	for _, c := range n.Children {
		if !c.IsDir {
			files = append(files, c)
		}
	}
	return files
}
