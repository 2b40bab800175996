// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"FileTree/internal/domain/model"
	"FileTree/internal/infrastructure/logging"
)

// ErrNotFound はパスがどのエントリにも解決できないことを表します
var ErrNotFound = errors.New("パスが存在しません")

// ErrUnsupported は通常ファイルでもディレクトリでもないエントリを表します
var ErrUnsupported = errors.New("通常ファイルでもディレクトリでもありません")

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// FileSystemScanner はファイルシステムのスキャン機能を提供するインターフェースです
type FileSystemScanner interface {
	DirectoryValidator
	Scan(root string) (*model.Node, error)
}

// Scanner はファイルシステムをスキャンしてノードツリーを構築する構造体です。
// 複数のゴルーチンから同時に使用してはいけません。
type Scanner struct {
	logger    logging.Logger
	readDir   func(name string) ([]os.DirEntry, error)
	lineCount func(path string) (int64, error)
}

// NewScanner は新しい Scanner インスタンスを作成します
func NewScanner(logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Scanner{
		logger:    logger,
		readDir:   os.ReadDir,
		lineCount: FirstLineLength,
	}
}

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (s *Scanner) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	if strings.ContainsAny(path, "<>|?*") {
		return fmt.Errorf("パスに不正な文字が含まれています")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください")
	}

	return nil
}

// Scan は root を起点にファイルシステムを深さ優先で走査し、ノードツリーを返します。
// root が存在しない場合は ErrNotFound を返します。配下の読み込み失敗は
// サイズ 0 として扱い、WARN ログを出力して走査を続けます。
func (s *Scanner) Scan(root string) (*model.Node, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", root, ErrNotFound)
		}
		return nil, fmt.Errorf("パス '%s' の情報取得に失敗しました: %w", root, err)
	}

	switch {
	case info.IsDir():
		return s.scanDirectory(root), nil
	case info.Mode().IsRegular():
		return s.scanFile(root), nil
	default:
		return nil, fmt.Errorf("%s: %w", root, ErrUnsupported)
	}
}

func (s *Scanner) scanFile(path string) *model.Node {
	size, err := s.lineCount(path)
	if err != nil {
		s.logger.Log(logging.LevelWarn, fmt.Sprintf("ファイル '%s' の読み込みに失敗、サイズ 0 として扱います", path), err)
	}
	node := model.NewFile(filepath.Base(path), path, size)
	node.ReadErr = err
	return node
}

func (s *Scanner) scanDirectory(path string) *model.Node {
	children, err := s.listChildren(path)
	if err != nil {
		s.logger.Log(logging.LevelWarn, fmt.Sprintf("ディレクトリ '%s' の一覧取得に失敗、空として扱います", path), err)
	}

	nodes := make([]*model.Node, 0, len(children))
	for _, child := range children {
		if child.isDir {
			nodes = append(nodes, s.scanDirectory(child.path))
		} else {
			nodes = append(nodes, s.scanFile(child.path))
		}
	}

	node := model.NewDirectory(filepath.Base(path), path, nodes)
	node.ReadErr = err
	return node
}

type child struct {
	path  string
	isDir bool
}

// listChildren はディレクトリ直下の通常ファイルとディレクトリを並び替えて返します
func (s *Scanner) listChildren(dir string) ([]child, error) {
	entries, err := s.readDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリ '%s' の読み込みに失敗しました: %w", dir, err)
	}

	children := make([]child, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// シンボリックリンクはリンク先の種別で判定する
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Log(logging.LevelWarn, fmt.Sprintf("パス '%s' の情報取得に失敗、スキップします", path), err)
			continue
		}
		if !info.IsDir() && !info.Mode().IsRegular() {
			s.logger.Log(logging.LevelDebug, fmt.Sprintf("特殊ファイルのためスキップ: %s", path), nil)
			continue
		}
		children = append(children, child{path: path, isDir: info.IsDir()})
	}

	paths := make([]string, len(children))
	for i, c := range children {
		paths[i] = c.path
	}
	order := SortDescendingFold(paths)
	sorted := make([]child, len(children))
	for i, idx := range order {
		sorted[i] = children[idx]
	}
	return sorted, nil
}

// SortDescendingFold は paths を大文字小文字を区別せず降順に並べたときの
// 元のインデックス列を返します。畳み込み後に等しいものは元の文字列の降順です。
func SortDescendingFold(paths []string) []int {
	folder := cases.Fold()
	folded := make([]string, len(paths))
	for i, p := range paths {
		folded[i] = folder.String(p)
	}

	order := make([]int, len(paths))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		fa, fb := folded[order[a]], folded[order[b]]
		if fa != fb {
			return fa > fb
		}
		return paths[order[a]] > paths[order[b]]
	})
	return order
}

// FirstLineLength はファイルの先頭行の文字数を返します。
// 行末の "\n"、"\r"、"\r\n" は含みません。空のファイルは 0 です。
// UTF-8 として不正なバイトはそれぞれ 1 文字として数えます。
func FirstLineLength(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("ファイル '%s' を開けません: %w", path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("ファイル '%s' の読み込みに失敗しました: %w", path, err)
	}
	if i := bytes.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}

	return int64(utf8.RuneCount(line)), nil
}
