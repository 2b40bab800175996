// Package gui はFyneによるルート選択ウィンドウを提供します
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

// Default window size constants
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// DirectoryValidator は、ディレクトリパスの検証を行うインターフェース
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectorySelector は、Fyneを使用してディレクトリ選択を行う構造体
type DirectorySelector struct {
	validator DirectoryValidator
}

// NewDirectorySelector は、DirectorySelectorの新しいインスタンスを作成します
func NewDirectorySelector(validator DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{
		validator: validator,
	}
}

// SelectDirectory は、Fyneダイアログを使用してツリー表示のルートを選択し、
// 選択されたパスまたはエラーを返します
func (s *DirectorySelector) SelectDirectory(title string) (string, error) {
	var result struct {
		path string
		err  error
	}

	a := app.New()
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	d := dialog.NewFolderOpen(func(selectedURI fyne.ListableURI, err error) {
		defer a.Quit()
		result.path, result.err = s.accept(selectedURI, err)
	}, w)
	// ウィンドウを閉じた場合はキャンセル扱い
	w.SetOnClosed(func() {
		if result.path == "" && result.err == nil {
			result.err = fmt.Errorf("ユーザーがキャンセルしました")
		}
	})
	d.Show()
	w.Show()
	a.Run()

	return result.path, result.err
}

// accept は、ダイアログのコールバック結果を検証します
func (s *DirectorySelector) accept(selectedURI fyne.ListableURI, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("フォルダ選択エラー: %w", err)
	}
	if selectedURI == nil {
		return "", fmt.Errorf("ユーザーがキャンセルしました")
	}
	path := selectedURI.Path()
	if err := s.validator.ValidateDirectoryPath(path); err != nil {
		return "", fmt.Errorf("パス検証エラー: %w", err)
	}
	return path, nil
}
