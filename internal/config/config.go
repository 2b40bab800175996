// Package config はコマンドの実行設定を提供します
package config

import (
	"fmt"

	"FileTree/internal/infrastructure/logging"
)

// ルート選択ダイアログの種類
const (
	PickerNone   = ""
	PickerFyne   = "fyne"
	PickerNative = "native"
)

// Config は filetree コマンドの設定です
type Config struct {
	// LogLevel はこのレベル以上のログのみ出力します
	LogLevel string
	// OutputDir が空でなければ標準出力の代わりにこのディレクトリへ書き出します
	OutputDir string
	// Picker はパス未指定時に使用するフォルダ選択ダイアログです
	Picker string
}

// Default は既定の設定を返します
func Default() Config {
	return Config{LogLevel: logging.LevelWarn}
}

// Validate は設定値を検証し、ログレベルを正規化します
func (c *Config) Validate() error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("設定が不正です: %w", err)
	}
	c.LogLevel = level

	switch c.Picker {
	case PickerNone, PickerFyne, PickerNative:
	default:
		return fmt.Errorf("設定が不正です: 不明なダイアログ種別 %q", c.Picker)
	}
	return nil
}
