// Package logging はロギング機能を提供します
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// LogEntry はログエントリを表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（INFO, WARN, ERROR等）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// ParseLevel はフラグなどで指定された文字列をログレベルに変換します
func ParseLevel(s string) (string, error) {
	level := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("不明なログレベルです: %q", s)
	}
	return level, nil
}

// JSONLogger はJSONフォーマットでログを出力するロガーです
type JSONLogger struct {
	writer   io.Writer
	minLevel string
}

// NewJSONLogger は新しいJSONLoggerインスタンスを作成します
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONLogger{writer: writer, minLevel: LevelDebug}
}

// WithMinLevel は指定レベル未満のログを破棄するロガーを返します
func (l *JSONLogger) WithMinLevel(level string) *JSONLogger {
	return &JSONLogger{writer: l.writer, minLevel: level}
}

// Log はメッセージをJSONフォーマットでログ出力します
func (l *JSONLogger) Log(level, message string, err error) {
	if rank, ok := levelRank[strings.ToUpper(level)]; ok && rank < levelRank[l.minLevel] {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   message,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ログのJSONエンコードに失敗: %v\n", err)
		return
	}

	fmt.Fprintln(l.writer, string(jsonData))
}

// Nop は何も出力しないロガーです
type Nop struct{}

// Log は何もしません
func (Nop) Log(string, string, error) {}
