package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"FileTree/internal/infrastructure/logging"
)

// setupBenchmarkDir creates a temporary directory structure for benchmarking.
func setupBenchmarkDir(tb testing.TB, depth, filesPerDir, dirsPerDir int) string {
	tb.Helper()
	tempDir, err := os.MkdirTemp("", "benchmark_scan_*")
	if err != nil {
		tb.Fatalf("Failed to create temp dir: %v", err)
	}

	createDirContents(tb, tempDir, depth, filesPerDir, dirsPerDir)

	return tempDir
}

func createDirContents(tb testing.TB, currentPath string, depth, filesPerDir, dirsPerDir int) {
	tb.Helper()
	if depth <= 0 {
		return
	}

	for i := 0; i < filesPerDir; i++ {
		fileName := filepath.Join(currentPath, fmt.Sprintf("file_%d_%d.txt", depth, i))
		content := []byte(fmt.Sprintf("Content for file %d at depth %d\nsecond line", i, depth))
		if err := os.WriteFile(fileName, content, 0644); err != nil {
			tb.Fatalf("Failed to write file %s: %v", fileName, err)
		}
	}

	for i := 0; i < dirsPerDir; i++ {
		subDir := filepath.Join(currentPath, fmt.Sprintf("subdir_%d_%d", depth, i))
		if err := os.Mkdir(subDir, 0755); err != nil {
			tb.Fatalf("Failed to create subdir %s: %v", subDir, err)
		}
		createDirContents(tb, subDir, depth-1, filesPerDir, dirsPerDir)
	}
}

// BenchmarkScanner_Scan benchmarks building the node tree.
func BenchmarkScanner_Scan(b *testing.B) {
	logger := logging.NewJSONLogger(io.Discard)
	scanner := NewScanner(logger)

	tempDir := setupBenchmarkDir(b, 3, 5, 2)
	b.Cleanup(func() {
		os.RemoveAll(tempDir)
	})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := scanner.Scan(tempDir); err != nil {
			b.Fatalf("Scan failed during benchmark: %v", err)
		}
	}
}
