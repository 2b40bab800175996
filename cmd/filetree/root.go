package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"FileTree/internal/config"
	"FileTree/internal/gui"
	"FileTree/internal/infrastructure/filesystem"
	"FileTree/internal/infrastructure/logging"
	"FileTree/internal/interface/ui"
	"FileTree/internal/usecase/report"
	"FileTree/internal/usecase/tree"
)

const pickerTitle = "ツリー表示するフォルダを選択"

// errNotFound はツリー表示できないパスが指定されたことを表します
var errNotFound = errors.New("path not found")

// directoryPicker はルートディレクトリを対話的に選択します
type directoryPicker interface {
	SelectDirectory(title string) (string, error)
}

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "filetree [path]",
	Short: "Render a directory as a tree with cumulative sizes",
	Long: `filetree prints a file or directory as a connector-style tree.

Each file is reported with the character length of its first line,
and each directory with the sum of the files beneath it.

Example:
  filetree ./project
  filetree ./project --out ./reports
  filetree --pick native`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTree(cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&cfg.OutputDir, "out", "", "Write the tree to a timestamped file in this directory")
	rootCmd.Flags().StringVar(&cfg.Picker, "pick", "", "Choose the root with a folder dialog (fyne, native)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runTree(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewJSONLogger(stderr).WithMinLevel(cfg.LogLevel)
	scanner := filesystem.NewScanner(logger)

	path, err := resolvePath(cfg, args, scanner)
	if err != nil {
		logger.Log(logging.LevelError, "ルートの選択に失敗", err)
		return err
	}

	rendered, ok := tree.NewRenderer(scanner, logger).Render(path)
	if !ok {
		return fmt.Errorf("%s: %w", path, errNotFound)
	}

	generator := report.NewGenerator()
	if cfg.OutputDir == "" {
		return generator.WriteTree(stdout, rendered)
	}

	outputFile, outputPath, err := generator.CreateOutputFile(cfg.OutputDir)
	if err != nil {
		logger.Log(logging.LevelError, "出力ファイルの作成に失敗", err)
		return err
	}
	defer outputFile.Close()

	if err := generator.WriteTree(outputFile, rendered); err != nil {
		return err
	}
	logger.Log(logging.LevelInfo, fmt.Sprintf("ツリーを出力しました: %s", outputPath), nil)
	fmt.Fprintln(stdout, outputPath)
	return nil
}

func resolvePath(cfg config.Config, args []string, validator filesystem.DirectoryValidator) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	var picker directoryPicker
	switch cfg.Picker {
	case config.PickerFyne:
		picker = gui.NewDirectorySelector(validator)
	case config.PickerNative:
		picker = ui.NewDirectorySelector(validator)
	default:
		return "", errors.New("a path argument or --pick is required")
	}
	return picker.SelectDirectory(pickerTitle)
}
