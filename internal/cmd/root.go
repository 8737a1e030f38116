package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/0x4ndy/nansi/internal/exec"
	"github.com/0x4ndy/nansi/internal/log"
	"github.com/0x4ndy/nansi/internal/nansifile"
)

var rootCmd = &cobra.Command{
	Use:   "nansi NANSIFILE",
	Short: "Declarative sequential task runner",
	Long: `nansi reads an ordered list of commands from a NansiFile and executes
them one by one. Labeled commands that succeed unlock later commands that
list those labels as prerequisites; commands with unmet prerequisites are
skipped. Arguments may reference environment variables as {NAME}.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var (
	rootReportDir string
	rootVerbose   bool
	rootLogFormat string
)

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.Flags().StringVar(&rootReportDir, "report-dir", "", "directory to write a JSON run report to (default: no report)")
	rootCmd.PersistentFlags().BoolVar(&rootVerbose, "verbose", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "text", "log format for stderr diagnostics (text|json)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	file, err := nansifile.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded NansiFile", "path", file.Path, "items", len(file.ExecList))

	executor := &exec.Executor{
		Out:       os.Stdout,
		ReportDir: rootReportDir,
		Logger:    logger,
	}

	// Per-item failures are absorbed into the result; only fatal errors
	// (templating, output decoding, report write) surface here.
	_, err = executor.Run(file)
	return err
}

// setupLogger configures the process-wide logger from the persistent
// flags. Logs go to stderr: stdout carries the execution report.
func setupLogger() *log.Logger {
	config := log.DefaultConfig()
	if rootVerbose {
		config = log.VerboseConfig()
	}
	config.Format = log.ParseFormat(rootLogFormat)

	logger := log.New(config)
	log.SetDefaultLogger(logger)
	return logger
}
