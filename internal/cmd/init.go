package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0x4ndy/nansi/internal/nansifile"
	"github.com/0x4ndy/nansi/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init [FILE]",
	Short: "Create a starter NansiFile",
	Long: `Create a starter NansiFile with one example item. When run interactively,
prompts for the first command; otherwise writes the defaults. Refuses to
overwrite an existing file unless overwriting is confirmed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// isInteractive is a seam for tests; prompting requires a terminal.
var isInteractive = tui.IsInteractive

func runInit(cmd *cobra.Command, args []string) error {
	path := "nansi.json"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		if !isInteractive() {
			return fmt.Errorf("%s already exists", path)
		}
		overwrite, err := tui.PromptForConfirmation(
			fmt.Sprintf("%s already exists. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("%s already exists", path)
		}
	}

	program := "echo"
	argument := "hello"
	if isInteractive() {
		var err error
		program, err = tui.PromptForString(tui.Prompt{
			Message:  "First command to run",
			Default:  program,
			Required: true,
		})
		if err != nil {
			return err
		}
		argument, err = tui.PromptForString(tui.Prompt{
			Message:     "Argument for it (empty for none)",
			Default:     argument,
			Placeholder: "use {NAME} to reference an environment variable",
		})
		if err != nil {
			return err
		}
	}

	file := nansifile.File{
		ExecList: []nansifile.Item{
			{
				Label:       "first",
				Exec:        program,
				PrintStatus: true,
				PrintOutput: true,
			},
		},
	}
	if argument != "" {
		file.ExecList[0].Args = []string{argument}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
