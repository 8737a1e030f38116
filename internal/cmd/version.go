package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0x4ndy/nansi/internal/ux"
	"github.com/0x4ndy/nansi/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print version information including version number, git commit,
build date, Go version, and platform.`,
	RunE: runVersion,
}

var (
	versionVerbose bool
	versionJSON    bool
)

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "show detailed version information")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "output version information as JSON")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	if versionJSON {
		formatter, err := ux.NewFormatter("json", nil)
		if err != nil {
			return err
		}
		return formatter.Format(info)
	}

	if versionVerbose {
		fmt.Println(info.String())
		return nil
	}

	fmt.Printf("nansi %s\n", info.Short())
	return nil
}
