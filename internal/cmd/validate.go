package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0x4ndy/nansi/internal/nansifile"
	"github.com/0x4ndy/nansi/internal/ux"
)

var validateCmd = &cobra.Command{
	Use:   "validate NANSIFILE",
	Short: "Check a NansiFile without running anything",
	Long: `Load a NansiFile and report static findings: the item count, labels
that occur more than once, and prerequisites that reference labels not
defined at any earlier position (those items would always be skipped).
The exit status is non-zero only when the file cannot be loaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateFormat string

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "text", "output format (text|json|yaml)")

	rootCmd.AddCommand(validateCmd)
}

// ValidationReport summarizes the static findings for one NansiFile.
type ValidationReport struct {
	Path            string   `json:"path" yaml:"path"`
	Items           int      `json:"items" yaml:"items"`
	DuplicateLabels []string `json:"duplicate_labels,omitempty" yaml:"duplicate_labels,omitempty"`
	// UnsatisfiablePrerequisites maps an item reference to the prerequisite
	// labels that no earlier item defines.
	UnsatisfiablePrerequisites map[string][]string `json:"unsatisfiable_prerequisites,omitempty" yaml:"unsatisfiable_prerequisites,omitempty"`
}

// String renders the report for the text formatter.
func (r ValidationReport) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "NansiFile: %s\n", r.Path)
	fmt.Fprintf(&b, "Items: %d\n", r.Items)

	if len(r.DuplicateLabels) > 0 {
		fmt.Fprintf(&b, "Duplicate labels: %s\n", strings.Join(r.DuplicateLabels, ", "))
	}
	if len(r.UnsatisfiablePrerequisites) > 0 {
		b.WriteString("Items that can never run:\n")
		for _, ref := range sortedKeys(r.UnsatisfiablePrerequisites) {
			fmt.Fprintf(&b, "  %s: no earlier item is labeled %s\n",
				ref, strings.Join(r.UnsatisfiablePrerequisites[ref], ", "))
		}
	}
	if len(r.DuplicateLabels) == 0 && len(r.UnsatisfiablePrerequisites) == 0 {
		b.WriteString("No issues found")
	}

	return strings.TrimRight(b.String(), "\n")
}

func runValidate(cmd *cobra.Command, args []string) error {
	file, err := nansifile.Load(args[0])
	if err != nil {
		return err
	}

	report := Validate(file)

	formatter, err := ux.NewFormatter(validateFormat, nil)
	if err != nil {
		return err
	}
	return formatter.Format(report)
}

// Validate computes the static findings for a loaded NansiFile.
func Validate(file *nansifile.File) ValidationReport {
	report := ValidationReport{
		Path:            file.Path,
		Items:           len(file.ExecList),
		DuplicateLabels: file.DuplicateLabels(),
	}

	// A prerequisite can only ever be satisfied by a label occurring at an
	// earlier position; anything else makes the item permanently skipped.
	seen := make(map[string]struct{})
	for idx, item := range file.ExecList {
		var unsatisfiable []string
		for _, prereq := range item.Prerequisites {
			if _, ok := seen[prereq]; !ok {
				unsatisfiable = append(unsatisfiable, prereq)
			}
		}
		if len(unsatisfiable) > 0 {
			if report.UnsatisfiablePrerequisites == nil {
				report.UnsatisfiablePrerequisites = make(map[string][]string)
			}
			report.UnsatisfiablePrerequisites[item.Ref(idx+1)] = unsatisfiable
		}
		if item.Label != "" {
			seen[item.Label] = struct{}{}
		}
	}

	return report
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
