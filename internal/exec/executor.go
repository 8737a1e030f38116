package exec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/0x4ndy/nansi/internal/errors"
	"github.com/0x4ndy/nansi/internal/log"
	"github.com/0x4ndy/nansi/internal/nansifile"
)

// Executor runs the items of a NansiFile sequentially, in input order.
type Executor struct {
	// Out is where the console report is written. Defaults to stdout.
	Out io.Writer

	// ReportDir, when non-empty, is the directory one JSON run report is
	// written to after the loop completes.
	ReportDir string

	// Logger receives ambient diagnostics. The console contract on Out is
	// produced directly, never through the logger.
	Logger *log.Logger
}

// RunResult accumulates the per-item outcomes of one run.
type RunResult struct {
	RunID          uuid.UUID
	TotalItems     int
	SucceededItems int
	FailedItems    int
	SkippedItems   int
	ItemResults    []*ItemResult
	StartTime      time.Time
	EndTime        time.Time
}

// ItemResult records the outcome of one item.
type ItemResult struct {
	// Position is the item's 1-based position in the list.
	Position int
	Item     nansifile.Item
	Status   Status

	// ExitCode is the process exit status. -1 when the process was never
	// spawned (skipped) or could not be spawned.
	ExitCode int

	// Output is the captured stdout on success, the captured stderr on a
	// non-zero exit, or the spawn error's text.
	Output string

	Duration time.Duration

	// UnmetPrerequisites lists the prerequisite labels that were missing
	// from the success-label set when the item was skipped.
	UnmetPrerequisites []string
}

// Run executes every item in list order. Per-item failures (non-zero
// exit, spawn error) and gate skips are absorbed into the result; the
// returned error carries only fatal conditions: templating failures,
// non-decodable process output, and report-write failures. On a fatal
// error the partial result accumulated so far is returned alongside it.
func (e *Executor) Run(file *nansifile.File) (*RunResult, error) {
	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	logger := e.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}
	st := newStyles(out)

	result := &RunResult{
		RunID:      uuid.New(),
		TotalItems: len(file.ExecList),
		StartTime:  time.Now(),
	}

	fmt.Fprintf(out, "Using NansiFile: %s\n", file.Path)
	logger.Debug("starting run",
		"run_id", result.RunID.String(),
		"nansi_file", file.Path,
		"items", len(file.ExecList))

	if duplicates := file.DuplicateLabels(); len(duplicates) > 0 {
		fmt.Fprintf(out, "%s The following aliases are duplicated which may cause issues with conditional execution:\n%s\n",
			st.warn.Render("[WARN]"), formatLabelList(duplicates))
	}

	// Success-label set, scoped to this run. Append-only: a label enters
	// at most once no matter how many items share it.
	succeeded := make(map[string]struct{})

	for idx, item := range file.ExecList {
		position := idx + 1
		ref := item.Ref(position)

		if unmet := unmetPrerequisites(item, succeeded); len(unmet) > 0 {
			result.SkippedItems++
			result.ItemResults = append(result.ItemResults, &ItemResult{
				Position:           position,
				Item:               item,
				Status:             StatusSkip,
				ExitCode:           -1,
				UnmetPrerequisites: unmet,
			})

			if item.PrintStatus {
				printStatus(out, st, StatusSkip, ref, item)
			}
			fmt.Fprintf(out, "Prerequisites for item %s are not met.\n", ref)
			continue
		}

		args, err := expandArgs(item.Args)
		if err != nil {
			result.EndTime = time.Now()
			return result, err
		}

		logger.Debug("spawning item", "ref", ref, "exec", item.Exec)
		itemResult := runItem(item, args)
		itemResult.Position = position

		if !utf8.ValidString(itemResult.Output) {
			result.EndTime = time.Now()
			return result, errors.NewOutputDecodeError(ref)
		}

		if itemResult.Status == StatusOK {
			result.SucceededItems++
			if item.Label != "" {
				if _, ok := succeeded[item.Label]; !ok {
					succeeded[item.Label] = struct{}{}
					logger.Debug("label recorded", "label", item.Label)
				}
			}
		} else {
			result.FailedItems++
		}
		result.ItemResults = append(result.ItemResults, itemResult)

		if item.PrintStatus {
			printStatus(out, st, itemResult.Status, ref, item)
		}
		if item.PrintOutput {
			fmt.Fprintln(out, itemResult.Output)
		}
	}

	result.EndTime = time.Now()

	if e.ReportDir != "" {
		path, err := SaveReport(NewReport(file, result), e.ReportDir)
		if err != nil {
			return result, err
		}
		logger.Debug("report written", "path", path)
	}

	return result, nil
}

// runItem spawns one item's process with the templated argument vector,
// waiting for completion with both streams captured separately.
func runItem(item nansifile.Item, args []string) *ItemResult {
	start := time.Now()

	cmd := osexec.Command(item.Exec, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start)

	switch err := err.(type) {
	case nil:
		return &ItemResult{
			Item:     item,
			Status:   StatusOK,
			ExitCode: 0,
			Output:   stdout.String(),
			Duration: duration,
		}
	case *osexec.ExitError:
		return &ItemResult{
			Item:     item,
			Status:   StatusFail,
			ExitCode: err.ExitCode(),
			Output:   stderr.String(),
			Duration: duration,
		}
	default:
		// The process never ran: program not found, not executable, etc.
		// The OS error text stands in for the captured output.
		return &ItemResult{
			Item:     item,
			Status:   StatusFail,
			ExitCode: -1,
			Output:   err.Error(),
			Duration: duration,
		}
	}
}

// unmetPrerequisites returns the prerequisite labels not yet in the
// success-label set, in prerequisite order. Empty prerequisites are
// always satisfied.
func unmetPrerequisites(item nansifile.Item, succeeded map[string]struct{}) []string {
	var unmet []string
	for _, prereq := range item.Prerequisites {
		if _, ok := succeeded[prereq]; !ok {
			unmet = append(unmet, prereq)
		}
	}
	return unmet
}

// printStatus prints one status line. The argument list shown is the
// original, untemplated one: environment values never reach the console.
func printStatus(out io.Writer, st styles, status Status, ref string, item nansifile.Item) {
	fmt.Fprintf(out, "[%s] %s %s %s\n",
		st.render(status), ref, item.Exec, strings.Join(item.Args, " "))
}

// formatLabelList renders labels as a quoted, bracketed list, e.g.
// ["asd", "ls"], the shape the duplicate warning has always had.
func formatLabelList(labels []string) string {
	quoted := make([]string, len(labels))
	for i, label := range labels {
		quoted[i] = strconv.Quote(label)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
