package exec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/0x4ndy/nansi/internal/errors"
	"github.com/0x4ndy/nansi/internal/nansifile"
)

// RunReport is the JSON document written once per run when a report
// directory is configured. It records the original argument lists only:
// templated values can carry environment secrets and never leave the
// process.
type RunReport struct {
	RunID          string       `json:"run_id"`
	NansiFile      string       `json:"nansi_file"`
	StartTime      time.Time    `json:"start_time"`
	EndTime        time.Time    `json:"end_time"`
	TotalItems     int          `json:"total_items"`
	SucceededItems int          `json:"succeeded_items"`
	FailedItems    int          `json:"failed_items"`
	SkippedItems   int          `json:"skipped_items"`
	Items          []ItemReport `json:"items"`
}

// ItemReport is one run-report entry.
type ItemReport struct {
	Position           int      `json:"position"`
	Label              string   `json:"label,omitempty"`
	Exec               string   `json:"exec"`
	Args               []string `json:"args,omitempty"`
	Status             string   `json:"status"`
	ExitCode           int      `json:"exit_code"`
	Duration           string   `json:"duration"`
	UnmetPrerequisites []string `json:"unmet_prerequisites,omitempty"`
}

// NewReport builds a run report from a completed run.
func NewReport(file *nansifile.File, result *RunResult) *RunReport {
	report := &RunReport{
		RunID:          result.RunID.String(),
		NansiFile:      file.Path,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		TotalItems:     result.TotalItems,
		SucceededItems: result.SucceededItems,
		FailedItems:    result.FailedItems,
		SkippedItems:   result.SkippedItems,
	}

	for _, ir := range result.ItemResults {
		report.Items = append(report.Items, ItemReport{
			Position:           ir.Position,
			Label:              ir.Item.Label,
			Exec:               ir.Item.Exec,
			Args:               ir.Item.Args,
			Status:             ir.Status.Token(),
			ExitCode:           ir.ExitCode,
			Duration:           ir.Duration.String(),
			UnmetPrerequisites: ir.UnmetPrerequisites,
		})
	}

	return report
}

// SaveReport writes a run report to dir with a timestamped filename and
// returns the written path. A write failure is fatal to the process exit
// code but happens after all items ran.
func SaveReport(report *RunReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", errors.NewReportWriteError(dir, err)
	}

	filename := fmt.Sprintf("%s_%s.json",
		report.StartTime.Format("20060102_150405"),
		report.RunID)
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.NewReportWriteError(dir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", errors.NewReportWriteError(dir, err)
	}

	return path, nil
}
