package exitcode

import (
	"fmt"
	"testing"

	"github.com/0x4ndy/nansi/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: Success,
		},
		{
			name: "file read error",
			err:  errors.NewFileReadError("tasks.json", fmt.Errorf("no such file")),
			want: ConfigError,
		},
		{
			name: "parse error",
			err:  errors.NewFileParseError("tasks.json", fmt.Errorf("unexpected token")),
			want: ConfigError,
		},
		{
			name: "undefined variable",
			err:  errors.NewUndefinedVarError("FOO", "{FOO}"),
			want: TemplateError,
		},
		{
			name: "unbalanced braces",
			err:  errors.NewUnbalancedBracesError("{A{B}"),
			want: TemplateError,
		},
		{
			name: "output decode is a general execution failure",
			err:  errors.NewOutputDecodeError("[1]"),
			want: GeneralError,
		},
		{
			name: "report write",
			err:  errors.NewReportWriteError("/tmp/reports", fmt.Errorf("read-only")),
			want: ReportError,
		},
		{
			name: "wrapped coded error",
			err:  fmt.Errorf("run failed: %w", errors.NewUndefinedVarError("FOO", "{FOO}")),
			want: TemplateError,
		},
		{
			name: "cobra usage error",
			err:  fmt.Errorf("accepts 1 arg(s), received 0"),
			want: UsageError,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("something broke"),
			want: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
