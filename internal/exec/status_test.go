package exec

import (
	"bytes"
	"testing"
)

func TestStatusToken(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "OK"},
		{StatusFail, "FAIL"},
		{StatusWarn, "WARN"},
		{StatusSkip, "SKIP"},
		{Status(42), "FAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.Token(); got != tt.want {
				t.Errorf("Token() = %q, want %q", got, tt.want)
			}
			if got := tt.status.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStylesPlainForNonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	st := newStyles(&buf)

	// Scripts scan the plain tokens; piped output must not carry escape
	// sequences.
	for _, status := range []Status{StatusOK, StatusFail, StatusWarn, StatusSkip} {
		if got := st.render(status); got != status.Token() {
			t.Errorf("render(%v) = %q, want plain %q", status, got, status.Token())
		}
	}
}
