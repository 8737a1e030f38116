package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	origDate := Date

	Version = "1.2.3"
	Commit = "abc123def456"
	Date = "2026-01-01T00:00:00Z"

	defer func() {
		Version = origVersion
		Commit = origCommit
		Date = origDate
	}()

	info := GetInfo()

	if info.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", info.Version)
	}
	if info.Commit != "abc123def456" {
		t.Errorf("expected commit abc123def456, got %s", info.Commit)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected go version %s, got %s", runtime.Version(), info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("unexpected platform %s", info.Platform)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "0.3.0",
		Commit:    "0123456789abcdef",
		Date:      "2026-02-02",
		GoVersion: "go1.24.6",
		Platform:  "linux/amd64",
	}

	s := info.String()

	if !strings.HasPrefix(s, "nansi 0.3.0") {
		t.Errorf("expected string to start with tool name and version, got %q", s)
	}
	if !strings.Contains(s, "01234567") {
		t.Errorf("expected shortened commit in %q", s)
	}
	if strings.Contains(s, "0123456789abcdef") {
		t.Errorf("expected commit to be shortened in %q", s)
	}
}

func TestInfoShort(t *testing.T) {
	info := Info{Version: "0.3.0"}
	if got := info.Short(); got != "0.3.0" {
		t.Errorf("expected 0.3.0, got %s", got)
	}
}
