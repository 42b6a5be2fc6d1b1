package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	if !strings.HasPrefix(info, "charla version dev") {
		t.Errorf("unexpected banner %q", info)
	}
	if !strings.Contains(info, "commit: unknown") {
		t.Error("version info should contain 'unknown' for the commit")
	}
	if !strings.Contains(info, runtime.Version()) {
		t.Errorf("version info should contain Go version %s", runtime.Version())
	}
}

func TestGetWithLinkerValues(t *testing.T) {
	originalVersion, originalCommit, originalBuildTime := Version, GitCommit, BuildTime
	defer func() {
		Version, GitCommit, BuildTime = originalVersion, originalCommit, originalBuildTime
	}()

	Version = "v0.3.0"
	GitCommit = "abc123"
	BuildTime = "2026-01-01T00:00:00Z"

	i := Get()
	if i.Version != "v0.3.0" || i.GitCommit != "abc123" || i.BuildTime != "2026-01-01T00:00:00Z" {
		t.Errorf("Get() = %+v", i)
	}
	if !strings.Contains(GetVersionInfo(), "built: 2026-01-01T00:00:00Z") {
		t.Error("version info should contain custom build time")
	}
}
