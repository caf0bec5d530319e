package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFromBuildInfo(t *testing.T) {
	info := Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown", Modified: "false"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2024-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	if info.Version != "1.2.3" || info.GitCommit != "abc123" || info.BuildDate != "2024-01-02T03:04:05Z" || info.Modified != "true" {
		t.Fatalf("info %+v", info)
	}

	// ldflags 注入的值优先
	injected := Info{Version: "2.0.0", GitCommit: "deadbeef", BuildDate: "unknown"}
	fillFromBuildInfo(&injected, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})
	if injected.Version != "2.0.0" || injected.GitCommit != "deadbeef" {
		t.Fatalf("injected %+v", injected)
	}
}

func TestVersionStrings(t *testing.T) {
	if s := GetShortVersionString(); !strings.HasPrefix(s, "gitloc version ") {
		t.Fatalf("short %q", s)
	}
	if s := GetVersionString(); !strings.Contains(s, "gitloc has version") {
		t.Fatalf("long %q", s)
	}
}
