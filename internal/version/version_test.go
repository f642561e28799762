package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("expected version %q, got %q", Version, info.Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected go version %q, got %q", runtime.Version(), info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("unexpected platform %q", info.Platform)
	}
}

func TestFull(t *testing.T) {
	out := Full()
	if !strings.HasPrefix(out, "bookclean "+Version) {
		t.Errorf("expected bookclean header, got %q", out)
	}
	if !strings.Contains(out, "Commit:") {
		t.Errorf("expected commit line, got %q", out)
	}
}
