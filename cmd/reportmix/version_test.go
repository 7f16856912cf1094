package main

import (
	"runtime/debug"
	"testing"
)

// TestResolveVersion covers every source the version can come from:
// - a version injected with -ldflags wins over build info
// - go install versions are used when no ldflags version is set
// - "(devel)" and missing build info fall back to "dev"
func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name    string
		ldflags string
		info    *debug.BuildInfo
		want    string
	}{
		{"ldflags wins", "v1.2.3", &debug.BuildInfo{Main: debug.Module{Version: "v0.0.0"}}, "v1.2.3"},
		{"go install version", "dev", &debug.BuildInfo{Main: debug.Module{Version: "v1.4.0"}}, "v1.4.0"},
		{"empty ldflags uses build info", "", &debug.BuildInfo{Main: debug.Module{Version: "v1.5.1"}}, "v1.5.1"},
		{"empty ldflags without build info", "", nil, "dev"},
		{"devel build", "dev", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "dev"},
		{"empty module version", "dev", &debug.BuildInfo{}, "dev"},
		{"no build info", "dev", nil, "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveVersion(tt.ldflags, tt.info); got != tt.want {
				t.Errorf("resolveVersion(%q) = %q, user should see %q", tt.ldflags, got, tt.want)
			}
		})
	}
}
