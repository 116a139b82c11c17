package main

import (
	"runtime/debug"
	"testing"
)

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name    string
		ldflags string
		info    *debug.BuildInfo
		want    string
	}{
		{
			name:    "ldflags version wins",
			ldflags: "v1.2.3",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "v0.0.1"}},
			want:    "v1.2.3",
		},
		{
			name:    "build info fills in for dev builds",
			ldflags: "dev",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}},
			want:    "v1.2.3",
		},
		{
			name:    "devel build info is ignored",
			ldflags: "dev",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want:    "dev",
		},
		{
			name:    "nil build info",
			ldflags: "dev",
			info:    nil,
			want:    "dev",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveVersion(tt.ldflags, tt.info); got != tt.want {
				t.Fatalf("resolveVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
