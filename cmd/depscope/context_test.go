package main

import (
	"strings"
	"testing"

	"depscope/internal/config"
)

func TestContextOptions(t *testing.T) {
	cfg = config.DefaultConfig()
	t.Cleanup(func() {
		cfg = nil
		contextDepth, contextCap = 0, 0
	})

	tests := []struct {
		name      string
		depth     int
		cap       int
		depthSet  bool
		capSet    bool
		wantDepth int
		wantCap   int
		wantErr   string
	}{
		{name: "config defaults", wantDepth: 1, wantCap: 30},
		{name: "explicit overrides", depth: 3, cap: 5, depthSet: true, capSet: true, wantDepth: 3, wantCap: 5},
		{name: "explicit depth zero", depth: 0, depthSet: true, wantErr: "--depth must be at least 1"},
		{name: "negative cap", cap: -2, capSet: true, wantErr: "--cap must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contextDepth, contextCap = tt.depth, tt.cap
			opts, err := contextOptions(tt.depthSet, tt.capSet)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.Depth != tt.wantDepth || opts.ResultCap != tt.wantCap {
				t.Errorf("opts = %+v, want depth %d cap %d", opts, tt.wantDepth, tt.wantCap)
			}
		})
	}
}
