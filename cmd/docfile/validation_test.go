package main

import (
	"strings"
	"testing"
)

func TestRequireExactlyOne(t *testing.T) {
	tests := []struct {
		name      string
		flags     []flagSet
		wantErr   bool
		errPrefix string
	}{
		{
			name:      "nothing set",
			flags:     []flagSet{{"--data", false}, {"--data-file", false}, {"lines", false}},
			wantErr:   true,
			errPrefix: "one of --data, --data-file, lines is required",
		},
		{
			name:  "one set",
			flags: []flagSet{{"--data", true}, {"--data-file", false}, {"lines", false}},
		},
		{
			name:      "two set",
			flags:     []flagSet{{"--data", true}, {"--data-file", true}, {"lines", false}},
			wantErr:   true,
			errPrefix: "only one of",
		},
		{
			name:      "all set",
			flags:     []flagSet{{"--data", true}, {"--data-file", true}, {"lines", true}},
			wantErr:   true,
			errPrefix: "only one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireExactlyOne(tt.flags...)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
					return
				}
				if !strings.HasPrefix(err.Error(), tt.errPrefix) {
					t.Errorf("error = %q, want prefix %q", err.Error(), tt.errPrefix)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
