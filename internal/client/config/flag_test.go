package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		initial   Config
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "all flags", args: []string{"-a", "http://api:9090", "-t", "5", "-s", "/tmp/s.db", "-l", "debug"},
			expected: &Config{APIBaseURL: "http://api:9090", RequestTimeout: 5 * time.Second, StoragePath: "/tmp/s.db", LogLevel: "debug"}},
		{name: "foreign flags ignored", args: []string{"-c", "cfg.json", "-a=http://api:1"},
			expected: &Config{APIBaseURL: "http://api:1"}},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectErr: true},
		{name: "negative timeout", args: []string{"-t=-1"}, expectErr: true},
		{name: "sub-second timeout kept without -t", initial: Config{RequestTimeout: 1500 * time.Millisecond},
			args:     []string{"-l", "info"},
			expected: &Config{RequestTimeout: 1500 * time.Millisecond, LogLevel: "info"}},
		{name: "-t overrides earlier timeout", initial: Config{RequestTimeout: 1500 * time.Millisecond},
			args:     []string{"-t", "2"},
			expected: &Config{RequestTimeout: 2 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.initial
			err := parseFlags(&config, tt.args)

			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, &config))
		})
	}
}
