package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-a", "http://api", "-x", "1"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "http://api"},
		},
		{
			name:         "equals form",
			args:         []string{"-t=5", "-x", "1"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t=5"},
		},
		{
			name:         "several flags keep order",
			args:         []string{"-s", "db.sqlite", "-a=http://api", "-l", "debug"},
			allowedFlags: []string{"-a", "-s", "-l"},
			want:         []string{"-s", "db.sqlite", "-a=http://api", "-l", "debug"},
		},
		{
			name:         "unknown flags dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
		{
			name:         "value that looks like a flag is not consumed",
			args:         []string{"-a", "-t", "5"},
			allowedFlags: []string{"-a", "-t"},
			want:         []string{"-a", "-t", "5"},
		},
		{
			name:         "flag at the end without value",
			args:         []string{"-x", "-a"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "cfg.json", "-a", "x"}, want: "cfg.json"},
		{name: "long", args: []string{"-config=cfg.json"}, want: "cfg.json"},
		{name: "absent", args: []string{"-a", "x"}, want: ""},
		{name: "empty", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
