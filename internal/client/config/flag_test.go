package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      Config
		wantPanic bool
	}{
		{
			name: "no flags keeps defaults",
			args: []string{"cmd"},
			want: Config{
				APIBaseURL:     "http://127.0.0.1:8000/api",
				RequestTimeout: 10 * time.Second,
				DatabasePath:   "escalator.db",
			},
		},
		{
			name: "all flags set",
			args: []string{"cmd", "-a", "https://escalator.example.com/api", "-t", "30", "-d", "/tmp/creds.db"},
			want: Config{
				APIBaseURL:     "https://escalator.example.com/api",
				RequestTimeout: 30 * time.Second,
				DatabasePath:   "/tmp/creds.db",
			},
		},
		{
			name: "unrelated flags are ignored",
			args: []string{"cmd", "-x", "nope", "-t", "5"},
			want: Config{
				APIBaseURL:     "http://127.0.0.1:8000/api",
				RequestTimeout: 5 * time.Second,
				DatabasePath:   "escalator.db",
			},
		},
		{
			name:      "invalid timeout value panics",
			args:      []string{"cmd", "-t", "soon"},
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = tt.args

			var cfg Config
			cfg.LoadDefaults()

			if tt.wantPanic {
				require.Panics(t, func() { parseFlags(&cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(&cfg) })
			assert.Equal(t, tt.want, cfg)
		})
	}
}
