package cli_test

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *cli.Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var f cli.Flags
	f.Register(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t).Config()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), cfg)
}

func TestConfigFromFlags(t *testing.T) {
	cfg, err := parse(t, "-seed", "9", "-gravity", "8", "-input", "2").Config()
	require.NoError(t, err)
	assert.Equal(t, engine.Config{GravityInterval: 8, InputInterval: 2, Seed: 9}, cfg)

	_, err = parse(t, "-gravity", "0").Config()
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantErr   bool
	}{
		{"debug", true, false},
		{"info", false, false},
		{"WARN", false, false},
		{"verbose", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := parse(t, "-log-level", tt.level).Logger(&buf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger.Debug("hello")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("hello")))
		})
	}
}
