package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ccsysroot/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("some warning") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug hidden by default",
			log:        func(l *logger.Logger) { l.Debug("hidden") },
			goldenName: "debug_filtered",
		},
		{
			name: "debug shown when verbose",
			log: func(l *logger.Logger) {
				l.SetVerbose(true)
				l.Debug("loaded 3 entries")
			},
			goldenName: "debug_verbose",
		},
		{
			name: "verbose toggled off again",
			log: func(l *logger.Logger) {
				l.SetVerbose(true)
				l.SetVerbose(false)
				l.Debug("hidden")
			},
			goldenName: "debug_filtered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("boom"),
			goldenName: "error_standard",
		},
		{
			name: "zerr chain with metadata",
			err: func() error {
				err := zerr.With(zerr.New("library is not in the remap table"), "library", "foo")
				err = zerr.Wrap(err, "failed to rewrite compile command")
				return zerr.With(err, "entry", 1)
			}(),
			goldenName: "error_chain",
		},
		{
			name: "metadata on a standard cause",
			err: zerr.Wrap(
				zerr.With(errors.New("open compile_commands.json: no such file or directory"), "path", "/b"),
				"failed to read compilation database",
			),
			goldenName: "error_standard_cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetVerbose(true)

	lg.Debug("debug line")
	lg.Error(zerr.With(zerr.New("bad"), "path", "/x"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var debug map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &debug))
	assert.Equal(t, "DEBUG", debug["level"])
	assert.Equal(t, "debug line", debug["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "operation failed", failure["msg"])
	assert.Equal(t, map[string]any{"msg": "bad", "path": "/x"}, failure["error"])
}

func TestLogger_SetJSON_PreservesOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}
