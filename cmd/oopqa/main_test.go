package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sghaida/oopqa/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenWriter fails every write, like a closed stdout.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("bad file descriptor") }

func TestRun_PrintsDoneForAnyArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "empty slice", args: []string{}},
		{name: "positional", args: []string{"foo", "bar"}},
		{name: "unknown flags", args: []string{"-x", "--verbose", "--level=debug"}},
		{name: "help", args: []string{"--help"}},
		{name: "short help", args: []string{"-h"}},
		{name: "help word", args: []string{"help"}},
		{name: "version", args: []string{"--version"}},
		{name: "completion request", args: []string{"__complete", ""}},
		{name: "completion cmd", args: []string{"completion", "bash"}},
		{name: "terminator", args: []string{"--", "-q"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)

			assert.Equal(t, 0, code)
			assert.Equal(t, "Done\n", stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	for i := 0; i < 10; i++ {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"x"}, &stdout, &stderr))
		require.Equal(t, "Done\n", stdout.String())
		require.Empty(t, stderr.String())
	}
}

func TestRun_BrokenStdoutStillExitsZero(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	code := run(nil, brokenWriter{}, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRunWithLevel_LogsToStderrOnly(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := runWithLevel([]string{"a", "b"}, &stdout, &stderr, zerolog.DebugLevel)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Done\n", stdout.String())

	logs := stderr.String()
	assert.Contains(t, logs, "starting")
	assert.Contains(t, logs, "ignored_args=2")
	assert.Contains(t, logs, "routine=q1")
	assert.Contains(t, logs, "routine=q2")
	assert.Contains(t, logs, "completion line written")
	assert.Less(t, strings.Index(logs, "routine=q1"), strings.Index(logs, "routine=q2"))
}

func TestRunWithLevel_ReportsWriteFailure(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	code := runWithLevel(nil, brokenWriter{}, &stderr, zerolog.ErrorLevel)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "run failed")
	assert.Contains(t, stderr.String(), "bad file descriptor")
}

func TestRootCmd_ReturnsProgramErrors(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := zerolog.New(&logs).Level(zerolog.DebugLevel)

	cmd := newRootCmd(log, 3, func() (*app.Program, error) {
		return app.New(app.DefaultConfig(), app.WithOutput(brokenWriter{}))
	})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)

	var we *app.WriteError
	assert.True(t, errors.As(err, &we))
	assert.Contains(t, logs.String(), `"ignored_args":3`)
}

func TestRootCmd_ReturnsBuildErrors(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd(zerolog.Nop(), 0, func() (*app.Program, error) {
		return app.New(app.DefaultConfig())
	})
	cmd.SetArgs([]string{})

	assert.ErrorIs(t, cmd.Execute(), app.ErrNilOutput)
}
