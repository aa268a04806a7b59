package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/problem"
)

func fixture(name string) string { return filepath.Join("testdata", name) }

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGoldenOutput(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	cases := []struct {
		name string
		args []string
	}{
		{"path_campus_text", []string{"path", fixture("campus.yaml")}},
		{"path_campus_json", []string{"path", "--format", "json", fixture("campus.yaml")}},
		{"path_campus_heuristic_binary", []string{"path", "--priority", "heuristic", "--queue", "binary", fixture("campus.yaml")}},
		{"path_island_text", []string{"path", fixture("island.yaml")}},
		{"exists_island_text", []string{"exists", fixture("island.yaml")}},
		{"exists_campus_json", []string{"exists", "--format", "json", "--priority", "depth", fixture("campus.yaml")}},
		{"validate_campus_text", []string{"validate", fixture("campus.yaml")}},
		{"validate_campus_json", []string{"validate", "--format", "json", fixture("campus.yaml")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			g.Assert(t, tc.name, []byte(out))
		})
	}
}

func TestQueuesAgree(t *testing.T) {
	for _, pr := range problem.Priorities {
		var reports [2]Report
		for i, q := range ValidQueues {
			out, _, err := execute(t, "path", "--format", "json", "--queue", q, "--priority", string(pr), fixture("campus.yaml"))
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal([]byte(out), &reports[i]))
		}
		reports[1].Queue = reports[0].Queue
		assert.Equal(t, reports[0], reports[1], "priority %s", pr)
	}
}

func TestBadProblemFile(t *testing.T) {
	out, _, err := execute(t, "path", fixture("bad_edge.yaml"))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, problem.ErrUnknownNode)
	assert.Contains(t, err.Error(), `edge[0].to "c"`)

	_, _, err = execute(t, "validate", fixture("missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInvalidFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"path", "--format", "xml", fixture("campus.yaml")}, `invalid format "xml"`},
		{"queue", []string{"path", "--queue", "fib", fixture("campus.yaml")}, `invalid queue "fib"`},
		{"priority", []string{"exists", "--priority", "greedy", fixture("campus.yaml")}, "unknown priority mode"},
		{"unknown flag", []string{"path", "--bogus", fixture("campus.yaml")}, "unknown flag: --bogus"},
		{"malformed bool", []string{"path", "--verbose=maybe", fixture("campus.yaml")}, `invalid argument "maybe"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestMissingArgument(t *testing.T) {
	_, _, err := execute(t, "path")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := execute(t, "path", "--verbose", fixture("campus.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "gate -> quad -> hall -> library")
	assert.Contains(t, stderr, "search run started")
	assert.Contains(t, stderr, "search run finished")

	_, stderr, err = execute(t, "path", fixture("campus.yaml"))
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestSubcommandDirect(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Queue: "pairing"}
	cmd := NewExistsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{fixture("campus.yaml")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "reachable: true")
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))

	inner := io.ErrUnexpectedEOF
	err := WrapExitError(ExitCommandError, "load problem", inner)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "load problem: unexpected EOF", err.Error())
	assert.Equal(t, "bare", (&ExitError{Code: 3, Message: "bare"}).Error())
}
