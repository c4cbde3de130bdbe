package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// writeFile writes content under t.TempDir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// fastConfig disables the transfer pause.
func fastConfig(t *testing.T) string {
	return writeFile(t, "netroute.yaml", "transfer:\n  step_delay: 0s\n")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "netroute dev\n", out)
}

func TestRoot_Script(t *testing.T) {
	script := writeFile(t, "topology.txt", strings.Join([]string{
		"# three computers",
		"add", "add", "add",
		"route 0 1 4",
		"route 1 2 3",
		"route 0 2 10",
		"path 0 2",
		"transfer 0 2 3",
		"show",
	}, "\n"))

	out, logs, err := execute(t, "", "--config", fastConfig(t), "--script", script, "--log-level", "debug")
	require.NoError(t, err)

	assert.NotContains(t, out, "netroute> ")
	assert.Contains(t, out, "Shortest path (dijkstra): 0 -> 1 -> 2\nDistance: 7ms\n")
	assert.Contains(t, out, "Transfer complete: 3 packets from 0 to 2\n")
	assert.Contains(t, out, "Computer 0 -> 1(4ms) 2(10ms) | Sent: 3 | Received: 0\n")
	assert.Contains(t, logs, "netroute started")
	assert.Contains(t, logs, "level=DEBUG")
}

func TestRoot_Stdin(t *testing.T) {
	out, _, err := execute(t, "add\nexit\nadd\n", "--config", fastConfig(t))
	require.NoError(t, err)

	assert.Contains(t, out, "netroute> Computer 0 added\n")
	assert.NotContains(t, out, "Computer 1 added", "commands after exit must not run")
}

func TestRoot_BadInputs(t *testing.T) {
	_, _, err := execute(t, "", "--script", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	_, _, err = execute(t, "", "--config", writeFile(t, "bad.yaml", "network:\n  capacity: -1\n"))
	require.Error(t, err)

	_, _, err = execute(t, "", "--log-level", "loud")
	require.Error(t, err)

	_, _, err = execute(t, "", "extra")
	require.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig(rootFlags{logLevel: "warn", metricsAddr: "127.0.0.1:0"})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:0", cfg.Metrics.Addr)
}
