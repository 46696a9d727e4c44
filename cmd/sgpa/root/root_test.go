package root

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"weighted", []string{"O:4", "A:3", "B+:2"}, "SGPA 8.67"},
		{"f with incomplete row", []string{"F:3", ":2"}, "SGPA 4.00"},
		{"no rows", nil, "SGPA  0.00"},
		{"unknown grade", []string{"X:3"}, "SGPA  0.00"},
		{"oversized credit", []string{"O:100000000000000000"}, "SGPA  0.00"},
		{"oversized credit beside valid row", []string{"O:9223372036854775807", "A:1"}, "SGPA 8.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"calc"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "calc", "--json", "O:4", "A:3", "B+:2")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "8.67", got["sgpa"])

	out, err = run(t, "calc", "--json", "Z:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sgpa":null}`, out)
}

func TestCalcVerbose(t *testing.T) {
	out, err := run(t, "calc", "-v", "O:4", "X:2")
	require.NoError(t, err)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "= 40")
	assert.Contains(t, out, `"X":"2"`)
	assert.Contains(t, out, "Credits: 4")
	assert.Contains(t, out, "Points: 40")
	assert.Contains(t, out, "SGPA 10.00")
}

func TestGradesCommand(t *testing.T) {
	out, err := run(t, "grades")
	require.NoError(t, err)
	for _, want := range []string{"O  10", "A+ 9", "P  0", "F  4", "Credits: 1-7"} {
		assert.Contains(t, out, want)
	}
}

func TestCalcWithConfigAndLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "sgpa.log")
	cfgPath := filepath.Join(dir, "sgpa.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: dark\nlog_file: "+logPath+"\nlog_level: debug\n"), 0o644))

	_, err := run(t, "--config", cfgPath, "calc", "A:3")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"theme":"dark"`)
	assert.Contains(t, string(data), `"message":"calculated"`)
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sgpa.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: dark\n"), 0o644))
	t.Setenv("HOME", dir)

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath, "--dark=false", "--log-level", "warn"}))
	opts := &globalOptions{configPath: cfgPath, dark: false, logLevel: "warn"}
	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.False(t, cfg.Dark())
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestBadConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sgpa.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: neon\n"), 0o644))

	_, err := run(t, "--config", cfgPath, "calc", "A:3")
	assert.ErrorContains(t, err, "invalid theme")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "calc")
	assert.Error(t, err)

	_, err = run(t, "--log-level", "chatty", "calc")
	assert.Error(t, err)
}
