package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workspace switches into a fresh directory holding an output/ folder
func workspace(t *testing.T, withOutputDir bool) string {
	t.Helper()
	dir := t.TempDir()
	if withOutputDir {
		require.NoError(t, os.Mkdir(filepath.Join(dir, "output"), 0o755))
	}
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	t.Setenv("LOG_LEVEL", "ERROR")
	return dir
}

func writeInput(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "grades.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_EndToEnd(t *testing.T) {
	dir := workspace(t, true)
	input := writeInput(t, dir, "Student,Math,Science\nAlice,90,80\nBob,70,100\n")

	code, stdout, stderr := execute(input)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Equal(t, "Report generated:\nTXT: output/report.txt\nCSV: output/summary.csv\n", stdout)

	txt, err := os.ReadFile(filepath.Join(dir, "output", "report.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Student Averages:\nAlice: 85.00\nBob: 85.00\n\nHighest Scores per Subject:\nMath: 90\nScience: 100\n", string(txt))

	summary, err := os.ReadFile(filepath.Join(dir, "output", "summary.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Student,Average\r\nAlice,85.00\r\nBob,85.00\r\n\r\nSubject,Highest Score\r\nMath,90\r\nScience,100\r\n", string(summary))
}

func TestRun_SingleStudentBoundary(t *testing.T) {
	dir := workspace(t, true)
	input := writeInput(t, dir, "Student,Math\nAlice,87\n")

	code, _, stderr := execute(input)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	txt, err := os.ReadFile(filepath.Join(dir, "output", "report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(txt), "Alice: 87.00\n")
	assert.Contains(t, string(txt), "Math: 87\n")
}

func TestRun_HeaderOnly(t *testing.T) {
	dir := workspace(t, true)
	input := writeInput(t, dir, "Student,Math,Science\n")

	code, _, stderr := execute(input)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	txt, err := os.ReadFile(filepath.Join(dir, "output", "report.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Student Averages:\n\nHighest Scores per Subject:\nMath: 0\nScience: 0\n", string(txt))
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.csv", "b.csv"}},
		{"three arguments", []string{"a.csv", "b.csv", "c.csv"}},
		{"unknown flag", []string{"--verbose", "a.csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := workspace(t, false)

			code, stdout, stderr := execute(tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stdout, "Usage:")
			assert.Contains(t, stdout, "gradereport <input-csv-path>")
			assert.Contains(t, stderr, "Error: usage error")

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "usage errors must not touch the filesystem")
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := workspace(t, true)

	code, stdout, stderr := execute(filepath.Join(dir, "missing.csv"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "file not found")
	assert.Contains(t, stderr, "missing.csv")
	assert.NotContains(t, stderr, "Usage:")
}

func TestRun_NonIntegerGrade(t *testing.T) {
	dir := workspace(t, true)
	input := writeInput(t, dir, "Student,Math,Science\nAlice,90,80\nBob,seventy,100\n")

	code, stdout, stderr := execute(input)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "malformed input")
	assert.Contains(t, stderr, `"seventy"`)

	entries, err := os.ReadDir(filepath.Join(dir, "output"))
	require.NoError(t, err)
	assert.Empty(t, entries, "no output files expected")
}

func TestRun_MissingOutputDirectory(t *testing.T) {
	dir := workspace(t, false)
	input := writeInput(t, dir, "Student,Math\nAlice,90\n")

	code, stdout, stderr := execute(input)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "i/o failure")

	_, err := os.Stat(filepath.Join(dir, "output"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_InvalidLogLevel(t *testing.T) {
	dir := workspace(t, true)
	input := writeInput(t, dir, "Student,Math\nAlice,90\n")
	t.Setenv("LOG_LEVEL", "LOUD")

	code, _, stderr := execute(input)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "LOG_LEVEL")
}

func TestRun_DotEnvSetsLogLevel(t *testing.T) {
	dir := workspace(t, true)
	input := writeInput(t, dir, "Student,Math\nAlice,90\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=INFO\n"), 0o644))
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	code, _, stderr := execute(input)
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stderr, "[INFO]")
	assert.Contains(t, stderr, "run=")
}

func TestRun_Profile(t *testing.T) {
	dir := workspace(t, true)
	input := writeInput(t, dir, "Student,Math,Science\nAlice,90,80\nBob,70,100\n")

	code, stdout, stderr := execute("--profile", input)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3+1+3)
	assert.Equal(t, "Report generated:", lines[0])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "Subject", strings.Fields(lines[4])[0])
	assert.Equal(t, []string{"Math", "2", "80.00"}, strings.Fields(lines[5])[:3])
	assert.Equal(t, []string{"Science", "2", "90.00"}, strings.Fields(lines[6])[:3])
}
