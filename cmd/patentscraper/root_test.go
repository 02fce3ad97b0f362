package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const patentPage = `<html><body>
<table>
<tr><td>United States Patent</td><td>5,000,000</td></tr>
<tr><td>Smith</td><td>Jan 1, 2000</td></tr>
<tr><th>Assignee:</th><td>Acme Corp</td></tr>
</table>
</body></html>`

// setupRun isolates the command from the host configuration and returns an
// empty output dir plus a config file path.
func setupRun(t *testing.T) (string, string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("s1") == "5000000.PN." {
			_, _ = w.Write([]byte(patentPage))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: error\n"), 0o644))

	t.Setenv("PATENT_SCRAPER_ORIGIN", srv.URL)
	t.Setenv("PATENT_SCRAPER_OUTPUT_DIR", "")
	t.Setenv("PATENT_SCRAPER_LOG_LEVEL", "")
	t.Setenv("PATENT_SCRAPER_TIMEOUT", "")

	return filepath.Join(dir, "reports"), configPath
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootWritesReport(t *testing.T) {
	outDir, configPath := setupRun(t)
	input := writeInput(t, "5000000\n")

	out, err := execute(t, "", "--config", configPath, "--output-dir", outDir, "--no-progress", input)
	require.NoError(t, err)
	assert.Contains(t, out, "1 succeeded, 0 failed")

	got, err := os.ReadFile(filepath.Join(outDir, "5000000"))
	require.NoError(t, err)

	want := "Primary Patent #: 5000000\n" +
		"Primary Patent Issue date: Jan 1, 2000\n" +
		"Primary Patent Assignee: Acme Corp\n" +
		"Number of References: 0\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRootPromptsForInputFile(t *testing.T) {
	outDir, configPath := setupRun(t)
	input := writeInput(t, "5000000\n")

	out, err := execute(t, input+"\n", "--config", configPath, "--output-dir", outDir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, inputPrompt))

	_, err = os.Stat(filepath.Join(outDir, "5000000"))
	require.NoError(t, err)
}

func TestRootFailuresExitWithError(t *testing.T) {
	outDir, configPath := setupRun(t)
	input := writeInput(t, "5000000\n1234567\n")

	out, err := execute(t, "", "--config", configPath, "--output-dir", outDir, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 patents failed")
	assert.Contains(t, out, "1234567\tfetch_error")

	_, err = os.Stat(filepath.Join(outDir, "5000000"))
	require.NoError(t, err)
}

func TestRootMissingInputFile(t *testing.T) {
	outDir, configPath := setupRun(t)

	_, err := execute(t, "", "--config", configPath, "--output-dir", outDir, filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input file")
}

func TestRootRejectsInvalidFlags(t *testing.T) {
	outDir, configPath := setupRun(t)
	input := writeInput(t, "5000000\n")

	_, err := execute(t, "", "--config", configPath, "--output-dir", outDir, "--log-level", "loud", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRootEmptyPrompt(t *testing.T) {
	_, configPath := setupRun(t)

	_, err := execute(t, "\n", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input file given")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "patentscraper dev\n", out)
}
