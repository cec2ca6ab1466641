package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NightKikko/datasearcher/internal/config"
	"github.com/cybergodev/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under a fresh temp directory and returns its path.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	// Keep tests away from any config file in the working directory
	t.Setenv(config.HomeEnv, t.TempDir())

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func fixtureTree(t *testing.T) string {
	return writeTree(t, map[string]string{
		"notes.txt":                 "first line\nthe Needle is here\nlast line\n",
		"data/users.json":           `{"name": "needle", "tags": ["hay", "needles"]}`,
		"node_modules/pkg/index.js": "needle in dependencies\n",
		"image.png":                 "needle",
		"bin.txt":                   "needle\x00binary",
	})
}

func TestRootCommand(t *testing.T) {
	out, _, err := execute(t, "", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "datasearcher")
	assert.Contains(t, out, "search")
	assert.Contains(t, out, "config")
}

func TestSearchCommandText(t *testing.T) {
	root := fixtureTree(t)

	out, stderr, err := execute(t, "", "search", "needle", root, "--no-log-file")
	require.NoError(t, err)

	assert.Contains(t, out, "SEARCH PARAMETERS")
	assert.Contains(t, out, "Search term: needle")
	assert.Contains(t, out, " File: notes.txt (1 matches) ")
	assert.Contains(t, out, "Line 2:\n  the Needle is here")
	assert.Contains(t, out, "JSON Path: $.name")
	assert.Contains(t, out, "JSON Path: $.tags[1]")
	assert.NotContains(t, out, "index.js")
	assert.NotContains(t, out, "bin.txt")
	assert.NotContains(t, out, "image.png")

	assert.Contains(t, stderr, "Found 5 files to search in")
	assert.Contains(t, stderr, "Search completed.")
}

func TestSearchCommandJSON(t *testing.T) {
	root := fixtureTree(t)

	out, _, err := execute(t, "", "search", "needle", root, "--no-log-file", "--quiet", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Term  string `json:"term"`
		Stats struct {
			FilesFound     int `json:"files_found"`
			FilesProcessed int `json:"files_processed"`
			FilesCompleted int `json:"files_completed"`
			MatchesFound   int `json:"matches_found"`
		} `json:"stats"`
		Files []struct {
			Relative string `json:"relative"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc), out)

	assert.Equal(t, "needle", doc.Term)
	assert.Equal(t, 5, doc.Stats.FilesFound)
	assert.Equal(t, 2, doc.Stats.FilesProcessed)
	assert.Equal(t, 5, doc.Stats.FilesCompleted)
	// 1 line match in notes.txt, 1 line match plus 2 structured matches in users.json
	assert.Equal(t, 4, doc.Stats.MatchesFound)
	require.Len(t, doc.Files, 2)
	assert.Equal(t, filepath.Join("data", "users.json"), doc.Files[0].Relative)
	assert.Equal(t, "notes.txt", doc.Files[1].Relative)
}

func TestSearchCommandCaseSensitive(t *testing.T) {
	root := fixtureTree(t)

	out, _, err := execute(t, "", "search", "Needle", root, "--no-log-file", "--quiet", "--case-sensitive")
	require.NoError(t, err)

	assert.Contains(t, out, "notes.txt")
	assert.NotContains(t, out, "users.json")
	assert.Contains(t, out, " Total: 1 matches in 1 files ")
}

func TestSearchCommandFlagsOverrideExtensions(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go":  "package needle\n",
		"b.txt": "needle\n",
	})

	out, _, err := execute(t, "", "search", "needle", root, "--no-log-file", "--quiet", "--ext", "GO")
	require.NoError(t, err)
	assert.Contains(t, out, "a.go")
	assert.NotContains(t, out, "b.txt")

	out, _, err = execute(t, "", "search", "needle", root, "--no-log-file", "--quiet", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "a.go")
	assert.Contains(t, out, "b.txt")
}

func TestSearchCommandNoMatches(t *testing.T) {
	root := fixtureTree(t)

	out, _, err := execute(t, "", "search", "ghost", root, "--no-log-file", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "No matches found for 'ghost'")
}

func TestSearchCommandOutputFile(t *testing.T) {
	root := fixtureTree(t)
	outPath := filepath.Join(t.TempDir(), "report.md")

	out, _, err := execute(t, "", "search", "needle", root, "--no-log-file", "--format", "markdown", "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Search results for `needle`"))
}

func TestSearchCommandWritesRunLog(t *testing.T) {
	root := fixtureTree(t)
	logDir := filepath.Join(t.TempDir(), "logs")

	_, _, err := execute(t, "", "search", "needle", root, "--quiet", "--log-dir", logDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== datasearcher Run Log ===")
	assert.Contains(t, string(data), "Matches found: 4")
}

func TestSearchCommandConfigFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep/a.txt": "needle\n",
		"skip/b.txt": "needle\n",
	})
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("exclude: [skip]\nno_log_file: true\nformat: yaml\n"), 0644))

	out, _, err := execute(t, "", "search", "needle", root, "--quiet", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "term: needle")
	assert.Contains(t, out, filepath.Join("keep", "a.txt"))
	assert.NotContains(t, out, filepath.Join("skip", "b.txt"))
}

func TestSearchCommandErrors(t *testing.T) {
	root := fixtureTree(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"verbose and quiet", []string{"search", "x", root, "--verbose", "--quiet"}, "cannot use both --verbose and --quiet"},
		{"bad timeout", []string{"search", "x", root, "--timeout", "soon"}, "invalid timeout format"},
		{"bad format", []string{"search", "x", root, "--no-log-file", "--format", "pdf"}, "invalid format"},
		{"bad exclude", []string{"search", "x", root, "--no-log-file", "--exclude", "("}, "invalid exclude pattern"},
		{"missing config", []string{"search", "x", root, "--config", "/nonexistent/config.yaml"}, "failed to load config"},
		{"too many args", []string{"search", "a", "b", "c"}, "accepts at most 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchCommandInteractive(t *testing.T) {
	root := fixtureTree(t)
	// term, directory, exclude, extensions, workers, case sensitive
	stdin := strings.Join([]string{"Needle", root, "", "txt", "4", "y"}, "\n") + "\n"

	out, _, err := execute(t, stdin, "search", "--no-log-file")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter search term")
	assert.Contains(t, out, "Enter directory to search [.]")
	assert.Contains(t, out, "Search term: Needle")
	assert.Contains(t, out, "File extensions: .txt")
	assert.Contains(t, out, "Max workers: 4")
	assert.Contains(t, out, "Case sensitive: true")
	assert.Contains(t, out, " Total: 1 matches in 1 files ")
}

func TestSearchCommandInteractiveRequiresTerm(t *testing.T) {
	_, _, err := execute(t, "\n", "search", "--no-log-file")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search term is required")
}

func TestConfigCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_workers: 12\n"), 0644))

	out, _, err := execute(t, "", "config", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "max_workers: 12")
	assert.Contains(t, out, "- node_modules")
	assert.Contains(t, out, "format: text")

	cfg, err := config.LoadConfig(writeConfigCopy(t, out))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxWorkers)
}

func TestConfigCommandInvalid(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: loud\n"), 0644))

	_, _, err := execute(t, "", "config", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

// writeConfigCopy saves printed YAML so it can be loaded back.
func writeConfigCopy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roundtrip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
