package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/pwalczak/gloss/cmd/gloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const testDatabaseJSON = `{
	"API": {"definition": "A contract between software components.", "category": "architecture"},
	"REST": {"definition": "An architectural style for APIs.", "category": "architecture"},
	"JWT": {"definition": "A signed token format.", "category": "security"}
}`

func TestRun_ScansFilesAgainstDatabase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := writeFile(t, dir, "db.json", testDatabaseJSON)
	docPath := writeFile(t, dir, "doc.md", "The REST API returns JSON responses.")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{docPath, "--database", dbPath}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "# Glossary")
	assert.Contains(t, stdout.String(), "### Api")
	assert.Contains(t, stdout.String(), "### Rest")
	assert.NotContains(t, stdout.String(), "Jwt")
	assert.Contains(t, stderr.String(), "Total unique terms found: 2")
}

func TestRun_DirectoryArgumentWithPattern(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := writeFile(t, dir, "db.json", testDatabaseJSON)

	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0755))
	writeFile(t, docs, "auth.md", "Validate the JWT first.")
	writeFile(t, docs, "notes.log", "The API is internal.")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{docs, "--database", dbPath, "--pattern", "*.md"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Jwt")
	assert.NotContains(t, stdout.String(), "Api")
}

func TestRun_WritesOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := writeFile(t, dir, "db.json", testDatabaseJSON)
	docPath := writeFile(t, dir, "doc.md", "The API accepts requests.")
	outPath := filepath.Join(dir, "out", "glossary.json")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{
		docPath,
		"--database", dbPath,
		"--format", "json",
		"--output", outPath,
	}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "Glossary saved to:")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"api"`)
}

func TestRun_NoTermsFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := writeFile(t, dir, "db.json", testDatabaseJSON)
	docPath := writeFile(t, dir, "doc.md", "Nothing matches here.")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{docPath, "--database", dbPath}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No glossary terms found")
}

func TestRun_MissingDatabaseIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := writeFile(t, dir, "doc.md", "The API accepts requests.")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{docPath, "--database", filepath.Join(dir, "missing.json")}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "error:")
}

func TestRun_MalformedDatabaseIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := writeFile(t, dir, "db.json", "{not valid json")
	docPath := writeFile(t, dir, "doc.md", "The API accepts requests.")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{docPath, "--database", dbPath}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "error:")
}

func TestRun_UnreadableFileIsSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := writeFile(t, dir, "db.json", testDatabaseJSON)
	docPath := writeFile(t, dir, "doc.md", "The API accepts requests.")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{
		filepath.Join(dir, "missing.md"),
		docPath,
		"--database", dbPath,
	}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "Warning:")
	assert.Contains(t, stdout.String(), "Api")
}

func TestRun_TableWithOutputIsRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := writeFile(t, dir, "db.json", testDatabaseJSON)
	docPath := writeFile(t, dir, "doc.md", "The API accepts requests.")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{
		docPath,
		"--database", dbPath,
		"--format", "table",
		"--output", filepath.Join(dir, "out.txt"),
	}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "display-only")
}

func TestRun_TableFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := writeFile(t, dir, "db.json", testDatabaseJSON)
	docPath := writeFile(t, dir, "doc.md", "The API accepts requests.")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{docPath, "--database", dbPath, "--format", "table"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Term")
	assert.Contains(t, stdout.String(), "Category")
	assert.Contains(t, stdout.String(), "Api")
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			m := main.NewMain()
			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "Usage: gloss")
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(testContext(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: gloss")
}
