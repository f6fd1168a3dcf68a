package build_test

import (
	"context"
	"testing"

	"github.com/pwalczak/gloss"
	"github.com/pwalczak/gloss/bloom"
	"github.com/pwalczak/gloss/build"
	"github.com/pwalczak/gloss/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readerFunc func(path string) (string, error)

func (f readerFunc) Read(path string) (string, error) { return f(path) }

func testDatabase() gloss.Database {
	return gloss.Database{
		"api":  {Definition: "A contract between software components.", Category: "architecture"},
		"rest": {Definition: "An architectural style for APIs.", Category: "architecture"},
		"jwt":  {Definition: "A signed token format.", Category: "security"},
	}
}

func TestDictionaryScan_Run(t *testing.T) {
	t.Parallel()

	t.Run("accumulates the union across files", func(t *testing.T) {
		t.Parallel()

		docs := map[string]string{
			"a.md": "The REST API returns JSON.",
			"b.md": "Validate the JWT before calling the API.",
		}
		scan := &build.DictionaryScan{
			Database: testDatabase(),
			Reader: readerFunc(func(path string) (string, error) {
				return docs[path], nil
			}),
		}

		g, err := scan.Run(context.Background(), []string{"a.md", "b.md"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"api", "rest", "jwt"}, g.Terms())

		entry, ok := g.Get("jwt")
		require.True(t, ok)
		assert.Equal(t, "security", entry.Category)
	})

	t.Run("skips unreadable files with a warning", func(t *testing.T) {
		t.Parallel()

		reporter := &mock.Reporter{}
		scan := &build.DictionaryScan{
			Database: testDatabase(),
			Reader: readerFunc(func(path string) (string, error) {
				if path == "missing.md" {
					return "", gloss.Errorf(gloss.ENOTFOUND, "file not found")
				}
				return "The API uses REST.", nil
			}),
			Reporter: reporter,
		}

		g, err := scan.Run(context.Background(), []string{"missing.md", "ok.md"})

		require.NoError(t, err)
		assert.Equal(t, 2, g.Len())
		require.Len(t, reporter.Warnings, 1)
		assert.Contains(t, reporter.Warnings[0], "missing.md")
	})

	t.Run("reports per-file and total counts", func(t *testing.T) {
		t.Parallel()

		reporter := &mock.Reporter{}
		scan := &build.DictionaryScan{
			Database: testDatabase(),
			Reader: readerFunc(func(string) (string, error) {
				return "This document covers the REST API.", nil
			}),
			Reporter: reporter,
		}

		_, err := scan.Run(context.Background(), []string{"doc.md"})

		require.NoError(t, err)
		assert.Contains(t, reporter.Infos, "Found 2 terms in doc.md")
		assert.Contains(t, reporter.Infos, "Total unique terms found: 2")
	})

	t.Run("word index prefilter does not change results", func(t *testing.T) {
		t.Parallel()

		scan := &build.DictionaryScan{
			Database: testDatabase(),
			Reader: readerFunc(func(string) (string, error) {
				return "JWT auth for the REST API.", nil
			}),
			Indexer: func(content string) gloss.WordIndex {
				return bloom.NewWordIndex(content)
			},
		}

		g, err := scan.Run(context.Background(), []string{"doc.md"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"api", "rest", "jwt"}, g.Terms())
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		scan := &build.DictionaryScan{
			Database: testDatabase(),
			Reader: readerFunc(func(string) (string, error) {
				t.Fatal("reader should not be called")
				return "", nil
			}),
		}

		_, err := scan.Run(ctx, []string{"doc.md"})
		require.Error(t, err)
	})
}
