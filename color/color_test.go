package color_test

import (
	"bytes"
	"testing"

	"github.com/pwalczak/gloss"
	glosscolor "github.com/pwalczak/gloss/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := glosscolor.NewReporter(&buf)

	r.Statusf("Scanning %d files...", 3)
	r.Infof("Found %d terms", 5)
	r.Warnf("file %q not found, skipping", "missing.md")

	out := buf.String()
	assert.Contains(t, out, "Scanning 3 files...")
	assert.Contains(t, out, "Found 5 terms")
	assert.Contains(t, out, "Warning: file \"missing.md\" not found, skipping")
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	t.Run("dictionary variant shows category column", func(t *testing.T) {
		t.Parallel()

		g := gloss.NewGlossary()
		g.Add("rest", gloss.Entry{Definition: "An architectural style.", Category: "architecture"})
		g.Add("api", gloss.Entry{Definition: "A contract."})

		var buf bytes.Buffer
		err := glosscolor.WriteTable(&buf, g, glosscolor.TableOptions{ShowCategory: true})

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "Term")
		assert.Contains(t, out, "Category")
		assert.Contains(t, out, "Api")
		assert.Contains(t, out, "architecture")
		assert.Contains(t, out, "N/A")
	})

	t.Run("model variant marks documentation presence", func(t *testing.T) {
		t.Parallel()

		g := gloss.NewGlossary()
		g.Add("jwt", gloss.Entry{Definition: "A signed token.", DocLink: "https://jwt.io/introduction"})
		g.Add("bespoke", gloss.Entry{Definition: "In-house term."})

		var buf bytes.Buffer
		err := glosscolor.WriteTable(&buf, g, glosscolor.TableOptions{Title: "Technical Glossary", ShowDocLink: true})

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "Technical Glossary")
		assert.Contains(t, out, "Documentation")
		assert.Contains(t, out, "yes")
	})
}
