package gloss_test

import (
	"testing"

	"github.com/pwalczak/gloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindJSONArray(t *testing.T) {
	t.Parallel()

	t.Run("parses a bare array", func(t *testing.T) {
		t.Parallel()

		terms, err := gloss.FindJSONArray(`["api", "rest", "oauth"]`)

		require.NoError(t, err)
		assert.Equal(t, []string{"api", "rest", "oauth"}, terms)
	})

	t.Run("locates an array wrapped in prose", func(t *testing.T) {
		t.Parallel()

		text := "Here are the terms I found:\n```json\n[\"grpc\", \"mtls\"]\n```\nLet me know if you need more."

		terms, err := gloss.FindJSONArray(text)

		require.NoError(t, err)
		assert.Equal(t, []string{"grpc", "mtls"}, terms)
	})

	t.Run("fails when no array is present", func(t *testing.T) {
		t.Parallel()

		_, err := gloss.FindJSONArray("I could not find any technical terms.")

		require.Error(t, err)
		assert.Equal(t, gloss.EINVALID, gloss.ErrorCode(err))
	})

	t.Run("fails on malformed array", func(t *testing.T) {
		t.Parallel()

		_, err := gloss.FindJSONArray(`["api", "rest"`)

		require.Error(t, err)
		assert.Equal(t, gloss.EINVALID, gloss.ErrorCode(err))
	})

	t.Run("fails on non-string elements", func(t *testing.T) {
		t.Parallel()

		_, err := gloss.FindJSONArray(`[1, 2, 3]`)

		require.Error(t, err)
		assert.Equal(t, gloss.EINVALID, gloss.ErrorCode(err))
	})
}

func TestFindJSONEntries(t *testing.T) {
	t.Parallel()

	t.Run("parses a bare object", func(t *testing.T) {
		t.Parallel()

		entries, err := gloss.FindJSONEntries(`{"api": {"definition": "An interface.", "context_note": "Used loosely here."}}`)

		require.NoError(t, err)
		require.Contains(t, entries, "api")
		assert.Equal(t, "An interface.", entries["api"].Definition)
		assert.Equal(t, "Used loosely here.", entries["api"].ContextNote)
	})

	t.Run("locates an object wrapped in prose", func(t *testing.T) {
		t.Parallel()

		text := "Here is the glossary:\n{\"jwt\": {\"definition\": \"A signed token.\"}}\nHope this helps!"

		entries, err := gloss.FindJSONEntries(text)

		require.NoError(t, err)
		assert.Equal(t, "A signed token.", entries["jwt"].Definition)
	})

	t.Run("fails when no object is present", func(t *testing.T) {
		t.Parallel()

		_, err := gloss.FindJSONEntries("No terms needed definitions.")

		require.Error(t, err)
		assert.Equal(t, gloss.EINVALID, gloss.ErrorCode(err))
	})

	t.Run("fails on malformed object", func(t *testing.T) {
		t.Parallel()

		_, err := gloss.FindJSONEntries(`{"api": {`)

		require.Error(t, err)
		assert.Equal(t, gloss.EINVALID, gloss.ErrorCode(err))
	})
}
