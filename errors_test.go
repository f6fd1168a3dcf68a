package gloss_test

import (
	"errors"
	"testing"

	"github.com/pwalczak/gloss"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := gloss.Errorf(gloss.ENOTFOUND, "term %q not found", "api")

	assert.Equal(t, gloss.ENOTFOUND, gloss.ErrorCode(err))
	assert.Equal(t, "term \"api\" not found", gloss.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, gloss.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gloss.EINTERNAL, gloss.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, gloss.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", gloss.ErrorMessage(errors.New("boom")))
}
