package frontpage_test

import (
	"errors"
	"testing"

	"github.com/pwalczyk/frontpage"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := frontpage.Errorf(frontpage.EUNAVAILABLE, "fetch %q failed", "https://example.com")

	assert.Equal(t, frontpage.EUNAVAILABLE, frontpage.ErrorCode(err))
	assert.Equal(t, "fetch \"https://example.com\" failed", frontpage.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, frontpage.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, frontpage.EINTERNAL, frontpage.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, frontpage.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", frontpage.ErrorMessage(errors.New("boom")))
}
