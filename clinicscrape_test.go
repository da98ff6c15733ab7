package clinicscrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/clinicscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := clinicscrape.Errorf(clinicscrape.EINVALID, "invalid base URL %q", "::")

	assert.Equal(t, clinicscrape.EINVALID, clinicscrape.ErrorCode(err))
	assert.Equal(t, "invalid base URL \"::\"", clinicscrape.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("parse page: %w", clinicscrape.Errorf(clinicscrape.EINVALID, "bad html"))

	assert.Equal(t, clinicscrape.EINVALID, clinicscrape.ErrorCode(err))
	assert.Equal(t, "bad html", clinicscrape.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, clinicscrape.EINTERNAL, clinicscrape.ErrorCode(err))
	assert.Equal(t, "Internal error.", clinicscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clinicscrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clinicscrape.ErrorMessage(nil))
}
