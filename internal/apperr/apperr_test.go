package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfUnwrapsChain(t *testing.T) {
	base := Conflict(CodeBoxNotEmpty, "box A1 still has 3 items")
	wrapped := fmt.Errorf("delete box: %w", base)

	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.Equal(t, CodeBoxNotEmpty, CodeOf(wrapped))
	assert.True(t, errors.Is(wrapped, &AppError{Kind: KindConflict}))
	assert.True(t, errors.Is(wrapped, &AppError{Kind: KindConflict, Code: CodeBoxNotEmpty}))
	assert.False(t, errors.Is(wrapped, &AppError{Kind: KindConflict, Code: CodeJobActive}))

	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "internal", CodeOf(errors.New("boom")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := CompensationFailed(cause, "rename back failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "compensation_failed", err.Code)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestEnsure(t *testing.T) {
	assert.NoError(t, Ensure(nil, "x"))

	nf := NotFound("box B2")
	assert.Same(t, nf, Ensure(nf, "load box"))

	err := Ensure(errors.New("timeout"), "load box")
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Contains(t, err.Error(), "load box")
}
