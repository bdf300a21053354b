package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestWrap_KeepsIdentity(t *testing.T) {
	wrapped := Wrap(errSentinel, "loading users")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "loading users: sentinel", wrapped.Error())
	assert.Equal(t, errSentinel, Cause(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
	assert.NoError(t, WithStack(nil))
}

func TestAs_ThroughJoin(t *testing.T) {
	joined := Join(Wrap(errSentinel, "remote"), &codedError{code: 7})

	var coded *codedError
	assert.True(t, As(joined, &coded))
	assert.Equal(t, 7, coded.code)
	assert.True(t, Is(joined, errSentinel))
}

func TestErrorf(t *testing.T) {
	err := Errorf("user %s missing", "u1")
	assert.EqualError(t, err, "user u1 missing")
}
