package jsonvalue

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/jsonvalue/internal"
)

func TestValueError(t *testing.T) {
	t.Run("Message", func(t *testing.T) {
		err := notFoundError("get_value", "port")
		assert.Equal(t, "JSON get_value failed at key 'port': key not present", err.Error())

		err = emptyError("to_buffer", "")
		assert.Equal(t, "JSON to_buffer failed: value holds no node", err.Error())
	})

	t.Run("Matching", func(t *testing.T) {
		err := notFoundError("get_value", "port")
		assert.ErrorIs(t, err, ErrKeyNotFound)
		assert.NotErrorIs(t, err, ErrTypeMismatch)
		assert.ErrorIs(t, err, &ValueError{Op: "get_value", Err: ErrKeyNotFound})
		assert.NotErrorIs(t, err, &ValueError{Op: "get_object", Err: ErrKeyNotFound})

		var ve *ValueError
		require.ErrorAs(t, fmt.Errorf("lookup: %w", err), &ve)
		assert.Equal(t, "port", ve.Key)
	})

	t.Run("Classification", func(t *testing.T) {
		assert.True(t, IsNotFound(notFoundError("get_value", "k")))
		assert.True(t, IsTypeMismatch(notObjectError("put_value", "k", KindString)))
		assert.True(t, IsUserError(conversionError("get_int64", "k", "x", "int64")))
		assert.True(t, IsUserError(newValueError("put_string_collection", "", "x", ErrAmbiguousTarget)))
		assert.False(t, IsUserError(newValueError("parse", "", "x", ErrDepthLimit)))
		assert.False(t, IsUserError(errors.New("boom")))
	})
}

func TestBackendError(t *testing.T) {
	tests := []struct {
		backend error
		want    error
	}{
		{internal.ErrSyntax, ErrInvalidJSON},
		{internal.ErrBadNumber, ErrInvalidJSON},
		{internal.ErrTooLarge, ErrSizeLimit},
		{internal.ErrTooDeep, ErrDepthLimit},
		{internal.ErrCycle, ErrCycle},
		{internal.ErrNotObject, ErrTypeMismatch},
		{internal.ErrNotArray, ErrTypeMismatch},
		{internal.ErrNilNode, ErrEmptyValue},
		{internal.ErrReleased, ErrEmptyValue},
		{errors.New("out of memory"), ErrAllocation},
	}

	for _, tt := range tests {
		t.Run(tt.backend.Error(), func(t *testing.T) {
			err := backendError("op", "key", pkgerrors.Wrap(tt.backend, "context"))
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "context")
		})
	}
}
