package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/opendiscuss/forum/internal/errors"
)

func TestNewAddThread(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := NewAddThread("lorem ipsum", nil, "user-123")
		require.Error(t, err)
		assert.Equal(t, "ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY", err.Error())
		assert.True(t, internal_errors.IsValidation(err))
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		_, err := NewAddThread("", "body", "user-123")
		require.Error(t, err)
		assert.Equal(t, "ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY", err.Error())
	})

	t.Run("wrong data type", func(t *testing.T) {
		// JSON numbers decode to float64
		_, err := NewAddThread(float64(1984), true, map[string]any{})
		require.Error(t, err)
		assert.Equal(t, "ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION", err.Error())
	})

	t.Run("valid payload", func(t *testing.T) {
		thread, err := NewAddThread("Lorem ipsum", "dolor sit amet", "user-1234")
		require.NoError(t, err)
		assert.Equal(t, "Lorem ipsum", thread.Title)
		assert.Equal(t, "dolor sit amet", thread.Body)
		assert.Equal(t, "user-1234", thread.Owner)
	})
}
