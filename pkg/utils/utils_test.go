package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestampIsSortable(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)

	second, err := u.NewULIDFromTimestamp(time.Now().Add(time.Second))
	require.NoError(t, err)

	assert.Len(t, first, 26)
	assert.Less(t, first, second)
}

func TestGeneratePasswordLengthAndVariety(t *testing.T) {
	u := New()

	password, err := u.GeneratePassword(12)
	require.NoError(t, err)
	assert.Len(t, password, 12)

	other, err := u.GeneratePassword(12)
	require.NoError(t, err)
	assert.NotEqual(t, password, other)
}
