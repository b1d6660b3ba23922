package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hashed)

	require.True(t, CheckPassword(hashed, "hunter2"))
	require.False(t, CheckPassword(hashed, "Hunter2"))
	require.False(t, CheckPassword(hashed, ""))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("hunter2")
	require.NoError(t, err)
	h2, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
