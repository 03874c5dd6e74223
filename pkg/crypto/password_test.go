package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, CheckPassword("correct horse battery staple", hash))
	require.False(t, CheckPassword("wrong", hash))
	require.False(t, CheckPassword("correct horse battery staple", "not-a-hash"))
}
