package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUIDv7(t *testing.T) {
	a := GenerateUUIDv7()
	b := GenerateUUIDv7()
	require.NotEqual(t, uuid.Nil, a)
	require.NotEqual(t, a, b)
	require.Equal(t, uuid.Version(7), a.Version())
}
