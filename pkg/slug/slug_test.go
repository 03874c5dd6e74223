package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Best Digital Agency 2024!", "best-digital-agency-2024"},
		{"  Multiple   Spaces -- here ", "multiple-spaces-here"},
		{"Hello World", "hello-world"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER lower 42", "upper-lower-42"},
		{"---", ""},
		{"!!!", ""},
		{"", ""},
		{"café & croissant", "caf-croissant"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Make(tc.in, 0), "input=%q", tc.in)
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{
		"Best Digital Agency 2024!",
		"  Multiple   Spaces -- here ",
		"Hello World",
		"a b c d e f",
		strings.Repeat("Long Title ", 50),
	}
	for _, in := range inputs {
		once := Make(in, 0)
		require.Equal(t, once, Make(once, 0), "input=%q", in)
	}
}

func TestMake_ClampsLength(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := Make(long, 0)
	require.LessOrEqual(t, len(got), MaxLength)
	require.False(t, strings.HasSuffix(got, "-"), "clamped slug must not end in a hyphen")
	require.True(t, IsValid(got, 0))

	short := Make("alpha beta gamma", 10)
	require.LessOrEqual(t, len(short), 10)
	require.Equal(t, "alpha-beta", short)
}

func TestIsValid(t *testing.T) {
	require.True(t, IsValid("about-us", 0))
	require.True(t, IsValid("a", 0))
	require.False(t, IsValid("", 0))
	require.False(t, IsValid("About-Us", 0))
	require.False(t, IsValid("has space", 0))
	require.False(t, IsValid("unicode-é", 0))
	require.False(t, IsValid(strings.Repeat("a", MaxLength+1), 0))
}
