package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeMixed(t *testing.T) {
	args, flags := Tokenize(`foo "bar baz" --flag value -f v2`)

	require.Equal(t, []string{"foo", "bar baz"}, args)
	require.Equal(t, map[string][]string{
		"flag": {"value"},
		"f":    {"v2"},
	}, flags)
}

func TestTokenizeEscapedQuote(t *testing.T) {
	args, flags := Tokenize(`a\"b`)

	require.Equal(t, []string{`a"b`}, args)
	require.Empty(t, flags)
}

func TestTokenizeEscapedBackslash(t *testing.T) {
	args, _ := Tokenize(`a\\b`)

	require.Equal(t, []string{`a\b`}, args)
}

func TestTokenizeQuotedFlagValue(t *testing.T) {
	_, flags := Tokenize(`--msg "hello there"`)

	require.Equal(t, []string{"hello there"}, flags["msg"])
}

func TestTokenizeRepeatedFlagPreservesOrder(t *testing.T) {
	_, flags := Tokenize(`--tag one --tag two -t three`)

	require.Equal(t, []string{"one", "two"}, flags["tag"])
	require.Equal(t, []string{"three"}, flags["t"])
}

func TestTokenizeUnterminatedQuoteIsAbsorbed(t *testing.T) {
	args, flags := Tokenize(`"never closed`)

	require.Equal(t, []string{"never closed"}, args)
	require.Empty(t, flags)
}

func TestTokenizeDanglingEscapeIsAbsorbed(t *testing.T) {
	args, _ := Tokenize(`abc\`)

	require.Equal(t, []string{"abc"}, args)
}

func TestTokenizeBareDashesArePositional(t *testing.T) {
	args, flags := Tokenize(`-- after`)
	require.Equal(t, []string{"--", "after"}, args)
	require.Empty(t, flags)

	args, flags = Tokenize(`- after`)
	require.Equal(t, []string{"-", "after"}, args)
	require.Empty(t, flags)
}

func TestTokenizeBareFlagBeforeNextFlag(t *testing.T) {
	_, flags := Tokenize(`--verbose --out file`)

	require.Equal(t, []string{""}, flags["verbose"])
	require.Equal(t, []string{"file"}, flags["out"])
}

func TestTokenizeBareFlagAtEnd(t *testing.T) {
	_, flags := Tokenize(`--verbose`)

	require.Equal(t, []string{""}, flags["verbose"])
}

func TestTokenizeShortFlagGluedValue(t *testing.T) {
	_, flags := Tokenize(`-fvalue`)

	require.Equal(t, []string{"value"}, flags["f"])
}

func TestTokenizeEmptyQuotedFlagValue(t *testing.T) {
	_, flags := Tokenize(`--flag ""`)

	require.Equal(t, []string{""}, flags["flag"])
}

func TestTokenizeEmptyInput(t *testing.T) {
	args, flags := Tokenize("")

	require.Empty(t, args)
	require.Empty(t, flags)
}

func TestTokenizeIdempotent(t *testing.T) {
	const input = `one "two three" --a x --a y -b "z w" trailing`

	args1, flags1 := Tokenize(input)
	args2, flags2 := Tokenize(input)

	require.Equal(t, args1, args2)
	require.Equal(t, flags1, flags2)
}
