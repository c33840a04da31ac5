package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParamRequiredWithDefaultFails(t *testing.T) {
	_, err := NewParam("bad", StringParser{}, Required(true), Default("x"))

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	require.Equal(t, "bad", confErr.Param)
}

func TestNewParamShortWithoutFlagFails(t *testing.T) {
	_, err := NewParam("bad", StringParser{}, Short('b'), Flag(false))

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
}

func TestNewParamNilParserFails(t *testing.T) {
	_, err := NewParam("bad", nil)

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
}

func TestNewParamRequiredDefaultsFromDefault(t *testing.T) {
	p, err := NewParam("plain", StringParser{})
	require.NoError(t, err)
	require.True(t, p.required)

	p, err = NewParam("defaulted", StringParser{}, Default("d"))
	require.NoError(t, err)
	require.False(t, p.required)

	p, err = NewParam("optional", StringParser{}, Required(false))
	require.NoError(t, err)
	require.False(t, p.required)
}

func TestNewParamFlagDefaultsFromShort(t *testing.T) {
	p, err := NewParam("positional", StringParser{})
	require.NoError(t, err)
	require.False(t, p.flag)

	p, err = NewParam("shorted", StringParser{}, Short('s'))
	require.NoError(t, err)
	require.True(t, p.flag)

	p, err = NewParam("long-only", StringParser{}, Flag(true))
	require.NoError(t, err)
	require.True(t, p.flag)
}

func TestBindRequiredWithoutTokensFails(t *testing.T) {
	p := MustParam("needed", StringParser{})

	_, err := p.bind(nil)

	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "needed", missing.Param)
}

func TestBindResolvesDefault(t *testing.T) {
	p := MustParam("count", NumberParser{}, Default(int64(3)))

	v, err := p.bind(nil)

	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

func TestBindMultipleKeepsOrder(t *testing.T) {
	p := MustParam("nums", NumberParser{Signed: true}, Multiple(), Flag(true))

	v, err := p.bind([]string{"1", "2", "3"})

	require.NoError(t, err)
	require.Equal(t, []any{int64(1), int64(2), int64(3)}, v)
}

func TestBindSingleLastWins(t *testing.T) {
	p := MustParam("num", NumberParser{Signed: true}, Flag(true))

	v, err := p.bind([]string{"1", "2", "3"})

	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

func TestBindPropagatesConversionError(t *testing.T) {
	p := MustParam("num", NumberParser{}, Flag(true))

	_, err := p.bind([]string{"1", "x"})

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "x", convErr.Raw)
}

func TestBindFlagPresenceImpliesTrue(t *testing.T) {
	p := MustParam("verbose", BoolParser{}, Flag(true), Default(false), PresenceImpliesTrue())

	v, err := p.bindFlag([]string{""}, true)
	require.NoError(t, err)
	require.Equal(t, true, v)

	// Absent flag still resolves through the normal default policy.
	v, err = p.bindFlag(nil, false)
	require.NoError(t, err)
	require.Equal(t, false, v)

	// An explicit value bypasses the presence shortcut.
	v, err = p.bindFlag([]string{"no"}, true)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestMustParamPanics(t *testing.T) {
	require.Panics(t, func() {
		MustParam("bad", StringParser{}, Required(true), Default(1))
	})
}
