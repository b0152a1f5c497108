package sentience

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRuntime returns a Runtime reading input from the given string and
// writing output to an in-memory buffer.
func newTestRuntime(input string) *Runtime {
	return &Runtime{
		Stdout: &bytes.Buffer{},
		Stdin:  strings.NewReader(input),
	}
}

func stdout(rt *Runtime) string {
	return rt.Stdout.(*bytes.Buffer).String()
}

func TestAddBuiltins(t *testing.T) {
	ctx := NewContext("<global>", nil)
	AddBuiltins(ctx)
	for _, name := range []string{"print", "input", "len", "append", "pop", "str", "num", "embed", "ai"} {
		v, err := ctx.Get(name)
		require.NoError(t, err, "builtin: %s", name)
		assert.True(t, v.IsFun(), "builtin: %s", name)
		assert.Equal(t, name, v.Name)
	}
	assert.Len(t, DefaultBuiltins(), 9)
}

func TestBuiltinPrint(t *testing.T) {
	rt := newTestRuntime("")
	v, err := builtinPrint(rt, []*SVal{Number(1), String("two"), List(Number(3))})
	require.NoError(t, err)
	assert.Same(t, Null, v)
	assert.Equal(t, "1 two [3]\n", stdout(rt))

	rt = newTestRuntime("")
	_, err = builtinPrint(rt, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n", stdout(rt))
}

func TestBuiltinInput(t *testing.T) {
	rt := newTestRuntime("hello\nworld\n")
	v, err := builtinInput(rt, []*SVal{String("name? ")})
	require.NoError(t, err)
	AssertStringEqual(t, "hello", v)
	assert.Equal(t, "name? ", stdout(rt))

	v, err = builtinInput(rt, nil)
	require.NoError(t, err)
	AssertStringEqual(t, "world", v)

	_, err = builtinInput(rt, nil)
	AssertErrno(t, ErrnoIO, err)
}

func TestBuiltinLen(t *testing.T) {
	rt := newTestRuntime("")
	v, err := builtinLen(rt, []*SVal{String("hello")})
	require.NoError(t, err)
	AssertNumberEqual(t, 5, v)

	v, err = builtinLen(rt, []*SVal{List()})
	require.NoError(t, err)
	AssertNumberEqual(t, 0, v)

	v, err = builtinLen(rt, []*SVal{List(Number(1), Number(2))})
	require.NoError(t, err)
	AssertNumberEqual(t, 2, v)

	_, err = builtinLen(rt, []*SVal{Number(1)})
	AssertErrno(t, ErrnoArity, err)
	_, err = builtinLen(rt, nil)
	AssertErrno(t, ErrnoArity, err)
	_, err = builtinLen(rt, []*SVal{String("a"), String("b")})
	AssertErrno(t, ErrnoArity, err)
}

func TestBuiltinAppend(t *testing.T) {
	rt := newTestRuntime("")
	list := List(Number(0))
	alias := list

	v, err := builtinAppend(rt, []*SVal{list, Number(1), Number(2)})
	require.NoError(t, err)
	assert.Same(t, list, v)
	assert.Equal(t, 3, list.Len())

	// The mutation is visible through the second alias.
	assert.Equal(t, 3, alias.Len())
	got, err := alias.GetItem(-1)
	require.NoError(t, err)
	AssertNumberEqual(t, 2, got)

	_, err = builtinAppend(rt, []*SVal{list})
	AssertErrno(t, ErrnoArity, err)
	_, err = builtinAppend(rt, []*SVal{Number(1), Number(2)})
	AssertErrno(t, ErrnoArity, err)
}

func TestBuiltinPop(t *testing.T) {
	rt := newTestRuntime("")
	list := List(Number(1), Number(2), Number(3))
	alias := list

	// Default index pops the last element and removes it.
	v, err := builtinPop(rt, []*SVal{list})
	require.NoError(t, err)
	AssertNumberEqual(t, 3, v)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, 2, alias.Len())

	// An explicit index selects and removes that element.
	v, err = builtinPop(rt, []*SVal{list, Number(0)})
	require.NoError(t, err)
	AssertNumberEqual(t, 1, v)
	assert.Equal(t, "[2]", list.String())

	v, err = builtinPop(rt, []*SVal{list})
	require.NoError(t, err)
	AssertNumberEqual(t, 2, v)

	_, err = builtinPop(rt, []*SVal{list})
	AssertErrno(t, ErrnoIndexRange, err)
	_, err = builtinPop(rt, []*SVal{String("x")})
	AssertErrno(t, ErrnoArity, err)
	_, err = builtinPop(rt, nil)
	AssertErrno(t, ErrnoArity, err)
}

func TestBuiltinPopIndexRange(t *testing.T) {
	rt := newTestRuntime("")
	list := List(Number(1), Number(2))
	_, err := builtinPop(rt, []*SVal{list, Number(5)})
	AssertErrno(t, ErrnoIndexRange, err)
	_, err = builtinPop(rt, []*SVal{list, Number(-3)})
	AssertErrno(t, ErrnoIndexRange, err)
	assert.Equal(t, 2, list.Len())
}

func TestBuiltinStr(t *testing.T) {
	rt := newTestRuntime("")
	tests := []struct {
		args   []*SVal
		expect string
	}{
		{nil, ""},
		{[]*SVal{Number(3.14)}, "3.14"},
		{[]*SVal{String("x")}, "x"},
		{[]*SVal{List(Number(1), Number(2))}, "[1, 2]"},
		{[]*SVal{Fun("ai", builtinAICall)}, "<function ai>"},
	}
	for i, test := range tests {
		v, err := builtinStr(rt, test.args)
		require.NoError(t, err, "test %d", i)
		AssertStringEqual(t, test.expect, v)
	}
}

func TestBuiltinNum(t *testing.T) {
	rt := newTestRuntime("")

	v, err := builtinNum(rt, nil)
	require.NoError(t, err)
	AssertNumberEqual(t, 0, v)

	n := Number(7)
	v, err = builtinNum(rt, []*SVal{n})
	require.NoError(t, err)
	assert.Same(t, n, v)

	for input, expect := range map[string]float64{
		"3.14": 3.14,
		"-2":   -2,
		"0":    0,
		"1e3":  1000,
	} {
		v, err = builtinNum(rt, []*SVal{String(input)})
		require.NoError(t, err, "input: %q", input)
		AssertNumberEqual(t, expect, v)
	}

	for _, input := range []string{"abc", "", "3.14abc", "1 2"} {
		_, err = builtinNum(rt, []*SVal{String(input)})
		AssertErrno(t, ErrnoBadNum, err)
	}

	_, err = builtinNum(rt, []*SVal{List()})
	AssertErrno(t, ErrnoTypeMismatch, err)
}
