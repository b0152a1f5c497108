package sentience

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Builtin is the native callable wrapped by a function value.
type Builtin func(rt *Runtime, args []*SVal) (*SVal, error)

type langBuiltin struct {
	name string
	fun  Builtin
}

var langBuiltins = []*langBuiltin{
	{"print", builtinPrint},
	{"input", builtinInput},
	{"len", builtinLen},
	{"append", builtinAppend},
	{"pop", builtinPop},
	{"str", builtinStr},
	{"num", builtinNum},
	{"embed", builtinEmbed},
	{"ai", builtinAICall},
}

// DefaultBuiltins returns the standard library as function values, in
// registration order.
func DefaultBuiltins() []*SVal {
	funs := make([]*SVal, len(langBuiltins))
	for i, b := range langBuiltins {
		funs[i] = Fun(b.name, b.fun)
	}
	return funs
}

// AddBuiltins binds the standard library functions into ctx under their
// fixed names.  An evaluator calls this on its root context before
// execution begins.
func AddBuiltins(ctx *Context) {
	for _, b := range langBuiltins {
		ctx.Put(b.name, Fun(b.name, b.fun))
	}
}

// builtinPrint writes each argument's text form separated by single spaces
// and terminated by a newline.  It returns Null and never fails.
func builtinPrint(rt *Runtime, args []*SVal) (*SVal, error) {
	var buf bytes.Buffer
	for i, arg := range args {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(arg.String())
	}
	buf.WriteString("\n")
	rt.Stdout.Write(buf.Bytes())
	return Null, nil
}

// builtinInput writes the optional prompt argument and reads one line from
// the runtime input source, returning it as a string.
func builtinInput(rt *Runtime, args []*SVal) (*SVal, error) {
	if len(args) > 0 {
		fmt.Fprint(rt.Stdout, args[0].String())
	}
	line, err := rt.ReadLine()
	if err != nil {
		return nil, err
	}
	return String(line), nil
}

func builtinLen(rt *Runtime, args []*SVal) (*SVal, error) {
	if len(args) != 1 {
		return nil, Errorf(ErrnoArity, "len expects one argument (got %d)", len(args))
	}
	switch args[0].Type {
	case SList:
		return Number(float64(args[0].Len())), nil
	case SString:
		return Number(float64(utf8.RuneCountInString(args[0].Str))), nil
	}
	return nil, Errorf(ErrnoArity, "len expects a list or string argument (got %s)", args[0].Type)
}

func builtinAppend(rt *Runtime, args []*SVal) (*SVal, error) {
	if len(args) < 2 {
		return nil, Errorf(ErrnoArity, "append expects at least two arguments (got %d)", len(args))
	}
	list := args[0]
	if !list.IsList() {
		return nil, Errorf(ErrnoArity, "first argument to append must be a list (got %s)", list.Type)
	}
	for _, v := range args[1:] {
		list.Cells = append(list.Cells, v)
	}
	return list, nil
}

// builtinPop returns the element at the given index (default -1, the last
// element) and removes it from the backing list, so every alias of the list
// observes the removal.
func builtinPop(rt *Runtime, args []*SVal) (*SVal, error) {
	if len(args) < 1 {
		return nil, Errorf(ErrnoArity, "pop expects at least one argument")
	}
	list := args[0]
	if !list.IsList() {
		return nil, Errorf(ErrnoArity, "first argument to pop must be a list (got %s)", list.Type)
	}
	if list.Len() == 0 {
		return nil, Errorf(ErrnoIndexRange, "cannot pop from an empty list")
	}
	index := -1
	if len(args) > 1 && args[1].IsNumber() {
		index = int(args[1].Num)
	}
	i, err := list.normIndex(index)
	if err != nil {
		return nil, err
	}
	v := list.Cells[i]
	list.Cells = append(list.Cells[:i], list.Cells[i+1:]...)
	return v, nil
}

func builtinStr(rt *Runtime, args []*SVal) (*SVal, error) {
	if len(args) == 0 {
		return String(""), nil
	}
	return String(args[0].String()), nil
}

func builtinNum(rt *Runtime, args []*SVal) (*SVal, error) {
	if len(args) == 0 {
		return Number(0), nil
	}
	switch args[0].Type {
	case SNumber:
		return args[0], nil
	case SString:
		x, err := strconv.ParseFloat(args[0].Str, 64)
		if err != nil {
			return nil, Errorf(ErrnoBadNum, "cannot convert %q to number", args[0].Str)
		}
		return Number(x), nil
	}
	return nil, Errorf(ErrnoTypeMismatch, "cannot convert %s to number", args[0].Type)
}
