// Package sentience implements the runtime value model for the Sentience
// scripting language: the polymorphic runtime values, the operator semantics
// between them, the lexical environment (Context) chain, and the standard
// library builtins an evaluator binds into its root context before execution
// begins.
package sentience

import (
	"bytes"
	"strconv"
)

// SType is the type of an SVal.
type SType uint

// Possible SType values
const (
	SInvalid SType = iota
	SNumber
	SString
	SList
	SFun
)

var stypeStrings = []string{
	SInvalid: "INVALID",
	SNumber:  "number",
	SString:  "string",
	SList:    "list",
	SFun:     "function",
}

func (t SType) String() string {
	if int(t) >= len(stypeStrings) {
		return stypeStrings[SInvalid]
	}
	return stypeStrings[t]
}

// SVal is a Sentience runtime value.  The variant set is closed: a value is
// a number, a string, a list, or a function, discriminated by Type.  Values
// are shared by pointer; two bindings holding the same *SVal list observe
// each other's mutations.
type SVal struct {
	Type  SType
	Num   float64
	Str   string
	Cells []*SVal

	// Fields needed for function values
	Name string
	Fn   Builtin
}

// Number returns an SVal representing the number x.
func Number(x float64) *SVal {
	return &SVal{
		Type: SNumber,
		Num:  x,
	}
}

// String returns an SVal representing the text s.
func String(s string) *SVal {
	return &SVal{
		Type: SString,
		Str:  s,
	}
}

// List returns an SVal representing a list of the given elements.  The
// elements are referenced, not copied.
func List(cells ...*SVal) *SVal {
	return &SVal{
		Type:  SList,
		Cells: cells,
	}
}

// Fun returns an SVal representing a native function.
func Fun(name string, fn Builtin) *SVal {
	return &SVal{
		Type: SFun,
		Name: name,
		Fn:   fn,
	}
}

// Bool returns a fresh Number encoding of b, 1 for true and 0 for false.
func Bool(b bool) *SVal {
	if b {
		return Number(1)
	}
	return Number(0)
}

// Shared constant values.  These are process-wide singletons; they must
// never be mutated.
var (
	Null  = Number(0)
	True  = Number(1)
	False = Number(0)
	Pi    = Number(3.14159265358979323846)
)

// IsNumber reports whether v is a number.
func (v *SVal) IsNumber() bool { return v.Type == SNumber }

// IsString reports whether v is a string.
func (v *SVal) IsString() bool { return v.Type == SString }

// IsList reports whether v is a list.
func (v *SVal) IsList() bool { return v.Type == SList }

// IsFun reports whether v is a function.
func (v *SVal) IsFun() bool { return v.Type == SFun }

// IsTrue returns the truthiness of v.  Numbers are true when nonzero,
// strings and lists when non-empty, and functions always.
func (v *SVal) IsTrue() bool {
	switch v.Type {
	case SNumber:
		return v.Num != 0
	case SString:
		return v.Str != ""
	case SList:
		return len(v.Cells) != 0
	case SFun:
		return true
	}
	return false
}

// AsNumber returns the float64 wrapped by a number value.
func (v *SVal) AsNumber() (float64, error) {
	if v.Type != SNumber {
		return 0, Errorf(ErrnoTypeMismatch, "cannot convert %s to number", v.Type)
	}
	return v.Num, nil
}

// AsString returns the text wrapped by a string value.
func (v *SVal) AsString() (string, error) {
	if v.Type != SString {
		return "", Errorf(ErrnoTypeMismatch, "cannot convert %s to string", v.Type)
	}
	return v.Str, nil
}

// AsList returns v itself when v is a list, so that the caller shares the
// underlying element sequence with every other holder of v.
func (v *SVal) AsList() (*SVal, error) {
	if v.Type != SList {
		return nil, Errorf(ErrnoTypeMismatch, "cannot convert %s to list", v.Type)
	}
	return v, nil
}

// AsFun returns v itself when v is a function.
func (v *SVal) AsFun() (*SVal, error) {
	if v.Type != SFun {
		return nil, Errorf(ErrnoTypeMismatch, "cannot convert %s to function", v.Type)
	}
	return v, nil
}

// Copy creates an independent copy of v.  List elements are copied
// recursively so the copy never aliases containers reachable from v.  A
// function copy wraps the same native callable.
func (v *SVal) Copy() *SVal {
	if v == nil {
		return nil
	}
	cp := &SVal{}
	*cp = *v
	cp.Cells = v.copyCells()
	return cp
}

func (v *SVal) copyCells() []*SVal {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*SVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

func (v *SVal) String() string {
	switch v.Type {
	case SNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case SString:
		return v.Str
	case SList:
		return listString(v)
	case SFun:
		return "<function " + v.Name + ">"
	default:
		return "INVALID"
	}
}

func listString(v *SVal) string {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString("]")
	return buf.String()
}
