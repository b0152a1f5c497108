package sentience

import (
	"math"
	"strings"
)

// opError is the failure every operation falls through to when no variant
// rule matches the operand pair.
func opError(op string, t SType) error {
	return Errorf(ErrnoUnsupportedOp, "%s not supported for %s", op, t)
}

// Add returns v + other.  Numbers add numerically.  A string on the left
// concatenates with other's text form and never fails.
func (v *SVal) Add(other *SVal) (*SVal, error) {
	switch v.Type {
	case SNumber:
		if other.Type == SNumber {
			return Number(v.Num + other.Num), nil
		}
	case SString:
		if other.Type == SString {
			return String(v.Str + other.Str), nil
		}
		return String(v.Str + other.String()), nil
	}
	return nil, opError("addition", v.Type)
}

// Sub returns v - other for number operands.
func (v *SVal) Sub(other *SVal) (*SVal, error) {
	if v.Type == SNumber && other.Type == SNumber {
		return Number(v.Num - other.Num), nil
	}
	return nil, opError("subtraction", v.Type)
}

// Mul returns v * other.  Numbers multiply numerically.  A number times a
// string, or a string times a number, repeats the string int(n) times.
func (v *SVal) Mul(other *SVal) (*SVal, error) {
	switch v.Type {
	case SNumber:
		if other.Type == SNumber {
			return Number(v.Num * other.Num), nil
		}
		if other.Type == SString {
			return String(repeat(other.Str, v.Num)), nil
		}
	case SString:
		if other.Type == SNumber {
			return String(repeat(v.Str, other.Num)), nil
		}
	}
	return nil, opError("multiplication", v.Type)
}

// repeat builds s repeated int(n) times.  The fractional part of n is
// truncated toward zero and nonpositive counts produce the empty string.
func repeat(s string, n float64) string {
	count := int(n)
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// Div returns v / other for number operands.  Division by exactly zero
// fails; everything else is IEEE-754 division.
func (v *SVal) Div(other *SVal) (*SVal, error) {
	if v.Type == SNumber && other.Type == SNumber {
		if other.Num == 0 {
			return nil, Errorf(ErrnoDivZero, "division by zero")
		}
		return Number(v.Num / other.Num), nil
	}
	return nil, opError("division", v.Type)
}

// Pow returns v raised to the power other for number operands.
func (v *SVal) Pow(other *SVal) (*SVal, error) {
	if v.Type == SNumber && other.Type == SNumber {
		return Number(math.Pow(v.Num, other.Num)), nil
	}
	return nil, opError("exponentiation", v.Type)
}

// Eq compares v and other for equality.  Equality is total for a number on
// the left: a non-number operand compares unequal rather than failing.
func (v *SVal) Eq(other *SVal) (*SVal, error) {
	if v.Type == SNumber {
		if other.Type != SNumber {
			return Bool(false), nil
		}
		return Bool(v.Num == other.Num), nil
	}
	return nil, opError("equality comparison", v.Type)
}

// Ne compares v and other for inequality.  Like Eq it is total for a number
// on the left.
func (v *SVal) Ne(other *SVal) (*SVal, error) {
	if v.Type == SNumber {
		if other.Type != SNumber {
			return Bool(true), nil
		}
		return Bool(v.Num != other.Num), nil
	}
	return nil, opError("inequality comparison", v.Type)
}

// Lt returns whether v < other.  Ordering is defined for number pairs only.
func (v *SVal) Lt(other *SVal) (*SVal, error) {
	if v.Type == SNumber && other.Type == SNumber {
		return Bool(v.Num < other.Num), nil
	}
	return nil, opError("ordering comparison", v.Type)
}

// Gt returns whether v > other.
func (v *SVal) Gt(other *SVal) (*SVal, error) {
	if v.Type == SNumber && other.Type == SNumber {
		return Bool(v.Num > other.Num), nil
	}
	return nil, opError("ordering comparison", v.Type)
}

// Lte returns whether v <= other.
func (v *SVal) Lte(other *SVal) (*SVal, error) {
	if v.Type == SNumber && other.Type == SNumber {
		return Bool(v.Num <= other.Num), nil
	}
	return nil, opError("ordering comparison", v.Type)
}

// Gte returns whether v >= other.
func (v *SVal) Gte(other *SVal) (*SVal, error) {
	if v.Type == SNumber && other.Type == SNumber {
		return Bool(v.Num >= other.Num), nil
	}
	return nil, opError("ordering comparison", v.Type)
}

// And returns the logical conjunction of the two values' truthiness.
// Defined for a number on the left against any operand.
func (v *SVal) And(other *SVal) (*SVal, error) {
	if v.Type == SNumber {
		return Bool(v.IsTrue() && other.IsTrue()), nil
	}
	return nil, opError("logical and", v.Type)
}

// Or returns the logical disjunction of the two values' truthiness.
func (v *SVal) Or(other *SVal) (*SVal, error) {
	if v.Type == SNumber {
		return Bool(v.IsTrue() || other.IsTrue()), nil
	}
	return nil, opError("logical or", v.Type)
}

// Not returns the logical negation of v's truthiness.
func (v *SVal) Not() (*SVal, error) {
	if v.Type == SNumber {
		return Bool(!v.IsTrue()), nil
	}
	return nil, opError("logical not", v.Type)
}

// normIndex converts a possibly negative list index to an absolute offset.
// Negative indexes count back from the end of the list.
func (v *SVal) normIndex(i int) (int, error) {
	if i < 0 {
		i += len(v.Cells)
	}
	if i < 0 || i >= len(v.Cells) {
		return 0, Errorf(ErrnoIndexRange, "list index out of range")
	}
	return i, nil
}

// GetItem returns the list element at index i.
func (v *SVal) GetItem(i int) (*SVal, error) {
	if v.Type != SList {
		return nil, opError("indexing", v.Type)
	}
	i, err := v.normIndex(i)
	if err != nil {
		return nil, err
	}
	return v.Cells[i], nil
}

// SetItem replaces the list element at index i.  The mutation is visible
// through every alias of the list.
func (v *SVal) SetItem(i int, x *SVal) error {
	if v.Type != SList {
		return opError("indexing", v.Type)
	}
	i, err := v.normIndex(i)
	if err != nil {
		return err
	}
	v.Cells[i] = x
	return nil
}

// Append grows the list by one element in place.
func (v *SVal) Append(x *SVal) error {
	if v.Type != SList {
		return opError("append", v.Type)
	}
	v.Cells = append(v.Cells, x)
	return nil
}

// Len returns the element count of a list value.
func (v *SVal) Len() int {
	return len(v.Cells)
}

// Call invokes the native callable wrapped by a function value and
// propagates its result or error unchanged.  Argument checking is each
// callable's own responsibility.
func (v *SVal) Call(rt *Runtime, args []*SVal) (*SVal, error) {
	if v.Type != SFun {
		return nil, Errorf(ErrnoTypeMismatch, "cannot call %s value", v.Type)
	}
	return v.Fn(rt, args)
}
