package values

import "fmt"

// Add implements the binary + operator across the value algebra described
// in spec.md §4.2.
func Add(a, b Value) (Value, error) {
	switch av := a.(type) {
	case Integer:
		if bv, ok := b.(Integer); ok {
			return av + bv, nil
		}
	case String:
		return av + String(stringOf(b)), nil
	case Date:
		switch bv := b.(type) {
		case Time:
			return DateTime{Date: av, Time: bv}, nil
		case Timedelta:
			return av.AtMidnight().AddTimedelta(bv)
		}
	case Time:
		switch bv := b.(type) {
		case Date:
			return DateTime{Date: bv, Time: av}, nil
		case Timedelta:
			return av.OnDate().AddTimedelta(bv)
		}
	case DateTime:
		if bv, ok := b.(Timedelta); ok {
			return av.AddTimedelta(bv)
		}
	case Timedelta:
		switch bv := b.(type) {
		case Timedelta:
			return av.Add(bv), nil
		case Date:
			return bv.AtMidnight().AddTimedelta(av)
		case Time:
			return bv.OnDate().AddTimedelta(av)
		case DateTime:
			return bv.AddTimedelta(av)
		}
	}
	// String concatenation is also valid with a string on the left and any
	// other stringifiable value on the right; the reverse (non-string left
	// operand + string) is not otherwise defined above and is an error,
	// matching the language's lack of operator overloading for that case.
	return nil, typeError("+", a, b)
}

// Sub implements the binary - operator.
func Sub(a, b Value) (Value, error) {
	switch av := a.(type) {
	case Integer:
		if bv, ok := b.(Integer); ok {
			return av - bv, nil
		}
	case Date:
		switch bv := b.(type) {
		case Date:
			return av.AtMidnight().SubDateTime(bv.AtMidnight()), nil
		case DateTime:
			return av.AtMidnight().SubDateTime(bv), nil
		case Timedelta:
			return av.AtMidnight().SubTimedelta(bv)
		}
	case Time:
		switch bv := b.(type) {
		case Time:
			return av.OnDate().SubDateTime(bv.OnDate()), nil
		case DateTime:
			return av.OnDate().SubDateTime(bv), nil
		case Timedelta:
			return av.OnDate().SubTimedelta(bv)
		}
	case DateTime:
		switch bv := b.(type) {
		case Date:
			return av.SubDateTime(bv.AtMidnight()), nil
		case Time:
			return av.SubDateTime(bv.OnDate()), nil
		case DateTime:
			return av.SubDateTime(bv), nil
		case Timedelta:
			return av.SubTimedelta(bv)
		}
	case Timedelta:
		if bv, ok := b.(Timedelta); ok {
			return av.Sub(bv), nil
		}
	}
	return nil, typeError("-", a, b)
}

// Mul implements the binary * operator.
func Mul(a, b Value) (Value, error) {
	if av, ok := a.(Integer); ok {
		if bv, ok := b.(Integer); ok {
			return av * bv, nil
		}
	}
	if av, ok := a.(Timedelta); ok {
		if bv, ok := b.(Integer); ok {
			return av.MulInt(int64(bv)), nil
		}
	}
	if av, ok := a.(Integer); ok {
		if bv, ok := b.(Timedelta); ok {
			return bv.MulInt(int64(av)), nil
		}
	}
	return nil, typeError("*", a, b)
}

// Div implements the binary / operator: truncating integer division and
// field-wise floor division of a Timedelta by an integer.
func Div(a, b Value) (Value, error) {
	if av, ok := a.(Integer); ok {
		if bv, ok := b.(Integer); ok {
			if bv == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return av / bv, nil
		}
	}
	if av, ok := a.(Timedelta); ok {
		if bv, ok := b.(Integer); ok {
			res, err := av.FloorDivInt(int64(bv))
			if err != nil {
				return nil, err
			}
			return res, nil
		}
	}
	return nil, typeError("/", a, b)
}

// Neg implements unary -.
func Neg(a Value) (Value, error) {
	switch av := a.(type) {
	case Integer:
		return -av, nil
	case Timedelta:
		return av.Neg(), nil
	default:
		return nil, fmt.Errorf("cannot negate a %s value", a.Kind())
	}
}

// Not implements unary !.
func Not(a Value) Value {
	if a.Truthy() {
		return Integer(0)
	}
	return Integer(1)
}

// BoolAnd / BoolOr implement & and |, coercing both operands to boolean and
// producing 1/0 integers.
func BoolAnd(a, b Value) Value { return boolToInt(a.Truthy() && b.Truthy()) }
func BoolOr(a, b Value) Value  { return boolToInt(a.Truthy() || b.Truthy()) }

func boolToInt(b bool) Value {
	if b {
		return Integer(1)
	}
	return Integer(0)
}

// Equal implements == with cross-kind promotion (Date<->DateTime,
// Time<->DateTime). Values of incompatible kinds are simply unequal, not an
// error.
func Equal(a, b Value) Value {
	switch av := a.(type) {
	case Integer:
		if bv, ok := b.(Integer); ok {
			return boolToInt(av == bv)
		}
	case String:
		if bv, ok := b.(String); ok {
			return boolToInt(av == bv)
		}
	case Date:
		switch bv := b.(type) {
		case Date:
			return boolToInt(av.Equal(bv))
		case DateTime:
			return boolToInt(av.AtMidnight().Equal(bv))
		}
	case Time:
		switch bv := b.(type) {
		case Time:
			return boolToInt(av.Equal(bv))
		case DateTime:
			return boolToInt(av.OnDate().Equal(bv))
		}
	case DateTime:
		switch bv := b.(type) {
		case DateTime:
			return boolToInt(av.Equal(bv))
		case Date:
			return boolToInt(av.Equal(bv.AtMidnight()))
		case Time:
			return boolToInt(av.Equal(bv.OnDate()))
		}
	case Timedelta:
		if bv, ok := b.(Timedelta); ok {
			return boolToInt(av.Equal(bv))
		}
	}
	return boolToInt(false)
}

func NotEqual(a, b Value) Value {
	eq := Equal(a, b).(Integer)
	return boolToInt(eq == 0)
}

// Less implements < (and by extension <=, >, >= at the call site), with the
// same cross-kind promotion as Equal. Incompatible kinds are an error:
// unlike equality, ordering two fundamentally unrelated kinds is undefined.
func Less(a, b Value) (bool, error) {
	switch av := a.(type) {
	case Integer:
		if bv, ok := b.(Integer); ok {
			return av < bv, nil
		}
	case Date:
		switch bv := b.(type) {
		case Date:
			return av.Less(bv), nil
		case DateTime:
			return av.AtMidnight().Less(bv), nil
		}
	case Time:
		switch bv := b.(type) {
		case Time:
			return av.Less(bv), nil
		case DateTime:
			return av.OnDate().Less(bv), nil
		}
	case DateTime:
		switch bv := b.(type) {
		case DateTime:
			return av.Less(bv), nil
		case Date:
			return av.Less(bv.AtMidnight()), nil
		case Time:
			return av.Less(bv.OnDate()), nil
		}
	case Timedelta:
		if bv, ok := b.(Timedelta); ok {
			return av.Less(bv), nil
		}
	}
	return false, typeError("<", a, b)
}

func stringOf(v Value) string {
	return v.String()
}

func typeError(op string, a, b Value) error {
	return fmt.Errorf("unsupported operand types for %s: %s and %s", op, a.Kind(), b.Kind())
}
