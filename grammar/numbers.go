package grammar

import (
	"math"
	"strconv"

	"fortio.org/safecast"

	"scry"
)

// Uint64 is an unsigned decimal integer literal. The numeric value discards
// leading zeros; the span (and therefore Unparse) preserves them, keeping
// the round-trip exact.
type Uint64 struct {
	value uint64
	span  scry.Span
}

// Uint64Of builds a detached expected value; its textual form is the
// canonical decimal rendering of v.
func Uint64Of(v uint64) Uint64 {
	return Uint64{value: v}
}

// Parse consumes the decimal digit run at the cursor. A run whose value does
// not fit in 64 bits is still consumed in full, then reported as a
// "number too large" error covering the whole run.
func (Uint64) Parse(st *scry.ParseStream) (Uint64, error) {
	start := st.Position()
	if _, err := st.NextDigit(); err != nil {
		return Uint64{}, err
	}
	var value uint64
	overflow := false
	for {
		d, err := st.NextDigit()
		if err != nil {
			break
		}
		if _, err := st.Consume(1); err != nil {
			return Uint64{}, err
		}
		if value > (math.MaxUint64-uint64(d))/10 {
			overflow = true
			continue
		}
		value = value*10 + uint64(d)
	}
	span := scry.NewSpan(st.Source(), start, st.Position())
	if overflow {
		return Uint64{}, scry.NewError(span, "number too large")
	}
	return Uint64{value: value, span: span}, nil
}

// ParseValue matches this value's exact digit text at the cursor.
func (u Uint64) ParseValue(st *scry.ParseStream) (Uint64, error) {
	span, err := st.ParseString(u.Unparse())
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{value: u.value, span: span}, nil
}

// Value returns the numeric value.
func (u Uint64) Value() uint64 {
	return u.value
}

// Uint8 narrows the value, failing if it does not fit.
func (u Uint64) Uint8() (uint8, error) {
	return safecast.Conv[uint8](u.value)
}

// Uint16 narrows the value, failing if it does not fit.
func (u Uint64) Uint16() (uint16, error) {
	return safecast.Conv[uint16](u.value)
}

// Uint32 narrows the value, failing if it does not fit.
func (u Uint64) Uint32() (uint32, error) {
	return safecast.Conv[uint32](u.value)
}

// Int64 converts the value to a signed integer, failing if it does not fit.
func (u Uint64) Int64() (int64, error) {
	return safecast.Conv[int64](u.value)
}

// Unparse returns the consumed digit text, or the canonical decimal
// rendering for a detached value that was never parsed.
func (u Uint64) Unparse() string {
	if u.span.IsBlank() {
		return strconv.FormatUint(u.value, 10)
	}
	return u.span.SourceText().AsString()
}

// Span returns the span of the digit run, leading zeros included.
func (u Uint64) Span() scry.Span {
	return u.span
}

func (u Uint64) String() string {
	return u.Unparse()
}

// Int64Lit is a signed decimal integer literal: an optional leading minus
// sign followed by a digit run.
type Int64Lit struct {
	value int64
	span  scry.Span
}

// Int64Of builds a detached expected value.
func Int64Of(v int64) Int64Lit {
	return Int64Lit{value: v}
}

// Parse consumes an optional '-' and the following digit run. Values outside
// the int64 range fail with "number too large" covering the whole literal.
func (Int64Lit) Parse(st *scry.ParseStream) (Int64Lit, error) {
	start := st.Position()
	negative := false
	if st.PeekString("-") {
		if _, err := st.Consume(1); err != nil {
			return Int64Lit{}, err
		}
		negative = true
	}
	if _, err := st.NextDigit(); err != nil {
		return Int64Lit{}, err
	}
	var magnitude uint64
	overflow := false
	for {
		d, err := st.NextDigit()
		if err != nil {
			break
		}
		if _, err := st.Consume(1); err != nil {
			return Int64Lit{}, err
		}
		if magnitude > (math.MaxUint64-uint64(d))/10 {
			overflow = true
			continue
		}
		magnitude = magnitude*10 + uint64(d)
	}
	span := scry.NewSpan(st.Source(), start, st.Position())
	limit := uint64(math.MaxInt64)
	if negative {
		limit++ // |math.MinInt64|
	}
	if overflow || magnitude > limit {
		return Int64Lit{}, scry.NewError(span, "number too large")
	}
	var value int64
	if negative && magnitude == limit {
		value = math.MinInt64
	} else {
		value = int64(magnitude) //nolint:gosec // bounded by limit above
		if negative {
			value = -value
		}
	}
	return Int64Lit{value: value, span: span}, nil
}

// ParseValue matches this value's exact literal text at the cursor.
func (i Int64Lit) ParseValue(st *scry.ParseStream) (Int64Lit, error) {
	span, err := st.ParseString(i.Unparse())
	if err != nil {
		return Int64Lit{}, err
	}
	return Int64Lit{value: i.value, span: span}, nil
}

// Value returns the numeric value.
func (i Int64Lit) Value() int64 {
	return i.value
}

// Int8 narrows the value, failing if it does not fit.
func (i Int64Lit) Int8() (int8, error) {
	return safecast.Conv[int8](i.value)
}

// Int16 narrows the value, failing if it does not fit.
func (i Int64Lit) Int16() (int16, error) {
	return safecast.Conv[int16](i.value)
}

// Int32 narrows the value, failing if it does not fit.
func (i Int64Lit) Int32() (int32, error) {
	return safecast.Conv[int32](i.value)
}

// Unparse returns the consumed literal text, or the canonical decimal
// rendering for a detached value.
func (i Int64Lit) Unparse() string {
	if i.span.IsBlank() {
		return strconv.FormatInt(i.value, 10)
	}
	return i.span.SourceText().AsString()
}

// Span returns the span of the literal.
func (i Int64Lit) Span() scry.Span {
	return i.span
}

func (i Int64Lit) String() string {
	return i.Unparse()
}
