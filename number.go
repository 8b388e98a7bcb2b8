// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jnum

import "go4.org/mem"

// A mantissa accumulates the normalized text of the significand of a
// number: an optional leading sign, digits, and at most one decimal
// point. No validation happens here; the parser only invokes appends
// the grammar allows.
type mantissa struct {
	buf []byte
}

func (m *mantissa) sign()        { m.buf = append(m.buf, '-') }
func (m *mantissa) point()       { m.buf = append(m.buf, '.') }
func (m *mantissa) digit(c byte) { m.buf = append(m.buf, c) }

// finalize locks in the default text for an empty significand.
// After finalize the buffer is never empty.
func (m *mantissa) finalize() {
	if len(m.buf) == 0 {
		m.buf = append(m.buf, '0')
	}
}

// An exponent accumulates the normalized text of the exponent of a
// number. The leading marker is not appended during parsing; finalize
// synthesizes its own 'e', so input written with 'E' or with no
// exponent clause at all still renders in the normalized form.
type exponent struct {
	buf []byte
}

func (e *exponent) sign()        { e.buf = append(e.buf, '-') }
func (e *exponent) digit(c byte) { e.buf = append(e.buf, c) }

// finalize locks in the default "0" for an empty exponent and
// prepends the 'e' marker. After finalize the buffer begins with 'e'
// followed by at least one more character.
func (e *exponent) finalize() {
	if len(e.buf) == 0 {
		e.buf = append(e.buf, '0')
	}
	e.buf = append([]byte("e"), e.buf...)
}

// A Number is the text of a parsed JSON number, split into its
// normalized significand and exponent parts. A Number is captured
// from the parser's accumulators and never modified thereafter.
type Number struct {
	Mantissa string // significand text, e.g. "100.0" or "-5"
	Exponent string // exponent text with leading marker, e.g. "e0"
}

// Equal reports whether n and o have identical text.
func (n Number) Equal(o Number) bool {
	return mem.S(n.Mantissa).Equal(mem.S(o.Mantissa)) && mem.S(n.Exponent).Equal(mem.S(o.Exponent))
}

// String renders n as significand followed by exponent, e.g. "100.0e0".
func (n Number) String() string { return n.Mantissa + n.Exponent }
