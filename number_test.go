// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jnum

import "testing"

func TestMantissaFinalize(t *testing.T) {
	var m mantissa
	m.finalize()
	if got := string(m.buf); got != "0" {
		t.Errorf("Empty mantissa: got %q, want %q", got, "0")
	}

	var n mantissa
	n.sign()
	n.digit('4')
	n.point()
	n.digit('2')
	n.finalize()
	if got := string(n.buf); got != "-4.2" {
		t.Errorf("Mantissa: got %q, want %q", got, "-4.2")
	}
}

func TestExponentFinalize(t *testing.T) {
	var e exponent
	e.finalize()
	if got := string(e.buf); got != "e0" {
		t.Errorf("Empty exponent: got %q, want %q", got, "e0")
	}

	var f exponent
	f.sign()
	f.digit('7')
	f.finalize()
	if got := string(f.buf); got != "e-7" {
		t.Errorf("Exponent: got %q, want %q", got, "e-7")
	}
}

func TestNumberEqual(t *testing.T) {
	a := Number{Mantissa: "100.0", Exponent: "e0"}
	b := Number{Mantissa: "100.0", Exponent: "e0"}
	c := Number{Mantissa: "100.0", Exponent: "e1"}
	if !a.Equal(b) {
		t.Errorf("Equal: %v != %v, want equal", a, b)
	}
	if a.Equal(c) {
		t.Errorf("Equal: %v == %v, want unequal", a, c)
	}
	if got, want := a.String(), "100.0e0"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
