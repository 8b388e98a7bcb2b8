// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jnum_test

import (
	"testing"

	"github.com/creachadair/jnum"
	"github.com/google/go-cmp/cmp"
)

func TestGrind(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100.0", "100.0e0"},
		{"0", "0e0"},
		{"0.", "0.e0"},
		{"-0.5e-10", "-0.5e-10"},
		{"+15E6", "15e6"},
		{"1.", "1.e0"},
		{"12345.6789", "12345.6789e0"},
		{"100.0x", "100.0e0"},

		{"01", "jnum : 22 : invalid argument"},
		{"1e", "jnum : 22 : invalid argument"},
		{"1e-", "jnum : 22 : invalid argument"},
		{"-", "jnum : 22 : invalid argument"},
	}
	for _, test := range tests {
		res, err := jnum.Grind(test.input)
		if err != nil {
			t.Errorf("Grind(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if got := res.String(); got != test.want {
			t.Errorf("Grind(%#q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestGrindResult(t *testing.T) {
	res, err := jnum.Grind("100.0")
	if err != nil {
		t.Fatalf("Grind failed: %v", err)
	}
	want := jnum.Result{Code: jnum.OK, Num: jnum.Number{Mantissa: "100.0", Exponent: "e0"}}
	if !res.Equal(want) {
		t.Errorf("Grind result: got %v, want %v", res, want)
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Grind result: (-want, +got)\n%s", diff)
	}
}

func TestConsistencyError(t *testing.T) {
	err := &jnum.ConsistencyError{
		Split: 3,
		Want:  jnum.ParseString("100.0"),
		WantN: 5,
		Got:   jnum.ParseString("01"),
		GotN:  1,
	}
	const want = `grind failure at split 3: expected 100.0e0,5 but got jnum : 22 : invalid argument,1`
	if got := err.Error(); got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
}
