// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jnum_test

import (
	"fmt"
	"log"

	"github.com/creachadair/jnum"
)

func ExampleParser() {
	var p jnum.Parser

	// Chunk boundaries may fall anywhere, including between the
	// exponent sign and its digits.
	p.Feed([]byte("100."))
	p.Feed([]byte("0e-"))
	p.Feed([]byte("3"))
	p.Finalize()

	fmt.Println(p.Number())
	// Output:
	// 100.0e-3
}

func ExampleGrind() {
	res, err := jnum.Grind("100.0")
	if err != nil {
		log.Fatalf("Grind: %v", err)
	}
	fmt.Println(res)
	// Output:
	// 100.0e0
}
