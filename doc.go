// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jnum implements an incremental parser for the JSON number
// grammar.
//
// # Parsing
//
// A Parser consumes a single number from a sequence of byte chunks of
// the caller's choosing, and produces the same outcome no matter how
// the input is divided. Feed each chunk in order, then signal end of
// stream with an empty chunk (or the equivalent Finalize):
//
//	var p jnum.Parser
//	for _, chunk := range chunks {
//	   p.Feed(chunk)
//	}
//	p.Finalize()
//	if p.Code() != jnum.OK {
//	   log.Fatalf("Parse failed: %v", p.Code())
//	}
//	fmt.Println(p.Number())
//
// Feed returns the offset of the first byte it did not consume. When
// the grammar completes before the chunk ends, the remaining bytes
// belong to whatever follows the number in the outer stream.
//
// The parsed text is reported as a Number holding the normalized
// significand and exponent, for example "100.0" and "e0", which
// render together as "100.0e0". A redundant '+' sign is consumed but
// leaves no trace, and a missing exponent clause normalizes to "e0".
//
// # Grinding
//
// Boundary independence is the load-bearing property of the parser,
// and Grind checks it exhaustively: it parses an input whole, then
// re-parses it across every possible two-way split and verifies that
// each outcome matches the baseline.
//
//	res, err := jnum.Grind("100.0")
//	if err != nil {
//	   log.Fatalf("Grind failed: %v", err)
//	}
//
// A mismatch is reported as an error of concrete type
// *ConsistencyError carrying both outcomes; it indicates a defect in
// the parser itself, not in the input.
package jnum
