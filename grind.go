// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jnum

import "fmt"

// A ConsistencyError reports that parsing some split of an input
// disagreed with the whole-input baseline. It indicates a defect in
// the parser's suspend and resume logic, and carries both outcomes
// for diagnosis.
type ConsistencyError struct {
	Split       int    // index at which the input was split
	Want, Got   Result // whole-input and split outcomes
	WantN, GotN int    // bytes consumed by each
}

// Error satisfies the error interface.
func (c *ConsistencyError) Error() string {
	return fmt.Sprintf("grind failure at split %d: expected %v,%d but got %v,%d",
		c.Split, c.Want, c.WantN, c.Got, c.GotN)
}

// Grind verifies that parsing input does not depend on chunk
// boundaries: it parses the whole input in one call to establish a
// baseline, then re-parses it for every split index i, feeding the
// prefix [0,i) and the suffix [i,len) to a fresh Parser, and compares
// the outcomes. It returns the baseline result, with an error of
// concrete type *ConsistencyError if any split disagrees.
//
// Grind is a verification harness, not a production parsing path.
func Grind(input string) (Result, error) {
	base, baseN := parseSplit(input, len(input))
	for i := 1; i < len(input); i++ {
		res, n := parseSplit(input, i)
		if !res.Equal(base) || n != baseN {
			return base, &ConsistencyError{
				Split: i, Want: base, Got: res, WantN: baseN, GotN: n,
			}
		}
	}
	return base, nil
}

// parseSplit parses input divided at index i, reporting the outcome
// and the number of bytes consumed. A split at len(input) is the
// unsplit baseline. The suffix is fed only if the prefix left the
// parser suspended.
func parseSplit(input string, i int) (Result, int) {
	var p Parser
	n := p.Feed([]byte(input[:i]))
	if !p.Done() && i < len(input) {
		n += p.Feed([]byte(input[i:]))
	}
	p.Finalize()
	return p.Result(), n
}
