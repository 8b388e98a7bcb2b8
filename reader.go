// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jnum

import (
	"bufio"
	"io"
)

// readerChunkBytes is the chunk size ParseReader hands to the parser.
const readerChunkBytes = 512

// ParseReader parses a single number from the front of r, feeding a
// Parser in fixed-size chunks. Parsing stops at the end of the number
// or of the input; bytes read past the end of the number are
// discarded. A read failure other than io.EOF is returned as is;
// grammar failures are reported in the Result code, not as an error.
func ParseReader(r io.Reader) (Result, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, readerChunkBytes)
	}
	var p Parser
	buf := make([]byte, readerChunkBytes)
	for !p.Done() {
		n, err := br.Read(buf)
		if n > 0 {
			p.Feed(buf[:n])
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return p.Result(), err
		}
	}
	p.Finalize()
	return p.Result(), nil
}

// ParseString parses s as a complete number in a single call.
func ParseString(s string) Result {
	var p Parser
	p.Feed([]byte(s))
	p.Finalize()
	return p.Result()
}
