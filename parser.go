// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jnum

// An ErrCode describes the error state of a Parser.
type ErrCode byte

// Constants defining the valid ErrCode values.
const (
	OK         ErrCode = iota // no error
	ErrInvalid                // input cannot extend to a valid JSON number
)

func (e ErrCode) String() string {
	switch e {
	case OK:
		return "no error"
	case ErrInvalid:
		return "invalid argument"
	}
	return "unknown error"
}

// errno returns the numeric code rendered for e in an error triple.
// ErrInvalid maps to the EINVAL value.
func (e ErrCode) errno() int {
	if e == ErrInvalid {
		return 22
	}
	return int(e)
}

// A state marks the position of a Parser within the number grammar.
// It is the resume point when a chunk boundary splits the input.
type state byte

const (
	sStart      state = iota // nothing consumed yet
	sSign                    // consumed a leading sign
	sZero                    // consumed a leading zero
	sIntDigits               // inside the integer digit run
	sFracPoint               // consumed the decimal point
	sFracDigits              // inside the fractional digit run
	sExpStart                // consumed the exponent marker
	sExpSign                 // consumed the exponent sign
	sExpDigits               // inside the exponent digit run
	sDone                    // number complete
	sFailed                  // error recorded

	// The terminal states must remain last; Done relies on the order.
)

// A Parser is an incremental parser for a single JSON number. Input
// arrives as byte chunks of the caller's choosing via Feed; the
// parser suspends at chunk boundaries and resumes on the next call,
// so the outcome is identical no matter how the input is divided.
//
// The zero value is ready to use. A Parser handles one number and is
// then discarded; construct a fresh Parser for the next value.
//
// One deliberate divergence from the strict JSON grammar: a
// fractional part may consist of a bare decimal point with no digits
// after it, so "1." is accepted.
type Parser struct {
	mant mantissa
	exp  exponent
	st   state
	code ErrCode
	off  int  // total bytes consumed over all chunks
	fin  bool // the end-of-stream signal has been processed
}

// Feed consumes bytes of chunk and returns the offset of the first
// byte it did not consume. Full consumption with the parser not yet
// Done means it is suspended awaiting more input. If the number ends
// inside the chunk, the returned offset marks the terminating byte,
// which belongs to whatever follows the number in the outer stream;
// do not feed it to this parser again.
//
// An empty chunk is the end-of-stream signal: it resolves any state
// that was pending only because more input might arrive, and locks in
// default text for the accumulators. It must be the final call for
// this Parser; feeding data afterward panics.
func (p *Parser) Feed(chunk []byte) int {
	if len(chunk) == 0 {
		p.finalize()
		return 0
	}
	if p.fin {
		panic("jnum: Feed after end of stream")
	}
	i := 0
	for i < len(chunk) && p.st < sDone {
		if p.step(chunk[i]) {
			i++
		}
	}
	p.off += i
	return i
}

// Finalize signals end of stream, equivalent to Feed with an empty
// chunk. Calling it when the parser is already complete or failed
// only confirms the final accumulator text.
func (p *Parser) Finalize() { p.Feed(nil) }

// Done reports whether the parser has reached a terminal state,
// either a complete number or a recorded error.
func (p *Parser) Done() bool { return p.st >= sDone }

// Code returns the current error state. It is OK until an invalid
// input condition is detected.
func (p *Parser) Code() ErrCode { return p.code }

// Offset returns the total number of bytes consumed across all
// chunks fed so far.
func (p *Parser) Offset() int { return p.off }

// Number returns the accumulated number text. The value is fully
// normalized only once Finalize has run; if an error is recorded it
// holds whatever partial text existed at the failure and should not
// be treated as meaningful.
func (p *Parser) Number() Number {
	return Number{Mantissa: string(p.mant.buf), Exponent: string(p.exp.buf)}
}

// Result captures the parser's error state and number as a Result.
func (p *Parser) Result() Result { return Result{Code: p.code, Num: p.Number()} }

// step advances the state machine on c and reports whether c was
// consumed. Transitions into a terminal state leave c unconsumed.
func (p *Parser) step(c byte) bool {
	switch p.st {
	case sStart:
		if c == '+' {
			p.st = sSign // consumed, but leaves no trace in the output
			return true
		} else if c == '-' {
			p.mant.sign()
			p.st = sSign
			return true
		}
		return p.first(c)

	case sSign:
		return p.first(c)

	case sZero:
		// A leading zero must be followed by the decimal point or the
		// end of the number; anything else is an error, not a
		// terminator.
		if c != '.' {
			p.code = ErrInvalid
			p.st = sFailed
			return false
		}
		p.mant.point()
		p.st = sFracPoint
		return true

	case sIntDigits:
		switch {
		case isDigit(c):
			p.mant.digit(c)
		case c == '.':
			p.mant.point()
			p.st = sFracPoint
		case c == 'e' || c == 'E':
			p.st = sExpStart
		default:
			p.st = sDone
			return false
		}
		return true

	case sFracPoint, sFracDigits:
		switch {
		case isDigit(c):
			p.mant.digit(c)
			p.st = sFracDigits
		case c == 'e' || c == 'E':
			p.st = sExpStart
		default:
			p.st = sDone
			return false
		}
		return true

	case sExpStart:
		if c == '+' {
			p.st = sExpSign // dropped, as with the significand sign
			return true
		} else if c == '-' {
			p.exp.sign()
			p.st = sExpSign
			return true
		}
		fallthrough

	case sExpSign:
		if isDigit(c) {
			p.exp.digit(c)
			p.st = sExpDigits
			return true
		}
		p.st = sDone
		return false

	case sExpDigits:
		if isDigit(c) {
			p.exp.digit(c)
			return true
		}
		p.st = sDone
		return false
	}
	return false
}

// first handles the earliest position at which a significand
// character may appear, shared by the start and after-sign states.
func (p *Parser) first(c byte) bool {
	switch {
	case c == '0':
		p.mant.digit(c)
		p.st = sZero
	case isDigit(c):
		p.mant.digit(c)
		p.st = sIntDigits
	case c == '.':
		p.mant.point()
		p.st = sFracPoint
	case c == 'e' || c == 'E':
		p.st = sExpStart
	default:
		p.st = sDone
		return false
	}
	return true
}

// finalize processes the end-of-stream signal: states that were
// suspended only in case more input arrived become terminal, and the
// accumulators assume their default text unless an error was already
// recorded before this call.
func (p *Parser) finalize() {
	hadErr := p.code != OK
	switch p.st {
	case sStart, sSign, sExpStart, sExpSign:
		// A number cannot end here: no input at all, a bare sign, or
		// an exponent marker with no digit after it.
		p.code = ErrInvalid
		p.st = sFailed
	case sZero, sIntDigits, sFracPoint, sFracDigits, sExpDigits:
		p.st = sDone
	}
	if !hadErr && !p.fin {
		p.mant.finalize()
		p.exp.finalize()
		p.fin = true
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
