// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jnum

import "fmt"

// A Result is a snapshot of a parse outcome: the error state and the
// number accumulated at the point parsing stopped. If Code is not OK
// the number holds whatever partial text existed at the failure and
// should not be treated as meaningful.
type Result struct {
	Code ErrCode
	Num  Number
}

// Equal reports whether r and o are structurally equal, over both
// the error code and the number text.
func (r Result) Equal(o Result) bool { return r.Code == o.Code && r.Num.Equal(o.Num) }

// String renders the number text, or for an errored result a
// category : code : message triple, e.g. "jnum : 22 : invalid argument".
func (r Result) String() string {
	if r.Code != OK {
		return fmt.Sprintf("jnum : %d : %s", r.Code.errno(), r.Code)
	}
	return r.Num.String()
}
