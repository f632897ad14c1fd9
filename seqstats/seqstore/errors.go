// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqstore

import "fmt"

// DuplicateNameError is returned when a header repeats an earlier
// sequence name.
type DuplicateNameError struct {
	Name string
	Line int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("seqstore: duplicated sequence name %q at line %d", e.Name, e.Line)
}

// MalformedInputError is returned when a line cannot be attributed to a
// named sequence.
type MalformedInputError struct {
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("seqstore: malformed input at line %d: %s", e.Line, e.Reason)
}
