// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

package jtok

// A Span describes a contiguous span of the input buffer.
type Span struct {
	Pos int // the start offset, 0-based, or None if not yet set
	End int // the end offset, 0-based (noninclusive), or None while open
}

// IsSet reports whether both bounds of the span have been set.
func (s Span) IsSet() bool { return s.Pos != None && s.End != None }

// Len returns the length of the span in bytes, or 0 if it is not set.
func (s Span) Len() int {
	if !s.IsSet() {
		return 0
	}
	return s.End - s.Pos
}
