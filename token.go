// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

package jtok

import (
	"strings"

	"go4.org/mem"
)

// Type is a bit set describing the lexical category and role of a token.
// A stored token carries exactly one base category (Object, Array, String,
// Primitive) and, once its role is resolved, exactly one role bit (Key,
// Value). The Close and Delimiter bits never appear in a stored token;
// they occur only in grammar expectation masks.
type Type uint8

// Constants defining the valid Type bits.
const (
	Object    Type = 1 << iota // object "{ ... }"
	Array                      // array "[ ... ]"
	String                     // quoted string
	Primitive                  // unquoted literal: number, boolean, null
	Key                        // role: object member key
	Value                      // role: value position
	Close                      // a closing bracket "}" or "]"
	Delimiter                  // a ":" or ","
)

// Unions of the base bits used by the grammar and by type queries.
const (
	Container = Object | Array                 // any container category
	AnyValue  = Container | String | Primitive // any value category

	ObjectValue    = Object | Value
	ArrayValue     = Array | Value
	StringKey      = String | Key
	StringValue    = String | Value
	PrimitiveValue = Primitive | Value
)

var typeName = [...]struct {
	bit  Type
	name string
}{
	{Object, "object"},
	{Array, "array"},
	{String, "string"},
	{Primitive, "primitive"},
	{Key, "key"},
	{Value, "value"},
	{Close, "close"},
	{Delimiter, "delimiter"},
}

func (t Type) String() string {
	if t == 0 {
		return "invalid"
	}
	var parts []string
	for _, n := range typeName {
		if t&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// Has reports whether t shares any bit with mask. A query for String
// matches both string values and string keys; use Is for an exact
// combined-mask test.
func (t Type) Has(mask Type) bool { return t&mask != 0 }

// Is reports whether t contains every bit of mask.
func (t Type) Is(mask Type) bool { return t&mask == mask }

// None is the sentinel index marking an absent token reference: an unset
// span bound, a missing parent or sibling link, or no open container.
const None = -1

// A Token describes one lexical unit of the input: a container, a string,
// or an unquoted primitive. Its span indexes the original buffer; the
// engine never copies or decodes text.
type Token struct {
	Type Type
	Span

	// Size is the number of direct children counted while the token was
	// the superior of the parse: element values for arrays, member pairs
	// for objects, the value for a key.
	Size int

	// Parent is the index of the enclosing token, or None. It is
	// maintained only when Options.ParentLinks is set.
	Parent int

	// Next is the index of the next sibling token, or None. It is
	// maintained only when Options.SiblingLinks is set.
	Next int
}

// Has reports whether the token's type shares any bit with mask.
func (t Token) Has(mask Type) bool { return t.Type.Has(mask) }

// Is reports whether the token's type contains every bit of mask.
func (t Token) Is(mask Type) bool { return t.Type.Is(mask) }

// IsClosed reports whether both span bounds have been set. A container
// token remains open from its opening bracket until its matching closer
// is scanned.
func (t Token) IsClosed() bool { return t.IsSet() }

// IsOpenContainer reports whether the token is a container whose closing
// bracket has not yet been scanned.
func (t Token) IsOpenContainer() bool { return t.Has(Container) && !t.IsClosed() }

// Text returns the raw bytes of the token's span in data, which must be
// the buffer the token was parsed from. String spans exclude the
// enclosing quotation marks and are not unescaped. Text panics if the
// token is still open.
func (t Token) Text(data []byte) []byte { return data[t.Pos:t.End] }

// TextMem returns the token's span as a read-only view of data.
// It panics if the token is still open.
func (t Token) TextMem(data mem.RO) mem.RO {
	return data.SliceFrom(t.Pos).SliceTo(t.End - t.Pos)
}
