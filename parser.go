// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

package jtok

import (
	"go4.org/mem"
)

// Options configure a Parser. The zero value is a strict RFC 8259
// tokenizer with no link maintenance.
type Options struct {
	// Permissive relaxes the grammar: unquoted literals are accepted
	// anywhere a value is legal, object keys need not be strings, and
	// multiple top-level values are tolerated.
	Permissive bool

	// ParentLinks records each token's parent index in Token.Parent.
	ParentLinks bool

	// SiblingLinks records each token's next-sibling index in Token.Next.
	SiblingLinks bool
}

// A Parser tokenizes JSON text into caller-supplied token pools. The
// parser itself is immutable after construction; all per-parse state
// lives in a State, so a single Parser may serve any number of
// concurrent parses.
type Parser struct {
	opt Options
}

// New constructs a Parser with the given options.
func New(opt Options) *Parser { return &Parser{opt: opt} }

// openEntry records one open container: its pool index (None during a
// dry run) and its bracket category.
type openEntry struct {
	index int
	kind  Type
}

// A State holds the progress of one parse: the scan cursor, the next
// free pool slot, the current superior token, the grammar expectation,
// and the stack of open containers.
//
// A State may be retained across calls to Parse. After ErrCapacity the
// caller can supply a larger pool holding the same token prefix, and
// after ErrTruncated a buffer with more bytes appended, and resume
// exactly where scanning stopped. A State is bound to one mode: use it
// either for real runs or for dry runs, not both.
type State struct {
	pos      int
	next     int
	super    int
	expected Type
	open     []openEntry
}

// NewState returns a fresh State positioned at the start of the input.
func (p *Parser) NewState() *State {
	return &State{super: None, expected: p.initial()}
}

func (p *Parser) initial() Type {
	if p.opt.Permissive {
		return AnyValue
	}
	return Container
}

// Pos returns the current byte offset of the scan cursor.
func (st *State) Pos() int { return st.pos }

// Count returns the number of tokens produced so far.
func (st *State) Count() int { return st.next }

// Depth returns the number of currently open containers.
func (st *State) Depth() int { return len(st.open) }

func (st *State) push(e openEntry) { st.open = append(st.open, e) }

func (st *State) top() openEntry { return st.open[len(st.open)-1] }

func (st *State) pop() openEntry {
	last := st.top()
	st.open = st.open[:len(st.open)-1]
	return last
}

// superIndex returns the pool index of the innermost open container, or
// None if no container is open.
func (st *State) superIndex() int {
	if len(st.open) == 0 {
		return None
	}
	return st.top().index
}

// Parse scans data from the state's current position and appends token
// records to pool, whose length is the pool capacity. It returns the
// total number of tokens produced so far, which is meaningful even when
// an error is returned.
//
// If pool is nil the parser runs in dry-run mode: the cursor advances
// and tokens are counted exactly as in a real run, but no records are
// written and grammar expectation checks are skipped. Character-level
// validation and bracket matching still apply, so a dry run can succeed
// on input whose grammar a real run would reject.
//
// Scanning stops at len(data) or at an embedded NUL byte, whichever
// comes first.
func (p *Parser) Parse(st *State, data []byte, pool []Token) (int, error) {
	return p.ParseMem(st, mem.B(data), pool)
}

// ParseString scans a string without copying it. See Parse.
func (p *Parser) ParseString(st *State, data string, pool []Token) (int, error) {
	return p.ParseMem(st, mem.S(data), pool)
}

// ParseMem scans a read-only byte view. See Parse.
func (p *Parser) ParseMem(st *State, data mem.RO, pool []Token) (int, error) {
	for st.pos < data.Len() && data.At(st.pos) != 0 {
		c := data.At(st.pos)
		switch c {
		case '{', '[':
			if err := p.openContainer(st, pool, c); err != nil {
				return st.next, err
			}
			st.pos++

		case '}', ']':
			if err := p.closeContainer(st, pool, c); err != nil {
				return st.next, err
			}
			st.pos++

		case '"':
			if err := p.scanString(st, data, pool); err != nil {
				return st.next, err
			}

		case ' ', '\t', '\n', '\r':
			st.pos++

		case ':':
			if err := p.colon(st, pool); err != nil {
				return st.next, err
			}
			st.pos++

		case ',':
			if err := p.comma(st, pool); err != nil {
				return st.next, err
			}
			st.pos++

		default:
			if !p.opt.Permissive && !isPrimitiveStart(c) {
				return st.next, st.failf(ErrInvalid, "unexpected %q", c)
			}
			if err := p.scanPrimitive(st, data, pool); err != nil {
				return st.next, err
			}
		}
	}

	if len(st.open) != 0 {
		return st.next, st.fail(ErrTruncated)
	}
	return st.next, nil
}

// alloc returns the next free pool index. On failure nothing is
// mutated, so the caller can rewind the cursor and report ErrCapacity.
func (st *State) alloc(pool []Token) (int, error) {
	if st.next >= len(pool) {
		return None, st.fail(ErrCapacity)
	}
	idx := st.next
	st.next++
	return idx, nil
}

func (p *Parser) openContainer(st *State, pool []Token, c byte) error {
	kind := Object
	if c == '[' {
		kind = Array
	}
	if pool == nil {
		st.push(openEntry{index: None, kind: kind})
		st.next++
		return nil
	}
	if !st.expected.Has(kind) {
		return st.failf(ErrInvalid, "unexpected %q", c)
	}
	idx, err := st.alloc(pool)
	if err != nil {
		return err
	}
	pool[idx] = Token{
		Type:   kind | Value,
		Span:   Span{Pos: st.pos, End: None},
		Parent: None,
		Next:   None,
	}
	if st.super != None {
		pool[st.super].Size++
	}
	p.link(st, pool, idx)
	st.push(openEntry{index: idx, kind: kind})
	st.super = idx
	if !p.opt.Permissive && kind == Object {
		st.expected = String | Close
	} else {
		st.expected = AnyValue | Close
	}
	return nil
}

func (p *Parser) closeContainer(st *State, pool []Token, c byte) error {
	kind := Object
	if c == ']' {
		kind = Array
	}
	if pool == nil {
		if len(st.open) == 0 || st.top().kind != kind {
			return st.failf(ErrInvalid, "unmatched %q", c)
		}
		st.pop()
		return nil
	}
	if !st.expected.Has(Close) {
		return st.failf(ErrInvalid, "unexpected %q", c)
	}
	if len(st.open) == 0 || st.top().kind != kind {
		return st.failf(ErrInvalid, "unmatched %q", c)
	}
	open := st.pop()
	pool[open.index].End = st.pos + 1

	st.super = st.superIndex()
	if st.super == None {
		// The top-level element is complete.
		st.expected = p.initial()
	} else {
		st.expected = Delimiter | Close
	}
	return nil
}

func (p *Parser) colon(st *State, pool []Token) error {
	if pool == nil {
		return nil
	}
	if !st.expected.Has(Delimiter) {
		return st.failf(ErrInvalid, "unexpected %q", ':')
	}
	if p.opt.Permissive {
		pool[st.next-1].Type |= Key
	} else if st.super == None || !pool[st.next-1].Has(Key) {
		return st.failf(ErrInvalid, "unexpected %q", ':')
	}
	st.super = st.next - 1
	st.expected = AnyValue
	return nil
}

func (p *Parser) comma(st *State, pool []Token) error {
	if pool == nil {
		return nil
	}
	if !st.expected.Has(Delimiter) {
		return st.failf(ErrInvalid, "unexpected %q", ',')
	}
	if p.opt.Permissive {
		pool[st.next-1].Type |= Value
	} else if pool[st.next-1].Has(Key) {
		return st.failf(ErrInvalid, "unexpected %q", ',')
	}

	// The previous superior may be a key whose value just completed;
	// step back up to the innermost open container.
	st.super = st.superIndex()

	switch {
	case p.opt.Permissive:
		st.expected = AnyValue
	case st.super != None && st.top().kind == Object:
		st.expected = String // the next member key
	default:
		st.expected = AnyValue
	}
	return nil
}

// fixSuper re-derives the superior token when, in permissive mode, a new
// value directly follows a completed key/value pair with no separating
// comma. The stale superior is the previous key; its replacement is the
// innermost open container.
func (p *Parser) fixSuper(st *State, pool []Token) {
	if !p.opt.Permissive || pool == nil || st.next < 2 {
		return
	}
	if st.expected.Has(Delimiter) && pool[st.next-2].Has(Key) {
		st.super = st.superIndex()
	}
}

// link records parent and sibling indices for the newly allocated token
// at idx, as configured.
func (p *Parser) link(st *State, pool []Token, idx int) {
	if p.opt.ParentLinks {
		pool[idx].Parent = st.super
	}
	if !p.opt.SiblingLinks {
		return
	}
	// The chain starts at the superior's first child, or at token 0 for
	// top-level tokens.
	sib := 0
	if st.super != None {
		sib = st.super + 1
	}
	if sib == idx {
		return // idx is the first child
	}
	for pool[sib].Next != None {
		sib = pool[sib].Next
	}
	pool[sib].Next = idx
}

func isPrimitiveStart(c byte) bool {
	return c == '-' || ('0' <= c && c <= '9') || c == 't' || c == 'f' || c == 'n'
}
