// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

package jtok

import (
	"go4.org/mem"
)

// scanString consumes one quote-delimited literal. On entry the cursor
// is at the opening quote; on success it is advanced past the closing
// quote. On failure the cursor is rewound to the opening quote.
func (p *Parser) scanString(st *State, data mem.RO, pool []Token) error {
	if pool != nil && !st.expected.Has(String) {
		return st.failf(ErrInvalid, "unexpected string")
	}
	p.fixSuper(st, pool)

	start := st.pos
	st.pos++ // skip the opening quote
	for st.pos < data.Len() && data.At(st.pos) != 0 {
		c := data.At(st.pos)
		if c == '"' {
			return p.acceptString(st, pool, start)
		}
		if c == '\\' {
			if err := p.scanEscape(st, data, start); err != nil {
				return err
			}
		}
		st.pos++
	}
	st.pos = start
	return st.fail(ErrTruncated)
}

// scanEscape validates one backslash escape. On entry the cursor is at
// the backslash; on success it is left at the final byte of the escape.
// A sequence cut short by the end of the buffer is left for the
// enclosing scan to report as truncation.
func (p *Parser) scanEscape(st *State, data mem.RO, start int) error {
	if st.pos+1 >= data.Len() {
		return nil
	}
	st.pos++
	switch c := data.At(st.pos); c {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return nil
	case 'u':
		// Exactly four hex digits must follow.
		for i := 0; i < 4; i++ {
			if st.pos+1 >= data.Len() || data.At(st.pos+1) == 0 {
				return nil
			}
			st.pos++
			if !isHexDigit(data.At(st.pos)) {
				err := st.failf(ErrInvalid, "bad hex digit %q in escape", data.At(st.pos))
				st.pos = start
				return err
			}
		}
		return nil
	default:
		err := st.failf(ErrInvalid, "bad escape %q", c)
		st.pos = start
		return err
	}
}

func (p *Parser) acceptString(st *State, pool []Token, start int) error {
	if pool == nil {
		st.next++
		st.pos++
		return nil
	}
	idx, err := st.alloc(pool)
	if err != nil {
		st.pos = start
		return err
	}

	// The span covers the content between the quotes.
	tok := Token{
		Type:   String,
		Span:   Span{Pos: start + 1, End: st.pos},
		Parent: None,
		Next:   None,
	}
	switch {
	case p.opt.Permissive:
		if idx >= 1 && pool[idx-1].Has(Key) {
			tok.Type |= Value
		}
		st.expected = AnyValue | Delimiter | Close
	case st.super != None && pool[st.super].Has(Object) && idx >= 1 && pool[idx-1].Has(Object|Value):
		// Directly after an object open or a member value: a new key.
		tok.Type |= Key
		st.expected = Delimiter
	default:
		tok.Type |= Value
		st.expected = Delimiter | Close
	}
	pool[idx] = tok
	p.link(st, pool, idx)
	if st.super != None {
		pool[st.super].Size++
	}
	st.pos++ // consume the closing quote
	return nil
}

// scanPrimitive consumes one unquoted literal up to a terminating
// character, which is left unconsumed. On failure the cursor is rewound
// to the start of the literal.
func (p *Parser) scanPrimitive(st *State, data mem.RO, pool []Token) error {
	if pool != nil && !st.expected.Has(Primitive) {
		return st.failf(ErrInvalid, "unexpected literal")
	}
	p.fixSuper(st, pool)

	start := st.pos
	for st.pos < data.Len() && data.At(st.pos) != 0 {
		c := data.At(st.pos)
		if isTerminator(c) || (p.opt.Permissive && c == ':') {
			return p.acceptPrimitive(st, pool, start)
		}
		if c < 32 || c >= 127 {
			err := st.failf(ErrInvalid, "bad byte %q in literal", c)
			st.pos = start
			return err
		}
		st.pos++
	}
	if !p.opt.Permissive {
		st.pos = start
		return st.fail(ErrTruncated)
	}
	// Permissive: the end of the buffer terminates the literal.
	return p.acceptPrimitive(st, pool, start)
}

func (p *Parser) acceptPrimitive(st *State, pool []Token, start int) error {
	if pool == nil {
		st.next++
		return nil
	}
	idx, err := st.alloc(pool)
	if err != nil {
		st.pos = start
		return err
	}
	tok := Token{
		Type:   Primitive,
		Span:   Span{Pos: start, End: st.pos},
		Parent: None,
		Next:   None,
	}
	if !p.opt.Permissive {
		tok.Type |= Value
	} else if st.super != None && pool[st.super].Has(Key) {
		tok.Type |= Value
	}
	pool[idx] = tok
	p.link(st, pool, idx)
	if st.super != None {
		pool[st.super].Size++
	}
	st.expected = Delimiter | Close
	if p.opt.Permissive && len(st.open) == 0 {
		st.expected |= AnyValue
	}
	return nil
}

func isTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', ']', '}':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
