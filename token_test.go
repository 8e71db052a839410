// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

package jtok_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/jtok-go/jtok"
	"go4.org/mem"
)

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		tok     jtok.Type
		mask    jtok.Type
		has, is bool
	}{
		{jtok.StringKey, jtok.String, true, true},
		{jtok.StringKey, jtok.Key, true, true},
		{jtok.StringKey, jtok.Value, false, false},
		{jtok.StringKey, jtok.StringKey, true, true},
		{jtok.StringKey, jtok.StringValue, true, false},
		{jtok.ObjectValue, jtok.Container, true, false},
		{jtok.ObjectValue, jtok.AnyValue, true, false},
		{jtok.PrimitiveValue, jtok.String | jtok.Primitive, true, false},
		{jtok.Primitive, jtok.Value, false, false},
		{jtok.ArrayValue, jtok.Object, false, false},
	}
	for _, test := range tests {
		if got := test.tok.Has(test.mask); got != test.has {
			t.Errorf("(%v).Has(%v): got %v, want %v", test.tok, test.mask, got, test.has)
		}
		if got := test.tok.Is(test.mask); got != test.is {
			t.Errorf("(%v).Is(%v): got %v, want %v", test.tok, test.mask, got, test.is)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		tok  jtok.Type
		want string
	}{
		{jtok.Type(0), "invalid"},
		{jtok.Object, "object"},
		{jtok.StringKey, "string+key"},
		{jtok.ObjectValue, "object+value"},
		{jtok.PrimitiveValue, "primitive+value"},
		{jtok.Delimiter, "delimiter"},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("String: got %q, want %q", got, test.want)
		}
	}
}

func TestTokenText(t *testing.T) {
	data := []byte(`["hello",42]`)
	p := jtok.New(jtok.Options{})
	pool := make([]jtok.Token, 4)
	if _, err := p.Parse(p.NewState(), data, pool); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := string(pool[1].Text(data)); got != "hello" {
		t.Errorf("Text: got %q, want %q", got, "hello")
	}
	if got := pool[2].TextMem(mem.B(data)).StringCopy(); got != "42" {
		t.Errorf("TextMem: got %q, want %q", got, "42")
	}
	if got := pool[0].Len(); got != len(data) {
		t.Errorf("Len: got %d, want %d", got, len(data))
	}

	// An open container has no text yet.
	open := jtok.Token{Type: jtok.Object, Span: jtok.Span{Pos: 0, End: jtok.None}}
	if open.IsClosed() {
		t.Error("IsClosed: got true, want false")
	}
	if !open.IsOpenContainer() {
		t.Error("IsOpenContainer: got false, want true")
	}
	mtest.MustPanic(t, func() { open.Text(data) })
}
