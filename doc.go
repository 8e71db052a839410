// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

// Package jtok implements an incremental, allocation-free JSON tokenizer.
//
// The tokenizer scans a byte buffer of JSON text and writes a flat
// sequence of [Token] records into a caller-supplied pool. Each token
// records its type, its byte-offset span in the buffer, and the number of
// its direct children; no tree is built, no text is copied or unescaped,
// and the engine itself never allocates. It is intended to be embedded
// inside a larger parser or document model.
//
// # Parsing
//
// Construct a [Parser] with the desired [Options], create a [State], and
// call Parse with the input and a pool sized for the expected number of
// tokens:
//
//	p := jtok.New(jtok.Options{})
//	st := p.NewState()
//	pool := make([]jtok.Token, 64)
//	n, err := p.Parse(st, data, pool)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	for _, tok := range pool[:n] {
//	   log.Printf("%v %q", tok.Type, tok.Text(data))
//	}
//
// Token spans index the original buffer, so the buffer must be kept alive
// as long as the tokens are interpreted. Decoding primitive spans into
// numbers or booleans, and unescaping string spans, is left to the
// caller.
//
// # Counting
//
// Passing a nil pool runs the tokenizer in dry-run mode: the input is
// scanned and tokens are counted, but no records are written and grammar
// expectation checks are skipped. A dry run sizes a pool cheaply, with
// the caveat that a grammatically invalid document can count cleanly and
// then fail the real run.
//
//	n, err := p.Parse(p.NewState(), data, nil)
//
// # Resumption
//
// A State can be retained across calls. If Parse fails with
// [ErrCapacity], the cursor and the next free pool slot are left exactly
// where the failing token began; supply a larger pool holding the same
// token prefix and call Parse again with the same State to continue. If
// Parse fails with [ErrTruncated], append more input bytes and call
// again. [ErrInvalid] is not recoverable within the same parse.
//
// # Dialects
//
// The default grammar is strict RFC 8259: a document is exactly one
// object or array, object keys are strings, and every token must match
// the current grammar expectation. Options.Permissive relaxes this:
// unquoted literals are accepted anywhere a value is legal, keys need not
// be strings, and multiple top-level values are tolerated.
package jtok
