// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

package jtok_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/jtok-go/jtok"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Tokens", func(b *testing.B) {
		p := jtok.New(jtok.Options{})
		pool := make([]jtok.Token, 4096)
		for i := 0; i < b.N; i++ {
			if _, err := p.Parse(p.NewState(), input, pool); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Count", func(b *testing.B) {
		p := jtok.New(jtok.Options{})
		for i := 0; i < b.N; i++ {
			if _, err := p.Parse(p.NewState(), input, nil); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
