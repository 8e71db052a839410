// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

package jtok_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/jtok-go/jtok"
)

func Example() {
	p := jtok.New(jtok.Options{})
	st := p.NewState()
	data := []byte(`{"name":"gopher","age":13}`)

	pool := make([]jtok.Token, 8)
	n, err := p.Parse(st, data, pool)
	if err != nil {
		log.Fatalf("Parse failed: %v", err)
	}
	for _, tok := range pool[1:n] {
		fmt.Printf("%v %q\n", tok.Type, tok.Text(data))
	}
	// Output:
	// string+key "name"
	// string+value "gopher"
	// string+key "age"
	// primitive+value "13"
}

func ExampleParser_Parse_dryRun() {
	p := jtok.New(jtok.Options{})
	data := []byte(`[true,false,null]`)

	// Count without storing, then parse into a pool of exactly that size.
	n, err := p.Parse(p.NewState(), data, nil)
	if err != nil {
		log.Fatalf("Count failed: %v", err)
	}
	pool := make([]jtok.Token, n)
	if _, err := p.Parse(p.NewState(), data, pool); err != nil {
		log.Fatalf("Parse failed: %v", err)
	}
	fmt.Println(n, pool[0].Size)
	// Output:
	// 4 3
}

func ExampleParser_Parse_resume() {
	p := jtok.New(jtok.Options{})
	st := p.NewState()
	data := []byte(`{"a":[1,2,3]}`)

	pool := make([]jtok.Token, 2)
	for {
		n, err := p.Parse(st, data, pool)
		if err == nil {
			fmt.Println("tokens:", n)
			return
		}
		if !errors.Is(err, jtok.ErrCapacity) {
			log.Fatalf("Parse failed: %v", err)
		}
		grown := make([]jtok.Token, len(pool)+2)
		copy(grown, pool)
		pool = grown
	}
	// Output:
	// tokens: 6
}
