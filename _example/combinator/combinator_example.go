package main

import (
	"log"

	"github.com/xiam/parsec"
	"github.com/xiam/parsec/char"
)

func main() {
	// A comma-separated list of identifiers, whitespace-tolerant.
	list := parsec.Between(
		char.Symbol("["),
		parsec.SepBy(char.Token(char.Identifier), char.Symbol(",")),
		char.Symbol("]"),
	)

	r := parsec.ParseString(list, `[ foo, bar42 ,baz ]`)
	if !r.Ok() {
		log.Fatal("no match")
	}

	log.Printf("items: %q (remaining: %q)", r.Value(), r.Remaining().String())
}
