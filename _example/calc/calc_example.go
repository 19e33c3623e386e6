package main

import (
	"log"

	"github.com/xiam/parsec/calc"
)

func main() {
	input := `2 + (4 - 1) * 3`

	n, err := calc.Eval(input)
	if err != nil {
		log.Fatal("calc.Eval:", err)
	}

	log.Printf("%s = %d", input, n)
}
