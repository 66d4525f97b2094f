package main

import (
	"fmt"

	"github.com/aglyzov/go-mkey/trie/dict"
)

func main() {
	m := dict.New[string, int]()
	m.Set([]string{"eu", "de", "ber"}, 3_700_000)
	m.Set([]string{"eu", "de", "ham"}, 1_800_000)
	m.Set([]string{"eu", "fr", "par"}, 2_100_000)
	m.Set([]string{"us", "ca", "sfo"}, 870_000)
	m.Set([]string{"us", "ny", "nyc"}, 8_500_000)

	fmt.Print(m.Dump())

	println("------")

	if pop, ok := m.Get([]string{"eu", "fr", "par"}); ok {
		fmt.Printf("G(eu fr par) -> %v\n", pop)
	}
	if _, ok := m.Get([]string{"eu", "fr", "lyo"}); !ok {
		fmt.Printf("G(eu fr lyo) -> missing\n")
	}
	if err := m.Set([]string{"eu", "de"}, 0); err != nil {
		fmt.Printf("S(eu de)     -> %v\n", err)
	}

	println("------")

	if sub, ok := m.Sub([]string{"eu"}); ok {
		fmt.Printf("S(eu) -> %v\n", sub)
		for key, pop := range sub.All() {
			fmt.Printf("%v: %v\n", key, pop)
		}
	}

	println("------")

	for pfx := range m.Prefixes(2) {
		fmt.Printf("%v\n", pfx)
	}
}
