package dfm_test

import (
	"fmt"

	"github.com/lexora/lexora/dfm"
	"github.com/lexora/lexora/pattern"
	"github.com/lexora/lexora/tokens"
)

// ExampleBuild demonstrates the tokenize → build → trim → weight pipeline.
func ExampleBuild() {
	s, _ := tokens.Tokenize(
		[]string{"the whale sang", "the whale dove", "the seal watched"},
		tokens.WithLower(),
	)
	m, _ := dfm.Build(s)
	fmt.Println(m.ColNames())

	opts := dfm.DefaultTrimOptions()
	opts.MinTermFreq = 2
	trimmed, _ := m.Trim(opts)
	fmt.Println(trimmed.ColNames())

	prop, _ := trimmed.Weight(dfm.Prop)
	v, _ := prop.At(0, 1)
	fmt.Printf("%.2f\n", v)
	// Output:
	// [the whale sang dove seal watched]
	// [the whale]
	// 0.50
}

// ExampleMatrix_Select maps a seed-word list onto matrix columns with the
// pattern resolver, the way downstream models consume dictionaries.
func ExampleMatrix_Select() {
	s, _ := tokens.Tokenize(
		[]string{"whale whales seal"},
		tokens.WithLower(),
	)
	m, _ := dfm.Build(s)

	seeds, _ := pattern.Resolve([]string{"whale*"}, m.ColNames(), pattern.Glob, false)
	kept, _ := m.Select(seeds, dfm.Keep)
	fmt.Println(kept.ColNames())
	// Output:
	// [whale whales]
}
