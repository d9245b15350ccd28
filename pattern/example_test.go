package pattern_test

import (
	"fmt"

	"github.com/lexora/lexora/pattern"
)

// ExampleResolve shows how the three single-word kinds behave on the same
// vocabulary.
func ExampleResolve() {
	types := []string{"what", "whale", "is", "a"}

	globHits, _ := pattern.Resolve([]string{"wha*"}, types, pattern.Glob, false)
	regexHits, _ := pattern.Resolve([]string{"^wha.*"}, types, pattern.Regex, false)
	fixedHits, _ := pattern.Resolve([]string{"whale"}, types, pattern.Fixed, false)

	fmt.Println(globHits, regexHits, fixedHits)
	// Output:
	// [0 1] [0 1] [1]
}

// ExampleResolvePhrases resolves a multi-word phrase into the per-slot
// identifier sets consumed by token compounding.
func ExampleResolvePhrases() {
	types := []string{"it", "is", "a", "killer", "whale"}

	matches, _ := pattern.ResolvePhrases(
		[]pattern.Phrase{{"killer", "whale"}},
		types, pattern.Glob, false,
	)
	fmt.Println(matches[0].Slots)
	// Output:
	// [[3] [4]]
}
