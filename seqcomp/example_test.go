package seqcomp_test

import (
	"fmt"
	"slices"

	"comprehend/seqcomp"
)

func ExampleMapWhere() {
	evens := seqcomp.MapWhere(seqcomp.Range(0, 10, 1),
		func(x int) int { return x * x },
		func(x int) bool { return x%2 == 0 },
	)

	for v := range evens {
		fmt.Println(v)
	}

	// Output:
	// 0
	// 4
	// 16
	// 36
	// 64
}

func ExampleProductWhere() {
	idx := seqcomp.Range(0, 3, 1)

	// Every ordered pair except the diagonal.
	pairs := seqcomp.ProductWhere(idx, idx,
		func(i, j int) string { return fmt.Sprintf("(%d,%d)", i, j) },
		func(i, j int) bool { return i != j },
	)

	for p := range pairs {
		fmt.Println(p)
	}

	// Output:
	// (0,1)
	// (0,2)
	// (1,0)
	// (1,2)
	// (2,0)
	// (2,1)
}

func ExamplePairs() {
	words := []string{"list", "dict", "set"}

	lengths := seqcomp.CollectMap(seqcomp.Pairs(
		seqcomp.Where(slices.Values(words), func(s string) bool { return len(s) > 3 }),
		func(s string) string { return s },
		func(s string) int { return len(s) },
	))
	fmt.Println(lengths["list"], lengths["dict"])

	// Output:
	// 4 4
}
