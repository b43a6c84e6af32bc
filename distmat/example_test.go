package distmat_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dendra/distmat"
	"github.com/katalvlaran/dendra/groups"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromPairs
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three sparse observations cover every pair of {a,b,c}; the builder
//	sorts the name union and mirrors each value into both cells.
//
// Use case:
//
//	Turning a flat list of pairwise scores (alignment distances, assay
//	readouts) into a complete table ready for clustering.
//
// Complexity: O(p log p + n²) time, O(n²) space.
func ExampleFromPairs() {
	m, err := distmat.FromPairs([]distmat.Pair{
		{A: "a", B: "b", Value: 5},
		{A: "b", B: "c", Value: 3},
		{A: "a", B: "c", Value: 4},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("names:", m.Names())
	for _, pair := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}} {
		d, _ := m.AtName(pair[0], pair[1])
		fmt.Printf("d(%s,%s)=%v\n", pair[0], pair[1], d)
	}
	// Output:
	// names: [a b c]
	// d(a,b)=5
	// d(a,c)=4
	// d(b,c)=3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromCentroids
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three group centroids at (0,0,0), (3,0,0) and (0,4,0) span the 3-4-5
//	right triangle; the builder computes Euclidean distances and keeps the
//	input order.
//
// Use case:
//
//	Collapsing per-group embedding coordinates into an inter-group distance
//	table, dumped as CSV for inspection.
//
// Complexity: O(n²) time and space.
func ExampleFromCentroids() {
	m, err := distmat.FromCentroids([]groups.Centroid{
		{Name: "origin", X: 0, Y: 0, Z: 0},
		{Name: "east", X: 3, Y: 0, Z: 0},
		{Name: "north", X: 0, Y: 4, Z: 0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if err = distmat.WriteCSV(os.Stdout, m); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// name,origin,east,north
	// origin,0,3,4
	// east,3,0,5
	// north,4,5,0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromPairs_zeroFill
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One pair is missing from the observations. Strict mode (the default)
//	rejects; WithZeroFill writes 0 into the hole instead.
//
// Use case:
//
//	Loading legacy data produced by pipelines that treated absence as
//	identity.
func ExampleFromPairs_zeroFill() {
	pairs := []distmat.Pair{
		{A: "a", B: "b", Value: 5},
		{A: "b", B: "c", Value: 3},
	}

	if _, err := distmat.FromPairs(pairs); err != nil {
		fmt.Println("strict:", err)
	}

	m, err := distmat.FromPairs(pairs, distmat.WithZeroFill())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	d, _ := m.AtName("a", "c")
	fmt.Printf("zerofill: d(a,c)=%v\n", d)
	// Output:
	// strict: FromPairs: pair ("a","c") unobserved: distmat: incomplete pair coverage
	// zerofill: d(a,c)=0
}
