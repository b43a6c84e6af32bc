package clusterfile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dendra/clusterfile"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleParse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Parse a minimal cluster map with four sequences, two explicit groups and
//	one 3-D position per sequence, then report what was found.
//
// Use case:
//
//	First stage of the centroid-distance pipeline: the returned File feeds
//	groups.Assign and groups.Centroids.
//
// Complexity: O(L) over input lines.
func ExampleParse() {
	const doc = `
<seq>
>alpha
>beta
>gamma
>delta
</seq>
<seqgroups>
name=left
numbers=0;1;
name=right
numbers=2;
</seqgroups>
<pos>
0 0.0 0.0 0.0
1 2.0 0.0 0.0
2 0.0 4.0 0.0
3 1.0 1.0 1.0
</pos>
`
	f, err := clusterfile.Parse(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("sequences=%d groups=%d positions=%d\n", f.N(), len(f.Groups), len(f.Positions))
	for _, g := range f.Groups {
		fmt.Printf("%s -> %v\n", g.Name, g.Members)
	}
	// Output:
	// sequences=4 groups=2 positions=4
	// left -> [0 1]
	// right -> [2]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleParse_malformed
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A truncated export is missing the </seq> close tag; the parser reports
//	the unterminated section instead of guessing.
func ExampleParse_malformed() {
	_, err := clusterfile.Parse(strings.NewReader("<seq>\n>alpha\n"))
	fmt.Println(err)
	// Output:
	// clusterfile: Parse: <seq> opened at line 1: clusterfile: unterminated section
}
