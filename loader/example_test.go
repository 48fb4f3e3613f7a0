package loader_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/eqpaths/loader"
)

func ExampleParse() {
	in := `3 # nodes
2 # edges
(N0 N1) 2
(N1 N2) 0.5
`
	g, err := loader.Parse(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = loader.Write(os.Stdout, g)
	// Output:
	// 3 # number of nodes
	// 2 # number of edges
	// (N0 N1) 2
	// (N1 N2) 0.5
}
