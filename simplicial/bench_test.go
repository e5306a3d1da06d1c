package simplicial_test

import (
	"testing"

	"github.com/katalvlaran/lvjunction/builder"
	"github.com/katalvlaran/lvjunction/simplicial"
)

// BenchmarkNew_Grid classifies every node of a 30x30 grid.
func BenchmarkNew_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	w := builder.UniformDomains(g, 2).LogWeights()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = simplicial.New(g, w); err != nil {
			b.Fatal(err)
		}
	}
}
