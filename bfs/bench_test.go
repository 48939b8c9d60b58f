package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bistellar/bfs"
	"github.com/katalvlaran/bistellar/builder"
)

// BenchmarkBFS_Bipyramid measures a full dual-graph walk around a long axis
// (64 finite cells, 128 infinite ones).
func BenchmarkBFS_Bipyramid(b *testing.B) {
	tr, err := builder.Build(builder.AxialBipyramid(64))
	require.NoError(b, err)
	start := tr.Cells()[0]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(tr, start)
	}
}
