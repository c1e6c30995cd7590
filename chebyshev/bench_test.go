package chebyshev_test

import (
	"testing"

	"github.com/plasmakit/specdeform/chebyshev"
)

var sinkC complex128

func BenchmarkT(b *testing.B) {
	s := complex(0.37, 0.12)
	for i := 0; i < b.N; i++ {
		sinkC = chebyshev.T(16, s)
	}
}

func BenchmarkD3(b *testing.B) {
	s := complex(0.37, 0.12)
	for i := 0; i < b.N; i++ {
		sinkC = chebyshev.D3(16, s)
	}
}
