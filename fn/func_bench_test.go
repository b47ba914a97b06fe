package fn

import "testing"

func BenchmarkFuncClone(b *testing.B) {
	f := Stateful(0, func(n *int, d int) int { *n += d; return *n })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := f.Clone()
		g.Call(1)
	}
}

func BenchmarkFuncCall(b *testing.B) {
	f := Of(func(x int) int { return x + 1 })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Call(i)
	}
}

func BenchmarkSharedFuncClone(b *testing.B) {
	f := Share(func(x int) int { return x + 1 })
	defer f.Release()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := f.Clone()
		g.Call(i)
		_ = g.Release()
	}
}
