package arena

import "testing"

func BenchmarkArenaFrame(b *testing.B) {
	a := New[item](DefaultChunkSize)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range 1000 {
			a.Alloc()
		}
		a.Reset()
	}
}
