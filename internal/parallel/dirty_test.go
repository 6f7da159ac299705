package parallel

import (
	"sync"
	"testing"
)

// marked reports whether bit i is set.
func marked(d *DirtySet, i int) bool {
	if i < 0 || i >= d.size {
		return false
	}
	return d.words[i/64].Load()&(1<<(i&63)) != 0
}

func TestNewDirtySet(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantNil bool
		words   int
	}{
		{"empty", 0, false, 0},
		{"one word", 64, false, 1},
		{"partial word", 65, false, 2},
		{"negative", -1, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirtySet(tt.size)
			if tt.wantNil {
				if d != nil {
					t.Error("NewDirtySet() should return nil")
				}
				return
			}
			if d.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", d.Size(), tt.size)
			}
			if len(d.words) != tt.words {
				t.Errorf("len(words) = %d, want %d", len(d.words), tt.words)
			}
			if d.Count() != 0 {
				t.Error("new set should be empty")
			}
		})
	}
}

func TestDirtySet_MarkAndQuery(t *testing.T) {
	d := NewDirtySet(130)

	for _, i := range []int{0, 63, 64, 129} {
		d.Mark(i)
	}
	d.Mark(-1)
	d.Mark(130)

	for _, i := range []int{0, 63, 64, 129} {
		if !marked(d, i) {
			t.Errorf("cell %d not marked", i)
		}
	}
	for _, i := range []int{1, 62, 65, 128, -1, 130} {
		if marked(d, i) {
			t.Errorf("cell %d marked", i)
		}
	}
	if d.Count() != 4 {
		t.Errorf("Count() = %d, want 4", d.Count())
	}
}

func TestDirtySet_MarkIdempotent(t *testing.T) {
	d := NewDirtySet(10)
	d.Mark(3)
	d.Mark(3)

	if d.Count() != 1 {
		t.Errorf("Count() = %d, want 1", d.Count())
	}
}

func TestDirtySet_Clear(t *testing.T) {
	d := NewDirtySet(64)
	for i := range 64 {
		d.Mark(i)
	}
	d.Clear()

	if d.Count() != 0 {
		t.Error("set should be empty after Clear")
	}
}

func TestDirtySet_ConcurrentMark(t *testing.T) {
	d := NewDirtySet(256)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := g; i < 256; i += 8 {
				d.Mark(i)
			}
		}()
	}
	wg.Wait()

	if d.Count() != 256 {
		t.Errorf("Count() = %d, want 256", d.Count())
	}
}
