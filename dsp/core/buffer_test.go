package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)
	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}
	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
	if len(EnsureLen(buf, 16)) != 16 {
		t.Fatal("expected growth beyond capacity")
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)
	n := CopyInto(dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewBlocksIsolated(t *testing.T) {
	blocks := NewBlocks(3, 4)
	if len(blocks) != 3 {
		t.Fatalf("len = %d, want 3", len(blocks))
	}
	for i, b := range blocks {
		if len(b) != 4 || cap(b) != 4 {
			t.Fatalf("block %d: len=%d cap=%d, want 4/4", i, len(b), cap(b))
		}
	}
	// Appending to one block must not spill into its neighbour.
	_ = append(blocks[0], 99)
	if blocks[1][0] != 0 {
		t.Fatalf("block 1 overwritten: %v", blocks[1])
	}
	if NewBlocks(0, 4) != nil || NewBlocks(2, 0) != nil {
		t.Fatal("expected nil for empty shapes")
	}
}
