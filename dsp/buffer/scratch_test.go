package buffer

import "testing"

func TestSnapshotWithoutScratchAllocates(t *testing.T) {
	b := FromSlice([]complex128{1, 2, 3})
	snap := b.Snapshot()
	b.Samples()[0] = 99
	if snap[0] != 1 {
		t.Fatal("snapshot must not alias the buffer's samples")
	}
}

func TestSnapshotUsesAttachedScratch(t *testing.T) {
	s := NewScratch[complex128]()
	b := FromSlice([]complex128{1, 2, 3})
	b.SetScratch(s)

	snap := b.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot length = %d, want 3", len(snap))
	}
	if &snap[0] != &s.data[0] {
		t.Fatal("snapshot should alias the scratch storage")
	}

	b.Samples()[1] = -7
	if snap[1] != 2 {
		t.Fatal("snapshot must hold the pre-mutation contents")
	}
}

func TestScratchSharedAcrossBuffers(t *testing.T) {
	s := NewScratch[complex128]()

	a := FromSlice([]complex128{1, 2, 3, 4})
	a.SetScratch(s)
	b := FromSlice([]complex128{5, 6})
	b.SetScratch(s)

	snapA := a.Snapshot()
	if snapA[3] != 4 {
		t.Fatalf("snapA[3] = %v, want 4", snapA[3])
	}

	// The second snapshot reuses the same storage and invalidates the first.
	snapB := b.Snapshot()
	if len(snapB) != 2 || snapB[0] != 5 || snapB[1] != 6 {
		t.Fatalf("snapB = %v, want [5 6]", snapB)
	}
}

func TestScratchGrowsAndRetainsCapacity(t *testing.T) {
	s := NewScratch[complex128]()
	b := New[complex128](64)
	b.SetScratch(s)
	b.Snapshot()

	grownCap := cap(s.data)
	if grownCap < 64 {
		t.Fatalf("scratch capacity = %d, want >= 64", grownCap)
	}

	small := New[complex128](8)
	small.SetScratch(s)
	snap := small.Snapshot()
	if len(snap) != 8 {
		t.Fatalf("snapshot length = %d, want 8", len(snap))
	}
	if cap(s.data) != grownCap {
		t.Fatal("scratch should retain grown capacity for reuse")
	}
}

func TestSetScratchNilDetaches(t *testing.T) {
	b := FromSlice([]complex128{1})
	b.SetScratch(NewScratch[complex128]())
	b.SetScratch(nil)
	if b.Scratch() != nil {
		t.Fatal("SetScratch(nil) should detach the scratch")
	}
}

func TestCopyCarriesScratch(t *testing.T) {
	s := NewScratch[complex128]()
	b := FromSlice([]complex128{1, 2})
	b.SetScratch(s)
	if b.Copy().Scratch() != s {
		t.Fatal("Copy should carry the scratch reference")
	}
}
