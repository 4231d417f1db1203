package pool

import "testing"

type record struct {
	id   int
	dead bool
}

// refs plays the grid: refs[owner] = index of the record it points at.
type fixture struct {
	pool *Pool[record]
	refs map[int]int
}

func newFixture(capacity, min int) *fixture {
	f := &fixture{refs: make(map[int]int)}
	f.pool = New(capacity, min, Hooks[record]{
		Unlink: func(r *record, index int) { delete(f.refs, r.id) },
		Relink: func(r *record, from, to int) {
			if f.refs[r.id] != from {
				panic("relink from the wrong index")
			}
			f.refs[r.id] = to
		},
		Bury: func(r *record) { r.dead = true },
	})
	return f
}

func (f *fixture) add(id int) int {
	i, ok := f.pool.Alloc(nil)
	if !ok {
		return -1
	}
	*f.pool.At(i) = record{id: id}
	f.refs[id] = i
	return i
}

func (f *fixture) checkRefs(t *testing.T) {
	t.Helper()
	for id, i := range f.refs {
		if got := f.pool.At(i).id; got != id {
			t.Errorf("ref for %d points at slot %d holding %d", id, i, got)
		}
	}
}

func TestAlloc_SequentialFromMin(t *testing.T) {
	f := newFixture(5, 2)

	for want := 2; want < 5; want++ {
		if got := f.add(want * 10); got != want {
			t.Fatalf("Alloc() = %d, want %d", got, want)
		}
	}
	if !f.pool.Full() {
		t.Error("pool should be full")
	}
	if got := f.add(99); got != -1 {
		t.Errorf("Alloc() on a full pool without compaction = %d, want -1", got)
	}
}

func TestAlloc_CompactsWhenFull(t *testing.T) {
	f := newFixture(4, 1)
	f.add(1)
	f.add(2)
	f.add(3)

	called := false
	i, ok := f.pool.Alloc(func() bool {
		called = true
		f.pool.Remove(1)
		return true
	})
	if !called {
		t.Fatal("compaction not triggered")
	}
	if !ok || i != 3 {
		t.Fatalf("Alloc() = (%d, %v), want (3, true)", i, ok)
	}
}

func TestAlloc_FailedCompaction(t *testing.T) {
	f := newFixture(3, 1)
	f.add(1)
	f.add(2)

	if _, ok := f.pool.Alloc(func() bool { return false }); ok {
		t.Error("Alloc() should fail when compaction frees nothing")
	}
	if f.pool.Next() != 3 {
		t.Errorf("Next() = %d, want 3", f.pool.Next())
	}
}

func TestRemove_RelocatesLast(t *testing.T) {
	f := newFixture(10, 1)
	for id := 1; id <= 5; id++ {
		f.add(id)
	}

	f.pool.Remove(2) // holds id 2; id 5 moves in

	if f.pool.Next() != 5 {
		t.Errorf("Next() = %d, want 5", f.pool.Next())
	}
	if f.pool.At(2).id != 5 {
		t.Errorf("slot 2 holds %d, want 5", f.pool.At(2).id)
	}
	if _, ok := f.refs[2]; ok {
		t.Error("removed record still referenced")
	}
	if (*f.pool.At(5) != record{}) {
		t.Error("vacated slot not cleared")
	}
	f.checkRefs(t)
}

func TestRemove_Last(t *testing.T) {
	f := newFixture(10, 1)
	f.add(1)
	f.add(2)

	f.pool.Remove(2)

	if f.pool.Next() != 2 || f.pool.At(1).id != 1 {
		t.Errorf("unexpected pool state after removing the last record")
	}
	f.checkRefs(t)
}

func TestTombstone_KeepsIndices(t *testing.T) {
	f := newFixture(10, 1)
	for id := 1; id <= 4; id++ {
		f.add(id)
	}

	f.pool.Tombstone(2)

	if f.pool.Next() != 5 {
		t.Errorf("Tombstone changed Next() to %d", f.pool.Next())
	}
	if !f.pool.At(2).dead {
		t.Error("record not marked dead")
	}
	if f.pool.At(4).id != 4 {
		t.Error("Tombstone moved other records")
	}

	f.pool.Reclaim(2)
	if f.pool.Next() != 4 || f.pool.At(2).id != 4 {
		t.Error("Reclaim did not collapse the tombstone")
	}
	f.checkRefs(t)
}

func TestRestore(t *testing.T) {
	f := newFixture(6, 2)
	f.pool.Restore([]record{{id: 7}, {id: 8}})

	if f.pool.Next() != 4 || f.pool.Len() != 2 {
		t.Errorf("Next() = %d, Len() = %d after Restore", f.pool.Next(), f.pool.Len())
	}
	if got := f.pool.Records(); len(got) != 2 || got[1].id != 8 {
		t.Errorf("Records() = %v", got)
	}

	f.pool.Reset()
	if f.pool.Len() != 0 {
		t.Errorf("Len() = %d after Reset", f.pool.Len())
	}
}

func TestCompact_Thresholds(t *testing.T) {
	var seen []int
	ok := Compact(66, 6, func(threshold int) int {
		seen = append(seen, threshold)
		if threshold == 30 {
			return 1
		}
		return 0
	})
	if !ok {
		t.Fatal("Compact() = false, want true")
	}
	want := []int{66, 60, 54, 48, 42, 36, 30}
	if len(seen) != len(want) {
		t.Fatalf("passes = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("pass %d threshold = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestCompact_GivesUp(t *testing.T) {
	passes := 0
	ok := Compact(66, 6, func(int) int {
		passes++
		return 0
	})
	if ok {
		t.Error("Compact() = true with nothing removed")
	}
	if passes != 12 {
		t.Errorf("passes = %d, want 12 (66 down to 0)", passes)
	}
}
