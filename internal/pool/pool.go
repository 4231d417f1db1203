// Package pool implements the dense, fixed-capacity record arrays the cave
// refers to by index.
//
// Records live in [Min, Next). Removing a record moves the last live record
// into the hole, so the pool never fragments; the one grid cell that pointed
// at the moved record is repaired by the Relink hook, inside Remove, so no
// caller can forget it.
package pool

// Hooks connect a pool to the grid that references its records.
type Hooks[T any] struct {
	// Unlink clears the grid's reference to the record at index. Optional:
	// records that are not on the grid, or whose cell the caller already
	// cleared, need nothing.
	Unlink func(item *T, index int)
	// Relink points the grid at a record that moved from index from to to.
	Relink func(item *T, from, to int)
	// Bury turns a record into a tombstone.
	Bury func(item *T)
}

// Pool is a dense array of records with a high-water mark.
type Pool[T any] struct {
	items []T
	min   int
	next  int
	hooks Hooks[T]
}

// New returns an empty pool holding capacity slots, of which the first min
// are reserved and never handed out.
func New[T any](capacity, min int, hooks Hooks[T]) *Pool[T] {
	return &Pool[T]{
		items: make([]T, capacity),
		min:   min,
		next:  min,
		hooks: hooks,
	}
}

// Cap is the total number of slots, reserved ones included.
func (p *Pool[T]) Cap() int { return len(p.items) }

// Min is the first index Alloc can return.
func (p *Pool[T]) Min() int { return p.min }

// Next is the high-water mark: the index the next Alloc returns.
func (p *Pool[T]) Next() int { return p.next }

// Len is the number of records in use, tombstones included.
func (p *Pool[T]) Len() int { return p.next - p.min }

// Full reports whether Alloc would need to compact.
func (p *Pool[T]) Full() bool { return p.next == len(p.items) }

// At returns the record at index i.
func (p *Pool[T]) At(i int) *T { return &p.items[i] }

// Alloc returns a fresh slot. When the pool is full, compact is called first
// and must free at least one slot by Remove; if it reports failure, Alloc
// fails too.
func (p *Pool[T]) Alloc(compact func() bool) (int, bool) {
	if p.Full() {
		if compact == nil || !compact() || p.Full() {
			return -1, false
		}
	}
	i := p.next
	p.next++
	return i, true
}

// Remove deletes the record at i, filling the hole with the last record.
// Indices above i may change; do not call it while iterating the pool by
// index over records below the last one.
func (p *Pool[T]) Remove(i int) {
	if p.hooks.Unlink != nil {
		p.hooks.Unlink(&p.items[i], i)
	}
	p.collapse(i)
}

// Tombstone unlinks the record at i and marks it dead without moving
// anything, so indices held by an in-progress iteration stay valid. The slot
// is not freed: the iterating caller must Reclaim it afterwards.
func (p *Pool[T]) Tombstone(i int) {
	if p.hooks.Unlink != nil {
		p.hooks.Unlink(&p.items[i], i)
	}
	if p.hooks.Bury != nil {
		p.hooks.Bury(&p.items[i])
	}
}

// Reclaim frees a slot previously passed to Tombstone.
func (p *Pool[T]) Reclaim(i int) {
	p.collapse(i)
}

// Reset empties the pool.
func (p *Pool[T]) Reset() {
	clear(p.items)
	p.next = p.min
}

// Restore replaces the contents with records, stored from index Min on.
func (p *Pool[T]) Restore(records []T) {
	clear(p.items)
	copy(p.items[p.min:], records)
	p.next = p.min + len(records)
}

// Records returns the live range [Min, Next) without copying.
func (p *Pool[T]) Records() []T { return p.items[p.min:p.next] }

func (p *Pool[T]) collapse(i int) {
	last := p.next - 1
	if i != last {
		p.items[i] = p.items[last]
		if p.hooks.Relink != nil {
			p.hooks.Relink(&p.items[i], last, i)
		}
	}
	var blank T
	p.items[last] = blank
	p.next--
}

// Compact drives an eviction policy: pass is called with a distance
// threshold starting at start and shrinking by step, until a pass reports
// that it freed at least one slot. Compact fails once the threshold would
// drop below zero.
func Compact(start, step int, pass func(threshold int) int) bool {
	for threshold := start; threshold >= 0; threshold -= step {
		if pass(threshold) > 0 {
			return true
		}
	}
	return false
}
