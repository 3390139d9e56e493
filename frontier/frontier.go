// Package frontier implements the min-priority queue that orders candidate
// cells during a search.
//
// Entries are keyed by (key, seq): key ascending, then insertion sequence
// ascending, so equal keys pop in FIFO order. The sequence counter belongs to
// the queue and grows on every Push, including re-insertions of an item that
// is already queued. Stale duplicates are not removed; the caller filters them
// when they are popped.
//
// Complexity:
//
//   - Push:    O(log N)
//   - PopMin:  O(log N)
//   - IsEmpty: O(1)
//
// where N is the number of queued entries, duplicates included.
package frontier

import "container/heap"

// item is one queued entry.
type item[T any] struct {
	key   int
	seq   uint64
	value T
}

// entries is a min-heap of items ordered by (key, seq).
type entries[T any] []item[T]

// Len returns the number of items in the heap.
func (e entries[T]) Len() int { return len(e) }

// Less orders by key, then by insertion sequence.
func (e entries[T]) Less(i, j int) bool {
	if e[i].key != e[j].key {
		return e[i].key < e[j].key
	}

	return e[i].seq < e[j].seq
}

// Swap swaps two elements in the heap.
func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

// Push is called by heap.Push; x must be an item[T].
func (e *entries[T]) Push(x any) { *e = append(*e, x.(item[T])) }

// Pop is called by heap.Pop and returns the last element.
func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	it := old[n-1]
	var zero item[T]
	old[n-1] = zero
	*e = old[:n-1]

	return it
}

// Queue is a deterministic min-priority queue. The zero value is ready to use.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	heap entries[T]
	seq  uint64
}

// New returns an empty Queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{heap: make(entries[T], 0, capacity)}
}

// Push inserts value with the given key and the next insertion sequence.
func (q *Queue[T]) Push(key int, value T) {
	q.seq++
	heap.Push(&q.heap, item[T]{key: key, seq: q.seq, value: value})
}

// PopMin removes and returns the entry with the smallest (key, seq) along
// with its key. It panics on an empty queue; check IsEmpty first.
func (q *Queue[T]) PopMin() (T, int) {
	if len(q.heap) == 0 {
		panic("frontier: PopMin on empty queue")
	}
	it := heap.Pop(&q.heap).(item[T])

	return it.value, it.key
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.heap) == 0 }

// Len returns the number of queued entries, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.heap) }

// Pushed returns how many entries have ever been pushed.
func (q *Queue[T]) Pushed() uint64 { return q.seq }
