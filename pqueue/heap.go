// Package pqueue implements a binary min-heap whose entries are addressable by key.
//
// Alongside the usual Insert / PeekMin / ExtractMin, the heap keeps an exact
// key → slot index so that an entry can be found in O(1) and then have its
// priority lowered (DecreaseKey) or be removed outright (DeleteKey) in O(log n).
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey, DeleteKey: O(log n)
//   - PeekMin, IsEmpty, Len, Contains, Get:      O(1)
//   - Space: O(n) for the slot slice plus O(n) for the key index.
//
// Notes on implementation choices:
//
//   - ExtractMin swaps the root with the last slot and only updates the index
//     of the two keys that moved, so no full index rescan is ever needed.
//   - DeleteKey with a Minifier forces the entry to the root and extracts it.
//     The climb ignores the comparator, so a sentinel that only ties with
//     other entries still reaches the root.
//   - DeleteKey without a Minifier swaps the entry with the last slot and
//     re-sifts the replacement in whichever direction restores order.
//   - The heap is not safe for concurrent use.
package pqueue

import (
	"fmt"
)

// MinHeap is a binary min-heap of items of type T identified by keys of type K.
type MinHeap[K comparable, T any] struct {
	items   []T
	pos     map[K]int
	key     KeyFunc[K, T]
	compare Comparator[T]
	options Options[T]
}

// New creates an empty MinHeap ordered by compare and indexed by key.
// It panics if key or compare is nil.
func New[K comparable, T any](key KeyFunc[K, T], compare Comparator[T], opts ...Option[T]) *MinHeap[K, T] {
	if key == nil {
		panic("pqueue: nil key function")
	}
	if compare == nil {
		panic("pqueue: nil comparator")
	}

	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &MinHeap[K, T]{
		items:   make([]T, 0, cfg.Capacity),
		pos:     make(map[K]int, cfg.Capacity),
		key:     key,
		compare: compare,
		options: cfg,
	}
}

// Len returns the number of items in the heap.
func (h *MinHeap[K, T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *MinHeap[K, T]) IsEmpty() bool { return len(h.items) == 0 }

// Contains reports whether an item with the given key is in the heap.
func (h *MinHeap[K, T]) Contains(key K) bool {
	_, ok := h.pos[key]
	return ok
}

// Get returns the item currently stored under key.
func (h *MinHeap[K, T]) Get(key K) (T, bool) {
	i, ok := h.pos[key]
	if !ok {
		var zero T
		return zero, false
	}

	return h.items[i], true
}

// Keys returns the keys of all items in slot order (root first).
func (h *MinHeap[K, T]) Keys() []K {
	keys := make([]K, len(h.items))
	for i, item := range h.items {
		keys[i] = h.key(item)
	}

	return keys
}

// Insert adds item to the heap.
// It returns ErrDuplicateKey, leaving the heap unchanged, if the key is already present.
func (h *MinHeap[K, T]) Insert(item T) error {
	k := h.key(item)
	if _, ok := h.pos[k]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, k)
	}

	h.items = append(h.items, item)
	h.pos[k] = len(h.items) - 1
	h.up(len(h.items) - 1)

	return nil
}

// PeekMin returns the minimum item without removing it.
// The boolean is false when the heap is empty.
func (h *MinHeap[K, T]) PeekMin() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// ExtractMin removes and returns the minimum item.
// The boolean is false when the heap is empty; calling it again stays false.
func (h *MinHeap[K, T]) ExtractMin() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	n := len(h.items) - 1
	root := h.items[0]
	h.swap(0, n)
	h.truncate(n)
	delete(h.pos, h.key(root))
	if n > 0 {
		h.down(0)
	}

	return root, true
}

// DecreaseKey replaces the item stored under key with item and sifts it upward.
//
// Errors (the heap is left untouched in every case):
//   - ErrKeyNotFound      if key is not in the heap.
//   - ErrKeyMismatch      if item does not carry key.
//   - ErrPriorityIncrease if item compares greater than the stored item.
func (h *MinHeap[K, T]) DecreaseKey(key K, item T) error {
	i, ok := h.pos[key]
	if !ok {
		h.options.Logger.Debug("decrease-key on absent key ignored", "key", key)
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	if h.key(item) != key {
		return fmt.Errorf("%w: want %v, got %v", ErrKeyMismatch, key, h.key(item))
	}
	// Equal priority is allowed; only the primary ordering matters here.
	if h.compare(item, h.items[i]) > 0 {
		return fmt.Errorf("%w: %v", ErrPriorityIncrease, key)
	}

	h.items[i] = item
	h.up(i)

	return nil
}

// DeleteKey removes the item stored under key regardless of its priority and
// returns it as it was stored before removal.
// It returns ErrKeyNotFound, without touching the heap, if key is absent.
func (h *MinHeap[K, T]) DeleteKey(key K) (T, error) {
	var zero T
	i, ok := h.pos[key]
	if !ok {
		h.options.Logger.Debug("delete-key on absent key ignored", "key", key)
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	removed := h.items[i]

	if h.options.Minify != nil {
		sentinel := h.options.Minify(removed)
		if h.key(sentinel) != key {
			return zero, fmt.Errorf("%w: minified %v became %v", ErrKeyMismatch, key, h.key(sentinel))
		}
		h.items[i] = sentinel
		h.raise(i)
		h.ExtractMin()

		return removed, nil
	}

	n := len(h.items) - 1
	h.swap(i, n)
	h.truncate(n)
	delete(h.pos, key)
	if i < n && !h.down(i) {
		h.up(i)
	}

	return removed, nil
}

// less reports whether the item in slot i orders strictly before the item in slot j.
func (h *MinHeap[K, T]) less(i, j int) bool {
	c := h.compare(h.items[i], h.items[j])
	if c == 0 && h.options.TieBreak != nil {
		c = h.options.TieBreak(h.items[i], h.items[j])
	}

	return c < 0
}

// swap exchanges two slots and records their new positions.
func (h *MinHeap[K, T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.key(h.items[i])] = i
	h.pos[h.key(h.items[j])] = j
}

// truncate drops every slot from n on, clearing them for the garbage collector.
func (h *MinHeap[K, T]) truncate(n int) {
	var zero T
	for i := n; i < len(h.items); i++ {
		h.items[i] = zero
	}
	h.items = h.items[:n]
}

// up sifts slot j toward the root while it orders before its parent.
func (h *MinHeap[K, T]) up(j int) {
	for j > 0 {
		parent := (j - 1) / 2
		if !h.less(j, parent) {
			break
		}
		h.swap(j, parent)
		j = parent
	}
}

// raise moves slot j all the way to the root without consulting the comparator.
func (h *MinHeap[K, T]) raise(j int) {
	for j > 0 {
		parent := (j - 1) / 2
		h.swap(j, parent)
		j = parent
	}
}

// down sifts slot i toward the leaves and reports whether it moved.
func (h *MinHeap[K, T]) down(i int) bool {
	start := i
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.less(right, left) {
			smallest = right
		}
		if !h.less(smallest, i) {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}

	return i > start
}
