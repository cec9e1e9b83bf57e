package kernel

// WatchedList tracks a collection against the baseline it was loaded with and
// records which items were added to and removed from that baseline, so a
// repository can insert and delete only the difference.
//
// Items are compared with the equality function given at construction, never
// by pointer identity.
//
// Invariants:
//   - NewItems() and RemovedItems() never share an item
//   - Items() == (baseline ∪ NewItems()) − RemovedItems()
//
// Example:
//
//	list := kernel.NewWatchedList(sameLink, a, c)
//	list.Update([]Link{a, b})
//	list.NewItems()     // [b]
//	list.RemovedItems() // [c]
type WatchedList[T any] struct {
	equal    func(a, b T) bool
	baseline []T
	current  []T
	added    []T
	removed  []T
}

// NewWatchedList creates a list whose baseline (the persisted state) is initial.
func NewWatchedList[T any](equal func(a, b T) bool, initial ...T) *WatchedList[T] {
	return &WatchedList[T]{
		equal:    equal,
		baseline: clone(initial),
		current:  clone(initial),
	}
}

// Items returns a copy of the current effective items.
func (l *WatchedList[T]) Items() []T {
	return clone(l.current)
}

// NewItems returns a copy of the items present now but absent from the baseline.
func (l *WatchedList[T]) NewItems() []T {
	return clone(l.added)
}

// RemovedItems returns a copy of the baseline items that are no longer present.
func (l *WatchedList[T]) RemovedItems() []T {
	return clone(l.removed)
}

// Exists reports whether item is among the current items.
func (l *WatchedList[T]) Exists(item T) bool {
	return l.indexOf(l.current, item) >= 0
}

// Add puts item into the current set. Adding an item that already exists is a no-op.
func (l *WatchedList[T]) Add(item T) {
	if l.Exists(item) {
		return
	}

	l.current = append(l.current, item)
	if i := l.indexOf(l.removed, item); i >= 0 {
		l.removed = removeAt(l.removed, i)
		return
	}
	l.added = append(l.added, item)
}

// Remove drops item from the current set. Removing an absent item is a no-op.
func (l *WatchedList[T]) Remove(item T) {
	i := l.indexOf(l.current, item)
	if i < 0 {
		return
	}

	l.current = removeAt(l.current, i)
	if j := l.indexOf(l.added, item); j >= 0 {
		l.added = removeAt(l.added, j)
		return
	}
	l.removed = append(l.removed, item)
}

// Update replaces the current items with items and folds the difference into
// NewItems and RemovedItems. It returns only the difference produced by this
// call, so a second Update with the same items returns two empty slices.
//
// After Update, Items() equals items (duplicates collapsed).
func (l *WatchedList[T]) Update(items []T) (added, removed []T) {
	added = make([]T, 0)
	removed = make([]T, 0)

	for _, item := range l.Items() {
		if l.indexOf(items, item) < 0 {
			removed = append(removed, item)
		}
	}
	for _, item := range items {
		if !l.Exists(item) && l.indexOf(added, item) < 0 {
			added = append(added, item)
		}
	}

	for _, item := range removed {
		l.Remove(item)
	}
	for _, item := range added {
		l.Add(item)
	}

	l.current = l.current[:0]
	for _, item := range items {
		if l.indexOf(l.current, item) < 0 {
			l.current = append(l.current, item)
		}
	}

	return added, removed
}

func (l *WatchedList[T]) indexOf(items []T, item T) int {
	for i, candidate := range items {
		if l.equal(candidate, item) {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
