package inmemdb

import (
	"sync"

	"github.com/trezcool/ccdbms/core/college"
)

// table is an ordered collection. Every mutation swaps rows for a new slice,
// so slices handed out by All stay valid and unchanged.
type table[T college.Record] struct {
	rows  []T
	mutex sync.RWMutex
}

var _ college.Collection[college.Student] = (*table[college.Student])(nil)

func newTable[T college.Record](rows []T) *table[T] {
	return &table[T]{rows: append([]T(nil), rows...)}
}

func (t *table[T]) All() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.rows
}

func (t *table[T]) Get(id string) (T, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	for _, rec := range t.rows {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) Add(rec T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	rows := make([]T, len(t.rows), len(t.rows)+1)
	copy(rows, t.rows)
	t.rows = append(rows, rec)
}

func (t *table[T]) Update(id string, fn func(T) T) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i, rec := range t.rows {
		if rec.RecordID() == id {
			rows := append([]T(nil), t.rows...)
			rows[i] = fn(rec)
			t.rows = rows
			return true
		}
	}
	return false
}

func (t *table[T]) Delete(id string) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	rows := make([]T, 0, len(t.rows))
	for _, rec := range t.rows {
		if rec.RecordID() != id {
			rows = append(rows, rec)
		}
	}
	removed := len(t.rows) - len(rows)
	if removed > 0 {
		t.rows = rows
	}
	return removed
}
