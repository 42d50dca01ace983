package observer

import (
	"github.com/tidwall/btree"
)

type Observer[T any] interface {
	// Update is called once per delivery when the subject notifies.
	Update(T)
	// ID identifies the observer for Detach; equal IDs mean the same observer.
	ID() string
}

// Subject keeps observers in attach order and fans out notifications synchronously.
// It is not safe for concurrent use.
//
// Notify works on a snapshot taken when it starts: Attach and Detach calls made by an
// observer during delivery only affect the next Notify.
type Subject[T any] struct {
	seq     uint64
	entries *btree.Map[uint64, Observer[T]] // attach seq -> observer
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		entries: btree.NewMap[uint64, Observer[T]](0),
	}
}

// Attach appends o. Attaching the same observer twice delivers to it twice.
func (s *Subject[T]) Attach(o Observer[T]) {
	if o == nil {
		return
	}

	s.seq++
	s.entries.Set(s.seq, o)
}

// Detach removes every entry of o and returns how many were removed.
// Detaching an observer that was never attached is a no-op.
func (s *Subject[T]) Detach(o Observer[T]) int {
	if o == nil {
		return 0
	}

	id := o.ID()
	var matched []uint64
	s.entries.Scan(func(seq uint64, entry Observer[T]) bool {
		if entry.ID() == id {
			matched = append(matched, seq)
		}
		return true
	})

	for _, seq := range matched {
		s.entries.Delete(seq)
	}
	return len(matched)
}

// Notify delivers v to every observer attached at call time, in attach order,
// and returns the number of deliveries.
func (s *Subject[T]) Notify(v T) int {
	snapshot := s.entries.Copy()

	delivered := 0
	snapshot.Scan(func(_ uint64, entry Observer[T]) bool {
		entry.Update(v)
		delivered++
		return true
	})
	return delivered
}

func (s *Subject[T]) Len() int {
	return s.entries.Len()
}

// Observers returns the attached observers in attach order.
func (s *Subject[T]) Observers() []Observer[T] {
	observers := make([]Observer[T], 0, s.entries.Len())
	s.entries.Scan(func(_ uint64, entry Observer[T]) bool {
		observers = append(observers, entry)
		return true
	})
	return observers
}

// Contains reports whether an observer with o's ID is attached.
func (s *Subject[T]) Contains(o Observer[T]) bool {
	if o == nil {
		return false
	}

	id := o.ID()
	found := false
	s.entries.Scan(func(_ uint64, entry Observer[T]) bool {
		if entry.ID() == id {
			found = true
			return false
		}
		return true
	})
	return found
}
