package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	id   string
	log  *[]string
	hook func(v string)
}

func (r *recorder) ID() string {
	return r.id
}

func (r *recorder) Update(v string) {
	*r.log = append(*r.log, r.id+":"+v)
	if r.hook != nil {
		r.hook(v)
	}
}

func newRecorder(id string, log *[]string) *recorder {
	return &recorder{id: id, log: log}
}

func TestNotifyDeliversInAttachOrder(t *testing.T) {
	var got []string
	s := NewSubject[string]()
	a, b, c := newRecorder("a", &got), newRecorder("b", &got), newRecorder("c", &got)
	s.Attach(b)
	s.Attach(a)
	s.Attach(c)

	delivered := s.Notify("x")

	assert.Equal(t, 3, delivered)
	assert.Equal(t, []string{"b:x", "a:x", "c:x"}, got)
}

func TestNotifyWithoutObservers(t *testing.T) {
	s := NewSubject[string]()
	assert.Equal(t, 0, s.Notify("x"))
	assert.Equal(t, 0, s.Len())
}

func TestAttachDuplicateDeliversTwice(t *testing.T) {
	var got []string
	s := NewSubject[string]()
	a := newRecorder("a", &got)
	s.Attach(a)
	s.Attach(a)

	assert.Equal(t, 2, s.Notify("x"))
	assert.Equal(t, []string{"a:x", "a:x"}, got)
}

func TestDetach(t *testing.T) {
	var got []string
	s := NewSubject[string]()
	a, b := newRecorder("a", &got), newRecorder("b", &got)
	s.Attach(a)
	s.Attach(b)
	s.Attach(a)

	removed := s.Detach(a)
	assert.Equal(t, 2, removed)
	assert.False(t, s.Contains(a))
	assert.True(t, s.Contains(b))

	s.Notify("x")
	assert.Equal(t, []string{"b:x"}, got)

	// re-attach restores delivery, after b
	s.Attach(a)
	got = got[:0]
	s.Notify("y")
	assert.Equal(t, []string{"b:y", "a:y"}, got)
}

func TestDetachUnknownIsNoop(t *testing.T) {
	var got []string
	s := NewSubject[string]()
	a, stranger := newRecorder("a", &got), newRecorder("stranger", &got)
	s.Attach(a)

	assert.Equal(t, 0, s.Detach(stranger))
	assert.Equal(t, 0, s.Detach(nil))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, []Observer[string]{a}, s.Observers())
}

func TestDetachMatchesByID(t *testing.T) {
	var got []string
	s := NewSubject[string]()
	s.Attach(newRecorder("a", &got))

	// a distinct value carrying the same identifier detaches the attached one
	assert.Equal(t, 1, s.Detach(newRecorder("a", &got)))
	assert.Equal(t, 0, s.Len())
}

func TestNotifyUsesSnapshot(t *testing.T) {
	var got []string
	s := NewSubject[string]()
	late := newRecorder("late", &got)
	b := newRecorder("b", &got)
	a := newRecorder("a", &got)
	a.hook = func(string) {
		s.Attach(late)
		s.Detach(b)
	}
	s.Attach(a)
	s.Attach(b)

	assert.Equal(t, 2, s.Notify("1"))
	assert.Equal(t, []string{"a:1", "b:1"}, got)

	a.hook = nil
	got = got[:0]
	assert.Equal(t, 2, s.Notify("2"))
	assert.Equal(t, []string{"a:2", "late:2"}, got)
}

func TestAttachNil(t *testing.T) {
	s := NewSubject[string]()
	s.Attach(nil)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(nil))
}
