package vkdriver

import (
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

// table hands out opaque handles for native objects. Registering the same
// object twice gives back the same handle, so a queue shared by two roles
// compares equal. Handle 0 is never issued.
type table[T comparable] struct {
	next    uint64
	objects *swiss.Map[uint64, T]
	handles *swiss.Map[T, uint64]
	owned   *swiss.Map[uint64, []uint64]
}

func newTable[T comparable]() *table[T] {
	return &table[T]{
		objects: swiss.NewMap[uint64, T](8),
		handles: swiss.NewMap[T, uint64](8),
		owned:   swiss.NewMap[uint64, []uint64](4),
	}
}

func (t *table[T]) put(obj T) uint64 {
	if h, ok := t.handles.Get(obj); ok {
		return h
	}
	t.next++
	t.objects.Put(t.next, obj)
	t.handles.Put(obj, t.next)
	return t.next
}

func (t *table[T]) get(h uint64) (T, bool) {
	return t.objects.Get(h)
}

func (t *table[T]) drop(h uint64) {
	obj, ok := t.objects.Get(h)
	if !ok {
		return
	}
	t.objects.Delete(h)
	t.handles.Delete(obj)
}

func (t *table[T]) len() int {
	return t.objects.Count()
}

// adopt is put with obj recorded under the handle of its parent object.
func (t *table[T]) adopt(owner uint64, obj T) uint64 {
	h := t.put(obj)
	children, _ := t.owned.Get(owner)
	if !slices.Contains(children, h) {
		t.owned.Put(owner, append(children, h))
	}
	return h
}

// release drops everything adopted under owner.
func (t *table[T]) release(owner uint64) {
	children, ok := t.owned.Get(owner)
	if !ok {
		return
	}
	for _, h := range children {
		t.drop(h)
	}
	t.owned.Delete(owner)
}
