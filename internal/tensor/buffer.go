package tensor

import "sync/atomic"

// buffer is the storage shared by a root array and all of its views.
// refCount counts the root plus every live view; the root may only drop the
// storage once it holds the last reference.
type buffer[T DType] struct {
	data     []T
	refCount atomic.Int32
}

// newBuffer allocates n zeroed elements with refCount = 1.
func newBuffer[T DType](n int) *buffer[T] {
	buf := &buffer[T]{
		data: make([]T, n),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef registers another holder (a view).
func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release drops one reference and frees the storage when none remain.
func (b *buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.data = nil
	}
}

// refs returns the number of live holders.
func (b *buffer[T]) refs() int {
	return int(b.refCount.Load())
}

// isUnique returns true if only one holder references the buffer.
func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}
