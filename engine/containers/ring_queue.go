package containers

import (
	"sync"

	"github.com/spaghettifunk/anima-bake/engine/core"
)

// RingQueue is a fixed size FIFO safe for use from several goroutines.
type RingQueue[T comparable] struct {
	mutex      sync.Mutex
	data       []T
	size       int
	readIndex  int
	writeIndex int
	count      int
}

// Create a new RingQueue
func NewRingQueue[T comparable](size int) *RingQueue[T] {
	if size < 1 {
		size = 1
	}
	return &RingQueue[T]{
		data: make([]T, size),
		size: size,
	}
}

// Enqueue adds an element to the queue
func (rq *RingQueue[T]) Enqueue(value T) error {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()
	return rq.enqueue(value)
}

func (rq *RingQueue[T]) enqueue(value T) error {
	if rq.count == rq.size {
		return core.ErrQueueFull
	}
	rq.data[rq.writeIndex] = value
	rq.writeIndex = (rq.writeIndex + 1) % rq.size
	rq.count++
	return nil
}

// EnqueueUnique adds value unless it is already waiting. It reports whether
// the value was added.
func (rq *RingQueue[T]) EnqueueUnique(value T) (bool, error) {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()

	for i := 0; i < rq.count; i++ {
		if rq.data[(rq.readIndex+i)%rq.size] == value {
			return false, nil
		}
	}
	if err := rq.enqueue(value); err != nil {
		return false, err
	}
	return true, nil
}

// Dequeue removes and returns the front element in the queue
func (rq *RingQueue[T]) Dequeue() (T, error) {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()

	var zero T
	if rq.count == 0 {
		return zero, core.ErrQueueEmpty
	}
	value := rq.data[rq.readIndex]
	rq.data[rq.readIndex] = zero
	rq.readIndex = (rq.readIndex + 1) % rq.size
	rq.count--
	return value, nil
}

// Peek returns the front element without removing it
func (rq *RingQueue[T]) Peek() (T, error) {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()

	if rq.count == 0 {
		var zero T
		return zero, core.ErrQueueEmpty
	}
	return rq.data[rq.readIndex], nil
}

func (rq *RingQueue[T]) Len() int {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()
	return rq.count
}

// IsEmpty checks if the queue is empty
func (rq *RingQueue[T]) IsEmpty() bool {
	return rq.Len() == 0
}

// IsFull checks if the queue is full
func (rq *RingQueue[T]) IsFull() bool {
	return rq.Len() == rq.size
}
