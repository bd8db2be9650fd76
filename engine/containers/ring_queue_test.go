package containers

import (
	"errors"
	"sync"
	"testing"

	"github.com/spaghettifunk/anima-bake/engine/core"
)

func TestRingQueueOrderAndWrap(t *testing.T) {
	rq := NewRingQueue[string](2)

	if _, err := rq.Dequeue(); !errors.Is(err, core.ErrQueueEmpty) {
		t.Errorf("Dequeue on empty = %v, want ErrQueueEmpty", err)
	}
	rq.Enqueue("a")
	rq.Enqueue("b")
	if err := rq.Enqueue("c"); !errors.Is(err, core.ErrQueueFull) {
		t.Errorf("Enqueue on full = %v, want ErrQueueFull", err)
	}
	if !rq.IsFull() {
		t.Error("queue should be full")
	}

	if v, _ := rq.Dequeue(); v != "a" {
		t.Errorf("first = %q, want a", v)
	}
	rq.Enqueue("c")
	if v, _ := rq.Peek(); v != "b" {
		t.Errorf("Peek = %q, want b", v)
	}
	for _, want := range []string{"b", "c"} {
		if v, err := rq.Dequeue(); err != nil || v != want {
			t.Errorf("Dequeue = %q, %v; want %q", v, err, want)
		}
	}
	if !rq.IsEmpty() {
		t.Error("queue should be empty")
	}
}

func TestRingQueueEnqueueUnique(t *testing.T) {
	rq := NewRingQueue[string](4)

	if added, err := rq.EnqueueUnique("x.samples.yaml"); !added || err != nil {
		t.Fatalf("first EnqueueUnique = %v, %v", added, err)
	}
	if added, _ := rq.EnqueueUnique("x.samples.yaml"); added {
		t.Error("a pending value should not be queued twice")
	}
	rq.Dequeue()
	if added, _ := rq.EnqueueUnique("x.samples.yaml"); !added {
		t.Error("value should be queued again once drained")
	}
}

func TestRingQueueConcurrentProducers(t *testing.T) {
	rq := NewRingQueue[int](64)

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 16; i++ {
				rq.Enqueue(base*100 + i)
			}
		}(p)
	}
	wg.Wait()

	if rq.Len() != 64 {
		t.Errorf("Len = %d, want 64", rq.Len())
	}
}
