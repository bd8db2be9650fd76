package systems

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestNewJobSystemValidation(t *testing.T) {
	if _, err := NewJobSystem(0, 1); !errors.Is(err, ErrNoWorkers) {
		t.Errorf("err = %v, want ErrNoWorkers", err)
	}
	if _, err := NewJobSystem(1, -1); !errors.Is(err, ErrNegativeChannelSize) {
		t.Errorf("err = %v, want ErrNegativeChannelSize", err)
	}
}

func TestJobSystemRunsEverySubmittedJob(t *testing.T) {
	js, err := NewJobSystem(3, 4)
	if err != nil {
		t.Fatal(err)
	}

	var ran, completed, failed atomic.Int32
	boom := errors.New("boom")
	for i := 0; i < 20; i++ {
		fail := i%5 == 0
		js.Submit(JobTask{
			Name: "write",
			Run: func() error {
				ran.Add(1)
				if fail {
					return boom
				}
				return nil
			},
			OnComplete: func() { completed.Add(1) },
			OnFailure: func(err error) {
				if errors.Is(err, boom) {
					failed.Add(1)
				}
			},
		})
	}
	js.Shutdown()
	// A second shutdown is harmless.
	js.Shutdown()

	if ran.Load() != 20 || completed.Load() != 16 || failed.Load() != 4 {
		t.Errorf("ran=%d completed=%d failed=%d", ran.Load(), completed.Load(), failed.Load())
	}
}
