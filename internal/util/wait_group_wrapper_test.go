package util

import (
	"sync/atomic"
	"testing"
)

func TestWaitGroupWrapper(t *testing.T) {
	var w WaitGroupWrapper
	var count int64

	for i := 0; i < 32; i++ {
		w.Wrap(func() {
			atomic.AddInt64(&count, 1)
		})
	}
	w.Wait()

	if count != 32 {
		t.Fatalf("expected 32 callbacks to run, got %d", count)
	}
}
