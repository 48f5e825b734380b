package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_BurstFiresOnce(t *testing.T) {
	var fired int64
	d := New(50*time.Millisecond, func() {
		atomic.AddInt64(&fired, 1)
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt64(&fired); got != 1 {
		t.Errorf("expected exactly 1 firing after burst, got %d", got)
	}
}

func TestDebouncer_ResetExtendsDeadline(t *testing.T) {
	var fired int64
	d := New(60*time.Millisecond, func() {
		atomic.AddInt64(&fired, 1)
	})
	defer d.Stop()

	d.Trigger()
	time.Sleep(40 * time.Millisecond)

	// A second trigger inside the window must postpone the firing.
	d.Trigger()
	time.Sleep(40 * time.Millisecond)

	if got := atomic.LoadInt64(&fired); got != 0 {
		t.Fatalf("fired %d times before the reset window elapsed", got)
	}

	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt64(&fired); got != 1 {
		t.Errorf("expected 1 firing after window elapsed, got %d", got)
	}
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	var fired int64
	d := New(30*time.Millisecond, func() {
		atomic.AddInt64(&fired, 1)
	})
	defer d.Stop()

	d.Trigger()
	time.Sleep(80 * time.Millisecond)
	d.Trigger()
	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt64(&fired); got != 2 {
		t.Errorf("expected 2 firings for 2 settled triggers, got %d", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var fired int64
	d := New(30*time.Millisecond, func() {
		atomic.AddInt64(&fired, 1)
	})

	d.Trigger()
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt64(&fired); got != 0 {
		t.Errorf("expected no firing after Stop, got %d", got)
	}
}

func TestGroup_EvictsKeyAfterFiring(t *testing.T) {
	var fired int64
	g := NewGroup(20*time.Millisecond, func(string) {
		atomic.AddInt64(&fired, 1)
	})
	defer g.Stop()

	for i := 0; i < 50; i++ {
		g.Trigger("tenant-" + string(rune('a'+i%26)))
	}

	time.Sleep(100 * time.Millisecond)

	g.mu.Lock()
	remaining := len(g.debouncers)
	g.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected all settled keys evicted, %d remain", remaining)
	}

	// An evicted key still debounces on the next trigger.
	g.Trigger("tenant-a")
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt64(&fired); got != 27 {
		t.Errorf("expected 27 firings (26 keys + 1 retrigger), got %d", got)
	}
}

func TestGroup_KeysAreIndependent(t *testing.T) {
	var acme, other int64
	g := NewGroup(30*time.Millisecond, func(key string) {
		switch key {
		case "acme":
			atomic.AddInt64(&acme, 1)
		case "other":
			atomic.AddInt64(&other, 1)
		}
	})
	defer g.Stop()

	for i := 0; i < 5; i++ {
		g.Trigger("acme")
	}
	g.Trigger("other")

	time.Sleep(100 * time.Millisecond)

	if got := atomic.LoadInt64(&acme); got != 1 {
		t.Errorf("expected 1 firing for acme, got %d", got)
	}
	if got := atomic.LoadInt64(&other); got != 1 {
		t.Errorf("expected 1 firing for other, got %d", got)
	}
}
