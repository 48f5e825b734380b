package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn once after delay has elapsed without another Trigger.
// Each Trigger resets the pending timer.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Group debounces per key, creating a Debouncer lazily for each key.
// A key's entry is removed once its timer fires, so idle keys do not
// accumulate.
type Group struct {
	mu         sync.Mutex
	delay      time.Duration
	fn         func(key string)
	debouncers map[string]*Debouncer
}

func NewGroup(delay time.Duration, fn func(key string)) *Group {
	return &Group{
		delay:      delay,
		fn:         fn,
		debouncers: make(map[string]*Debouncer),
	}
}

func (g *Group) Trigger(key string) {
	g.mu.Lock()
	d, ok := g.debouncers[key]
	if !ok {
		var created *Debouncer
		created = New(g.delay, func() {
			g.fn(key)
			g.evict(key, created)
		})
		g.debouncers[key] = created
		d = created
	}
	g.mu.Unlock()

	d.Trigger()
}

// evict drops the key's entry only if it still maps to the debouncer
// whose timer fired; a newer entry for the same key stays.
func (g *Group) evict(key string, d *Debouncer) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.debouncers[key] == d {
		delete(g.debouncers, key)
	}
}

func (g *Group) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, d := range g.debouncers {
		d.Stop()
	}
}
