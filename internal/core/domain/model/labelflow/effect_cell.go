package labelflow

import "sync"

// EffectCell holds the latest SideEffect. Storing a new effect replaces the
// previous one whether or not it was read; nothing is queued.
//
// Subscribers receive through a channel with a buffer of one. If a
// subscriber lags, the stale value in its buffer is replaced, so a reader
// only ever sees the newest effect.
type EffectCell struct {
	mu      sync.Mutex
	current SideEffect
	subs    map[uint64]chan SideEffect
	nextID  uint64
}

// NewEffectCell returns a cell holding NoOp.
func NewEffectCell() *EffectCell {
	return &EffectCell{
		current: NoOp{},
		subs:    make(map[uint64]chan SideEffect),
	}
}

// Load returns the current effect.
func (c *EffectCell) Load() SideEffect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Store replaces the current effect and publishes it to every subscriber.
func (c *EffectCell) Store(effect SideEffect) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = effect
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- effect:
		default:
		}
	}
}

// Subscribe returns a channel primed with the current effect and a function
// that unsubscribes and closes the channel. Calling it more than once is safe.
func (c *EffectCell) Subscribe() (<-chan SideEffect, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan SideEffect, 1)
	ch <- c.current
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
}
