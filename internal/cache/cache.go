// Package cache holds the in-process read caches of the mock API and the
// janitor that sweeps their expired entries.
package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"finboard/internal/log"
)

// Cleaner is a cache that can drop its expired entries.
type Cleaner interface {
	CleanExpired() int
}

// Janitor periodically sweeps registered caches.
type Janitor struct {
	mu      sync.Mutex
	caches  []Cleaner
	logger  *log.Logger
	stop    chan struct{}
	done    chan struct{}
	started atomic.Bool
	stopped sync.Once
}

func NewJanitor(logger *log.Logger) *Janitor {
	return &Janitor{
		logger: log.OrDiscard(logger).WithComponent(log.ComponentCache),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (j *Janitor) Register(c Cleaner) {
	j.mu.Lock()
	j.caches = append(j.caches, c)
	j.mu.Unlock()
}

// Start sweeps every interval until Stop is called.
func (j *Janitor) Start(interval time.Duration) {
	j.started.Store(true)
	go j.run(interval)
}

func (j *Janitor) run(interval time.Duration) {
	defer close(j.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := j.Sweep(); n > 0 {
				j.logger.Debug("Swept expired cache entries", log.FieldCount, n)
			}
		case <-j.stop:
			return
		}
	}
}

// Sweep cleans every registered cache once and returns the total removed.
func (j *Janitor) Sweep() int {
	j.mu.Lock()
	caches := append([]Cleaner(nil), j.caches...)
	j.mu.Unlock()

	total := 0
	for _, c := range caches {
		total += c.CleanExpired()
	}
	return total
}

// Stop ends the sweep loop started by Start and waits for it. It is safe to
// call more than once, and without Start.
func (j *Janitor) Stop() {
	j.stopped.Do(func() {
		close(j.stop)
		if j.started.Load() {
			<-j.done
		}
	})
}
