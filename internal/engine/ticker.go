package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/go-yourage/internal/config"
)

// Ticker is a running periodic subscription. It must be stopped when its
// owner is torn down; Stop is safe to call more than once.
type Ticker struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartTicker calls fn with clock.Now() every period until Stop is called.
func StartTicker(period time.Duration, clock Clock, fn func(time.Time)) *Ticker {
	t := &Ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go t.loop(period, clock, fn)
	return t
}

func (t *Ticker) loop(period time.Duration, clock Clock, fn func(time.Time)) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)
	defer close(t.done)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	log.Debug(config.MsgWorkerStart, config.LogKeyInterval, period)

	for {
		select {
		case <-t.stop:
			log.Debug(config.MsgWorkerStop)
			return
		case <-ticker.C:
			fn(clock.Now())
		}
	}
}

// Stop releases the timer and waits for the loop to exit, so fn is never
// called after Stop returns.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
	<-t.done
}
