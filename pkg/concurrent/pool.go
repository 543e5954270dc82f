package concurrent

import (
	"errors"
	"time"
)

var ErrScheduleTimeout = errors.New("schedule error: timed out")

// Pool goroutine pool over plain closures, for the websocket connection
// handlers. bounded to size goroutines, with a queue of pending tasks.
// ref: https://sergey.kamardin.org/articles/million-websocket-and-go/
type Pool struct {
	sem  chan struct{}
	work chan func()
}

func NewPool(size, queue int) *Pool {
	return &Pool{
		sem:  make(chan struct{}, size),
		work: make(chan func(), queue),
	}
}

// Spawn start n resident workers up front.
func (p *Pool) Spawn(n int) {
	for i := 0; i < n && i < cap(p.sem); i++ {
		p.sem <- struct{}{}
		go p.worker(func() {})
	}
}

func (p *Pool) Schedule(task func()) {
	p.schedule(task, nil)
}

// ScheduleTimeout ErrScheduleTimeout when no worker picks up the task within
// timeout.
func (p *Pool) ScheduleTimeout(timeout time.Duration, task func()) error {
	return p.schedule(task, time.After(timeout))
}

func (p *Pool) schedule(task func(), timeout <-chan time.Time) error {
	select {
	case <-timeout:
		return ErrScheduleTimeout
	case p.work <- task:
		return nil
	case p.sem <- struct{}{}:
		go p.worker(task)
		return nil
	}
}

func (p *Pool) worker(task func()) {
	defer func() { <-p.sem }()

	task()

	for task := range p.work {
		task()
	}
}

func (p *Pool) Close() {
	close(p.work)
}
