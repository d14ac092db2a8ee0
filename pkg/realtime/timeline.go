package realtime

import (
	"container/heap"
	"time"
)

// Timeline schedules callbacks against a clock that only moves when the
// owner calls Advance. It is not safe for concurrent use; the goroutine that
// drives the ticks owns it.
type Timeline struct {
	now   time.Duration
	seq   int
	queue callbackQueue
}

// NewTimeline creates an empty timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// After runs fn once the timeline has advanced by d from now.
func (t *Timeline) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	t.seq++
	heap.Push(&t.queue, &callback{at: t.now + d, seq: t.seq, fn: fn})
}

// Advance moves the clock forward by elapsed and runs every due callback in
// deadline order, FIFO among equal deadlines. Callbacks may schedule more
// work; anything that becomes due in the same call runs too. It returns the
// number of callbacks run.
func (t *Timeline) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		t.now += elapsed
	}
	ran := 0
	for t.queue.Len() > 0 && t.queue[0].at <= t.now {
		cb := heap.Pop(&t.queue).(*callback)
		cb.fn()
		ran++
	}
	return ran
}

// Now returns the elapsed time since the timeline was created.
func (t *Timeline) Now() time.Duration {
	return t.now
}

// Pending returns the number of callbacks not yet run.
func (t *Timeline) Pending() int {
	return t.queue.Len()
}

type callback struct {
	at  time.Duration
	seq int
	fn  func()
}

type callbackQueue []*callback

func (q callbackQueue) Len() int { return len(q) }

func (q callbackQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q callbackQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *callbackQueue) Push(x any) { *q = append(*q, x.(*callback)) }

func (q *callbackQueue) Pop() any {
	old := *q
	n := len(old)
	cb := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return cb
}
