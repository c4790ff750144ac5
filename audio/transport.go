package audio

import (
	"container/heap"
	"sync"
)

const (
	SampleRate = 44100
	bufferSize = 256
)

// Transport is the logical clock all note events are scheduled against. The
// audio callback advances it once per buffer; callbacks scheduled with
// ScheduleAt fire, in time order, as the clock passes their time.
type Transport struct {
	sampleRate float64

	mu      sync.Mutex
	samples uint64 // total samples ticked
	render  uint64 // start of the buffer currently being rendered
	events  eventQueue
	seq     int
}

func NewTransport() *Transport {
	return &Transport{sampleRate: SampleRate}
}

func (t *Transport) seconds(samples uint64) float64 {
	return float64(samples) / t.sampleRate
}

// Now returns the current transport time in seconds.
func (t *Transport) Now() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seconds(t.samples)
}

// Resolve maps a requested event time to an absolute transport time. Times
// in the past, zero included, resolve to now.
func (t *Transport) Resolve(at float64) float64 {
	if now := t.Now(); at < now {
		return now
	}
	return at
}

// ScheduleAt registers fn to run once the transport passes the given time.
// Times already in the past fire on the next tick.
func (t *Transport) ScheduleAt(at float64, fn func()) {
	t.mu.Lock()
	heap.Push(&t.events, &event{at: at, seq: t.seq, fn: fn})
	t.seq++
	t.mu.Unlock()
}

// Tick advances the clock by n samples and fires due events in time order.
// The sink calls it once per audio callback, before any source renders, so
// event callbacks never run concurrently with rendering.
func (t *Transport) Tick(n int) {
	t.mu.Lock()
	t.render = t.samples
	t.samples += uint64(n)
	end := t.seconds(t.samples)
	var due []*event
	for len(t.events) > 0 && t.events[0].at < end {
		due = append(due, heap.Pop(&t.events).(*event))
	}
	t.mu.Unlock()
	for _, ev := range due {
		ev.fn()
	}
}

// RenderTime returns the start time of the buffer currently being rendered,
// one buffer behind Now once ticking has started.
func (t *Transport) RenderTime() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seconds(t.render)
}

type event struct {
	at  float64
	seq int
	fn  func()
}

// eventQueue orders events by time; the sequence number keeps events
// scheduled for the same time in insertion order.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}
