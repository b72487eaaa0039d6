package sim

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by EventQueue.Remove when no events are pending.
// Hitting it from the run loop means the driver drained past its own work.
var ErrEmptyQueue = errors.New("event queue is empty")

// kindPriority orders simultaneous events: returns are applied before
// departures so a bike docked during a minute can leave in that same minute.
var kindPriority = map[EventKind]int{
	RideEnd:   1,
	RideStart: 2,
}

// eventHeap implements heap.Interface.
// Ordering: time → kind priority → insertion sequence.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	// Primary: time (earlier first)
	if !h[i].Time.Equal(h[j].Time) {
		return h[i].Time.Before(h[j].Time)
	}
	// Secondary: kind priority (lower value first)
	priI, priJ := kindPriority[h[i].Kind], kindPriority[h[j].Kind]
	if priI != priJ {
		return priI < priJ
	}
	// Tertiary: insertion sequence (FIFO among equal time and kind)
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// EventQueue is a priority queue of pending events ordered by ascending time.
// Among events sharing a timestamp, RideEnd events come out before RideStart
// events, and events of the same kind come out in the order they were added.
type EventQueue struct {
	events  eventHeap
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make(eventHeap, 0)}
	heap.Init(&q.events)
	return q
}

// Add inserts an event. The queue has no capacity bound.
func (q *EventQueue) Add(ev Event) {
	q.nextSeq++
	ev.seq = q.nextSeq
	heap.Push(&q.events, ev)
}

// Remove removes and returns the earliest event.
func (q *EventQueue) Remove() (Event, error) {
	if len(q.events) == 0 {
		return Event{}, ErrEmptyQueue
	}
	return heap.Pop(&q.events).(Event), nil
}

// Peek returns the earliest event without removing it.
// The second result is false when the queue is empty.
func (q *EventQueue) Peek() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	return q.events[0], true
}

// IsEmpty reports whether no events are pending.
func (q *EventQueue) IsEmpty() bool {
	return len(q.events) == 0
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
