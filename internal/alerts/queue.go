// Package alerts queues natural-language alert rules with their derived SQL
// and dispatches them to the external execution cluster in batches.
package alerts

import "sync"

// Alert pairs the submitted rule text with the SQL the translator derived.
type Alert struct {
	Alert string `json:"alert"`
	SQL   string `json:"sql"`
}

// Queue holds pending alerts between submission and batch dispatch. It is
// drained as a whole, never per item.
type Queue struct {
	mu     sync.Mutex
	alerts []Alert
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Add(alert Alert) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.alerts = append(q.alerts, alert)
}

// Snapshot returns a copy of the queued alerts.
func (q *Queue) Snapshot() []Alert {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Alert, len(q.alerts))
	copy(out, q.alerts)
	return out
}

func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.alerts = nil
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.alerts)
}
