package core

import "sync"

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Notice is a non-blocking, user-visible report of a recovered failure.
type Notice struct {
	Severity Severity
	Message  string
	Err      error
}

const DefaultNoticeLimit = 32

// Notices is a bounded FIFO of notices. When full, the oldest notice is
// dropped so a failing animator cannot grow it without limit.
type Notices struct {
	mu      sync.Mutex
	items   []Notice
	limit   int
	dropped int
}

func NewNotices(limit int) *Notices {
	if limit <= 0 {
		limit = DefaultNoticeLimit
	}
	return &Notices{limit: limit}
}

func (n *Notices) Push(nt Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.items) == n.limit {
		n.items = n.items[1:]
		n.dropped++
	}
	n.items = append(n.items, nt)
}

// Drain returns all pending notices, oldest first, and empties the queue.
func (n *Notices) Drain() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.items
	n.items = nil
	return out
}

func (n *Notices) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.items)
}

// Dropped counts notices discarded because the queue was full.
func (n *Notices) Dropped() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dropped
}

// Reporter receives log lines for recovered failures.
type Reporter interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopReporter struct{}

func (nopReporter) Warnf(string, ...any)  {}
func (nopReporter) Errorf(string, ...any) {}
