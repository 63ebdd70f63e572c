package shell

import tea "github.com/charmbracelet/bubbletea"

// flushMsg carries deferred work back into the update loop.
type flushMsg []func()

// RunMsg runs a function on the update loop. Goroutines outside the loop
// send it with tea.Program.Send.
type RunMsg func()

// Queue defers work to a later turn of the update loop. Later is called from
// inside Update, where sending to the program would block, so the work is
// handed back through a command instead. One batch is in flight at a time,
// which keeps the work in order.
type Queue struct {
	pending  []func()
	inFlight bool
}

// Later queues fn. It matches overlay.Scheduler.
func (q *Queue) Later(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of queued functions.
func (q *Queue) Len() int { return len(q.pending) }

// flush returns the command delivering the queued work, or nil.
func (q *Queue) flush() tea.Cmd {
	if q.inFlight || len(q.pending) == 0 {
		return nil
	}
	fns := q.pending
	q.pending = nil
	q.inFlight = true
	return func() tea.Msg { return flushMsg(fns) }
}

// run executes a delivered batch.
func (q *Queue) run(fns flushMsg) {
	q.inFlight = false
	for _, fn := range fns {
		fn()
	}
}
