package rangepicker

type taskID uint64

type deferredTask struct {
	id taskID
	fn func()
}

// deferredQueue holds work that must run after the current event handler
// returns. The host drains it with Flush from its event loop.
type deferredQueue struct {
	next     taskID
	tasks    []deferredTask
	disposed bool
}

func (q *deferredQueue) Defer(fn func()) taskID {
	if q.disposed {
		return 0
	}
	q.next++
	q.tasks = append(q.tasks, deferredTask{id: q.next, fn: fn})
	return q.next
}

// Cancel drops a task that has not run yet. Unknown ids are ignored.
func (q *deferredQueue) Cancel(id taskID) {
	if id == 0 {
		return
	}
	for i, t := range q.tasks {
		if t.id == id {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return
		}
	}
}

func (q *deferredQueue) Pending() bool {
	return len(q.tasks) > 0
}

// Flush runs queued tasks in FIFO order, including tasks queued by the tasks
// themselves, and returns how many ran.
func (q *deferredQueue) Flush() int {
	n := 0
	for len(q.tasks) > 0 && !q.disposed {
		t := q.tasks[0]
		q.tasks = q.tasks[1:]
		t.fn()
		n++
	}
	return n
}

func (q *deferredQueue) Dispose() {
	q.disposed = true
	q.tasks = nil
}
