package marquee

import "time"

// Handle identifies one scheduled action. The zero Handle is never issued.
type Handle uint64

// Timer is the host's single-context, cancellable one-shot scheduler.
// Actions must run on the same context that calls the Animator.
type Timer interface {
	ScheduleOnce(delay time.Duration, action func()) Handle
	Cancel(h Handle)
}

// ManualTimer is a Timer driven by an explicit clock. Nothing fires until
// Advance is called, which makes animations deterministic in tests and in
// hosts that step frames themselves.
type ManualTimer struct {
	now     time.Duration
	next    Handle
	pending []manualEntry
}

type manualEntry struct {
	at     time.Duration
	handle Handle
	action func()
}

// NewManualTimer returns a timer whose clock starts at zero.
func NewManualTimer() *ManualTimer {
	return &ManualTimer{}
}

func (t *ManualTimer) ScheduleOnce(delay time.Duration, action func()) Handle {
	t.next++
	t.pending = append(t.pending, manualEntry{at: t.now + delay, handle: t.next, action: action})
	return t.next
}

func (t *ManualTimer) Cancel(h Handle) {
	for i, e := range t.pending {
		if e.handle == h {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d and runs every action that becomes
// due, including actions scheduled by those actions, in due order.
// It returns how many actions ran.
func (t *ManualTimer) Advance(d time.Duration) int {
	target := t.now + d
	fired := 0
	for {
		e, ok := t.popDue(target)
		if !ok {
			break
		}
		t.now = e.at
		e.action()
		fired++
	}
	t.now = target
	return fired
}

// Step runs only the earliest pending action, moving the clock to its due
// time. It returns false when nothing is pending.
func (t *ManualTimer) Step() bool {
	if len(t.pending) == 0 {
		return false
	}
	e, _ := t.popDue(t.pending[t.earliest()].at)
	t.now = e.at
	e.action()
	return true
}

// Pending reports how many actions are scheduled and not yet run.
func (t *ManualTimer) Pending() int {
	return len(t.pending)
}

// Now returns the elapsed time on the manual clock.
func (t *ManualTimer) Now() time.Duration {
	return t.now
}

func (t *ManualTimer) earliest() int {
	best := 0
	for i, e := range t.pending {
		b := t.pending[best]
		if e.at < b.at || (e.at == b.at && e.handle < b.handle) {
			best = i
		}
	}
	return best
}

func (t *ManualTimer) popDue(target time.Duration) (manualEntry, bool) {
	if len(t.pending) == 0 {
		return manualEntry{}, false
	}
	i := t.earliest()
	e := t.pending[i]
	if e.at > target {
		return manualEntry{}, false
	}
	t.pending = append(t.pending[:i], t.pending[i+1:]...)
	return e, true
}
