package main

import (
	"math"
	"time"

	"github.com/VividCortex/ewma"
	"github.com/charmbracelet/bubbletea"

	"marqueetext/marquee"
)

// timerFiredMsg is delivered when a scheduled marquee action is due
type timerFiredMsg struct {
	handle marquee.Handle
	at     time.Time
}

// teaTimer implements marquee.Timer on top of tea.Tick. Actions run inside
// Update when their message arrives, so the animator never leaves the UI
// loop. Scheduling only queues commands; Drain hands them to the runtime.
type teaTimer struct {
	next    marquee.Handle
	actions map[marquee.Handle]func()
	queued  []tea.Cmd
}

func newTeaTimer() *teaTimer {
	return &teaTimer{actions: make(map[marquee.Handle]func())}
}

func (t *teaTimer) ScheduleOnce(delay time.Duration, action func()) marquee.Handle {
	t.next++
	h := t.next
	t.actions[h] = action
	t.queued = append(t.queued, tea.Tick(delay, func(at time.Time) tea.Msg {
		return timerFiredMsg{handle: h, at: at}
	}))
	return h
}

// Cancel forgets the action; its tick message is ignored when it arrives
func (t *teaTimer) Cancel(h marquee.Handle) {
	delete(t.actions, h)
}

// Fire runs the action for msg if it is still scheduled
func (t *teaTimer) Fire(msg timerFiredMsg) bool {
	action, ok := t.actions[msg.handle]
	if !ok {
		return false
	}
	delete(t.actions, msg.handle)
	action()
	return true
}

// Drain returns the commands queued since the last call
func (t *teaTimer) Drain() tea.Cmd {
	if len(t.queued) == 0 {
		return nil
	}
	cmds := t.queued
	t.queued = nil
	return tea.Batch(cmds...)
}

// tickMeter keeps a moving average of the observed tick interval
type tickMeter struct {
	avg  ewma.MovingAverage
	last time.Time
}

func newTickMeter() *tickMeter {
	return &tickMeter{avg: ewma.NewMovingAverage()}
}

// Observe records a tick that fired at the given time
func (m *tickMeter) Observe(at time.Time) {
	if !m.last.IsZero() {
		m.avg.Add(float64(at.Sub(m.last)) / float64(time.Millisecond))
	}
	m.last = at
}

// Reset forgets the previous tick so a start delay is not averaged in
func (m *tickMeter) Reset() {
	m.last = time.Time{}
}

// Interval returns the smoothed tick interval, zero before two ticks
func (m *tickMeter) Interval() time.Duration {
	return time.Duration(math.Round(m.avg.Value() * float64(time.Millisecond)))
}
