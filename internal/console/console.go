// Package console holds the per-page operator console: its session, its
// screen state and the commands bound to the page controls.
package console

import (
	"sync/atomic"
	"time"
)

// Console is one page instance
type Console struct {
	ID      string
	Session *Session
	Screen  *Screen

	seq      *Sequencer
	lastSeen atomic.Int64
}

// New creates an empty console; the operator is logged out
func New(id string, now time.Time) *Console {
	c := &Console{
		ID:      id,
		Session: &Session{},
		Screen:  NewScreen(),
		seq:     NewSequencer(),
	}
	c.lastSeen.Store(now.UnixNano())
	return c
}

func (c *Console) Touch(now time.Time) {
	c.lastSeen.Store(now.UnixNano())
}

// IdleFor returns how long the console has not been used
func (c *Console) IdleFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, c.lastSeen.Load()))
}
