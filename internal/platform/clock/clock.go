// Package clock provides a mockable time source.
// Production code uses RealClock; tests inject a MockClock so "now" is
// sampled deterministically
package clock

import (
	"sync"
	"time"
)

// Clock is the interface for reading the current time
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// Now returns time.Now
func (RealClock) Now() time.Time { return time.Now() }

// MockClock is a test clock with a controllable current time
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock returns a MockClock frozen at t
func NewMock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// Now returns the frozen time
func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set moves the clock to t
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d (negative d moves it back)
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var _ Clock = RealClock{}
var _ Clock = (*MockClock)(nil)
