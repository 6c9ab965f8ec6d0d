package refresh

import "time"

// Timer is a cancellable pending call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d. Hosts with their own event loop can supply one
// that posts into that loop instead of using a goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeScheduler schedules with time.AfterFunc.
type TimeScheduler struct{}

func (TimeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
