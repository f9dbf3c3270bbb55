package gravity

import "time"

// Clock abstracts the monotonic time source so gravity behavior can be
// driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock used outside tests.
func SystemClock() Clock { return realClock{} }

// timer is a start/stop countdown read against an externally supplied
// instant, so it never consults a clock itself.
type timer struct {
	duration time.Duration
	started  time.Time
	running  bool
}

func (t *timer) start(now time.Time) {
	t.started = now
	t.running = true
}

func (t *timer) stop() {
	t.started = time.Time{}
	t.running = false
}

// done reports whether the timer is running and its duration has elapsed
// as of now.
func (t *timer) done(now time.Time) bool {
	return t.running && !now.Before(t.started.Add(t.duration))
}
