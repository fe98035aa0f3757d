package backend

import "time"

// throttle tracks a quiet period: ready reports true once interval has
// passed since the last touch. Callers hold their own lock.
type throttle struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	return &throttle{interval: interval, now: time.Now}
}

func (t *throttle) touch() {
	if t == nil {
		return
	}
	t.last = t.now()
}

func (t *throttle) ready() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	return t.now().Sub(t.last) >= t.interval
}
