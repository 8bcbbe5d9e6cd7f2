package engine

import "time"

// FPSLimiter paces frames to a cap read once per frame.
type FPSLimiter struct {
	limit func() int
	next  time.Time
}

// NewFPSLimiter creates a limiter reading its cap from limit. A nil limit or
// a cap <= 0 disables limiting.
func NewFPSLimiter(limit func() int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Wait blocks until the next frame is due.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	effectiveLimit := 0
	if f.limit != nil {
		effectiveLimit = f.limit()
	}

	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch so one long frame does not cause a burst
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
