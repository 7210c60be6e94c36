package ruuid

import (
	"sync"
	"time"
)

// gregorianToUnix is the offset, in 100-nanosecond intervals, between the
// Gregorian reform epoch used by RFC 4122 (1582-10-15T00:00:00Z) and the
// Unix epoch (1970-01-01T00:00:00Z).
const gregorianToUnix = 122192928000000000

// tickMask keeps timestamps within the 60 bits the V1 layout can hold.
const tickMask = uint64(1)<<60 - 1

// monotonicClock issues 60-bit timestamps counted in 100-nanosecond ticks
// since the Gregorian epoch. Successive calls always return strictly
// increasing values, even when the wall clock stands still: V1 uniqueness
// within a process depends on the timestamp field changing between
// generations.
type monotonicClock struct {
	mu   sync.Mutex
	last uint64
}

// next converts t to Gregorian ticks and advances the clock. If t does not
// land past the previously issued tick, the previous tick plus one is
// issued instead.
func (c *monotonicClock) next(t time.Time) uint64 {
	tick := uint64(t.UnixNano()/100+gregorianToUnix) & tickMask

	c.mu.Lock()
	if tick <= c.last {
		tick = c.last + 1
	}
	c.last = tick
	c.mu.Unlock()

	return tick
}

// seed initializes the clock floor, used when reloading persisted state.
func (c *monotonicClock) seed(tick uint64) {
	c.mu.Lock()
	if tick > c.last {
		c.last = tick
	}
	c.mu.Unlock()
}

// current returns the last issued tick without advancing the clock.
func (c *monotonicClock) current() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
