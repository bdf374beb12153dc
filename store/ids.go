package store

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var lastTimestamp int64

// nextTimestamp returns the current time in milliseconds, bumped past the
// previously issued value so consecutive tasks never share a creation time.
func nextTimestamp() int64 {
	for {
		now := time.Now().UnixMilli()
		last := atomic.LoadInt64(&lastTimestamp)
		if now <= last {
			now = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastTimestamp, last, now) {
			return now
		}
	}
}

func newID() string {
	return uuid.NewString()
}
