package tracker

import "time"

func SetClock(t ITracker, now func() time.Time) {
	t.(*tracker).now = now
}

func SetBlockNumberSource(t ITracker, next func() int64) {
	t.(*tracker).blockNumber = next
}
