package pipeline

import "time"

// RunSummary aggregates per-file outcomes across one batch run.
// Attempted equals the number of discovered archives; every one of them
// lands in exactly one of Succeeded or Failed.
type RunSummary struct {
	Attempted    int
	Succeeded    int
	Failed       int
	Chapters     int
	BytesWritten int64
	Elapsed      time.Duration
}
