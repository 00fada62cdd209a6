package monitor

import (
	"sync"
	"time"
)

// TickRecorder records the times of the last N checks so the monitor can tell
// when ticks went missing, which usually means the system was asleep. It is
// purely observational: it never changes the poll interval or the threshold
// evaluation.
type TickRecorder struct {
	MaxRecordCount int
	LastCheckTimes []time.Time

	interval time.Duration
	mu       *sync.Mutex
}

// NewTickRecorder returns a new TickRecorder for checks expected once per
// interval.
func NewTickRecorder(maxRecordCount int, interval time.Duration) *TickRecorder {
	return &TickRecorder{
		MaxRecordCount: maxRecordCount,
		LastCheckTimes: make([]time.Time, 0),
		interval:       interval,
		mu:             &sync.Mutex{},
	}
}

// AddRecordNow adds a new record with the current time.
func (r *TickRecorder) AddRecordNow() {
	r.AddRecord(time.Now())
}

// AddRecord adds a new record.
func (r *TickRecorder) AddRecord(t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Round to strip the monotonic clock reading, otherwise time.Since
	// returns inaccurate values after the system slept.
	t = t.Round(0)

	if len(r.LastCheckTimes) >= r.MaxRecordCount {
		r.LastCheckTimes = r.LastCheckTimes[1:]
	}
	r.LastCheckTimes = append(r.LastCheckTimes, t)
}

// GetRecordsIn returns the number of continuous records in the last duration.
// Continuous records are defined as the time difference between two adjacent
// records being less than interval+1 second.
func (r *TickRecorder) GetRecordsIn(last time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The most recent record must itself be within the last duration.
	if len(r.LastCheckTimes) > 0 && time.Since(r.LastCheckTimes[len(r.LastCheckTimes)-1]) >= r.interval+time.Second {
		return 0
	}

	count := 0
	for i := len(r.LastCheckTimes) - 1; i >= 0; i-- {
		record := r.LastCheckTimes[i]
		if time.Since(record) > last {
			break
		}

		recordAfter := record
		if i+1 < len(r.LastCheckTimes) {
			recordAfter = r.LastCheckTimes[i+1]
		}

		if recordAfter.Sub(record) >= r.interval+time.Second {
			break
		}
		count++
	}

	return count
}

// GetLastRecords returns the records within the last duration, newest first.
func (r *TickRecorder) GetLastRecords(last time.Duration) []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.LastCheckTimes) == 0 {
		return nil
	}

	var records []time.Time
	for i := len(r.LastCheckTimes) - 1; i >= 0; i-- {
		record := r.LastCheckTimes[i]
		if time.Since(record) > last {
			break
		}
		records = append(records, record)
	}

	return records
}

func formatRelativeTimes(times []time.Time) []string {
	var timesString []string
	for _, t := range times {
		timesString = append(timesString, time.Since(t).String())
	}
	return timesString
}
