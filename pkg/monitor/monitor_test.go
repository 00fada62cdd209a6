package monitor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/battnag/battnag/pkg/config"
	"github.com/battnag/battnag/pkg/power"
	"github.com/battnag/battnag/pkg/types"
)

// fakeReader returns its configured reading, or an error on the call numbers
// listed in failOn.
type fakeReader struct {
	mu      sync.Mutex
	reading power.Reading
	failOn  map[int]bool
	calls   int
}

func (r *fakeReader) Read() (power.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.failOn[r.calls] {
		return power.Reading{}, errors.New("battery read failed")
	}
	return r.reading, nil
}

func (r *fakeReader) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// fakeNotifier records deliveries and fails every delivery when err is set.
type fakeNotifier struct {
	mu     sync.Mutex
	err    error
	titles []string
	bodies []string
}

func (n *fakeNotifier) Notify(title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
	return n.err
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.titles)
}

func (n *fakeNotifier) last() (string, string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.titles) == 0 {
		return "", ""
	}
	return n.titles[len(n.titles)-1], n.bodies[len(n.bodies)-1]
}

func testConfig() config.Config {
	return config.Config{
		LowThreshold:  20,
		HighThreshold: 80,
		PollInterval:  20 * time.Millisecond,
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestCheckThresholds(t *testing.T) {
	tests := []struct {
		name             string
		reading          power.Reading
		wantNotification string
		wantTitle        string
	}{
		{
			name:             "low boundary inclusive",
			reading:          power.Reading{Percent: 20, State: "Discharging"},
			wantNotification: types.NotificationLow,
			wantTitle:        "Battery Low",
		},
		{
			name:             "below low while charging",
			reading:          power.Reading{Percent: 19, Charging: true, State: "Charging"},
			wantNotification: types.NotificationLow,
			wantTitle:        "Battery Low",
		},
		{
			name:             "empty battery",
			reading:          power.Reading{Percent: 0, State: "Empty"},
			wantNotification: types.NotificationLow,
			wantTitle:        "Battery Low",
		},
		{
			name:             "high boundary inclusive",
			reading:          power.Reading{Percent: 80, Charging: true, State: "Charging"},
			wantNotification: types.NotificationHigh,
			wantTitle:        "Battery High",
		},
		{
			name:             "above high while discharging",
			reading:          power.Reading{Percent: 85, State: "Discharging"},
			wantNotification: types.NotificationHigh,
			wantTitle:        "Battery High",
		},
		{
			name:             "full battery",
			reading:          power.Reading{Percent: 100, Charging: true, State: "Full"},
			wantNotification: types.NotificationHigh,
			wantTitle:        "Battery High",
		},
		{
			name:             "middle of the range",
			reading:          power.Reading{Percent: 50, Charging: true, State: "Charging"},
			wantNotification: types.NotificationNone,
		},
		{
			name:             "just above low",
			reading:          power.Reading{Percent: 21, State: "Discharging"},
			wantNotification: types.NotificationNone,
		},
		{
			name:             "just below high",
			reading:          power.Reading{Percent: 79, Charging: true, State: "Charging"},
			wantNotification: types.NotificationNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeReader{reading: tt.reading}
			notifier := &fakeNotifier{}
			m, err := New(testConfig(), reader, notifier)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			result, err := m.Check()
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			if result.Notification != tt.wantNotification {
				t.Errorf("Notification = %q, want %q", result.Notification, tt.wantNotification)
			}
			if result.Reading != tt.reading {
				t.Errorf("Reading = %+v, want %+v", result.Reading, tt.reading)
			}

			wantDeliveries := 0
			if tt.wantNotification != types.NotificationNone {
				wantDeliveries = 1
			}
			if notifier.count() != wantDeliveries {
				t.Fatalf("notifier called %d times, want %d", notifier.count(), wantDeliveries)
			}
			if wantDeliveries == 1 {
				title, body := notifier.last()
				if title != tt.wantTitle {
					t.Errorf("title = %q, want %q", title, tt.wantTitle)
				}
				if !strings.Contains(body, fmt.Sprintf("%d%%", tt.reading.Percent)) {
					t.Errorf("body %q does not mention the charge percentage", body)
				}
			}
		})
	}
}

func TestCheckRepeatsWithoutDeduplication(t *testing.T) {
	reader := &fakeReader{reading: power.Reading{Percent: 15, State: "Discharging"}}
	notifier := &fakeNotifier{}
	m, err := New(testConfig(), reader, notifier)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		if _, err := m.Check(); err != nil {
			t.Fatalf("check %d failed: %v", i, err)
		}
	}

	// One notification per evaluated tick, even when nothing changed.
	if notifier.count() != 10 {
		t.Errorf("notifier called %d times, want 10", notifier.count())
	}
}

func TestCheckReadFailure(t *testing.T) {
	reader := &fakeReader{
		reading: power.Reading{Percent: 50, State: "Discharging"},
		failOn:  map[int]bool{1: true},
	}
	notifier := &fakeNotifier{}
	m, err := New(testConfig(), reader, notifier)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := m.Check(); err == nil {
		t.Fatalf("expected error from failed read")
	}
	if notifier.count() != 0 {
		t.Errorf("no notification may be delivered on a failed read, got %d", notifier.count())
	}

	// The next check proceeds normally.
	result, err := m.Check()
	if err != nil {
		t.Fatalf("check after failed read errored: %v", err)
	}
	if result.Reading.Percent != 50 {
		t.Errorf("Percent = %d, want 50", result.Reading.Percent)
	}
}

func TestCheckNotifierFailure(t *testing.T) {
	reader := &fakeReader{reading: power.Reading{Percent: 10, State: "Discharging"}}
	notifier := &fakeNotifier{err: errors.New("notification center unavailable")}
	m, err := New(testConfig(), reader, notifier)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Delivery is fire-and-forget, so the check itself must not fail.
	result, err := m.Check()
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.Notification != types.NotificationLow {
		t.Errorf("Notification = %q, want %q", result.Notification, types.NotificationLow)
	}
	if notifier.count() != 1 {
		t.Errorf("notifier called %d times, want 1", notifier.count())
	}
}

func TestNewValidation(t *testing.T) {
	reader := &fakeReader{}
	notifier := &fakeNotifier{}

	if _, err := New(testConfig(), nil, notifier); err == nil {
		t.Errorf("expected error for nil reader")
	}
	if _, err := New(testConfig(), reader, nil); err == nil {
		t.Errorf("expected error for nil notifier")
	}

	bad := testConfig()
	bad.LowThreshold = 90
	if _, err := New(bad, reader, notifier); err == nil {
		t.Errorf("expected error for low >= high")
	}
}

func TestRunChecksImmediatelyAndKeepsTicking(t *testing.T) {
	reader := &fakeReader{reading: power.Reading{Percent: 50, Charging: true, State: "Charging"}}
	notifier := &fakeNotifier{}
	m, err := New(testConfig(), reader, notifier)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	// The first check happens before the first ticker wait.
	waitFor(t, time.Second, func() bool { return reader.callCount() >= 3 })

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancellation")
	}

	if notifier.count() != 0 {
		t.Errorf("no notification expected at 50%%, got %d", notifier.count())
	}
}

func TestRunSurvivesReadFailure(t *testing.T) {
	reader := &fakeReader{
		reading: power.Reading{Percent: 15, State: "Discharging"},
		failOn:  map[int]bool{2: true},
	}
	notifier := &fakeNotifier{}
	m, err := New(testConfig(), reader, notifier)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	// The read at tick 2 fails; later ticks must still run.
	waitFor(t, time.Second, func() bool { return reader.callCount() >= 4 })

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancellation")
	}

	// Every successful check at 15% notifies; only the failed tick skips.
	if got, want := notifier.count(), reader.callCount()-1; got != want {
		t.Errorf("notifier called %d times, want %d", got, want)
	}
}
