// Package monitor implements the battery threshold check loop.
package monitor

import (
	"context"
	"reflect"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/battnag/battnag/pkg/config"
	"github.com/battnag/battnag/pkg/metrics"
	"github.com/battnag/battnag/pkg/notify"
	"github.com/battnag/battnag/pkg/power"
	"github.com/battnag/battnag/pkg/types"
)

// tickRecordCount bounds the recorder to roughly the last hour of checks at
// the default interval.
const tickRecordCount = 60

// Monitor runs the check-and-notify cycle: read the battery, compare against
// the thresholds, deliver at most one notification. Each check stands alone;
// the monitor keeps no reading from one tick to the next, so a battery that
// stays below the low threshold is nagged about on every tick.
type Monitor struct {
	cfg      config.Config
	reader   power.Reader
	notifier notify.Notifier

	// checkMu prevents parallel evaluations, so API-forced checks and
	// timer-driven checks never interleave.
	checkMu  sync.Mutex
	recorder *TickRecorder

	lastStatus    tickStatus
	lastPrintTime time.Time
}

// New builds a Monitor. The collaborators are required so tests can
// substitute fakes; there is no ambient access to OS calls.
func New(cfg config.Config, reader power.Reader, notifier notify.Notifier) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid monitor config")
	}
	if reader == nil {
		return nil, pkgerrors.New("battery reader is required")
	}
	if notifier == nil {
		return nil, pkgerrors.New("notifier is required")
	}

	return &Monitor{
		cfg:      cfg,
		reader:   reader,
		notifier: notifier,
		recorder: NewTickRecorder(tickRecordCount, cfg.PollInterval),
	}, nil
}

// Run checks the battery once immediately and then once per poll interval
// until ctx is cancelled. It returns ctx.Err() on cancellation and never
// returns on its own: a failed read or a failed notification only skips
// ahead to the next tick.
func (m *Monitor) Run(ctx context.Context) error {
	logrus.WithFields(m.cfg.LogrusFields()).Info("battery monitor starting")

	m.tick()

	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("battery monitor stopping: %v", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			m.tick()
		}
	}
}

func (m *Monitor) tick() {
	m.checkMissedTicks()
	m.recorder.AddRecordNow()

	if _, err := m.Check(); err != nil {
		// Transient by contract. The next tick retries naturally.
		logrus.Warnf("battery read failed, skipping this tick: %v", err)
	}
}

// Check performs one threshold evaluation: read the battery, notify if the
// charge is at or beyond a threshold. It is exported so the daemon API can
// force a check without waiting for the next tick. Charging state never
// gates delivery, only the percentage does.
func (m *Monitor) Check() (types.CheckResult, error) {
	m.checkMu.Lock()
	defer m.checkMu.Unlock()

	metrics.ChecksTotal.Inc()

	reading, err := m.reader.Read()
	if err != nil {
		metrics.CheckFailures.Inc()
		return types.CheckResult{}, pkgerrors.Wrapf(err, "failed to read battery")
	}

	metrics.BatteryPercent.Set(float64(reading.Percent))
	if reading.Charging {
		metrics.BatteryCharging.Set(1)
	} else {
		metrics.BatteryCharging.Set(0)
	}

	result := types.CheckResult{Reading: reading}

	switch {
	case reading.Percent <= m.cfg.LowThreshold:
		result.Notification = types.NotificationLow
		logrus.WithFields(logrus.Fields{
			"percent": reading.Percent,
			"low":     m.cfg.LowThreshold,
		}).Info("Battery charge is at or below the low threshold, asking to plug in")
		title, body := notify.LowBattery(reading.Percent)
		m.deliver(types.NotificationLow, title, body)
	case reading.Percent >= m.cfg.HighThreshold:
		result.Notification = types.NotificationHigh
		logrus.WithFields(logrus.Fields{
			"percent": reading.Percent,
			"high":    m.cfg.HighThreshold,
		}).Info("Battery charge is at or above the high threshold, asking to unplug")
		title, body := notify.HighBattery(reading.Percent)
		m.deliver(types.NotificationHigh, title, body)
	}

	m.printStatus(reading, result.Notification)

	return result, nil
}

// deliver sends one notification, fire-and-forget. Failures are logged and
// counted, never retried.
func (m *Monitor) deliver(kind, title, body string) {
	metrics.NotificationsTotal.WithLabelValues(kind).Inc()

	if err := m.notifier.Notify(title, body); err != nil {
		metrics.NotificationFailures.Inc()
		logrus.Errorf("failed to deliver %s battery notification: %v", kind, err)
	}
}

// checkMissedTicks logs when recent checks are missing, which usually means
// the system slept through them. It is informational only; the interval
// never adapts.
func (m *Monitor) checkMissedTicks() bool {
	window := 3*m.cfg.PollInterval + 20*time.Second // add 20s to be sure
	tickCount := m.recorder.GetRecordsIn(window)
	expectedTickCount := int(window / m.cfg.PollInterval)
	minTickCount := expectedTickCount - 1

	if tickCount < minTickCount {
		logrus.WithFields(logrus.Fields{
			"tickCount":         tickCount,
			"expectedTickCount": expectedTickCount,
			"minTickCount":      minTickCount,
			"recentTicks":       formatRelativeTimes(m.recorder.GetLastRecords(window)),
		}).Infof("Possibly missed battery checks, the system may have been asleep")
		return true
	}
	return false
}

type tickStatus struct {
	percent      int
	charging     bool
	state        string
	notification string
}

func (m *Monitor) printStatus(reading power.Reading, notification string) {
	currentStatus := tickStatus{
		percent:      reading.Percent,
		charging:     reading.Charging,
		state:        reading.State,
		notification: notification,
	}

	fields := logrus.Fields{
		"percent":  reading.Percent,
		"charging": reading.Charging,
		"state":    reading.State,
		"low":      m.cfg.LowThreshold,
		"high":     m.cfg.HighThreshold,
	}

	defer func() { m.lastPrintTime = time.Now() }()

	// Skip printing if the last print was less than an interval+1s ago and
	// nothing changed.
	if time.Since(m.lastPrintTime) < m.cfg.PollInterval+time.Second && reflect.DeepEqual(m.lastStatus, currentStatus) {
		logrus.WithFields(fields).Trace("battery check status")
		return
	}

	logrus.WithFields(fields).Debug("battery check status")

	m.lastStatus = currentStatus
}
