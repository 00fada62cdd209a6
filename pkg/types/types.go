// Package types holds the wire structures shared between the daemon and
// client packages.
package types

import "github.com/battnag/battnag/pkg/power"

// Notification kinds reported in a CheckResult.
const (
	NotificationLow  = "low"
	NotificationHigh = "high"
	// NotificationNone means the reading was between the thresholds.
	NotificationNone = ""
)

// CheckResult is the outcome of one threshold evaluation.
type CheckResult struct {
	Reading      power.Reading `json:"reading"`
	Notification string        `json:"notification"`
}

// MonitorConfig is the read-only view of the monitor configuration served by
// the daemon. Thresholds and interval are compiled in; there is no API to
// change them.
type MonitorConfig struct {
	LowThreshold     int `json:"lowThreshold"`
	HighThreshold    int `json:"highThreshold"`
	PollIntervalSecs int `json:"pollIntervalSeconds"`
}

// HostInfo is a short summary of the machine the daemon runs on.
type HostInfo struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	KernelArch      string `json:"kernelArch"`
	UptimeSec       uint64 `json:"uptimeSeconds"`
}
