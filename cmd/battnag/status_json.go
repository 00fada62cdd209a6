package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/battnag/battnag/pkg/types"
)

type statusJSON struct {
	Battery       statusBatteryJSON `json:"battery"`
	Configuration statusConfigJSON  `json:"configuration"`
	Daemon        statusDaemonJSON  `json:"daemon"`
}

type statusBatteryJSON struct {
	CurrentChargePercent int    `json:"currentChargePercent"`
	State                string `json:"state"`
	OnACPower            bool   `json:"onAcPower"`
	Zone                 string `json:"zone"`
}

type statusConfigJSON struct {
	LowThresholdPercent  int `json:"lowThresholdPercent"`
	HighThresholdPercent int `json:"highThresholdPercent"`
	PollIntervalSeconds  int `json:"pollIntervalSeconds"`
}

type statusDaemonJSON struct {
	Version           string `json:"version"`
	Hostname          string `json:"hostname"`
	Platform          string `json:"platform"`
	PlatformVersion   string `json:"platformVersion"`
	KernelArch        string `json:"kernelArch"`
	HostUptimeSeconds uint64 `json:"hostUptimeSeconds"`
}

// zoneString names where the charge sits relative to the thresholds.
func zoneString(percent int, conf *types.MonitorConfig) string {
	switch {
	case percent <= conf.LowThreshold:
		return "low"
	case percent >= conf.HighThreshold:
		return "high"
	default:
		return "ok"
	}
}

func printStatusJSON(cmd *cobra.Command, data *statusData) error {
	out := statusJSON{
		Battery: statusBatteryJSON{
			CurrentChargePercent: data.reading.Percent,
			State:                data.reading.State,
			OnACPower:            data.reading.Charging,
			Zone:                 zoneString(data.reading.Percent, data.config),
		},
		Configuration: statusConfigJSON{
			LowThresholdPercent:  data.config.LowThreshold,
			HighThresholdPercent: data.config.HighThreshold,
			PollIntervalSeconds:  data.config.PollIntervalSecs,
		},
		Daemon: statusDaemonJSON{
			Version:           data.daemonVersion,
			Hostname:          data.host.Hostname,
			Platform:          data.host.Platform,
			PlatformVersion:   data.host.PlatformVersion,
			KernelArch:        data.host.KernelArch,
			HostUptimeSeconds: data.host.UptimeSec,
		},
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
