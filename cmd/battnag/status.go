package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/battnag/battnag/pkg/power"
	"github.com/battnag/battnag/pkg/types"
)

type statusData struct {
	reading       *power.Reading
	config        *types.MonitorConfig
	host          *types.HostInfo
	daemonVersion string
}

// fetchStatusData gathers all data required for the status command from the daemon.
func fetchStatusData() (*statusData, error) {
	reading, err := apiClient.GetBatteryReading()
	if err != nil {
		return nil, fmt.Errorf("failed to get battery reading: %w", err)
	}

	conf, err := apiClient.GetMonitorConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	host, err := apiClient.GetHostInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}

	daemonVersion, err := apiClient.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to get daemon version: %w", err)
	}

	return &statusData{
		reading:       reading,
		config:        conf,
		host:          host,
		daemonVersion: daemonVersion,
	}, nil
}

func NewStatusCommand() *cobra.Command {
	jsonOutput := false

	cmd := &cobra.Command{
		Use:     "status",
		GroupID: gBasic,
		Short:   "Get the current battery status and monitor configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Get various info first.
			data, err := fetchStatusData()
			if err != nil {
				return err
			}

			if jsonOutput {
				return printStatusJSON(cmd, data)
			}

			// Battery.
			cmd.Println(bold("Battery status:"))
			cmd.Printf("  Current charge: %s\n", bold("%d%%", data.reading.Percent))
			cmd.Printf("  State: %s\n", formatState(data.reading.State))
			cmd.Printf("  On AC power: %s\n", bool2Text(data.reading.Charging))
			cmd.Printf("  Zone: %s\n", formatZone(data.reading.Percent, data.config))

			cmd.Println()

			// Config.
			cmd.Println(bold("Monitor configuration:"))
			cmd.Printf("  Low threshold: %s\n", bold("%d%%", data.config.LowThreshold))
			cmd.Printf("  High threshold: %s\n", bold("%d%%", data.config.HighThreshold))
			cmd.Printf("  Poll interval: %s\n", bold("%s", time.Duration(data.config.PollIntervalSecs)*time.Second))

			cmd.Println()

			// Daemon.
			cmd.Println(bold("Daemon:"))
			cmd.Printf("  Version: %s\n", data.daemonVersion)
			cmd.Printf("  Host: %s (%s %s, %s)\n", data.host.Hostname, data.host.Platform, data.host.PlatformVersion, data.host.KernelArch)
			cmd.Printf("  Host uptime: %s\n", time.Duration(data.host.UptimeSec)*time.Second)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output status as JSON")

	return cmd
}

func formatState(state string) string {
	switch state {
	case "Charging", "Full":
		return color.GreenString(state)
	case "Discharging", "Empty":
		return color.RedString(state)
	default:
		return state
	}
}

func formatZone(percent int, conf *types.MonitorConfig) string {
	switch zoneString(percent, conf) {
	case "low":
		return color.RedString("low") + fmt.Sprintf(" (at or below %d%%, please plug in)", conf.LowThreshold)
	case "high":
		return color.YellowString("high") + fmt.Sprintf(" (at or above %d%%, consider unplugging)", conf.HighThreshold)
	default:
		return color.GreenString("ok") + fmt.Sprintf(" (between %d%% and %d%%)", conf.LowThreshold, conf.HighThreshold)
	}
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
