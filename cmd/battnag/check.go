package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/battnag/battnag/pkg/types"
)

func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		GroupID: gBasic,
		Short:   "Check the battery now, without waiting for the next poll",
		Long: `Ask the daemon to read the battery and evaluate the thresholds right now.

If the charge is at or below the low threshold, or at or above the high threshold, the usual desktop notification is sent immediately.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := apiClient.Check()
			if err != nil {
				return fmt.Errorf("failed to check battery: %w", err)
			}

			cmd.Printf("Battery is at %s.\n", bold("%d%%", result.Reading.Percent))

			switch result.Notification {
			case types.NotificationLow:
				cmd.Println("Sent a " + bold("Battery Low") + " notification. Please plug in.")
			case types.NotificationHigh:
				cmd.Println("Sent a " + bold("Battery High") + " notification. Consider unplugging.")
			default:
				cmd.Println("Charge is between the thresholds. No notification sent.")
			}

			return nil
		},
	}
}
