package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/battnag/battnag/pkg/utils/launchd"
)

// NewInstallCommand .
func NewInstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   "Install battnag (per-user)",
		GroupID: gInstallation,
		Long: `Install the battnag daemon to launchd as a per-user launch agent.

This makes battnag run in the background and start automatically when you log in. No root required: notifications have to come from your own login session anyway.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := launchd.Install(unixSocketPath)
			if err != nil {
				return fmt.Errorf("failed to install daemon: %v", err)
			}

			logrus.Infof("installation succeeded")

			exePath, _ := os.Executable()

			cmd.Printf("`launchd' will use current binary (%s) at startup so please make sure you do not move this binary. Once this binary is moved or deleted, you will need to run ``battnag install'' again.\n", exePath)

			return nil
		},
	}
}

// NewUninstallCommand .
func NewUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   "Uninstall battnag (per-user)",
		GroupID: gInstallation,
		Long: `Uninstall the battnag daemon from launchd.

This stops battnag and removes it from your launch agents. The binary itself is left in place.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := launchd.Uninstall()
			if err != nil {
				return fmt.Errorf("failed to uninstall daemon: %v", err)
			}

			fmt.Println("successfully uninstalled")

			return nil
		},
	}
}
