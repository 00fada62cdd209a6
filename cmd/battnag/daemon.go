package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/battnag/battnag/pkg/daemon"
	"github.com/battnag/battnag/pkg/version"
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "daemon",
		Hidden: true,
		Short:  "Run the battnag daemon in the foreground",
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("battnag daemon starting")
			return daemon.Run(unixSocketPath)
		},
	}
}
