package main

import (
	"github.com/spf13/cobra"

	"github.com/battnag/battnag/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

// getVersion returns the client version and the daemon version.
func getVersion() (string, string, error) {
	daemonVersion, err := apiClient.GetVersion()
	if err != nil {
		return version.Version, "", err
	}
	return version.Version, daemonVersion, nil
}
