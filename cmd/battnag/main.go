package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/battnag/battnag/pkg/client"
)

var (
	logLevel       = "info"
	unixSocketPath = "/tmp/battnag.sock"
)

var (
	gBasic        = "Basic:"
	gInstallation = "Installation:"
	commandGroups = []string{
		gBasic,
		gInstallation,
	}
)

// apiClient is created in PersistentPreRunE, after flags are parsed, so it
// honors --daemon-socket.
var apiClient *client.Client

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: battnag daemon is not running")
		fmt.Fprintln(os.Stderr, "Is the daemon running? Have you installed it with 'battnag install'?")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "You do not have permission to access the daemon socket. Check the ownership of "+unixSocketPath)
	}
}

func main() {
	// battnag spends nearly all of its life sleeping between checks.
	// It does not need many CPUs.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(2)
	}

	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battnag",
		Short: "battnag reminds you to plug and unplug your laptop at healthy charge levels",
		Long: `battnag watches your battery and sends a desktop notification when the charge drops to 20% (plug in) or climbs to 80% (unplug), to keep the battery in the range where it ages slowest.

The daemon checks the battery once a minute. It never controls charging; it only nags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			err := setupLogger()
			if err != nil {
				return err
			}

			apiClient = client.NewClient(unixSocketPath)

			if clientVersion, daemonVersion, err := getVersion(); err == nil {
				if daemonVersion != clientVersion {
					logrus.WithFields(logrus.Fields{
						"clientVersion": clientVersion,
						"daemonVersion": daemonVersion,
					}).Warn("Version mismatch between client and daemon. battnag may not work as expected. Reinstall the daemon with 'battnag uninstall' then 'battnag install' so both are the same version.")
				}
			} else {
				if errors.Is(err, client.ErrNotFound) {
					logrus.Error("battnag daemon is too old to report its version. Reinstall the daemon with 'battnag uninstall' then 'battnag install' so both are the same version.")
				}
			}

			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&unixSocketPath, "daemon-socket", unixSocketPath, "battnag daemon unix socket path")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewDaemonCommand(),
		NewVersionCommand(),
		NewStatusCommand(),
		NewCheckCommand(),
		NewInstallCommand(),
		NewUninstallCommand(),
	)

	return cmd
}
