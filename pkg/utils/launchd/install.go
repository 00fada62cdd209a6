// Package launchd installs the battnag daemon as a per-user launchd agent.
// An agent, not a system-wide daemon, because desktop notifications need the
// user's login session.
package launchd

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:embed com.battnag.battnag.plist
var plistTemplate string

const plistName = "com.battnag.battnag.plist"

// AgentPath returns the path of the installed plist under the current user's
// LaunchAgents directory.
func AgentPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get the home directory: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents", plistName), nil
}

func logPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get the home directory: %w", err)
	}
	return filepath.Join(home, "Library", "Logs", "battnag.log"), nil
}

func renderPlist(exePath, socketPath, logFile string) string {
	// Longer placeholders first, so the binary path does not clobber them.
	tmpl := strings.ReplaceAll(plistTemplate, "/path/to/battnag.sock", socketPath)
	tmpl = strings.ReplaceAll(tmpl, "/path/to/battnag.log", logFile)
	return strings.ReplaceAll(tmpl, "/path/to/battnag", exePath)
}

// Install writes the launch agent plist and loads it, so the daemon starts
// now and on every login.
func Install(unixSocketPath string) error {
	// Get the path to the current executable
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get the path to the current executable: %w", err)
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return fmt.Errorf("failed to get the absolute path to the current executable: %w", err)
	}

	err = os.Chmod(exePath, 0755)
	if err != nil {
		return fmt.Errorf("failed to chmod the current executable to 0755: %w", err)
	}

	logrus.Infof("current executable path: %s", exePath)

	plistPath, err := AgentPath()
	if err != nil {
		return err
	}
	logFile, err := logPath()
	if err != nil {
		return err
	}

	tmpl := renderPlist(exePath, unixSocketPath, logFile)

	logrus.Infof("writing launch agent to %s", plistPath)

	// mkdir -p
	err = os.MkdirAll(filepath.Dir(plistPath), 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(plistPath), err)
	}

	// refuse to overwrite an existing installation
	_, err = os.Stat(plistPath)
	if err == nil {
		logrus.Errorf("%s already exists", plistPath)
		return fmt.Errorf("%s already exists. Did you forget to uninstall battnag before installing it again? Please uninstall it first, by running 'battnag uninstall'. If battnag is already gone, remove the file with 'rm %s'", plistPath, plistPath)
	}

	err = os.WriteFile(plistPath, []byte(tmpl), 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", plistPath, err)
	}

	logrus.Infof("starting battnag")

	// run launchctl load ~/Library/LaunchAgents/com.battnag.battnag.plist
	err = exec.Command(
		"/bin/launchctl",
		"load",
		plistPath,
	).Run()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", plistPath, err)
	}

	return nil
}
