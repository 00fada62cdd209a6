package launchd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Uninstall unloads the launch agent and removes its plist.
func Uninstall() error {
	plistPath, err := AgentPath()
	if err != nil {
		return err
	}

	// nothing to do if the agent was never installed
	if _, err := os.Stat(plistPath); err != nil {
		if os.IsNotExist(err) {
			logrus.Infof("%s does not exist, nothing to uninstall", plistPath)
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", plistPath, err)
	}

	logrus.Infof("stopping battnag")

	// run launchctl unload ~/Library/LaunchAgents/com.battnag.battnag.plist
	// An unload failure is not fatal: the agent may simply not be loaded.
	if err := exec.Command(
		"/bin/launchctl",
		"unload",
		plistPath,
	).Run(); err != nil {
		logrus.Warnf("failed to unload %s: %v", plistPath, err)
	}

	logrus.Infof("removing launch agent")

	if err := os.Remove(plistPath); err != nil {
		return fmt.Errorf("failed to remove %s: %w", plistPath, err)
	}

	return nil
}
