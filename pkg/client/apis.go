package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/battnag/battnag/pkg/power"
	"github.com/battnag/battnag/pkg/types"
)

// GetBatteryReading returns the daemon's current view of the battery.
func (c *Client) GetBatteryReading() (*power.Reading, error) {
	ret, err := c.Get("/battery")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get battery reading")
	}

	var reading power.Reading
	if err := json.Unmarshal([]byte(ret), &reading); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal battery reading")
	}

	return &reading, nil
}

// GetMonitorConfig returns the thresholds and poll interval the daemon runs
// with.
func (c *Client) GetMonitorConfig() (*types.MonitorConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf types.MonitorConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}

	return &conf, nil
}

// GetHostInfo returns a short summary of the machine the daemon runs on.
func (c *Client) GetHostInfo() (*types.HostInfo, error) {
	ret, err := c.Get("/host")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get host info")
	}

	var info types.HostInfo
	if err := json.Unmarshal([]byte(ret), &info); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal host info")
	}

	return &info, nil
}

// Check asks the daemon to run one threshold evaluation right now, outside
// the regular schedule. The notification, if one is due, is delivered before
// the daemon responds.
func (c *Client) Check() (*types.CheckResult, error) {
	ret, err := c.Post("/check", "")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to run check")
	}

	var result types.CheckResult
	if err := json.Unmarshal([]byte(ret), &result); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal check result")
	}

	return &result, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	// Strip the quotes around the JSON string. No need for a full JSON
	// decoder just for this.
	ret = ret[1 : len(ret)-1]
	return ret, nil
}
