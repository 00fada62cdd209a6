package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/sirupsen/logrus"

	"github.com/battnag/battnag/pkg/types"
	"github.com/battnag/battnag/pkg/version"
)

func getBattery(c *gin.Context) {
	reading, err := reader.Read()
	if err != nil {
		logrus.Errorf("getBattery failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, reading)
}

func getConfig(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, types.MonitorConfig{
		LowThreshold:     conf.LowThreshold,
		HighThreshold:    conf.HighThreshold,
		PollIntervalSecs: int(conf.PollInterval.Seconds()),
	})
}

func getHost(c *gin.Context) {
	info, err := hostInfo()
	if err != nil {
		logrus.Errorf("getHost failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, info)
}

// postCheck runs one threshold evaluation outside the regular schedule. The
// notification, if any, is delivered before the response is written.
func postCheck(c *gin.Context) {
	result, err := mon.Check()
	if err != nil {
		logrus.Errorf("postCheck failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, result)
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

func hostInfo() (types.HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		return types.HostInfo{}, pkgerrors.Wrapf(err, "failed to read host info")
	}

	return types.HostInfo{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelArch:      info.KernelArch,
		UptimeSec:       info.Uptime,
	}, nil
}
