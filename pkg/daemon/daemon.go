package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/battnag/battnag/pkg/config"
	"github.com/battnag/battnag/pkg/monitor"
	"github.com/battnag/battnag/pkg/notify"
	"github.com/battnag/battnag/pkg/power"
)

var (
	mon    *monitor.Monitor
	conf   config.Config
	reader power.Reader
)

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/battery", getBattery)
	router.GET("/config", getConfig)
	router.GET("/host", getHost)
	router.GET("/version", getVersion)
	router.POST("/check", postCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func Run(unixSocketPath string) error {
	router := setupRoutes()

	conf = config.New()
	logrus.WithFields(conf.LogrusFields()).Infof("config loaded")

	reader = power.NewSystemReader()

	var err error
	mon, err = monitor.New(conf, reader, notify.NewDesktop())
	if err != nil {
		logrus.Fatalf("failed to set up the battery monitor during startup: %v", err)
	}

	logHostInfo()

	srv := &http.Server{
		Handler: router,
	}

	// Remove a stale socket left over from an unclean shutdown.
	if err := os.Remove(unixSocketPath); err != nil && !os.IsNotExist(err) {
		logrus.Fatal(err)
	}

	// Create the socket to listen on:
	l, err := net.Listen("unix", unixSocketPath)
	if err != nil {
		logrus.Fatal(err)
	}

	// Serve HTTP on unix socket
	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	go func() {
		logrus.Debugln("monitor loop starts")

		if err := mon.Run(monitorCtx); err != nil && !errors.Is(err, context.Canceled) {
			logrus.Errorf("monitor loop exited unexpectedly: %v", err)
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	// Wait for a SIGINT or SIGTERM:
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = srv.Shutdown(ctx)
	if err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	logrus.Info("stopping battery monitor")
	stopMonitor()

	logrus.Info("exiting")
	return nil
}

func logHostInfo() {
	info, err := hostInfo()
	if err != nil {
		logrus.Warnf("failed to read host info: %v", err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"hostname":        info.Hostname,
		"platform":        info.Platform,
		"platformVersion": info.PlatformVersion,
		"kernelArch":      info.KernelArch,
	}).Info("host info")
}
