package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kataras/golog"
	"github.com/smokimura/deskshot/internal/api"
	"github.com/smokimura/deskshot/internal/capture"
	"github.com/smokimura/deskshot/internal/config"
	"github.com/smokimura/deskshot/internal/display"
	"github.com/smokimura/deskshot/internal/encoders"
)

const defaultConfigPath = "deskshot.json"

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to the agent configuration file")
	listen := flag.String("http.listen", "", "Listen address, overrides the config file")
	logLevel := flag.String("log.level", "", "Log level, overrides the config file")
	flag.Parse()

	golog.SetTimeFormat("2006/01/02 15:04:05")
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load(*configPath)
	if err != nil {
		golog.Fatalf("Can't load config: %v", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	golog.SetLevel(cfg.Log.Level)
	if cfg.Log.Path != "" {
		logFile, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			golog.Fatalf("Can't open log file: %v", err)
		}
		defer logFile.Close()
		golog.SetOutput(io.MultiWriter(os.Stdout, logFile))
	}
	format, err := encoders.ParseFormat(cfg.Capture.Format)
	if err != nil {
		golog.Fatalf("Bad capture format in config: %v", err)
	}

	svc, err := capture.NewDesktopCaptureService(display.NewProvider())
	if err != nil {
		golog.Fatalf("Can't init capture service: %v", err)
	}
	for _, screen := range svc.Screens() {
		golog.Infof("Screen %d: %.0fx%.0f at (%.0f, %.0f)",
			screen.Index,
			screen.Bounds.Width(), screen.Bounds.Height(),
			screen.Bounds.Min.X, screen.Bounds.Min.Y)
	}

	enc := encoders.NewEncoderService(encoders.Options{JPEGQuality: cfg.Capture.JPEGQuality})

	srv := &http.Server{Addr: cfg.Listen, Handler: api.MakeHandler(svc, enc, format)}
	go func() {
		golog.Infof("Capture agent listening on %s", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			golog.Fatalf("Failed to bind address: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	golog.Warn("Agent is shutting down ...")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		golog.Fatalf("Server shutdown: %v", err)
	}
	golog.Info("Agent exited")
}
