package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-widget/config"
	v1 "weather-widget/internal/controllers/http/v1"
	"weather-widget/internal/repositories"
	"weather-widget/internal/services/weather"
	"weather-widget/internal/widget"
	"weather-widget/pkg/httpserver"
	"weather-widget/pkg/logger"
	"weather-widget/pkg/observe"
)

// @title Weather Widget API
// @version 1.0.0
// @description Current weather lookups and server-held search widgets backed by OpenWeatherMap.

// @contact.name Weather Widget Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Stateless current weather lookups
// @tag.name Widgets
// @tag.description Server-held weather widgets
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Observe.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.IsDevelopment(), cnf.Observe.SentryDSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.App.Name, cnf.App.Env, cnf.Log.Level, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	shutdownTracing, err := observe.InitTracing(cnf.App.Name, cnf.App.Version, cnf.Observe.ZipkinURL)
	if err != nil {
		l.Fatal("cannot init tracing", map[string]any{"err": err.Error()})
	}

	features, mapper, err := widget.FeaturesFromConfig(cnf.Widget)
	if err != nil {
		l.Fatal("invalid widget configuration", map[string]any{"err": err.Error()})
	}

	if cnf.RequireAPIKey() && cnf.Weather.APIKey == "" {
		l.Warning("weather.api_key is empty, every lookup will fail", map[string]any{"variant": cnf.Widget.Variant})
	}

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cnf.Server.IdleTimeout) * time.Second,
		Logger:       l,
	})

	repo := repositories.InitWeatherRepository(cnf, l)

	service := weather.NewWeatherService(repo, l)

	registry := widget.NewRegistry(features, service, mapper, l, widget.Limits{
		IdleTTL:    time.Duration(cnf.Widget.IdleTTL) * time.Second,
		MaxWidgets: cnf.Widget.MaxWidgets,
	})

	v1.NewRouter(
		app,
		service,
		registry,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"variant": cnf.Widget.Variant,
		"repo":    repo.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		registry.Close()
		if err := shutdownTracing(shutdownCtx); err != nil {
			l.Warning("tracing shutdown failed", map[string]any{"err": err.Error()})
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
