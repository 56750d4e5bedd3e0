package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	server "github.com/GodfreyDev/ChatGame"
	servernet "github.com/GodfreyDev/ChatGame/internal/net"
	"github.com/GodfreyDev/ChatGame/internal/telemetry"
	"github.com/GodfreyDev/ChatGame/logging"
	loggingSinks "github.com/GodfreyDev/ChatGame/logging/sinks"
)

// Run wires the configuration, logging router, hub, and HTTP surface
// together and serves until the listener fails or ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig("config.yaml")
	if err != nil {
		return err
	}

	appLogger := telemetry.NewLogger()
	logger := telemetry.WrapLogrus(appLogger)

	var sinks []logging.NamedSink
	if cfg.Logging.HasSink("console") {
		sinks = append(sinks, logging.NamedSink{Name: "console", Sink: loggingSinks.NewConsole(os.Stdout)})
	}
	if cfg.Logging.HasSink("json") {
		out := os.Stdout
		if cfg.Logging.JSONFilePath != "" {
			file, err := os.OpenFile(cfg.Logging.JSONFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open event log %s: %w", cfg.Logging.JSONFilePath, err)
			}
			defer file.Close()
			out = file
		}
		sinks = append(sinks, logging.NamedSink{Name: "json", Sink: loggingSinks.NewJSON(out, cfg.Logging.JSONFlushEvery)})
	}

	router := logging.NewRouter(cfg.Logging, logging.SystemClock{}, sinks)
	defer func() {
		if cerr := router.Close(ctx); cerr != nil {
			logger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	hubCfg := cfg.HubConfig()
	hubCfg.Logger = logger
	hubCfg.Publisher = router

	hub := server.NewHub(hubCfg)
	stop := make(chan struct{})
	go hub.RunSimulation(stop)
	defer close(stop)

	handler := servernet.NewHTTPHandler(hub, servernet.HTTPHandlerConfig{Logger: logger})

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	logger.Printf("server listening on %s", srv.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownErr := srv.Shutdown(context.Background())
		<-errCh
		return shutdownErr
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}
}
