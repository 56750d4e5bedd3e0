package net

import (
	"encoding/json"
	nethttp "net/http"
	"time"

	server "github.com/GodfreyDev/ChatGame"
	"github.com/GodfreyDev/ChatGame/internal/net/ws"
	"github.com/GodfreyDev/ChatGame/internal/telemetry"
)

// HTTPHandlerConfig tunes the HTTP surface around the websocket endpoint.
type HTTPHandlerConfig struct {
	Logger telemetry.Logger
}

// NewHTTPHandler exposes the websocket endpoint plus the health and
// diagnostics probes.
func NewHTTPHandler(hub *server.Hub, cfg HTTPHandlerConfig) nethttp.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.NopLogger()
	}

	wsHandler := ws.NewHandler(hub, logger)

	mux := nethttp.NewServeMux()

	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		payload := struct {
			Status     string                     `json:"status"`
			ServerTime int64                      `json:"serverTime"`
			World      server.DiagnosticsSnapshot `json:"world"`
		}{
			Status:     "ok",
			ServerTime: time.Now().UnixMilli(),
			World:      hub.Diagnostics(),
		}

		data, err := json.Marshal(payload)
		if err != nil {
			nethttp.Error(w, "failed to encode", nethttp.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	mux.HandleFunc("/ws", wsHandler.Handle)

	return mux
}
