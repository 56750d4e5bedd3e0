package net

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	server "github.com/GodfreyDev/ChatGame"
	"github.com/GodfreyDev/ChatGame/internal/net/proto"
)

func newTestHub() *server.Hub {
	return server.NewHub(server.HubConfig{
		TickRate:         30,
		EnemyCount:       2,
		ItemCount:        3,
		ValidateMovement: true,
		Seed:             7,
	})
}

func TestHealthEndpoint(t *testing.T) {
	handler := NewHTTPHandler(newTestHub(), HTTPHandlerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 OK, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestDiagnosticsReportsWorldCounts(t *testing.T) {
	handler := NewHTTPHandler(newTestHub(), HTTPHandlerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/diagnostics", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 OK, got %d", resp.Code)
	}
	if contentType := resp.Header().Get("Content-Type"); contentType != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", contentType)
	}

	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode diagnostics payload: %v", err)
	}
	if status, _ := payload["status"].(string); status != "ok" {
		t.Fatalf("expected status ok, got %v", payload["status"])
	}

	world, ok := payload["world"].(map[string]any)
	if !ok {
		t.Fatalf("expected world object in diagnostics payload, got %T", payload["world"])
	}
	if enemies, _ := world["enemies"].(float64); int(enemies) != 2 {
		t.Fatalf("expected 2 enemies, got %v", world["enemies"])
	}
	if groundItems, _ := world["groundItems"].(float64); int(groundItems) != 3 {
		t.Fatalf("expected 3 ground items, got %v", world["groundItems"])
	}
	if tickRate, _ := world["tickRate"].(float64); int(tickRate) != 30 {
		t.Fatalf("expected tick rate 30, got %v", world["tickRate"])
	}
}

func TestWebsocketEndpointUpgrades(t *testing.T) {
	hub := newTestHub()
	srv := httptest.NewServer(NewHTTPHandler(hub, HTTPHandlerConfig{}))
	t.Cleanup(srv.Close)

	parsed, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("failed to parse test server url: %v", err)
	}
	parsed.Scheme = "ws"
	parsed.Path = "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(parsed.String(), nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read join frame: %v", err)
	}

	var frame map[string]any
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("failed to decode join frame: %v", err)
	}
	if frame["type"] != proto.TypeWorldInfo {
		t.Fatalf("expected worldInfo first, got %v", frame["type"])
	}
}
