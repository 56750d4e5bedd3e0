package ws

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

func newTestServer(t *testing.T, hub *server.Hub) *httptest.Server {
	t.Helper()

	handler := NewHandler(hub, nil)
	srv := httptest.NewServer(http.HandlerFunc(handler.Handle))
	t.Cleanup(srv.Close)
	return srv
}

func dialWebsocket(t *testing.T, baseURL string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(websocketURL(t, baseURL), nil)
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
	return conn
}

func websocketURL(t *testing.T, baseURL string) string {
	t.Helper()

	parsed, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("failed to parse test server url: %v", err)
	}
	parsed.Scheme = "ws"
	return parsed.String()
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read websocket frame: %v", err)
	}

	var frame map[string]any
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("failed to decode websocket frame: %v", err)
	}
	return frame
}

func frameType(frame map[string]any) string {
	msgType, _ := frame["type"].(string)
	return msgType
}

// drainJoin reads the four-frame join sequence and returns the assigned id.
func drainJoin(t *testing.T, conn *websocket.Conn) string {
	t.Helper()

	selfID := ""
	for _, want := range []string{proto.TypeWorldInfo, proto.TypeCurrentPlayers, proto.TypeCurrentItems, proto.TypeUpdateEnemies} {
		frame := readFrame(t, conn)
		if got := frameType(frame); got != want {
			t.Fatalf("expected join frame %q, got %q", want, got)
		}
		if want == proto.TypeCurrentPlayers {
			selfID, _ = frame["selfId"].(string)
		}
	}
	if selfID == "" {
		t.Fatalf("expected currentPlayers frame to carry the assigned id")
	}
	return selfID
}

func TestHandleJoinSendsWorldSnapshot(t *testing.T) {
	hub := newTestHub()
	srv := newTestServer(t, hub)

	conn := dialWebsocket(t, srv.URL)

	info := readFrame(t, conn)
	if got := frameType(info); got != proto.TypeWorldInfo {
		t.Fatalf("expected worldInfo first, got %q", got)
	}
	if width, _ := info["gridWidth"].(float64); int(width) != 200 {
		t.Fatalf("expected grid width 200, got %v", info["gridWidth"])
	}
	if height, _ := info["gridHeight"].(float64); int(height) != 200 {
		t.Fatalf("expected grid height 200, got %v", info["gridHeight"])
	}
	if size, _ := info["tileSize"].(float64); size != 64 {
		t.Fatalf("expected tile size 64, got %v", info["tileSize"])
	}
	if zones, _ := info["safeZones"].([]any); len(zones) != 2 {
		t.Fatalf("expected 2 safe zones, got %v", info["safeZones"])
	}

	players := readFrame(t, conn)
	if got := frameType(players); got != proto.TypeCurrentPlayers {
		t.Fatalf("expected currentPlayers second, got %q", got)
	}
	selfID, _ := players["selfId"].(string)
	if selfID == "" {
		t.Fatalf("expected a non-empty selfId")
	}
	roster, _ := players["players"].([]any)
	if len(roster) != 1 {
		t.Fatalf("expected the joining player in the roster, got %d entries", len(roster))
	}
	if first, _ := roster[0].(map[string]any); first["id"] != selfID {
		t.Fatalf("expected roster entry %q, got %v", selfID, roster[0])
	}

	groundItems := readFrame(t, conn)
	if got := frameType(groundItems); got != proto.TypeCurrentItems {
		t.Fatalf("expected currentItems third, got %q", got)
	}
	if list, _ := groundItems["items"].([]any); len(list) != 3 {
		t.Fatalf("expected 3 ground items, got %v", groundItems["items"])
	}

	enemies := readFrame(t, conn)
	if got := frameType(enemies); got != proto.TypeUpdateEnemies {
		t.Fatalf("expected updateEnemies fourth, got %q", got)
	}
	if list, _ := enemies["enemies"].([]any); len(list) != 2 {
		t.Fatalf("expected 2 enemies, got %v", enemies["enemies"])
	}

	if _, ok := hub.PlayerState(selfID); !ok {
		t.Fatalf("expected the joined player in the store")
	}
}

func TestHandleJoinAnnouncesArrivalToOthers(t *testing.T) {
	hub := newTestHub()
	srv := newTestServer(t, hub)

	firstConn := dialWebsocket(t, srv.URL)
	firstID := drainJoin(t, firstConn)

	secondConn := dialWebsocket(t, srv.URL)
	secondID := drainJoin(t, secondConn)

	arrival := readFrame(t, firstConn)
	if got := frameType(arrival); got != proto.TypeNewPlayer {
		t.Fatalf("expected newPlayer broadcast, got %q", got)
	}
	player, _ := arrival["player"].(map[string]any)
	if player == nil {
		t.Fatalf("expected a player payload, got %v", arrival)
	}
	if player["id"] != secondID || player["id"] == firstID {
		t.Fatalf("expected arrival of %q, got %v", secondID, player["id"])
	}
}

func TestHandleCloseRemovesPlayerAndBroadcasts(t *testing.T) {
	hub := newTestHub()
	srv := newTestServer(t, hub)

	firstConn := dialWebsocket(t, srv.URL)
	drainJoin(t, firstConn)

	secondConn := dialWebsocket(t, srv.URL)
	secondID := drainJoin(t, secondConn)
	readFrame(t, firstConn) // newPlayer

	secondConn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	secondConn.Close()

	departure := readFrame(t, firstConn)
	if got := frameType(departure); got != proto.TypePlayerDisconnected {
		t.Fatalf("expected playerDisconnected broadcast, got %q", got)
	}
	if departure["id"] != secondID {
		t.Fatalf("expected departure of %q, got %v", secondID, departure["id"])
	}

	if _, ok := hub.PlayerState(secondID); ok {
		t.Fatalf("expected the departed player removed from the store")
	}
}

func TestHandleDeathForcesDisconnect(t *testing.T) {
	hub := newTestHub()
	srv := newTestServer(t, hub)

	attackerConn := dialWebsocket(t, srv.URL)
	attackerID := drainJoin(t, attackerConn)

	victimConn := dialWebsocket(t, srv.URL)
	victimID := drainJoin(t, victimConn)
	readFrame(t, attackerConn) // newPlayer

	// Both spawn inside the protected spawn zone; move them onto open
	// ground and leave the victim one default hit from death.
	unlock := hub.Lock()
	attacker, _ := hub.World().Player(attackerID)
	attacker.X, attacker.Y = 800, 800
	victim, _ := hub.World().Player(victimID)
	victim.X, victim.Y = 860, 800
	victim.Health = 5
	unlock()

	hub.HandleAttack(attackerID, victimID, nil)

	death := readFrame(t, victimConn)
	if got := frameType(death); got != proto.TypePlayerKilled {
		t.Fatalf("expected playerKilled notice, got %q", got)
	}
	if death["id"] != victimID || death["by"] != attackerID {
		t.Fatalf("unexpected death notice %v", death)
	}

	victimConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := victimConn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected a normal close after the death notice, got %v", err)
	}

	if _, ok := hub.PlayerState(victimID); ok {
		t.Fatalf("expected the dead player removed from the store")
	}
}
