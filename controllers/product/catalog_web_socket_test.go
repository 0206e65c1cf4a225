package productcontroller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nelsonbong/Tien-Hiong-Backend/models"
)

func dialCatalogWS(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws/catalog"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	return conn
}

func wsClientCount() int {
	wsMu.Lock()
	defer wsMu.Unlock()
	return len(wsClients)
}

func TestCatalogBroadcastReachesSubscriber(t *testing.T) {
	r, _ := setupTest(t)
	r.GET("/ws/catalog", CatalogWebSocketHandler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialCatalogWS(t, srv.URL)
	defer conn.Close()

	addProduct(t, r, "Oolong Classic", "tea")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}

	var evt catalogEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		t.Fatalf("decode broadcast: %v", err)
	}
	if evt.Event != "added" || evt.Product.Name != "Oolong Classic" {
		t.Fatalf("unexpected event: %s", data)
	}
}

func TestCatalogBroadcastDropsDeadClients(t *testing.T) {
	r, _ := setupTest(t)
	r.GET("/ws/catalog", CatalogWebSocketHandler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialCatalogWS(t, srv.URL)

	deadline := time.Now().Add(3 * time.Second)
	for wsClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Kill the transport without a close handshake, like a crashed dashboard
	conn.UnderlyingConn().Close()

	// Broadcasts must keep completing and eventually prune the dead client
	for wsClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("dead client still registered")
		}
		broadcastCatalogEvent("added", models.Product{ID: 1, Name: "Oolong Classic"})
		time.Sleep(10 * time.Millisecond)
	}
}
