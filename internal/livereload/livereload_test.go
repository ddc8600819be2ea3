package livereload

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(hub)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	var hello Message
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read hello: %v", err)
	}
	if hello.Type != "hello" || hello.ClientID == "" {
		t.Fatalf("unexpected hello: %+v", hello)
	}
	return conn
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	a := dial(t, hub)
	b := dial(t, hub)

	if got := hub.Count(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}

	hub.Broadcast("cpi_bubble_map.json changed")

	for _, conn := range []*websocket.Conn{a, b} {
		var msg Message
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Type != "reload" || msg.Reason != "cpi_bubble_map.json changed" {
			t.Errorf("unexpected message: %+v", msg)
		}
	}
}

func TestHubBroadcast_StalledClient(t *testing.T) {
	hub := NewHub()
	dial(t, hub) // never read from again

	reason := strings.Repeat("x", 64<<10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			hub.Broadcast(reason)
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Broadcast blocked on a client that is not reading")
	}

	counted := make(chan int, 1)
	go func() { counted <- hub.Count() }()
	select {
	case n := <-counted:
		if n != 0 {
			t.Errorf("stalled client should have been disconnected, %d still registered", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Count blocked after broadcasting")
	}

	// New browsers can still connect and get their hello.
	dial(t, hub)
}

func TestHubForgetsClosedClients(t *testing.T) {
	hub := NewHub()
	conn := dial(t, hub)

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for hub.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client still registered after close: %d", hub.Count())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatcherBroadcastsOnChange(t *testing.T) {
	dir := t.TempDir()
	hub := NewHub()
	conn := dial(t, hub)

	w, err := NewWatcher(dir, hub)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "taxes.json"), []byte(`{"data":[],"layout":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var msg Message
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("expected reload message: %v", err)
	}
	if msg.Type != "reload" || !strings.Contains(msg.Reason, "taxes.json") {
		t.Errorf("unexpected message: %+v", msg)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestNewWatcher_MissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), NewHub()); err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}
