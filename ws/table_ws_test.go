package ws

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/Om-Rawte/AIMenuAssistant/utils"
)

const testSecret = "test-secret"

func startTestHub(t *testing.T) (*services.TableNotifier, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	notifier := services.NewTableNotifier()
	hub := NewTableHub(notifier, testSecret)
	go hub.Run()

	r := gin.New()
	r.GET("/ws/tables/:id", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return notifier, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialTable(t *testing.T, wsURL string, tableID uint) *websocket.Conn {
	t.Helper()
	token, err := utils.GenerateSessionToken(tableID, "diner", "", testSecret, time.Hour)
	assert.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(
		fmt.Sprintf("%s/ws/tables/%d?token=%s", wsURL, tableID, token), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestRejectsTokenForAnotherTable(t *testing.T) {
	_, wsURL := startTestHub(t)

	token, err := utils.GenerateSessionToken(2, "diner", "", testSecret, time.Hour)
	assert.NoError(t, err)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL+"/ws/tables/1?token="+token, nil)
	assert.Error(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestBurstOfEventsReachesTheBrowser(t *testing.T) {
	notifier, wsURL := startTestHub(t)
	conn := dialTable(t, wsURL, 1)

	// wait for the hub to pick up the registration before publishing
	time.Sleep(100 * time.Millisecond)

	const burst = 10
	for i := 0; i < burst; i++ {
		notifier.Broadcast(services.TableEvent{Type: services.EventConfirmation, TableID: 1})
	}
	notifier.Broadcast(services.TableEvent{Type: services.EventOrderPlaced, TableID: 1, OrderID: 7})

	var got []services.TableEvent
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for len(got) < burst+1 {
		var ev services.TableEvent
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read after %d events: %v", len(got), err)
		}
		got = append(got, ev)
	}

	last := got[len(got)-1]
	assert.Equal(t, services.EventOrderPlaced, last.Type)
	assert.EqualValues(t, 7, last.OrderID)
	for _, ev := range got[:burst] {
		assert.Equal(t, services.EventConfirmation, ev.Type)
	}
}
