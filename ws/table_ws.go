package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/Om-Rawte/AIMenuAssistant/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TableHub pushes the table's change notifications out to connected
// browsers: confirmation writes while the group builds its order, order item
// status changes once the kitchen starts cooking.
type TableHub struct {
	clients    map[uint]map[*websocket.Conn]bool // tableID -> set of clients
	broadcast  chan services.TableEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex

	notifier *services.TableNotifier
	secret   string

	// one notifier subscription per table with at least one client
	subs map[uint]*services.Subscription
}

type subscription struct {
	conn    *websocket.Conn
	tableID uint
}

func NewTableHub(notifier *services.TableNotifier, secret string) *TableHub {
	return &TableHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan services.TableEvent, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		notifier:   notifier,
		secret:     secret,
		subs:       make(map[uint]*services.Subscription),
	}
}

// Run serves register/unregister/broadcast until the process exits.
func (h *TableHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.tableID] == nil {
				h.clients[sub.tableID] = make(map[*websocket.Conn]bool)
				tableID := sub.tableID
				h.subs[tableID] = h.notifier.Subscribe(tableID, func(ev services.TableEvent) {
					// relay into the hub loop; a publisher is never blocked,
					// so a full buffer sheds the event instead
					select {
					case h.broadcast <- ev:
					default:
					}
				})
			}
			h.clients[sub.tableID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.tableID][sub.conn]; ok {
				delete(h.clients[sub.tableID], sub.conn)
				sub.conn.Close()
			}
			if len(h.clients[sub.tableID]) == 0 {
				delete(h.clients, sub.tableID)
				if s := h.subs[sub.tableID]; s != nil {
					s.Unsubscribe()
					delete(h.subs, sub.tableID)
				}
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.TableID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.TableID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/tables/:id?token=<session token>
func (h *TableHub) HandleWebSocket(c *gin.Context) {
	tableID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || tableID64 == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid table id"})
		return
	}
	tableID := uint(tableID64)

	// browsers cannot set headers on websocket dials, so the token rides
	// the query string
	claims, err := utils.ParseSessionToken(c.Query("token"), h.secret)
	if err != nil || claims.TableID != tableID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn, tableID: tableID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the connection's read side alive and unregisters on close.
// Clients never send anything meaningful on this feed.
func (h *TableHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
