package services

import (
	"sync"
)

// Event types carried on the table feed.
const (
	EventConfirmation = "confirmation" // a confirmation row was written or removed
	EventOrderPlaced  = "order_placed" // the table's group order was submitted
	EventOrderItem    = "order_item"   // an order item changed status
)

// TableEvent is a change notification scoped to one table. It carries no
// record data on purpose: subscribers re-fetch the full state themselves,
// which sidesteps cross-writer ordering problems entirely.
type TableEvent struct {
	Type    string `json:"type"`
	TableID uint   `json:"tableId"`
	OrderID uint   `json:"orderId,omitempty"`
}

// TableNotifier fans table events out to in-process subscribers: every
// consensus session listening on its table, plus the websocket hub that
// relays events to browsers. Delivery is synchronous in registration order.
type TableNotifier struct {
	mu   sync.Mutex
	next int
	subs map[uint]map[int]func(TableEvent) // tableID -> subscriber id -> callback
}

func NewTableNotifier() *TableNotifier {
	return &TableNotifier{subs: make(map[uint]map[int]func(TableEvent))}
}

// Subscription is the handle returned by Subscribe. Unsubscribe is
// idempotent and must be called when the listener re-enters the flow, so a
// stale callback never fires twice for the same client.
type Subscription struct {
	notifier *TableNotifier
	tableID  uint
	id       int
}

func (s *Subscription) Unsubscribe() {
	if s == nil || s.notifier == nil {
		return
	}
	s.notifier.mu.Lock()
	defer s.notifier.mu.Unlock()
	if m, ok := s.notifier.subs[s.tableID]; ok {
		delete(m, s.id)
		if len(m) == 0 {
			delete(s.notifier.subs, s.tableID)
		}
	}
	s.notifier = nil
}

func (n *TableNotifier) Subscribe(tableID uint, fn func(TableEvent)) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	if n.subs[tableID] == nil {
		n.subs[tableID] = make(map[int]func(TableEvent))
	}
	n.subs[tableID][n.next] = fn
	return &Subscription{notifier: n, tableID: tableID, id: n.next}
}

func (n *TableNotifier) Broadcast(ev TableEvent) {
	n.mu.Lock()
	fns := make([]func(TableEvent), 0, len(n.subs[ev.TableID]))
	for _, fn := range n.subs[ev.TableID] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
