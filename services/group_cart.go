package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"github.com/Om-Rawte/AIMenuAssistant/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group ordering states, as seen by one participant's session.
type GroupState string

const (
	StateIdle       GroupState = "idle"       // no confirmations, nothing agreed yet
	StateWaiting    GroupState = "waiting"    // somebody still has an unconfirmed non-empty cart
	StateReady      GroupState = "ready"      // everyone with items has confirmed
	StateSubmitting GroupState = "submitting" // this session is placing the order
	StateClosed     GroupState = "closed"     // order placed, confirmations cleared
)

type GroupStatus struct {
	State     GroupState `json:"state"`
	Confirmed int        `json:"confirmed"` // participants with items who pressed ready
	Total     int        `json:"total"`     // participants with items
	Message   string     `json:"message"`
	OrderID   uint       `json:"orderId,omitempty"`
}

// GroupCartService owns one GroupSession per (table, participant) pair and
// the shared confirmation store they synchronize through.
type GroupCartService struct {
	Confirmations *repository.ConfirmationRepository
	Menu          *repository.MenuRepository
	Orders        *OrderService
	Notifier      *TableNotifier

	mu       sync.Mutex
	sessions map[string]*GroupSession
}

func NewGroupCartService(
	confirmations *repository.ConfirmationRepository,
	menu *repository.MenuRepository,
	orders *OrderService,
	notifier *TableNotifier,
) *GroupCartService {
	return &GroupCartService{
		Confirmations: confirmations,
		Menu:          menu,
		Orders:        orders,
		Notifier:      notifier,
		sessions:      make(map[string]*GroupSession),
	}
}

func sessionKey(tableID uint, userID string) string {
	return fmt.Sprintf("%d/%s", tableID, userID)
}

// Join creates (or recreates) the participant's session. Any previous
// subscription for the pair is torn down first, so a reload or re-scan never
// leaves a stale callback firing alongside the new one. The local cart is
// restored from the participant's own confirmation record, which is the
// source of truth anyway.
func (s *GroupCartService) Join(tableID uint, userID string) (*GroupSession, error) {
	s.mu.Lock()
	if old, ok := s.sessions[sessionKey(tableID, userID)]; ok {
		old.teardown()
		delete(s.sessions, sessionKey(tableID, userID))
	}
	s.mu.Unlock()

	sess := &GroupSession{
		TableID: tableID,
		UserID:  userID,
		svc:     s,
		status:  GroupStatus{State: StateIdle},
	}

	rec, err := s.Confirmations.Get(tableID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if rec != nil {
		sess.cart = rec.Cart
	}

	sess.sub = s.Notifier.Subscribe(tableID, sess.onChange)

	// initial snapshot for the status display; submission only ever runs off
	// a change notification
	if recs, err := s.Confirmations.ListByTable(tableID); err == nil {
		sess.evaluate(recs, false)
	}

	s.mu.Lock()
	s.sessions[sessionKey(tableID, userID)] = sess
	s.mu.Unlock()
	return sess, nil
}

// Session returns the existing session for the pair, joining if needed.
func (s *GroupCartService) Session(tableID uint, userID string) (*GroupSession, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionKey(tableID, userID)]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}
	return s.Join(tableID, userID)
}

func (s *GroupCartService) Leave(tableID uint, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionKey(tableID, userID)]; ok {
		sess.teardown()
		delete(s.sessions, sessionKey(tableID, userID))
	}
}

// publish upserts a confirmation and fires the table's change notification,
// exactly like a backing store with realtime channels would.
func (s *GroupCartService) publish(rec *entity.OrderConfirmation) error {
	if err := s.Confirmations.Upsert(rec); err != nil {
		return err
	}
	s.Notifier.Broadcast(TableEvent{Type: EventConfirmation, TableID: rec.TableID})
	return nil
}

// GroupSession is one participant's view of the table's group order: the
// local cart, the per-client consensus guard and the last computed status.
type GroupSession struct {
	TableID uint
	UserID  string

	svc *GroupCartService
	sub *Subscription

	mu        sync.Mutex
	cart      entity.CartItems
	consensus bool // set once this session has seen the table go ready
	orderID   uint
	status    GroupStatus

	// notification re-entrancy guard: notifications arriving while one is
	// being handled collapse into a single follow-up pass
	handling bool
	pending  bool
}

func (g *GroupSession) teardown() {
	g.sub.Unsubscribe()
}

// AddItem appends one menu item to the participant's cart and publishes the
// cart with confirmed=false, reopening consensus for the whole table. An
// unknown or unavailable menu id is a no-op.
func (g *GroupSession) AddItem(menuItemID uint) error {
	item, err := g.svc.Menu.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("group cart: dropping unknown menu item %d", menuItemID)
			return nil
		}
		return err
	}
	if !item.Available {
		log.Printf("group cart: dropping unavailable menu item %d", menuItemID)
		return nil
	}

	g.mu.Lock()
	g.cart = append(g.cart, entity.CartItem{
		CartID:     uuid.NewString(),
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
	})
	g.mu.Unlock()

	return g.publish(false)
}

// Ready marks this participant as agreeing to the current group order.
func (g *GroupSession) Ready() error {
	return g.publish(true)
}

func (g *GroupSession) Cart() entity.CartItems {
	g.mu.Lock()
	defer g.mu.Unlock()
	cart := make(entity.CartItems, len(g.cart))
	copy(cart, g.cart)
	return cart
}

func (g *GroupSession) Status() GroupStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

func (g *GroupSession) publish(confirmed bool) error {
	g.mu.Lock()
	cart := make(entity.CartItems, len(g.cart))
	copy(cart, g.cart)
	g.mu.Unlock()

	return g.svc.publish(&entity.OrderConfirmation{
		TableID:   g.TableID,
		UserID:    g.UserID,
		Cart:      cart,
		Confirmed: confirmed,
	})
}

// onChange is the subscription callback. An order-placed event settles the
// session on the shared order directly. Every confirmation notification
// triggers a full re-fetch of the table's confirmations; notifications that
// land while a pass is running fold into one extra pass.
func (g *GroupSession) onChange(ev TableEvent) {
	if ev.Type == EventOrderPlaced {
		g.mu.Lock()
		g.orderID = ev.OrderID
		g.cart = nil
		g.consensus = false
		g.status = GroupStatus{State: StateClosed, OrderID: ev.OrderID}
		g.mu.Unlock()
		return
	}
	if ev.Type != EventConfirmation {
		return
	}
	g.mu.Lock()
	if g.handling {
		g.pending = true
		g.mu.Unlock()
		return
	}
	g.handling = true
	g.mu.Unlock()

	for {
		g.refresh()
		g.mu.Lock()
		if !g.pending {
			g.handling = false
			g.mu.Unlock()
			return
		}
		g.pending = false
		g.mu.Unlock()
	}
}

func (g *GroupSession) refresh() {
	recs, err := g.svc.Confirmations.ListByTable(g.TableID)
	if err != nil {
		// keep the last good status visible; the next notification
		// re-fetches everything anyway
		log.Printf("group cart: fetch confirmations for table %d: %v", g.TableID, err)
		return
	}
	g.evaluate(recs, true)
}

// evaluate recomputes the readiness predicate over the fetched records.
// Only records with a non-empty cart count; the table is ready when all of
// them are confirmed.
func (g *GroupSession) evaluate(recs []entity.OrderConfirmation, allowSubmit bool) {
	withItems := make([]entity.OrderConfirmation, 0, len(recs))
	confirmed := 0
	for _, r := range recs {
		if len(r.Cart) == 0 {
			continue
		}
		withItems = append(withItems, r)
		if r.Confirmed {
			confirmed++
		}
	}
	total := len(withItems)

	submit := false
	g.mu.Lock()
	switch {
	case total == 0:
		if g.orderID != 0 {
			g.status = GroupStatus{State: StateClosed, OrderID: g.orderID}
		} else {
			g.status = GroupStatus{State: StateIdle}
		}
		g.consensus = false
	case confirmed == total:
		g.status = GroupStatus{
			State:     StateReady,
			Confirmed: confirmed,
			Total:     total,
			Message:   fmt.Sprintf("All %d people are ready!", total),
		}
		if allowSubmit && !g.consensus {
			g.consensus = true
			g.status.State = StateSubmitting
			submit = true
		}
	default:
		g.status = GroupStatus{
			State:     StateWaiting,
			Confirmed: confirmed,
			Total:     total,
			Message:   fmt.Sprintf("%d of %d people are ready.", confirmed, total),
		}
		g.consensus = false
	}
	g.mu.Unlock()

	if submit {
		g.submit()
	}
}

// submit races for the table's confirmations and, on winning the claim,
// places the combined order. Losing the claim is not an error: the winner's
// cleanup notification settles this session on the next pass.
func (g *GroupSession) submit() {
	claimed, err := g.svc.Confirmations.ClaimTable(g.TableID)
	if err != nil {
		log.Printf("group cart: claim table %d: %v", g.TableID, err)
		g.mu.Lock()
		g.consensus = false
		g.mu.Unlock()
		return
	}
	if len(claimed) == 0 {
		return
	}

	// records are gone; tell every other session before placing the order
	g.svc.Notifier.Broadcast(TableEvent{Type: EventConfirmation, TableID: g.TableID})

	var all entity.CartItems
	for _, rec := range claimed {
		all = append(all, rec.Cart...)
	}

	order, err := g.svc.Orders.PlaceGroupOrder(g.TableID, all)
	if err != nil {
		log.Printf("group cart: place order for table %d: %v", g.TableID, err)
		g.mu.Lock()
		g.consensus = false
		g.mu.Unlock()
		return
	}

	g.mu.Lock()
	g.orderID = order.ID
	g.cart = nil
	g.status = GroupStatus{State: StateClosed, OrderID: order.ID}
	g.mu.Unlock()

	// the claim winner is the only session that saw the order being created;
	// everyone else at the table learns the id from this event
	g.svc.Notifier.Broadcast(TableEvent{
		Type:    EventOrderPlaced,
		TableID: g.TableID,
		OrderID: order.ID,
	})
}
