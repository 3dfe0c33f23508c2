package services

import (
	"errors"
	"time"

	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"github.com/Om-Rawte/AIMenuAssistant/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Notifier *TableNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, notifier *TableNotifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, Notifier: notifier}
}

// ----- DTOs -----

type OrderItemStatusOut struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
	Progress int    `json:"progress"` // percent through the kitchen pipeline
}

type OrderStatusOut struct {
	OrderID uint                 `json:"orderId"`
	Status  string               `json:"status"`
	Items   []OrderItemStatusOut `json:"items"`
}

// PlaceGroupOrder turns the agreed carts into one order plus one pending
// tracking row per cart item, all in a single transaction.
func (s *OrderService) PlaceGroupOrder(tableID uint, items entity.CartItems) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, errors.New("no items to order")
	}

	var total int64
	for _, it := range items {
		total += it.Price
	}

	order := entity.Order{
		Status:  entity.OrderStatusPending,
		Notes:   "",
		Total:   total,
		TableID: tableID,
		Model:   gorm.Model{CreatedAt: time.Now()},
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		rows := make([]entity.OrderItem, 0, len(items))
		for _, it := range items {
			rows = append(rows, entity.OrderItem{
				Name:       it.Name,
				UnitPrice:  it.Price,
				Quantity:   1,
				Status:     entity.ItemStatusPending,
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
			})
		}
		return s.Repo.CreateItems(tx, rows)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Status reports each item's stage plus a percent progress for the tracker UI.
func (s *OrderService) Status(orderID uint) (*OrderStatusOut, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	out := &OrderStatusOut{OrderID: order.ID, Status: order.Status}
	for _, it := range order.Items {
		out.Items = append(out.Items, OrderItemStatusOut{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Status:   it.Status,
			Progress: itemProgress(it.Status),
		})
	}
	return out, nil
}

// UpdateItemStatus advances one item through the pipeline and notifies the
// table so open status pages refresh live.
func (s *OrderService) UpdateItemStatus(orderID, itemID uint, status string) error {
	if !validItemStatus(status) {
		return errors.New("unknown item status")
	}
	if _, err := s.Repo.FindItem(orderID, itemID); err != nil {
		return err
	}
	if err := s.Repo.UpdateItemStatus(orderID, itemID, status); err != nil {
		return err
	}

	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return err
	}
	s.Notifier.Broadcast(TableEvent{Type: EventOrderItem, TableID: order.TableID, OrderID: orderID})
	return nil
}

func validItemStatus(status string) bool {
	for _, s := range entity.ItemStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func itemProgress(status string) int {
	for i, s := range entity.ItemStatuses {
		if s == status {
			return (i + 1) * 100 / len(entity.ItemStatuses)
		}
	}
	return 0
}
