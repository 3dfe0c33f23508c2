package repository

import (
	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	return items, err
}

func (r *OrderRepository) FindItem(orderID, itemID uint) (*entity.OrderItem, error) {
	var item entity.OrderItem
	err := r.DB.Where("order_id = ? AND id = ?", orderID, itemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderRepository) UpdateItemStatus(orderID, itemID uint, status string) error {
	return r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ? AND id = ?", orderID, itemID).
		Update("status", status).Error
}
