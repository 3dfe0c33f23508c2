package repository

import (
	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct{ DB *gorm.DB }

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.DB.First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}
