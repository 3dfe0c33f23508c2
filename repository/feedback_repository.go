package repository

import (
	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"gorm.io/gorm"
)

type FeedbackRepository struct{ DB *gorm.DB }

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(fb *entity.Feedback) error {
	return r.DB.Create(fb).Error
}
