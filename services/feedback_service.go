package services

import (
	"errors"

	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"github.com/Om-Rawte/AIMenuAssistant/repository"
)

type FeedbackService struct {
	Repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

func (s *FeedbackService) Submit(tableID uint, rating int, comment string) (*entity.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	fb := &entity.Feedback{Rating: rating, Comment: comment, TableID: tableID}
	if err := s.Repo.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}
