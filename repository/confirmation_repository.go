package repository

import (
	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfirmationRepository struct{ DB *gorm.DB }

func NewConfirmationRepository(db *gorm.DB) *ConfirmationRepository {
	return &ConfirmationRepository{DB: db}
}

// Upsert writes a participant's confirmation, last-writer-wins on the
// (table_id, user_id) key. The stored row is returned with its ids and
// timestamps filled in.
func (r *ConfirmationRepository) Upsert(rec *entity.OrderConfirmation) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "table_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"cart", "confirmed", "updated_at",
		}),
	}).Create(rec).Error
}

// ListByTable returns every confirmation for a table, confirmed or not.
func (r *ConfirmationRepository) ListByTable(tableID uint) ([]entity.OrderConfirmation, error) {
	var recs []entity.OrderConfirmation
	err := r.DB.Where("table_id = ?", tableID).Order("created_at asc").Find(&recs).Error
	return recs, err
}

// Get returns a single participant's confirmation, or gorm.ErrRecordNotFound.
func (r *ConfirmationRepository) Get(tableID uint, userID string) (*entity.OrderConfirmation, error) {
	var rec entity.OrderConfirmation
	err := r.DB.Where("table_id = ? AND user_id = ?", tableID, userID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ConfirmationRepository) Delete(tableID uint, userID string) error {
	return r.DB.Where("table_id = ? AND user_id = ?", tableID, userID).
		Delete(&entity.OrderConfirmation{}).Error
}

// ClaimTable atomically removes and returns all confirmations for a table.
// Concurrent claimers race on the delete: whoever removes rows gets them
// back, everyone else gets an empty slice. This is the single-winner
// primitive that keeps two sessions from both submitting the same group
// order.
func (r *ConfirmationRepository) ClaimTable(tableID uint) ([]entity.OrderConfirmation, error) {
	var claimed []entity.OrderConfirmation
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var recs []entity.OrderConfirmation
		if err := tx.Where("table_id = ?", tableID).Order("created_at asc").Find(&recs).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		res := tx.Where("table_id = ?", tableID).Delete(&entity.OrderConfirmation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// another claimer got here first
			return nil
		}
		claimed = recs
		return nil
	})
	return claimed, err
}
