package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// DurationService handles teaching slot persistence and the slot delete
// cascade
type DurationService struct {
	db *gorm.DB
}

// NewDurationService creates a new duration service
func NewDurationService(db *gorm.DB) *DurationService {
	return &DurationService{db: db}
}

func (s *DurationService) Add(duration *model.Duration) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureDurationUnique(tx, duration, 0); err != nil {
			return err
		}
		return tx.Create(duration).Error
	})
}

func (s *DurationService) Update(id uint, duration *model.Duration) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Duration
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "duration")
		}
		if err := ensureDurationUnique(tx, duration, id); err != nil {
			return err
		}
		duration.ID = id
		duration.CreatedAt = existing.CreatedAt
		return tx.Save(duration).Error
	})
}

// Delete removes the slot after clearing the duration reference on every
// lecture that used it.
func (s *DurationService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Duration
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "duration")
		}
		if err := tx.Model(&model.Lecture{}).Where("duration_id = ?", id).
			Update("duration_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Duration{}, id).Error
	})
}

func (s *DurationService) Find(id uint) (*model.Duration, error) {
	var duration model.Duration
	if err := s.db.First(&duration, id).Error; err != nil {
		return nil, notFoundOr(err, "duration")
	}
	return &duration, nil
}

func (s *DurationService) FindAll() ([]model.Duration, error) {
	var durations []model.Duration
	if err := s.db.Order("start_time").Find(&durations).Error; err != nil {
		return nil, err
	}
	if len(durations) == 0 {
		return nil, &NotFoundError{Entity: "durations"}
	}
	return durations, nil
}
