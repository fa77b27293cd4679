package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// MarkService handles mark persistence and the duplicate grade gate
type MarkService struct {
	db *gorm.DB
}

// NewMarkService creates a new mark service
func NewMarkService(db *gorm.DB) *MarkService {
	return &MarkService{db: db}
}

func (s *MarkService) Add(mark *model.Mark) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureMarkUnique(tx, mark, 0); err != nil {
			return err
		}
		return tx.Create(mark).Error
	})
}

func (s *MarkService) Update(id uint, mark *model.Mark) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Mark
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "mark")
		}
		if err := ensureMarkUnique(tx, mark, id); err != nil {
			return err
		}
		mark.ID = id
		mark.CreatedAt = existing.CreatedAt
		return tx.Save(mark).Error
	})
}

func (s *MarkService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Mark
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "mark")
		}
		return tx.Delete(&model.Mark{}, id).Error
	})
}

func (s *MarkService) Find(id uint) (*model.Mark, error) {
	var mark model.Mark
	if err := s.db.Preload("Student").Preload("Subject").
		First(&mark, id).Error; err != nil {
		return nil, notFoundOr(err, "mark")
	}
	return &mark, nil
}

func (s *MarkService) FindAll() ([]model.Mark, error) {
	var marks []model.Mark
	if err := s.db.Find(&marks).Error; err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return nil, &NotFoundError{Entity: "marks"}
	}
	return marks, nil
}

// FindByStudent lists the marks owned by one student.
func (s *MarkService) FindByStudent(studentID uint) ([]model.Mark, error) {
	var marks []model.Mark
	if err := s.db.Where("student_id = ?", studentID).Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}
