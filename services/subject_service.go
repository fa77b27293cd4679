package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// SubjectService handles subject persistence and the subject delete cascade
type SubjectService struct {
	db *gorm.DB
}

// NewSubjectService creates a new subject service
func NewSubjectService(db *gorm.DB) *SubjectService {
	return &SubjectService{db: db}
}

func (s *SubjectService) Add(subject *model.Subject) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSubjectUnique(tx, subject, 0); err != nil {
			return err
		}
		return tx.Create(subject).Error
	})
}

func (s *SubjectService) Update(id uint, subject *model.Subject) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Subject
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "subject")
		}
		if err := ensureSubjectUnique(tx, subject, id); err != nil {
			return err
		}
		subject.ID = id
		subject.CreatedAt = existing.CreatedAt
		return tx.Save(subject).Error
	})
}

// Delete removes the subject after detaching it from every group and teacher
// and clearing the subject reference on its lectures and marks.
func (s *SubjectService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Subject
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "subject")
		}
		if err := detachSubject(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&model.Lecture{}).Where("subject_id = ?", id).
			Update("subject_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Mark{}).Where("subject_id = ?", id).
			Update("subject_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Subject{}, id).Error
	})
}

func (s *SubjectService) Find(id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := s.db.Preload("Groups").Preload("Teachers").
		First(&subject, id).Error; err != nil {
		return nil, notFoundOr(err, "subject")
	}
	return &subject, nil
}

func (s *SubjectService) FindAll() ([]model.Subject, error) {
	var subjects []model.Subject
	if err := s.db.Order("name").Find(&subjects).Error; err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, &NotFoundError{Entity: "subjects"}
	}
	return subjects, nil
}
