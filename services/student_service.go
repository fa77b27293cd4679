package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// StudentService handles student persistence, the person-level uniqueness
// checks, and the student delete cascade
type StudentService struct {
	db *gorm.DB
}

// NewStudentService creates a new student service
func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

func (s *StudentService) Add(student *model.Student) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensurePersonUnique(tx, student.Person, 0, 0); err != nil {
			return err
		}
		if err := ensureEmailUnique(tx, student.Person.Email, 0, 0); err != nil {
			return err
		}
		return tx.Create(student).Error
	})
}

func (s *StudentService) Update(id uint, student *model.Student) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Student
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "student")
		}
		if err := ensurePersonUnique(tx, student.Person, id, 0); err != nil {
			return err
		}
		if err := ensureEmailUnique(tx, student.Person.Email, id, 0); err != nil {
			return err
		}
		student.ID = id
		student.CreatedAt = existing.CreatedAt
		return tx.Save(student).Error
	})
}

// Delete removes the student after clearing the student reference on every
// owned mark. Marks survive student-less.
func (s *StudentService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Student
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "student")
		}
		if err := tx.Model(&model.Mark{}).Where("student_id = ?", id).
			Update("student_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Student{}, id).Error
	})
}

func (s *StudentService) Find(id uint) (*model.Student, error) {
	var student model.Student
	if err := s.db.Preload("Group").Preload("Marks").
		First(&student, id).Error; err != nil {
		return nil, notFoundOr(err, "student")
	}
	return &student, nil
}

func (s *StudentService) FindAll() ([]model.Student, error) {
	var students []model.Student
	if err := s.db.Order("last_name, first_name").Find(&students).Error; err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, &NotFoundError{Entity: "students"}
	}
	return students, nil
}

// FindByGroup lists the students belonging to one group.
func (s *StudentService) FindByGroup(groupID uint) ([]model.Student, error) {
	var students []model.Student
	if err := s.db.Where("group_id = ?", groupID).
		Order("last_name, first_name").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
