package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// TeacherService handles teacher persistence, the rewrite of the teacher's
// subject associations on update, and the teacher delete cascade
type TeacherService struct {
	db *gorm.DB
}

// NewTeacherService creates a new teacher service
func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{db: db}
}

func (s *TeacherService) Add(teacher *model.Teacher, subjectIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if teacher.EmployeeID != nil {
			if err := ensureFieldUnique(tx, "teacher", &model.Teacher{}, "employee_id", *teacher.EmployeeID, 0); err != nil {
				return err
			}
		}
		if err := tx.Create(teacher).Error; err != nil {
			return err
		}
		return replaceTeacherSubjects(tx, teacher.ID, subjectIDs)
	})
}

// Update replaces the stored teacher and rewrites its subject set to the one
// carried by the update, detaching the teacher from every subject no longer
// listed and attaching it to the new ones in the same transaction.
func (s *TeacherService) Update(id uint, teacher *model.Teacher, subjectIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Teacher
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "teacher")
		}
		if teacher.EmployeeID != nil {
			if err := ensureFieldUnique(tx, "teacher", &model.Teacher{}, "employee_id", *teacher.EmployeeID, id); err != nil {
				return err
			}
		}
		teacher.ID = id
		teacher.CreatedAt = existing.CreatedAt
		if err := tx.Save(teacher).Error; err != nil {
			return err
		}
		return replaceTeacherSubjects(tx, id, subjectIDs)
	})
}

// Delete removes the teacher after clearing the teacher reference on its
// lectures and detaching it from every subject.
func (s *TeacherService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Teacher
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "teacher")
		}
		if err := tx.Model(&model.Lecture{}).Where("teacher_id = ?", id).
			Update("teacher_id", nil).Error; err != nil {
			return err
		}
		if err := detachTeacher(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.Teacher{}, id).Error
	})
}

func (s *TeacherService) Find(id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := s.db.Preload("Employee").Preload("Subjects").
		First(&teacher, id).Error; err != nil {
		return nil, notFoundOr(err, "teacher")
	}
	return &teacher, nil
}

func (s *TeacherService) FindAll() ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := s.db.Preload("Employee").Find(&teachers).Error; err != nil {
		return nil, err
	}
	if len(teachers) == 0 {
		return nil, &NotFoundError{Entity: "teachers"}
	}
	return teachers, nil
}

// FindBySubject lists the teachers associated with one subject.
func (s *TeacherService) FindBySubject(subjectID uint) ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := s.db.
		Joins("JOIN teacher_subjects ON teacher_subjects.teacher_id = teachers.id").
		Where("teacher_subjects.subject_id = ?", subjectID).
		Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}
