package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// FacultyService handles faculty persistence and the faculty delete cascade
type FacultyService struct {
	db *gorm.DB
}

// NewFacultyService creates a new faculty service
func NewFacultyService(db *gorm.DB) *FacultyService {
	return &FacultyService{db: db}
}

func (s *FacultyService) Add(faculty *model.Faculty) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureFieldUnique(tx, "faculty", &model.Faculty{}, "name", faculty.Name, 0); err != nil {
			return err
		}
		return tx.Create(faculty).Error
	})
}

func (s *FacultyService) Update(id uint, faculty *model.Faculty) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Faculty
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "faculty")
		}
		if err := ensureFieldUnique(tx, "faculty", &model.Faculty{}, "name", faculty.Name, id); err != nil {
			return err
		}
		faculty.ID = id
		faculty.CreatedAt = existing.CreatedAt
		return tx.Save(faculty).Error
	})
}

// Delete removes the faculty after detaching its departments, which survive
// faculty-less.
func (s *FacultyService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Faculty
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "faculty")
		}
		if err := tx.Model(&model.Department{}).Where("faculty_id = ?", id).
			Update("faculty_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Faculty{}, id).Error
	})
}

func (s *FacultyService) Find(id uint) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := s.db.Preload("Departments").First(&faculty, id).Error; err != nil {
		return nil, notFoundOr(err, "faculty")
	}
	return &faculty, nil
}

func (s *FacultyService) FindAll() ([]model.Faculty, error) {
	var faculties []model.Faculty
	if err := s.db.Order("name").Find(&faculties).Error; err != nil {
		return nil, err
	}
	if len(faculties) == 0 {
		return nil, &NotFoundError{Entity: "faculties"}
	}
	return faculties, nil
}
