package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// DepartmentService handles department persistence and the department delete
// cascade
type DepartmentService struct {
	db *gorm.DB
}

// NewDepartmentService creates a new department service
func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{db: db}
}

func (s *DepartmentService) Add(department *model.Department) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureFieldUnique(tx, "department", &model.Department{}, "name", department.Name, 0); err != nil {
			return err
		}
		return tx.Create(department).Error
	})
}

func (s *DepartmentService) Update(id uint, department *model.Department) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Department
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "department")
		}
		if err := ensureFieldUnique(tx, "department", &model.Department{}, "name", department.Name, id); err != nil {
			return err
		}
		department.ID = id
		department.CreatedAt = existing.CreatedAt
		return tx.Save(department).Error
	})
}

// Delete removes the department after clearing the department reference on
// every owned employee and group. Employees and groups survive
// department-less.
func (s *DepartmentService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Department
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "department")
		}
		if err := tx.Model(&model.Employee{}).Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Group{}).Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Department{}, id).Error
	})
}

func (s *DepartmentService) Find(id uint) (*model.Department, error) {
	var department model.Department
	if err := s.db.Preload("Faculty").Preload("Groups").Preload("Employees").
		First(&department, id).Error; err != nil {
		return nil, notFoundOr(err, "department")
	}
	return &department, nil
}

func (s *DepartmentService) FindAll() ([]model.Department, error) {
	var departments []model.Department
	if err := s.db.Order("name").Find(&departments).Error; err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		return nil, &NotFoundError{Entity: "departments"}
	}
	return departments, nil
}

// FindByFaculty lists the departments belonging to one faculty.
func (s *DepartmentService) FindByFaculty(facultyID uint) ([]model.Department, error) {
	var departments []model.Department
	if err := s.db.Where("faculty_id = ?", facultyID).Order("name").
		Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}
