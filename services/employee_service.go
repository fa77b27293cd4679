package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// EmployeeService handles employee persistence, the person-level uniqueness
// checks, and the employee delete cascade
type EmployeeService struct {
	db *gorm.DB
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

func (s *EmployeeService) Add(employee *model.Employee) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensurePersonUnique(tx, employee.Person, 0, 0); err != nil {
			return err
		}
		if err := ensureEmailUnique(tx, employee.Person.Email, 0, 0); err != nil {
			return err
		}
		return tx.Create(employee).Error
	})
}

func (s *EmployeeService) Update(id uint, employee *model.Employee) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Employee
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "employee")
		}
		if err := ensurePersonUnique(tx, employee.Person, 0, id); err != nil {
			return err
		}
		if err := ensureEmailUnique(tx, employee.Person.Email, 0, id); err != nil {
			return err
		}
		employee.ID = id
		employee.CreatedAt = existing.CreatedAt
		return tx.Save(employee).Error
	})
}

// Delete removes the employee after clearing the employee reference on the
// linked teacher, if any. The teacher row itself is left in place with a
// null employee; see DESIGN.md for why this asymmetry is kept.
func (s *EmployeeService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Employee
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "employee")
		}
		if err := tx.Model(&model.Teacher{}).Where("employee_id = ?", id).
			Update("employee_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Employee{}, id).Error
	})
}

func (s *EmployeeService) Find(id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := s.db.Preload("Department").Preload("Teacher").
		First(&employee, id).Error; err != nil {
		return nil, notFoundOr(err, "employee")
	}
	return &employee, nil
}

func (s *EmployeeService) FindAll() ([]model.Employee, error) {
	var employees []model.Employee
	if err := s.db.Order("last_name, first_name").Find(&employees).Error; err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, &NotFoundError{Entity: "employees"}
	}
	return employees, nil
}

// FindByDepartment lists the employees belonging to one department.
func (s *EmployeeService) FindByDepartment(departmentID uint) ([]model.Employee, error) {
	var employees []model.Employee
	if err := s.db.Where("department_id = ?", departmentID).
		Order("last_name, first_name").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
