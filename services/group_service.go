package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// GroupService handles group persistence, the rewrite of the group's subject
// and lecture associations on update, and the group delete cascade
type GroupService struct {
	db *gorm.DB
}

// NewGroupService creates a new group service
func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

func (s *GroupService) Add(group *model.Group, subjectIDs, lectureIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureFieldUnique(tx, "group", &model.Group{}, "name", group.Name, 0); err != nil {
			return err
		}
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		if err := replaceGroupSubjects(tx, group.ID, subjectIDs); err != nil {
			return err
		}
		return replaceGroupLectures(tx, group.ID, lectureIDs)
	})
}

// Update replaces the stored group and rewrites both of its association sets
// to the ones carried by the update. The old links are dropped and the new
// set attached in the same transaction, so the subject and lecture sides
// never see a half-moved group.
func (s *GroupService) Update(id uint, group *model.Group, subjectIDs, lectureIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Group
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "group")
		}
		if err := ensureFieldUnique(tx, "group", &model.Group{}, "name", group.Name, id); err != nil {
			return err
		}
		group.ID = id
		group.CreatedAt = existing.CreatedAt
		if err := tx.Save(group).Error; err != nil {
			return err
		}
		if err := replaceGroupSubjects(tx, id, subjectIDs); err != nil {
			return err
		}
		return replaceGroupLectures(tx, id, lectureIDs)
	})
}

// Delete removes the group after clearing the group reference on its
// students and detaching it from every subject and lecture. Students,
// subjects, and lectures all survive.
func (s *GroupService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Group
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "group")
		}
		if err := tx.Model(&model.Student{}).Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		if err := detachGroup(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, id).Error
	})
}

func (s *GroupService) Find(id uint) (*model.Group, error) {
	var group model.Group
	if err := s.db.Preload("Department").Preload("Students").
		Preload("Subjects").Preload("Lectures").
		First(&group, id).Error; err != nil {
		return nil, notFoundOr(err, "group")
	}
	return &group, nil
}

func (s *GroupService) FindAll() ([]model.Group, error) {
	var groups []model.Group
	if err := s.db.Order("name").Find(&groups).Error; err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, &NotFoundError{Entity: "groups"}
	}
	return groups, nil
}

// FindByDepartment lists the groups belonging to one department.
func (s *GroupService) FindByDepartment(departmentID uint) ([]model.Group, error) {
	var groups []model.Group
	if err := s.db.Where("department_id = ?", departmentID).Order("name").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
