package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// LectureService handles lecture persistence and the booking conflict gate.
// A lecture is a booking of (date, subject, teacher, room, duration); the
// gate rejects a second booking of the same slot.
type LectureService struct {
	db *gorm.DB
}

// NewLectureService creates a new lecture service
func NewLectureService(db *gorm.DB) *LectureService {
	return &LectureService{db: db}
}

func (s *LectureService) Add(lecture *model.Lecture, groupIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureLectureUnique(tx, lecture, 0); err != nil {
			return err
		}
		if err := tx.Create(lecture).Error; err != nil {
			return err
		}
		return replaceLectureGroups(tx, lecture.ID, groupIDs)
	})
}

// Update saves the lecture under its existing id. Re-saving a lecture with
// its own unchanged tuple is a no-op and passes the gate; only a tuple
// already taken by some other lecture is rejected.
func (s *LectureService) Update(id uint, lecture *model.Lecture, groupIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Lecture
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "lecture")
		}
		if err := ensureLectureUnique(tx, lecture, id); err != nil {
			return err
		}
		lecture.ID = id
		lecture.CreatedAt = existing.CreatedAt
		if err := tx.Save(lecture).Error; err != nil {
			return err
		}
		return replaceLectureGroups(tx, id, groupIDs)
	})
}

// Delete removes the lecture after detaching it from every group.
func (s *LectureService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Lecture
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "lecture")
		}
		if err := detachLecture(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.Lecture{}, id).Error
	})
}

func (s *LectureService) Find(id uint) (*model.Lecture, error) {
	var lecture model.Lecture
	if err := s.db.Preload("Subject").Preload("Teacher").Preload("Room").
		Preload("Duration").Preload("Groups").
		First(&lecture, id).Error; err != nil {
		return nil, notFoundOr(err, "lecture")
	}
	return &lecture, nil
}

func (s *LectureService) FindAll() ([]model.Lecture, error) {
	var lectures []model.Lecture
	if err := s.db.Order("date").Find(&lectures).Error; err != nil {
		return nil, err
	}
	if len(lectures) == 0 {
		return nil, &NotFoundError{Entity: "lectures"}
	}
	return lectures, nil
}

// FindByRoom lists the lectures booked into one room.
func (s *LectureService) FindByRoom(roomID uint) ([]model.Lecture, error) {
	var lectures []model.Lecture
	if err := s.db.Where("room_id = ?", roomID).Order("date").
		Find(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}

// FindBySubject lists the lectures owned by one subject.
func (s *LectureService) FindBySubject(subjectID uint) ([]model.Lecture, error) {
	var lectures []model.Lecture
	if err := s.db.Where("subject_id = ?", subjectID).Order("date").
		Find(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}

// FindByTeacher lists the lectures taught by one teacher.
func (s *LectureService) FindByTeacher(teacherID uint) ([]model.Lecture, error) {
	var lectures []model.Lecture
	if err := s.db.Where("teacher_id = ?", teacherID).Order("date").
		Find(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}
