package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// RoomService handles lecture room persistence and the room delete cascade
type RoomService struct {
	db *gorm.DB
}

// NewRoomService creates a new lecture room service
func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

func (s *RoomService) Add(room *model.LectureRoom) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureFieldUnique(tx, "lecture room", &model.LectureRoom{}, "number", room.Number, 0); err != nil {
			return err
		}
		return tx.Create(room).Error
	})
}

func (s *RoomService) Update(id uint, room *model.LectureRoom) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.LectureRoom
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "lecture room")
		}
		if err := ensureFieldUnique(tx, "lecture room", &model.LectureRoom{}, "number", room.Number, id); err != nil {
			return err
		}
		room.ID = id
		room.CreatedAt = existing.CreatedAt
		return tx.Save(room).Error
	})
}

// Delete removes the room after clearing the room reference on every lecture
// booked into it. The lectures survive room-less.
func (s *RoomService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.LectureRoom
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err, "lecture room")
		}
		if err := tx.Model(&model.Lecture{}).Where("room_id = ?", id).
			Update("room_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.LectureRoom{}, id).Error
	})
}

func (s *RoomService) Find(id uint) (*model.LectureRoom, error) {
	var room model.LectureRoom
	if err := s.db.Preload("Lectures").First(&room, id).Error; err != nil {
		return nil, notFoundOr(err, "lecture room")
	}
	return &room, nil
}

func (s *RoomService) FindAll() ([]model.LectureRoom, error) {
	var rooms []model.LectureRoom
	if err := s.db.Order("number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, &NotFoundError{Entity: "lecture rooms"}
	}
	return rooms, nil
}
