package services

import (
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// All many-to-many mutation goes through this file. Each relation is a join
// table rewritten in one pass: delete every row held by the owner, then
// insert the desired set. Run inside the caller's transaction, the rewrite
// detaches the owner from every previously linked row and reattaches it to
// the new set atomically, so the two sides of the relation can never
// disagree.

func replaceGroupSubjects(tx *gorm.DB, groupID uint, subjectIDs []uint) error {
	if err := tx.Where("group_id = ?", groupID).Delete(&model.GroupSubject{}).Error; err != nil {
		return err
	}
	if len(subjectIDs) == 0 {
		return nil
	}
	rows := make([]model.GroupSubject, 0, len(subjectIDs))
	for _, id := range subjectIDs {
		rows = append(rows, model.GroupSubject{GroupID: groupID, SubjectID: id})
	}
	return tx.Create(&rows).Error
}

func replaceGroupLectures(tx *gorm.DB, groupID uint, lectureIDs []uint) error {
	if err := tx.Where("group_id = ?", groupID).Delete(&model.GroupLecture{}).Error; err != nil {
		return err
	}
	if len(lectureIDs) == 0 {
		return nil
	}
	rows := make([]model.GroupLecture, 0, len(lectureIDs))
	for _, id := range lectureIDs {
		rows = append(rows, model.GroupLecture{GroupID: groupID, LectureID: id})
	}
	return tx.Create(&rows).Error
}

func replaceTeacherSubjects(tx *gorm.DB, teacherID uint, subjectIDs []uint) error {
	if err := tx.Where("teacher_id = ?", teacherID).Delete(&model.TeacherSubject{}).Error; err != nil {
		return err
	}
	if len(subjectIDs) == 0 {
		return nil
	}
	rows := make([]model.TeacherSubject, 0, len(subjectIDs))
	for _, id := range subjectIDs {
		rows = append(rows, model.TeacherSubject{TeacherID: teacherID, SubjectID: id})
	}
	return tx.Create(&rows).Error
}

func replaceLectureGroups(tx *gorm.DB, lectureID uint, groupIDs []uint) error {
	if err := tx.Where("lecture_id = ?", lectureID).Delete(&model.GroupLecture{}).Error; err != nil {
		return err
	}
	if len(groupIDs) == 0 {
		return nil
	}
	rows := make([]model.GroupLecture, 0, len(groupIDs))
	for _, id := range groupIDs {
		rows = append(rows, model.GroupLecture{GroupID: id, LectureID: lectureID})
	}
	return tx.Create(&rows).Error
}

// detachGroup removes a group from every subject and lecture it was linked
// to. Used by the group delete cascade.
func detachGroup(tx *gorm.DB, groupID uint) error {
	if err := tx.Where("group_id = ?", groupID).Delete(&model.GroupSubject{}).Error; err != nil {
		return err
	}
	return tx.Where("group_id = ?", groupID).Delete(&model.GroupLecture{}).Error
}

// detachSubject removes a subject from every group and teacher it was linked
// to. Used by the subject delete cascade.
func detachSubject(tx *gorm.DB, subjectID uint) error {
	if err := tx.Where("subject_id = ?", subjectID).Delete(&model.GroupSubject{}).Error; err != nil {
		return err
	}
	return tx.Where("subject_id = ?", subjectID).Delete(&model.TeacherSubject{}).Error
}

// detachTeacher removes a teacher from every subject it was linked to.
func detachTeacher(tx *gorm.DB, teacherID uint) error {
	return tx.Where("teacher_id = ?", teacherID).Delete(&model.TeacherSubject{}).Error
}

// detachLecture removes a lecture from every group it was linked to.
func detachLecture(tx *gorm.DB, lectureID uint) error {
	return tx.Where("lecture_id = ?", lectureID).Delete(&model.GroupLecture{}).Error
}
