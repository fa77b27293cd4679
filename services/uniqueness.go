package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// The uniqueness gate is the last line of defense before a write: each caller
// supplies the query matching rows equivalent to the candidate under that
// entity's natural key, and the gate fails with AlreadyExists when any other
// row matches. On updates selfID excludes the row being rewritten, so saving
// a row with its own unchanged natural key never conflicts with itself.

// ensureUnique counts rows equivalent to the candidate and rejects the write
// when any row other than selfID matches. selfID 0 means a create.
func ensureUnique(tx *gorm.DB, entity string, match *gorm.DB, selfID uint) error {
	if selfID != 0 {
		match = match.Where("id <> ?", selfID)
	}
	var n int64
	if err := match.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return &AlreadyExistsError{Entity: entity}
	}
	return nil
}

// whereNullable appends a null-safe equality condition: cleared references
// must match other cleared references, not be skipped.
func whereNullable(q *gorm.DB, column string, id *uint) *gorm.DB {
	if id == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", *id)
}

// ensureLectureUnique guards the (date, subject, teacher, room, duration)
// booking tuple.
func ensureLectureUnique(tx *gorm.DB, l *model.Lecture, selfID uint) error {
	q := tx.Model(&model.Lecture{}).Where("date = ?", time.Time(l.Date))
	q = whereNullable(q, "subject_id", l.SubjectID)
	q = whereNullable(q, "teacher_id", l.TeacherID)
	q = whereNullable(q, "room_id", l.RoomID)
	q = whereNullable(q, "duration_id", l.DurationID)
	return ensureUnique(tx, "lecture", q, selfID)
}

// ensureMarkUnique guards the (value, student, subject) grade tuple.
func ensureMarkUnique(tx *gorm.DB, m *model.Mark, selfID uint) error {
	q := tx.Model(&model.Mark{}).Where("value = ?", m.Value)
	q = whereNullable(q, "student_id", m.StudentID)
	q = whereNullable(q, "subject_id", m.SubjectID)
	return ensureUnique(tx, "mark", q, selfID)
}

// ensureSubjectUnique guards the (name, start date, end date) identity.
func ensureSubjectUnique(tx *gorm.DB, s *model.Subject, selfID uint) error {
	q := tx.Model(&model.Subject{}).
		Where("name = ? AND start_date = ? AND end_date = ?",
			s.Name, time.Time(s.StartDate), time.Time(s.EndDate))
	return ensureUnique(tx, "subject", q, selfID)
}

// ensureDurationUnique guards both slot boundaries: a colliding start time
// alone, or a colliding end time alone, is enough to reject.
func ensureDurationUnique(tx *gorm.DB, d *model.Duration, selfID uint) error {
	q := tx.Model(&model.Duration{}).
		Where("start_time = ? OR end_time = ?", d.StartTime, d.EndTime)
	return ensureUnique(tx, "duration", q, selfID)
}

// personTupleQuery matches rows in one person table whose biographical tuple
// equals the candidate's.
func personTupleQuery(tx *gorm.DB, table any, p model.Person) *gorm.DB {
	return tx.Model(table).
		Where("first_name = ? AND last_name = ? AND gender = ? AND birth_date = ? AND phone = ?",
			p.FirstName, p.LastName, p.Gender, time.Time(p.BirthDate), p.Phone)
}

// ensurePersonUnique checks the biographical tuple across the whole person
// namespace. Students and employees could otherwise collide silently, since
// email is not part of the tuple. selfStudentID/selfEmployeeID exclude the
// row being updated in its own table; pass 0 for the other.
func ensurePersonUnique(tx *gorm.DB, p model.Person, selfStudentID, selfEmployeeID uint) error {
	sq := personTupleQuery(tx, &model.Student{}, p)
	if selfStudentID != 0 {
		sq = sq.Where("id <> ?", selfStudentID)
	}
	var n int64
	if err := sq.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return &AlreadyExistsError{Entity: "person"}
	}

	eq := personTupleQuery(tx, &model.Employee{}, p)
	if selfEmployeeID != 0 {
		eq = eq.Where("id <> ?", selfEmployeeID)
	}
	if err := eq.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return &AlreadyExistsError{Entity: "person"}
	}
	return nil
}

// ensureEmailUnique checks the email across both person tables.
func ensureEmailUnique(tx *gorm.DB, email string, selfStudentID, selfEmployeeID uint) error {
	sq := tx.Model(&model.Student{}).Where("email = ?", email)
	if selfStudentID != 0 {
		sq = sq.Where("id <> ?", selfStudentID)
	}
	var n int64
	if err := sq.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return &AlreadyExistsError{Entity: "person"}
	}

	eq := tx.Model(&model.Employee{}).Where("email = ?", email)
	if selfEmployeeID != 0 {
		eq = eq.Where("id <> ?", selfEmployeeID)
	}
	if err := eq.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return &AlreadyExistsError{Entity: "person"}
	}
	return nil
}

// ensureFieldUnique guards a single-column natural key (names, room number).
func ensureFieldUnique(tx *gorm.DB, entity string, table any, column string, value any, selfID uint) error {
	q := tx.Model(table).Where(column+" = ?", value)
	return ensureUnique(tx, entity, q, selfID)
}
