package model

import (
	"time"

	"gorm.io/datatypes"
)

// Address holds the postal address attached to a person. It is embedded into
// the owning row rather than stored as a separate table.
type Address struct {
	Country  string `gorm:"type:varchar(100)" json:"country"`
	City     string `gorm:"type:varchar(100)" json:"city"`
	Street   string `gorm:"type:varchar(255)" json:"street"`
	House    string `gorm:"type:varchar(20)" json:"house"`
	Flat     string `gorm:"type:varchar(20)" json:"flat"`
	PostCode string `gorm:"type:varchar(20)" json:"post_code"`
}

// Person carries the fields shared by Student and Employee. It is embedded
// into both tables; students and employees share one logical namespace for
// person-level uniqueness checks.
//
// Two people are considered the same person when their biographical tuple
// (first name, last name, gender, birth date, phone) matches, independent of
// email or id. Email is unique across the whole person namespace but is not
// part of that tuple.
type Person struct {
	FirstName string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string         `gorm:"type:varchar(100);not null" json:"last_name"`
	Gender    Gender         `gorm:"type:gender;not null" json:"gender"`
	BirthDate datatypes.Date `gorm:"not null" json:"birth_date"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string         `gorm:"type:varchar(30)" json:"phone"`
	Password  string         `gorm:"type:varchar(255)" json:"-"`
	Role      Role           `gorm:"type:varchar(20);default:'student'" json:"role"`

	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`
}

// SamePerson reports whether two person records describe the same real-world
// person by the biographical tuple.
func (p Person) SamePerson(other Person) bool {
	return p.FirstName == other.FirstName &&
		p.LastName == other.LastName &&
		p.Gender == other.Gender &&
		time.Time(p.BirthDate).Equal(time.Time(other.BirthDate)) &&
		p.Phone == other.Phone
}
