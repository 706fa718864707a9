package model

import "gorm.io/gorm"

// StaffRole is a closed set. Capability checks compare against these constants
// instead of matching free-form role strings.
type StaffRole string

const (
	RoleAdmin       StaffRole = "admin"
	RoleHeadTeacher StaffRole = "head_teacher"
	RoleTeacher     StaffRole = "teacher"
	RoleBursar      StaffRole = "bursar"
)

// CanOverrideAttendance reports whether a role may use the manual override gate.
func CanOverrideAttendance(r StaffRole) bool {
	switch r {
	case RoleAdmin, RoleHeadTeacher:
		return true
	}
	return false
}

type Staff struct {
	gorm.Model
	Name       string    `json:"name"`
	EmployeeNo string    `json:"employee_no" gorm:"unique;not null"`
	Password   string    `json:"-"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       StaffRole `json:"role" gorm:"size:20;not null"`
	Department string    `json:"department"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`

	Appeals []Appeal `json:"appeals,omitempty" gorm:"foreignKey:StaffID"`
}
