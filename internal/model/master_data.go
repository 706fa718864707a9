package model

import "gorm.io/gorm"

type Holiday struct {
	gorm.Model
	Date        string `json:"date" gorm:"size:10;unique;not null"` // YYYY-MM-DD
	Description string `json:"description"`
}

// DeductionSettings holds the per-incident amounts the payroll collaborator
// applies to late/absent classifications. The engine never computes money;
// this row is only read back alongside raw counts.
type DeductionSettings struct {
	gorm.Model
	LateAmount   int `json:"late_amount"`
	AbsentAmount int `json:"absent_amount"`
}
