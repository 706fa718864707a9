package model

import "gorm.io/gorm"

type AppealStatus string

const (
	AppealPending  AppealStatus = "pending"
	AppealResolved AppealStatus = "resolved"
)

type AppealCategory string

const (
	AppealCategorySick      AppealCategory = "sick_leave"
	AppealCategoryDuty      AppealCategory = "official_duty"
	AppealCategoryEmergency AppealCategory = "family_emergency"
	AppealCategoryOther     AppealCategory = "other"
)

// Appeal is a staff member's contest of a late/absent classification. Created
// only by the subject of the record; immutable except for the resolution step.
type Appeal struct {
	gorm.Model
	Reference string         `json:"reference" gorm:"size:36;unique;not null"`
	StaffID   uint           `json:"staff_id" gorm:"index;not null"`
	Date      string         `json:"date" gorm:"size:10;not null"` // contested record's date
	Category  AppealCategory `json:"category" gorm:"size:30;not null"`
	Reason    string         `json:"reason" gorm:"type:text"`
	Status    AppealStatus   `json:"status" gorm:"size:20;not null"`

	Staff *Staff `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
}

func ValidAppealCategory(c AppealCategory) bool {
	switch c {
	case AppealCategorySick, AppealCategoryDuty, AppealCategoryEmergency, AppealCategoryOther:
		return true
	}
	return false
}
