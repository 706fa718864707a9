package repository

import (
	"staff-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type HolidayRepository interface {
	GetAll() ([]model.Holiday, error)
	Create(holiday *model.Holiday) error
	Delete(id uint) error
	IsHoliday(date string) (bool, error)
}

type holidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db}
}

func (r *holidayRepository) GetAll() ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := r.db.Order("date desc").Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepository) Create(holiday *model.Holiday) error {
	return r.db.Create(holiday).Error
}

func (r *holidayRepository) Delete(id uint) error {
	return r.db.Delete(&model.Holiday{}, id).Error
}

func (r *holidayRepository) IsHoliday(date string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Holiday{}).Where("date = ?", date).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
