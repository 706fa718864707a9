package repository

import (
	"staff-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type AppealRepository interface {
	Create(appeal *model.Appeal) error
	GetByStaffID(staffID uint) ([]model.Appeal, error)
	GetPending() ([]model.Appeal, error)
	GetByID(id uint) (*model.Appeal, error)
	Update(appeal *model.Appeal) error
}

type appealRepository struct {
	db *gorm.DB
}

func NewAppealRepository(db *gorm.DB) AppealRepository {
	return &appealRepository{db}
}

func (r *appealRepository) Create(appeal *model.Appeal) error {
	return r.db.Create(appeal).Error
}

func (r *appealRepository) GetByStaffID(staffID uint) ([]model.Appeal, error) {
	var list []model.Appeal
	err := r.db.Where("staff_id = ?", staffID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *appealRepository) GetPending() ([]model.Appeal, error) {
	var list []model.Appeal
	err := r.db.Where("status = ?", model.AppealPending).
		Preload("Staff").
		Order("created_at asc").
		Find(&list).Error
	return list, err
}

func (r *appealRepository) GetByID(id uint) (*model.Appeal, error) {
	var appeal model.Appeal
	err := r.db.First(&appeal, id).Error
	return &appeal, err
}

func (r *appealRepository) Update(appeal *model.Appeal) error {
	return r.db.Save(appeal).Error
}
