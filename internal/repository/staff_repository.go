package repository

import (
	"staff-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *model.Staff) error
	FindByID(id uint) (*model.Staff, error)
	FindByEmployeeNo(employeeNo string) (*model.Staff, error)
	GetAllActive() ([]model.Staff, error)
	Update(staff *model.Staff) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db}
}

func (r *staffRepository) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) FindByID(id uint) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.First(&staff, id).Error
	return &staff, err
}

func (r *staffRepository) FindByEmployeeNo(employeeNo string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.Where("employee_no = ?", employeeNo).First(&staff).Error
	return &staff, err
}

func (r *staffRepository) GetAllActive() ([]model.Staff, error) {
	var list []model.Staff
	err := r.db.Where("is_active = ?", true).Order("name asc").Find(&list).Error
	return list, err
}

func (r *staffRepository) Update(staff *model.Staff) error {
	return r.db.Save(staff).Error
}
