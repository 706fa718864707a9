package repository

import (
	"errors"

	"staff-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetDeductions() (*model.DeductionSettings, error)
	SaveDeductions(settings *model.DeductionSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db}
}

// GetDeductions returns the single settings row, zero amounts when unset.
func (r *settingsRepository) GetDeductions() (*model.DeductionSettings, error) {
	var settings model.DeductionSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.DeductionSettings{}, nil
	}
	return &settings, err
}

func (r *settingsRepository) SaveDeductions(settings *model.DeductionSettings) error {
	var existing model.DeductionSettings
	err := r.db.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	return r.db.Save(settings).Error
}
