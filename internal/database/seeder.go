package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staff-attendance-backend/internal/model"
)

func SeedAll(db *gorm.DB) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	// 1. Seed admin account
	admin := model.Staff{
		Name:       "Portal Administrator",
		EmployeeNo: "ADM-0001",
		Password:   string(hashedPassword),
		Role:       model.RoleAdmin,
		Department: "Administration",
		IsActive:   true,
	}
	result := db.FirstOrCreate(&admin, model.Staff{EmployeeNo: admin.EmployeeNo})
	if result.Error == nil {
		// keep the seeded password in sync even when the row already exists
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("seeded admin account")
	}

	// 2. Seed sample staff
	staff := []model.Staff{
		{Name: "Amina Nakato", EmployeeNo: "TCH-0101", Role: model.RoleHeadTeacher, Department: "Sciences"},
		{Name: "Joseph Okello", EmployeeNo: "TCH-0102", Role: model.RoleTeacher, Department: "Languages"},
		{Name: "Grace Achieng", EmployeeNo: "BUR-0201", Role: model.RoleBursar, Department: "Finance"},
	}
	for _, s := range staff {
		s.Password = string(hashedPassword)
		s.IsActive = true
		db.FirstOrCreate(&s, model.Staff{EmployeeNo: s.EmployeeNo})
	}

	// 3. Seed default deduction settings
	var settings model.DeductionSettings
	if err := db.First(&settings).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		db.Create(&model.DeductionSettings{LateAmount: 2000, AbsentAmount: 10000})
		log.Println("seeded default deduction settings")
	}

	// 4. Seed a sample holiday
	holiday := model.Holiday{Date: "2026-01-01", Description: "New Year's Day"}
	db.FirstOrCreate(&holiday, model.Holiday{Date: holiday.Date})
}
