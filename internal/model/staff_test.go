package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staff-attendance-backend/internal/model"
)

func TestCanOverrideAttendance(t *testing.T) {
	assert.True(t, model.CanOverrideAttendance(model.RoleAdmin))
	assert.True(t, model.CanOverrideAttendance(model.RoleHeadTeacher))
	assert.False(t, model.CanOverrideAttendance(model.RoleTeacher))
	assert.False(t, model.CanOverrideAttendance(model.RoleBursar))
	assert.False(t, model.CanOverrideAttendance(model.StaffRole("Head_Teacher")), "the role set is closed, no case folding")
}
