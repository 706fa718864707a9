package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	StatusPresent     AttendanceStatus = "present"
	StatusLate        AttendanceStatus = "late"
	StatusAbsent      AttendanceStatus = "absent"
	StatusNotRecorded AttendanceStatus = "not_recorded"
)

// Origin identifies which writer last set a record's status. A manual record is
// authoritative for the rest of the day and must never be overwritten by the sweep.
type Origin string

const (
	OriginAuto   Origin = "auto"
	OriginManual Origin = "manual"
)

type AbsentType string

const (
	AbsentUnauthorized    AbsentType = "unauthorized"
	AbsentSickLeave       AbsentType = "sick_leave"
	AbsentOfficialDuty    AbsentType = "official_duty"
	AbsentFamilyEmergency AbsentType = "family_emergency"
	AbsentOther           AbsentType = "other"
)

// IntegrityStamp is a tamper-evident token of the instant a record was written.
// It is a corruption/staleness check, not authentication: the digest is derived
// from the instant and a random salt, both stored in the clear.
type IntegrityStamp struct {
	Instant     time.Time `json:"instant"`
	Salt        string    `json:"salt"`
	Digest      string    `json:"digest"`
	DisplayTime string    `json:"display_time"`
	DisplayDate string    `json:"display_date"`
}

// AttendanceRecord is the unit of the per-day map: exactly one per (staff, date).
// Writers always replace the whole record, never merge fields.
type AttendanceRecord struct {
	StaffID     uint             `json:"staff_id"`
	Date        string           `json:"date"`                   // YYYY-MM-DD
	ArrivalTime *string          `json:"arrival_time,omitempty"` // HH:MM, nil for absentees
	Status      AttendanceStatus `json:"status"`
	Origin      Origin           `json:"origin"`
	AbsentType  AbsentType       `json:"absent_type,omitempty"` // set only when Status is absent
	Notes       string           `json:"notes,omitempty"`
	EntryBy     string           `json:"entry_by"`
	Stamp       IntegrityStamp   `json:"integrity_stamp"`

	// Untrusted flags a record whose stamp failed verification. The record is
	// kept (trust downgrade, not a hard failure) and surfaced for audit.
	Untrusted bool `json:"untrusted,omitempty"`
}

// AttendanceDay is the storage row behind the record store: the full per-day map
// of records serialized as JSON under a date key. Writes replace the whole map.
type AttendanceDay struct {
	gorm.Model
	Date    string         `json:"date" gorm:"size:10;unique;not null"`
	Records datatypes.JSON `json:"records"`
}

func ValidAbsentType(t AbsentType) bool {
	switch t {
	case AbsentUnauthorized, AbsentSickLeave, AbsentOfficialDuty, AbsentFamilyEmergency, AbsentOther:
		return true
	}
	return false
}
