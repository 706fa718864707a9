package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"staff-attendance-backend/internal/model"
)

// ErrStoreUnavailable wraps any storage-level failure of the record store.
var ErrStoreUnavailable = errors.New("record store unavailable")

// RecordStore is the narrow surface the attendance engine reads and writes
// through. There is deliberately no partial-field update: callers read the full
// per-day map, modify it, and write it back whole, which is why the
// origin-precedence rule is enforced by the sweep rather than by the store.
type RecordStore interface {
	// ReadDay returns the per-day map keyed by staff ID. A missing day yields
	// an empty map, never an error.
	ReadDay(date string) (map[uint]model.AttendanceRecord, error)
	// WriteDay replaces the full per-day map.
	WriteDay(date string, records map[uint]model.AttendanceRecord) error
}

type recordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) RecordStore {
	return &recordStore{db}
}

func (s *recordStore) ReadDay(date string) (map[uint]model.AttendanceRecord, error) {
	var day model.AttendanceDay
	err := s.db.Where("date = ?", date).First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[uint]model.AttendanceRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, date, err)
	}
	return decodeDay(day.Records)
}

func (s *recordStore) WriteDay(date string, records map[uint]model.AttendanceRecord) error {
	raw, err := encodeDay(records)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStoreUnavailable, date, err)
	}

	var day model.AttendanceDay
	err = s.db.Where("date = ?", date).First(&day).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		day = model.AttendanceDay{Date: date, Records: raw}
		err = s.db.Create(&day).Error
	case err == nil:
		err = s.db.Model(&day).Update("records", raw).Error
	}
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStoreUnavailable, date, err)
	}
	return nil
}

// JSON object keys are strings, so the staff-ID keys round-trip through strconv.
func encodeDay(records map[uint]model.AttendanceRecord) (datatypes.JSON, error) {
	keyed := make(map[string]model.AttendanceRecord, len(records))
	for id, rec := range records {
		keyed[strconv.FormatUint(uint64(id), 10)] = rec
	}
	return json.Marshal(keyed)
}

func decodeDay(raw datatypes.JSON) (map[uint]model.AttendanceRecord, error) {
	keyed := make(map[string]model.AttendanceRecord)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &keyed); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", ErrStoreUnavailable, err)
		}
	}
	records := make(map[uint]model.AttendanceRecord, len(keyed))
	for key, rec := range keyed {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: decode key %q: %v", ErrStoreUnavailable, key, err)
		}
		records[uint(id)] = rec
	}
	return records, nil
}
