// file: internals/features/school/timetable/service/store.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Store interfaces - kontrak sempit ke persistence.
   Engine cuma butuh write atomik per baris + range read
   per hari; semua di-scope school (tenant).
   ======================================================= */

type SlotStore interface {
	ListByDay(ctx context.Context, schoolID, classID uuid.UUID, date time.Time) ([]m.TimetableSlotModel, error)
	GetByID(ctx context.Context, schoolID, slotID uuid.UUID) (*m.TimetableSlotModel, error)
	InsertBatch(ctx context.Context, slots []m.TimetableSlotModel) (int, error)
	UpdateFields(ctx context.Context, schoolID, slotID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, schoolID, slotID uuid.UUID) error
}

type ProgressStore interface {
	ListTaught(ctx context.Context, schoolID, classID uuid.UUID, date time.Time) ([]m.TaughtProgressModel, error)
	GetBySlot(ctx context.Context, schoolID, slotID uuid.UUID) (*m.TaughtProgressModel, error)
	InsertTaught(ctx context.Context, rec *m.TaughtProgressModel) error
	DeleteTaught(ctx context.Context, schoolID, slotID uuid.UUID) (bool, error)
}

/* =======================================================
   GORM implementations
   ======================================================= */

type gormSlotStore struct{ DB *gorm.DB }

func NewGormSlotStore(db *gorm.DB) SlotStore { return &gormSlotStore{DB: db} }

func (s *gormSlotStore) ListByDay(ctx context.Context, schoolID, classID uuid.UUID, date time.Time) ([]m.TimetableSlotModel, error) {
	var rows []m.TimetableSlotModel
	err := s.DB.WithContext(ctx).
		Where(`timetable_slot_school_id = ?
		   AND timetable_slot_class_id = ?
		   AND timetable_slot_date = ?`, schoolID, classID, dateOnly(date)).
		Order("timetable_slot_start_time ASC, timetable_slot_sequence_number ASC").
		Find(&rows).Error
	return rows, err
}

func (s *gormSlotStore) GetByID(ctx context.Context, schoolID, slotID uuid.UUID) (*m.TimetableSlotModel, error) {
	var row m.TimetableSlotModel
	err := s.DB.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_id = ?", schoolID, slotID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundErrf("slot %s", slotID)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// InsertBatch: satu batch write; ON CONFLICT DO NOTHING supaya
// generate yang balapan tidak merusak hari yang sudah terisi.
func (s *gormSlotStore) InsertBatch(ctx context.Context, slots []m.TimetableSlotModel) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	tx := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&slots)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(tx.RowsAffected), nil
}

func (s *gormSlotStore) UpdateFields(ctx context.Context, schoolID, slotID uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	tx := s.DB.WithContext(ctx).
		Model(&m.TimetableSlotModel{}).
		Where("timetable_slot_school_id = ? AND timetable_slot_id = ?", schoolID, slotID).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return notFoundErrf("slot %s", slotID)
	}
	return nil
}

func (s *gormSlotStore) Delete(ctx context.Context, schoolID, slotID uuid.UUID) error {
	tx := s.DB.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_id = ?", schoolID, slotID).
		Delete(&m.TimetableSlotModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return notFoundErrf("slot %s", slotID)
	}
	return nil
}

type gormProgressStore struct{ DB *gorm.DB }

func NewGormProgressStore(db *gorm.DB) ProgressStore { return &gormProgressStore{DB: db} }

func (s *gormProgressStore) ListTaught(ctx context.Context, schoolID, classID uuid.UUID, date time.Time) ([]m.TaughtProgressModel, error) {
	var rows []m.TaughtProgressModel
	err := s.DB.WithContext(ctx).
		Where(`taught_progress_school_id = ?
		   AND taught_progress_class_id = ?
		   AND taught_progress_date = ?`, schoolID, classID, dateOnly(date)).
		Find(&rows).Error
	return rows, err
}

func (s *gormProgressStore) GetBySlot(ctx context.Context, schoolID, slotID uuid.UUID) (*m.TaughtProgressModel, error) {
	var row m.TaughtProgressModel
	err := s.DB.WithContext(ctx).
		Where("taught_progress_school_id = ? AND taught_progress_timetable_slot_id = ?", schoolID, slotID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundErrf("taught record slot %s", slotID)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormProgressStore) InsertTaught(ctx context.Context, rec *m.TaughtProgressModel) error {
	return s.DB.WithContext(ctx).Create(rec).Error
}

func (s *gormProgressStore) DeleteTaught(ctx context.Context, schoolID, slotID uuid.UUID) (bool, error) {
	tx := s.DB.WithContext(ctx).
		Where("taught_progress_school_id = ? AND taught_progress_timetable_slot_id = ?", schoolID, slotID).
		Delete(&m.TaughtProgressModel{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// dateOnly: buang komponen jam supaya kolom DATE match persis
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
