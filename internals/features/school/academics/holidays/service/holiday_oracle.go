// file: internals/features/school/academics/holidays/service/holiday_oracle.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	hm "sekolahku_backend/internals/features/school/academics/holidays/model"
	timetableSvc "sekolahku_backend/internals/features/school/timetable/service"
)

/* =======================================================
   Holiday oracle - predicate advisory untuk controller
   jadwal. Generate/edit TIDAK diblokir di level data;
   oracle cuma memberi tahu supaya UI bisa menahan
   affordance-nya.
   ======================================================= */

type GormHolidayOracle struct{ DB *gorm.DB }

func NewGormHolidayOracle(db *gorm.DB) *GormHolidayOracle {
	return &GormHolidayOracle{DB: db}
}

// compile-time check: implementasi kontrak consumer
var _ timetableSvc.HolidayOracle = (*GormHolidayOracle)(nil)

// IsHoliday: cek libur sekolah (atau khusus kelas) yang aktif dan
// mencakup tanggal; libur tahunan dicocokkan per bulan-tanggal.
func (o *GormHolidayOracle) IsHoliday(ctx context.Context, schoolID, classID uuid.UUID, date time.Time) (*timetableSvc.HolidayInfo, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var rows []hm.SchoolHolidayModel
	err := o.DB.WithContext(ctx).
		Where(`school_holiday_school_id = ?
		   AND school_holiday_is_active = TRUE
		   AND (school_holiday_class_id IS NULL OR school_holiday_class_id = ?)`, schoolID, classID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("holiday oracle: %w", err)
	}

	for i := range rows {
		h := &rows[i]
		if h.SchoolHolidayIsRecurringYearly {
			if coversMonthDay(h.SchoolHolidayStartDate, h.SchoolHolidayEndDate, day) {
				return &timetableSvc.HolidayInfo{Title: h.SchoolHolidayTitle, Recurring: true}, nil
			}
			continue
		}
		if !day.Before(dateOnly(h.SchoolHolidayStartDate)) && !day.After(dateOnly(h.SchoolHolidayEndDate)) {
			return &timetableSvc.HolidayInfo{Title: h.SchoolHolidayTitle}, nil
		}
	}
	return nil, nil
}

// coversMonthDay: rentang tahunan (abaikan tahun); rentang yang
// nyebrang tahun baru (mis. 25 Des – 2 Jan) tetap kena.
func coversMonthDay(start, end, day time.Time) bool {
	md := func(t time.Time) int { return int(t.Month())*100 + t.Day() }
	s, e, d := md(start), md(end), md(day)
	if s <= e {
		return d >= s && d <= e
	}
	return d >= s || d <= e
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
