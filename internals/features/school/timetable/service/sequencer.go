// file: internals/features/school/timetable/service/sequencer.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Sequencer - generate kerangka satu hari penuh dari
   parameter ringkas. sequence_number dinaikkan monoton
   per emisi (period & break sama-sama ikut counter) supaya
   tidak tabrakan di unique index; nomor period tampilan
   diturunkan belakangan saat read.
   ======================================================= */

const minutesPerDay = 24 * 60

type BreakSpec struct {
	AfterPeriod     int
	DurationMinutes int
	Name            string
}

type GenerationRequest struct {
	NumPeriods            int
	PeriodDurationMinutes int
	StartTime             dbtime.Tod
	Breaks                []BreakSpec
}

// Validate: fail-fast, tidak ada batch parsial.
func (r *GenerationRequest) Validate() error {
	if r.NumPeriods < 1 {
		return validationErrf("num_periods minimal 1 (dapat %d)", r.NumPeriods)
	}
	if r.PeriodDurationMinutes < 1 {
		return validationErrf("period_duration_minutes minimal 1 (dapat %d)", r.PeriodDurationMinutes)
	}

	total := r.NumPeriods * r.PeriodDurationMinutes
	for _, b := range r.Breaks {
		if b.AfterPeriod < 1 || b.AfterPeriod > r.NumPeriods {
			return validationErrf("break after_period harus 1..%d (dapat %d)", r.NumPeriods, b.AfterPeriod)
		}
		if b.DurationMinutes < 1 {
			return validationErrf("break duration_minutes minimal 1 (dapat %d)", b.DurationMinutes)
		}
		total += b.DurationMinutes
	}

	// Jadwal harus muat dalam satu hari; aritmetika Tod sendiri wrap
	// modulo 24 dan tidak pernah error, jadi batasnya dijaga di sini.
	if total >= minutesPerDay {
		return validationErrf("total durasi %d menit melebihi satu hari", total)
	}
	return nil
}

// BuildDayPlan mengubah GenerationRequest jadi daftar slot siap
// batch-insert. Deterministik: input sama → output sama persis.
// Subject/teacher sengaja dikosongkan - generator hanya membangun
// kerangka waktu, penugasan diisi lewat edit.
func BuildDayPlan(
	schoolID, classID uuid.UUID,
	date time.Time,
	req GenerationRequest,
	createdBy *uuid.UUID,
) ([]m.TimetableSlotModel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	day := dateOnly(date)
	clock := req.StartTime
	seq := 1

	out := make([]m.TimetableSlotModel, 0, req.NumPeriods+len(req.Breaks))

	emit := func(kind m.SlotKind, name *string, start, end dbtime.Tod) {
		out = append(out, m.TimetableSlotModel{
			TimetableSlotSchoolID:       schoolID,
			TimetableSlotClassID:        classID,
			TimetableSlotDate:           day,
			TimetableSlotSequenceNumber: seq,
			TimetableSlotKind:           kind,
			TimetableSlotName:           name,
			TimetableSlotStartTime:      start,
			TimetableSlotEndTime:        end,
			TimetableSlotCreatedBy:      createdBy,
		})
		seq++
	}

	for periodIndex := 1; periodIndex <= req.NumPeriods; periodIndex++ {
		end := clock.AddMinutes(req.PeriodDurationMinutes)
		emit(m.SlotKindPeriod, nil, clock, end)
		clock = end

		// Break yang menempel setelah period ini (urutan sesuai request)
		for _, b := range req.Breaks {
			if b.AfterPeriod != periodIndex {
				continue
			}
			breakEnd := clock.AddMinutes(b.DurationMinutes)
			name := strings.TrimSpace(b.Name)
			if name == "" {
				name = "Break"
			}
			emit(m.SlotKindBreak, &name, clock, breakEnd)
			clock = breakEnd
		}
	}

	return out, nil
}
